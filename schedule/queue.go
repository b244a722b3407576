// Package schedule runs deferred actions against a clock.Clock.
//
// A Queue accepts (offset, action) pairs and runs each action once
// its offset has elapsed, in offset order. With clock.New the actions
// run on timer goroutines; with a clock.Mock they run inside Add, on
// the goroutine moving the clock, so tests can step through time
// without sleeping.
package schedule

import (
	"container/heap"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Queue is a clock-driven task queue. Tasks run once their offset
// has elapsed, ordered by due time, then by submission order. Only one
// task runs at a time.
//
// At most one Timer is armed at any time, for the earliest task.
//
// A Queue is safe for concurrent use. Tasks may Submit more tasks.
type Queue struct {
	clock clock.Clock

	// held while tasks run, so that a timer firing early
	// can't overtake a batch that is still running
	running sync.Mutex

	// protected by lock
	lock  sync.Mutex
	tasks taskHeap
	seq   uint64
	timer *clock.Timer
}

type task struct {
	due time.Time
	seq uint64
	f   func()
}

// NewQueue returns a Queue driven by c.
func NewQueue(c clock.Clock) *Queue {
	if c == nil {
		panic("clock must not be nil")
	}

	return &Queue{
		clock: c,
	}
}

// Submit schedules f to run once offset has elapsed from now.
// A zero or negative offset means as soon as possible, but never
// synchronously inside Submit.
func (q *Queue) Submit(offset time.Duration, f func()) {
	if f == nil {
		panic("f must not be nil")
	}

	q.lock.Lock()
	defer q.lock.Unlock()

	now := q.clock.Now()
	q.seq++
	t := &task{
		due: now.Add(offset),
		seq: q.seq,
		f:   f,
	}
	heap.Push(&q.tasks, t)

	// only rearm if this is the new earliest task
	if q.timer == nil || q.tasks[0] == t {
		q.armLocked(now)
	}
}

// Len returns the number of tasks that have not started.
func (q *Queue) Len() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.tasks)
}

func (q *Queue) armLocked(now time.Time) {
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}

	if len(q.tasks) == 0 {
		return
	}

	d := q.tasks[0].due.Sub(now)
	if d < 0 {
		d = 0
	}
	q.timer = q.clock.AfterFunc(d, q.fire)
}

func (q *Queue) fire() {
	q.running.Lock()
	defer q.running.Unlock()

	q.lock.Lock()
	q.timer = nil
	now := q.clock.Now()

	var due []*task
	for len(q.tasks) > 0 && !q.tasks[0].due.After(now) {
		due = append(due, heap.Pop(&q.tasks).(*task))
	}

	q.armLocked(now)
	q.lock.Unlock()

	for _, t := range due {
		t.f()
	}
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if !h[i].due.Equal(h[j].due) {
		return h[i].due.Before(h[j].due)
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) {
	*h = append(*h, x.(*task))
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
