// Package animate plays a traversal back as a moving highlight.
//
// A Scheduler highlights one node per step, restoring the previous
// node as it goes, and leaves the last node highlighted when the run
// ends. Only one run can be in flight: while it is Running, further
// Animate calls fail with ErrBusy, which callers surface by keeping
// their controls disabled.
//
// There is no way to cancel a run once it has started.
package animate

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.lepak.sg/treeviz/metrics"
	"go.lepak.sg/treeviz/render"
	"go.lepak.sg/treeviz/schedule"
	"go.lepak.sg/treeviz/tree"
	"golang.org/x/sync/semaphore"
)

var log = logrus.WithField("component", "animate")

var (
	ErrBusy         = errors.New("animation already running")
	ErrInvalidDelay = errors.New("step delay must be positive")
)

// State is Idle or Running.
type State uint32

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return "<invalid animate.State>"
	}
}

// Styler is the part of render.Renderer a Scheduler drives.
type Styler interface {
	SetNodeStyle(id tree.ID, style render.Style)
}

type Scheduler struct {
	styler Styler
	clock  clock.Clock
	queue  *schedule.Queue

	// weight 1: holding it is what Running means
	gate *semaphore.Weighted

	// atomic access only, may be read at any time by State
	state uint32

	// protected by lock
	lock sync.Mutex
	done chan struct{}
}

// run is the state of one Animate call.
type run struct {
	s       *Scheduler
	length  int
	delay   time.Duration
	prev    tree.ID
	started time.Time
	done    chan struct{}
}

// New returns an idle Scheduler that styles nodes through styler,
// timed by clk.
func New(styler Styler, clk clock.Clock) *Scheduler {
	if styler == nil {
		panic("styler must not be nil")
	}

	return &Scheduler{
		styler: styler,
		clock:  clk,
		queue:  schedule.NewQueue(clk),
		gate:   semaphore.NewWeighted(1),
	}
}

// Animate starts highlighting seq, one node every delay, and returns
// a channel that is closed when the run is over and the Scheduler is
// Idle again. The node at position i is highlighted at i*delay, and
// the run ends at (len(seq)-1)*delay with that last node still
// highlighted.
//
// Animate never blocks. If a run is already in flight it returns
// ErrBusy and changes nothing.
func (s *Scheduler) Animate(seq []tree.ID, delay time.Duration) (<-chan struct{}, error) {
	if len(seq) > 1 && delay <= 0 {
		return nil, errors.Wrapf(ErrInvalidDelay, "delay %s", delay)
	}

	if !s.gate.TryAcquire(1) {
		metrics.AnimationsRejectedMetrics.Inc()
		log.Debugf("rejected animation of %d steps: still running", len(seq))
		return nil, ErrBusy
	}

	r := &run{
		s:       s,
		length:  len(seq),
		delay:   delay,
		started: s.clock.Now(),
		done:    make(chan struct{}),
	}

	s.lock.Lock()
	s.done = r.done
	s.lock.Unlock()

	atomic.StoreUint32(&s.state, uint32(Running))
	metrics.AnimationRunningMetrics.Set(1)
	log.WithFields(logrus.Fields{
		"steps": r.length,
		"delay": delay,
	}).Info("animation started")

	for _, step := range Plan(seq, delay) {
		id := step.ID
		s.queue.Submit(step.Offset, func() {
			r.step(id)
		})
	}
	// same offset as the last step, but submitted after it,
	// so the queue runs it after the last highlight
	s.queue.Submit(Duration(len(seq), delay), r.finish)

	return r.done, nil
}

func (r *run) step(id tree.ID) {
	if r.prev != "" {
		r.s.styler.SetNodeStyle(r.prev, render.Neutral)
	}
	r.s.styler.SetNodeStyle(id, render.Highlighted)
	r.prev = id
	metrics.StepsHighlightedMetrics.Inc()
}

func (r *run) finish() {
	atomic.StoreUint32(&r.s.state, uint32(Idle))
	metrics.AnimationRunningMetrics.Set(0)
	r.s.gate.Release(1)

	log.WithFields(logrus.Fields{
		"steps":   r.length,
		"last":    r.prev,
		"elapsed": r.s.clock.Now().Sub(r.started),
	}).Info("animation finished")

	close(r.done)
}

// ResetStyles restores every node in ids to the neutral style,
// before returning. It may be called in any state; if a run is in
// flight, its next step still highlights as planned.
func (s *Scheduler) ResetStyles(ids []tree.ID) {
	for _, id := range ids {
		s.styler.SetNodeStyle(id, render.Neutral)
	}
}

// State returns whether a run is in flight.
func (s *Scheduler) State() State {
	return State(atomic.LoadUint32(&s.state))
}

// Busy is shorthand for State() == Running.
func (s *Scheduler) Busy() bool {
	return s.State() == Running
}

// Wait blocks until the current run, if any, is over, or until ctx
// is done, in which case the context error is returned. Giving up
// on waiting does not stop the run.
func (s *Scheduler) Wait(ctx context.Context) error {
	s.lock.Lock()
	done := s.done
	s.lock.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
