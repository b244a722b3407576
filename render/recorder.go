package render

import (
	"fmt"
	"sync"

	"go.lepak.sg/treeviz/tree"
)

var _ Renderer = (*Recorder)(nil)

// Recorder is a Renderer that keeps a log of the calls made to it,
// one line per call, and the current style of each node.
// It is safe for concurrent use.
type Recorder struct {
	lock   sync.Mutex
	calls  []string
	styles map[tree.ID]Style
}

func NewRecorder() *Recorder {
	return &Recorder{
		styles: make(map[tree.ID]Style),
	}
}

func (r *Recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) Clear() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.styles = make(map[tree.ID]Style)
	r.record("clear")
}

func (r *Recorder) AddNode(id tree.ID, value int) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.styles[id] = Neutral
	r.record("node %s %d", id, value)
}

func (r *Recorder) AddEdge(parent, child tree.ID) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("edge %s %s", parent, child)
}

func (r *Recorder) Layout() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.record("layout")
}

func (r *Recorder) SetNodeStyle(id tree.ID, style Style) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.styles[id] = style
	r.record("style %s %s", id, style)
}

// Calls returns the calls recorded so far.
func (r *Recorder) Calls() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// Reset forgets the recorded calls, but not the node styles.
func (r *Recorder) Reset() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.calls = nil
}

// Highlighted returns the nodes whose current style is a highlight.
func (r *Recorder) Highlighted() []tree.ID {
	r.lock.Lock()
	defer r.lock.Unlock()
	var out []tree.ID
	for id, s := range r.styles {
		if s.Highlight {
			out = append(out, id)
		}
	}
	return out
}
