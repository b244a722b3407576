// Package viz ties the pieces together into what a user interface
// talks to: build a new random tree, reset its styles, and play back
// a traversal at some speed.
//
// While an animation is running every request fails with
// animate.ErrBusy. A user interface keeps its controls disabled for
// as long as Busy returns true.
package viz

import (
	"context"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.lepak.sg/treeviz/animate"
	"go.lepak.sg/treeviz/config"
	"go.lepak.sg/treeviz/metrics"
	"go.lepak.sg/treeviz/random"
	"go.lepak.sg/treeviz/render"
	"go.lepak.sg/treeviz/tree/binary"
	"go.lepak.sg/treeviz/tree/traverse"
)

var log = logrus.WithField("component", "viz")

var ErrNoTree = errors.New("no tree has been built yet")

type Visualizer struct {
	renderer render.Renderer
	sched    *animate.Scheduler
	count    random.Range
	values   random.Range
	speed    animate.Speed

	// lock serialises requests, so the renderer only ever hears from
	// one request, or from the running animation
	lock sync.RWMutex
	gen  *random.Generator
	tree *binary.Tree
}

// New returns a Visualizer drawing on r, with animations timed by
// clk. Trees are built from values drawn by gen, within the ranges
// in cfg. cfg is validated first.
func New(gen *random.Generator, r render.Renderer, clk clock.Clock, cfg config.Config) (*Visualizer, error) {
	if gen == nil || r == nil {
		panic("generator and renderer must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Visualizer{
		renderer: r,
		sched:    animate.New(r, clk),
		count:    cfg.Count,
		values:   cfg.Values,
		speed:    cfg.SpeedRange,
		gen:      gen,
	}, nil
}

// NewRandomTree throws away the current tree, if any, and builds
// and draws a new one.
func (v *Visualizer) NewRandomTree() (*binary.Tree, error) {
	v.lock.Lock()
	defer v.lock.Unlock()

	if err := v.checkIdle(); err != nil {
		return nil, err
	}

	t, dropped, err := binary.BuildRandom(v.gen, v.count, v.values)
	if err != nil {
		return nil, err
	}
	v.replaceLocked(t, dropped)

	return t, nil
}

// Build is NewRandomTree with the values given instead of generated.
func (v *Visualizer) Build(values []int) (*binary.Tree, error) {
	v.lock.Lock()
	defer v.lock.Unlock()

	if err := v.checkIdle(); err != nil {
		return nil, err
	}

	t, err := binary.Build(values)
	if err != nil {
		return nil, err
	}
	v.replaceLocked(t, len(values)-t.Len())

	return t, nil
}

func (v *Visualizer) replaceLocked(t *binary.Tree, dropped int) {
	render.Draw(v.renderer, t)
	v.tree = t

	metrics.TreesBuiltMetrics.Inc()
	metrics.TreeNodesMetrics.Set(float64(t.Len()))
	metrics.DuplicatesDroppedMetrics.Add(float64(dropped))

	log.WithFields(logrus.Fields{
		"nodes":   t.Len(),
		"dropped": dropped,
		"height":  t.Height(),
	}).Info("built new tree")
}

// Reset puts every node of the current tree back in the neutral style.
func (v *Visualizer) Reset() error {
	v.lock.Lock()
	defer v.lock.Unlock()

	if err := v.checkIdle(); err != nil {
		return err
	}
	if v.tree == nil {
		return ErrNoTree
	}

	v.sched.ResetStyles(v.tree.IDs())
	return nil
}

// Visualize resets the styles of the current tree, then starts
// highlighting its nodes in the given order, at speed, which is
// clamped to the configured speed range. The returned channel is
// closed once the animation is over.
func (v *Visualizer) Visualize(order traverse.Order, speed int) (<-chan struct{}, error) {
	v.lock.Lock()
	defer v.lock.Unlock()

	if v.tree == nil {
		return nil, ErrNoTree
	}
	if err := v.checkIdle(); err != nil {
		return nil, err
	}

	v.sched.ResetStyles(v.tree.IDs())

	seq := traverse.Traverse(v.tree, order)
	delay := v.speed.Delay(speed)
	done, err := v.sched.Animate(seq, delay)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot animate %s", order)
	}

	metrics.AnimationsStartedMetrics.WithLabelValues(order.String()).Inc()
	log.WithFields(logrus.Fields{
		"order": order,
		"speed": v.speed.Clamp(speed),
	}).Debug("visualizing")

	return done, nil
}

// checkIdle must be called with lock held. No animation can start
// while lock is held, so the answer stays true until it is released.
func (v *Visualizer) checkIdle() error {
	if v.sched.Busy() {
		metrics.AnimationsRejectedMetrics.Inc()
		return animate.ErrBusy
	}
	return nil
}

// Busy returns true while an animation is running.
func (v *Visualizer) Busy() bool {
	return v.sched.Busy()
}

// Wait blocks until the running animation, if any, is over.
func (v *Visualizer) Wait(ctx context.Context) error {
	return v.sched.Wait(ctx)
}

// Tree returns the current tree, or nil. The tree must not be
// modified.
func (v *Visualizer) Tree() *binary.Tree {
	v.lock.RLock()
	defer v.lock.RUnlock()
	return v.tree
}
