// Package metrics holds the prometheus collectors for tree building
// and animation. They are registered with the default registry.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var TreesBuiltMetrics = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "treeviz_trees_built_total",
		Help: "number of random trees built",
	})

var TreeNodesMetrics = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "treeviz_tree_nodes",
		Help: "number of nodes in the current tree",
	})

var DuplicatesDroppedMetrics = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "treeviz_duplicates_dropped_total",
		Help: "generated values dropped because the tree already held them",
	})

var AnimationsStartedMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "treeviz_animations_started_total",
		Help: "animations started, by traversal order",
	}, []string{"order"})

var AnimationsRejectedMetrics = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "treeviz_animations_rejected_total",
		Help: "requests refused because an animation was already running",
	})

var StepsHighlightedMetrics = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "treeviz_steps_highlighted_total",
		Help: "nodes highlighted by animations",
	})

var AnimationRunningMetrics = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "treeviz_animation_running",
		Help: "1 while an animation is running, otherwise 0",
	})

func init() {
	prometheus.MustRegister(
		TreesBuiltMetrics,
		TreeNodesMetrics,
		DuplicatesDroppedMetrics,
		AnimationsStartedMetrics,
		AnimationsRejectedMetrics,
		StepsHighlightedMetrics,
		AnimationRunningMetrics,
	)
}
