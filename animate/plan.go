package animate

import (
	"time"

	"go.lepak.sg/treeviz/tree"
)

// Step is one highlight in an animation: at Offset from the start,
// ID becomes the highlighted node.
type Step struct {
	Offset time.Duration
	ID     tree.ID
}

// Plan spaces seq out delay apart, starting at offset 0.
func Plan(seq []tree.ID, delay time.Duration) []Step {
	steps := make([]Step, len(seq))
	for i, id := range seq {
		steps[i] = Step{
			Offset: time.Duration(i) * delay,
			ID:     id,
		}
	}
	return steps
}

// Duration returns how long an animation of n steps runs for:
// the offset of the last step, or 0 if there are none.
func Duration(n int, delay time.Duration) time.Duration {
	if n <= 1 {
		return 0
	}
	return time.Duration(n-1) * delay
}
