package animate

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

var ErrInvalidSpeed = errors.New("invalid speed range")

// Speed is the range a user speed setting can take. The setting is
// inverted into a step delay: the higher the speed, the shorter the
// pause between two highlighted nodes.
type Speed struct {
	// Min and Max bound the setting, and also the resulting delay
	// in milliseconds.
	Min, Max int
	// Step is the increment the setting moves in.
	Step int
}

// DefaultSpeed is 100 to 1000 in steps of 100.
var DefaultSpeed = Speed{Min: 100, Max: 1000, Step: 100}

func (s Speed) String() string {
	return fmt.Sprintf("[%d, %d] step %d", s.Min, s.Max, s.Step)
}

// Validate checks that 0 < Min <= Max and Step > 0.
func (s Speed) Validate() error {
	if s.Min <= 0 || s.Min > s.Max {
		return errors.Wrapf(ErrInvalidSpeed, "%s: need 0 < min <= max", s)
	}
	if s.Step <= 0 {
		return errors.Wrapf(ErrInvalidSpeed, "%s: need step > 0", s)
	}
	return nil
}

// Clamp limits v to [Min, Max], then rounds it to the nearest
// Min + k*Step. Rounding never leaves the range. A Step that is not
// positive skips rounding.
func (s Speed) Clamp(v int) int {
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	if s.Step <= 0 {
		return v
	}

	k := (v - s.Min + s.Step/2) / s.Step
	v = s.Min + k*s.Step
	if v > s.Max {
		v -= s.Step
	}
	return v
}

// Delay returns the pause between steps for setting v:
// Max + Min - Clamp(v) milliseconds.
func (s Speed) Delay(v int) time.Duration {
	return time.Duration(s.Max+s.Min-s.Clamp(v)) * time.Millisecond
}
