// Package random produces the values new trees are built from.
//
// A Generator draws from the *rand.Rand it was given, so a fixed
// seed reproduces the same values and therefore the same tree.
package random

import (
	"fmt"
	"math"
	"math/bits"
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

var ErrInvalidRange = errors.New("invalid range")

// Range is an inclusive integer range.
type Range struct {
	Min, Max int
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// Validate returns ErrInvalidRange if Min > Max.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return errors.Wrapf(ErrInvalidRange, "%s: min is greater than max", r)
	}
	return nil
}

// Contains returns true if Min <= v <= Max.
func (r Range) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

// Generator is not safe for concurrent use, because *rand.Rand isn't.
type Generator struct {
	rd *rand.Rand
}

// New returns a Generator drawing from rd.
func New(rd *rand.Rand) *Generator {
	if rd == nil {
		panic("rd must not be nil")
	}

	return &Generator{
		rd: rd,
	}
}

// NewSeeded returns a Generator with its own source seeded with seed.
// If seed is 0, the current time is used instead.
func NewSeeded(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(rand.New(rand.NewSource(seed)))
}

// Intn returns a uniformly distributed int in r. Any valid Range
// works, including one spanning every int.
func (g *Generator) Intn(r Range) int {
	width := uint64(r.Max) - uint64(r.Min)
	if width < math.MaxInt {
		return r.Min + g.rd.Intn(int(width)+1)
	}

	// width+1 doesn't fit in an int, so draw masked uint64s until one
	// lands in [0, width]
	mask := uint64(math.MaxUint64) >> bits.LeadingZeros64(width)
	for {
		if v := g.rd.Uint64() & mask; v <= width {
			return int(uint64(r.Min) + v)
		}
	}
}

// Generate picks a count uniformly in count, then returns that many
// values, each drawn independently and uniformly from values.
// Duplicates are kept; the tree builder drops them.
func (g *Generator) Generate(count, values Range) ([]int, error) {
	if err := count.Validate(); err != nil {
		return nil, errors.Wrap(err, "count")
	}

	if count.Min < 0 {
		return nil, errors.Wrapf(ErrInvalidRange, "count %s: negative count", count)
	}

	if err := values.Validate(); err != nil {
		return nil, errors.Wrap(err, "values")
	}

	n := g.Intn(count)
	out := make([]int, n)
	for i := range out {
		out[i] = g.Intn(values)
	}

	return out, nil
}
