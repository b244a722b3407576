package random

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name          string
		count, values Range
		err           error
	}{
		{
			name:   "defaults",
			count:  Range{10, 100},
			values: Range{1, 100},
		},
		{
			name:   "fixed count",
			count:  Range{5, 5},
			values: Range{-3, 3},
		},
		{
			name:   "single value",
			count:  Range{1, 20},
			values: Range{7, 7},
		},
		{
			name:   "zero count",
			count:  Range{0, 0},
			values: Range{1, 10},
		},
		{
			name:   "inverted count",
			count:  Range{10, 1},
			values: Range{1, 10},
			err:    ErrInvalidRange,
		},
		{
			name:   "negative count",
			count:  Range{-1, 1},
			values: Range{1, 10},
			err:    ErrInvalidRange,
		},
		{
			name:   "inverted values",
			count:  Range{1, 10},
			values: Range{10, 1},
			err:    ErrInvalidRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSeeded(0x5eed)

			for i := 0; i < 100; i++ {
				out, err := g.Generate(tt.count, tt.values)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
					return
				}

				require.NoError(t, err)
				assert.True(t, tt.count.Contains(len(out)), "count %d not in %s", len(out), tt.count)
				for _, v := range out {
					assert.True(t, tt.values.Contains(v), "value %d not in %s", v, tt.values)
				}
			}
		})
	}
}

func TestGenerate_Repeatable(t *testing.T) {
	const seed = 0x123456789abcdef0

	a, err := New(rand.New(rand.NewSource(seed))).Generate(Range{10, 100}, Range{1, 100})
	require.NoError(t, err)
	b, err := New(rand.New(rand.NewSource(seed))).Generate(Range{10, 100}, Range{1, 100})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestIntn_CoversRange(t *testing.T) {
	g := NewSeeded(1)
	r := Range{-2, 2}
	seen := make(map[int]int)

	for i := 0; i < 1000; i++ {
		seen[g.Intn(r)]++
	}

	assert.Len(t, seen, 5)
	for v := r.Min; v <= r.Max; v++ {
		assert.NotZero(t, seen[v], "never drew %d", v)
	}
}

func TestIntn_WideRanges(t *testing.T) {
	tests := []struct {
		name string
		r    Range
	}{
		{"every int", Range{math.MinInt, math.MaxInt}},
		{"width is max int", Range{0, math.MaxInt}},
		{"width just over max int", Range{-1, math.MaxInt}},
		{"negative half", Range{math.MinInt, 0}},
		{"top two", Range{math.MaxInt - 1, math.MaxInt}},
		{"single min int", Range{math.MinInt, math.MinInt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.r.Validate())
			g := NewSeeded(1)

			for i := 0; i < 200; i++ {
				v := g.Intn(tt.r)
				require.True(t, tt.r.Contains(v), "%d not in %s", v, tt.r)
			}

			var got []int
			assert.NotPanics(t, func() {
				var err error
				got, err = g.Generate(Range{5, 5}, tt.r)
				require.NoError(t, err)
			})
			assert.Len(t, got, 5)
		})
	}
}
