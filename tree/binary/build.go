package binary

import (
	"github.com/pkg/errors"
	"go.lepak.sg/treeviz/random"
)

// BuildRandom builds a tree from values drawn by g: between count.Min
// and count.Max values, each in the range values.
// Passing a seeded generator ensures repeatable results.
// Along with the tree, the number of values that were dropped as
// duplicates is also returned.
func BuildRandom(g *random.Generator, count, values random.Range) (*Tree, int, error) {
	vs, err := g.Generate(count, values)
	if err != nil {
		return nil, 0, errors.Wrap(err, "cannot generate values")
	}

	tr, err := Build(vs)
	if err != nil {
		return nil, 0, err
	}

	return tr, len(vs) - tr.Len(), nil
}
