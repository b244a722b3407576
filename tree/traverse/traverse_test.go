package traverse

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/treeviz/random"
	"go.lepak.sg/treeviz/tree"
	"go.lepak.sg/treeviz/tree/binary"
	"golang.org/x/exp/slices"
)

func TestTraverse_DataDriven(t *testing.T) {
	var tr *binary.Tree

	datadriven.RunTest(t, "testdata/traverse", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "build":
			var values []int
			for _, f := range strings.Fields(d.Input) {
				v, err := strconv.Atoi(f)
				require.NoError(t, err)
				values = append(values, v)
			}

			var err error
			tr, err = binary.Build(values)
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}
			require.NoError(t, tr.Check())

			return fmt.Sprintf("nodes=%d dropped=%d height=%d\n%s",
				tr.Len(), len(values)-tr.Len(), tr.Height(), tr.String())

		case "traverse":
			var name string
			d.ScanArgs(t, "order", &name)
			order, err := ParseOrder(name)
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}

			ids := Traverse(tr, order)
			assert.Equal(t, ids, collect(NewIterator(tr, order, tr.Height())),
				"iterator disagrees with Traverse")

			var sb strings.Builder
			sb.WriteString("ids:")
			for _, id := range ids {
				fmt.Fprintf(&sb, " %s", id)
			}
			sb.WriteString("\nvalues:")
			for _, v := range Values(tr, ids) {
				fmt.Fprintf(&sb, " %d", v)
			}
			sb.WriteString("\n")
			return sb.String()

		default:
			return fmt.Sprintf("unknown command %q", d.Cmd)
		}
	})
}

func collect(i *Iterator) []tree.ID {
	var out []tree.ID
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}

func TestTraverse_Properties(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 100

	for r := 0; r < rounds; r++ {
		seed := int64(seedrd.Uint64())
		t.Run(fmt.Sprintf("round=%d", r), func(t *testing.T) {
			g := random.New(rand.New(rand.NewSource(seed)))
			tr, _, err := binary.BuildRandom(g, random.Range{Min: 10, Max: 100}, random.Range{Min: 1, Max: 100})
			require.NoError(t, err)

			all := tr.IDs()
			for _, order := range Orders {
				ids := Traverse(tr, order)

				// every node exactly once
				require.Len(t, ids, tr.Len(), "%s", order)
				sorted := slices.Clone(ids)
				slices.Sort(sorted)
				assert.Equal(t, all, sorted, "%s is not a permutation of the node set", order)

				// deterministic
				assert.Equal(t, ids, Traverse(tr, order))
				assert.Equal(t, ids, collect(NewIterator(tr, order, 0)))
			}

			in := Values(tr, Traverse(tr, InOrder))
			assert.True(t, slices.IsSorted(in), "in-order is not sorted: %v", in)
			assert.Equal(t, tr.Values(), in)

			pre := Traverse(tr, PreOrder)
			post := Traverse(tr, PostOrder)
			assert.Equal(t, tree.RootID, pre[0])
			assert.Equal(t, tree.RootID, post[len(post)-1])
		})
	}
}

type sparse map[tree.ID]tree.Node

func (s sparse) Root() tree.ID { return tree.RootID }

func (s sparse) Node(id tree.ID) (tree.Node, bool) {
	n, ok := s[id]
	return n, ok
}

func TestTraverse_MissingChild(t *testing.T) {
	// rootR is referenced but missing: that branch just ends
	src := sparse{
		tree.RootID: {ID: tree.RootID, Value: 2, Left: "rootL", Right: "rootR"},
		"rootL":     {ID: "rootL", Value: 1},
	}

	tests := []struct {
		order Order
		want  []tree.ID
	}{
		{PreOrder, []tree.ID{"root", "rootL"}},
		{InOrder, []tree.ID{"rootL", "root"}},
		{PostOrder, []tree.ID{"rootL", "root"}},
	}
	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Traverse(src, tt.order))
			assert.Equal(t, tt.want, collect(NewIterator(src, tt.order, 0)))
		})
	}
}

func TestTraverse_Empty(t *testing.T) {
	tr := binary.New()
	for _, order := range Orders {
		assert.Nil(t, Traverse(tr, order))
		i := NewIterator(tr, order, 0)
		assert.False(t, i.Next(), "first")
		assert.False(t, i.Next(), "second")
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in   string
		want Order
		err  bool
	}{
		{in: "Pre-order", want: PreOrder},
		{in: "In-order", want: InOrder},
		{in: "Post-order", want: PostOrder},
		{in: "pre", want: PreOrder},
		{in: "INORDER", want: InOrder},
		{in: " post_order ", want: PostOrder},
		{in: "order", err: true},
		{in: "level", err: true},
		{in: "", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrder(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, ErrUnknownOrder)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, o := range Orders {
		parsed, err := ParseOrder(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}
}

func TestOrder_Set(t *testing.T) {
	var o Order
	require.NoError(t, o.Set("post"))
	assert.Equal(t, PostOrder, o)
	assert.Error(t, o.Set("nope"))
	assert.Equal(t, PostOrder, o, "failed Set changed the value")
	assert.Equal(t, "order", o.Type())
}
