package traverse

import (
	"strings"

	"github.com/pkg/errors"
	"go.lepak.sg/treeviz/tree"
)

var ErrUnknownOrder = errors.New("unknown traversal order")

// Order selects one of the three depth-first orders.
type Order int

const (
	// PreOrder visits a node, then its left subtree, then its right subtree.
	PreOrder Order = iota
	// InOrder visits the left subtree, then the node, then the right subtree.
	// For a binary search tree this is ascending value order.
	InOrder
	// PostOrder visits the left subtree, then the right subtree, then the node.
	PostOrder
)

// Orders lists every Order, in the order a menu would show them.
var Orders = []Order{PreOrder, InOrder, PostOrder}

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "Pre-order"
	case InOrder:
		return "In-order"
	case PostOrder:
		return "Post-order"
	default:
		return "<invalid traverse.Order>"
	}
}

// ParseOrder accepts the names returned by Order.String, and the
// short forms "pre", "in" and "post". Case, hyphens and a trailing
// "order" are ignored, so "preorder" and "PRE" also work.
func ParseOrder(s string) (Order, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "")
	norm = strings.ReplaceAll(norm, "_", "")
	norm = strings.TrimSuffix(norm, "order")

	switch norm {
	case "pre":
		return PreOrder, nil
	case "in":
		return InOrder, nil
	case "post":
		return PostOrder, nil
	default:
		return 0, errors.Wrapf(ErrUnknownOrder, "%q", s)
	}
}

// Set implements pflag.Value, so an Order can be used as a flag directly.
func (o *Order) Set(s string) error {
	parsed, err := ParseOrder(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Type implements pflag.Value.
func (o *Order) Type() string {
	return "order"
}

// Traverse returns the identifiers of every node reachable from the
// root of src, in the given order. It returns nil for an empty tree.
// The result is the same on every call for the same tree.
func Traverse(src Source, order Order) []tree.ID {
	var out []tree.ID

	var visit func(id tree.ID)
	visit = func(id tree.ID) {
		if id == "" {
			return
		}
		n, ok := src.Node(id)
		if !ok {
			return
		}

		switch order {
		case PreOrder:
			out = append(out, n.ID)
			visit(n.Left)
			visit(n.Right)
		case InOrder:
			visit(n.Left)
			out = append(out, n.ID)
			visit(n.Right)
		case PostOrder:
			visit(n.Left)
			visit(n.Right)
			out = append(out, n.ID)
		default:
			panic("unreachable")
		}
	}

	visit(src.Root())

	return out
}

// Values maps identifiers to their node values. Identifiers that are
// not in src are skipped.
func Values(src Source, ids []tree.ID) []int {
	values := make([]int, 0, len(ids))
	for _, id := range ids {
		if n, ok := src.Node(id); ok {
			values = append(values, n.Value)
		}
	}
	return values
}
