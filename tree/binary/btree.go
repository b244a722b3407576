package binary

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.lepak.sg/treeviz/tree"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrNoValues is returned by Build when there is nothing to build.
// An empty tree has nothing to draw or traverse, so it is refused
// instead of being returned.
var ErrNoValues = errors.New("nothing to build")

// Tree is a binary search tree of ints, keyed by node ID.
// It is safe for concurrent reads (lookups, traversal, printing)
// but not for concurrent reads and writes (inserting).
//
// Once Build returns, the tree is treated as read-only: a new tree
// replaces it wholesale instead of being mutated further.
//
// This tree implementation does not support removal. It is also not
// self-balancing.
//
// Invariants:
//   - At any node N in the tree, all values in the subtree rooted at N.Left
//     will be less than N.Value
//   - At any node N in the tree, all values in the subtree rooted at N.Right
//     will be greater than N.Value
//   - For every possible value, there will be at most one node with that value
//     in the tree (No duplicates allowed)
//   - Every node is reachable from the root through Left and Right
type Tree struct {
	nodes map[tree.ID]*tree.Node
	root  tree.ID
}

// Edge is a parent to child link.
type Edge struct {
	Parent, Child tree.ID
}

// New returns an empty tree. Use Build unless the tree really
// needs to be grown one Insert at a time.
func New() *Tree {
	return &Tree{
		nodes: make(map[tree.ID]*tree.Node),
	}
}

// Build inserts values in order into a new tree.
// The first value becomes the root. Values already in the tree are
// dropped silently; compare Len with len(values) to count them.
func Build(values []int) (*Tree, error) {
	if len(values) == 0 {
		return nil, ErrNoValues
	}

	tr := New()
	for _, v := range values {
		tr.Insert(v)
	}

	return tr, nil
}

// Insert inserts v into the binary tree.
// If v is already in the tree, Insert returns false and the tree
// is unchanged.
func (t *Tree) Insert(v int) bool {
	if t.nodes == nil {
		t.nodes = make(map[tree.ID]*tree.Node)
	}

	if t.root == "" {
		t.root = tree.RootID
		t.nodes[t.root] = tree.NodeOf(t.root, v)
		return true
	}

	return t.insertAt(t.nodes[t.root], v)
}

func (t *Tree) insertAt(n *tree.Node, v int) bool {
	var side tree.Side
	switch tree.Compare(v, n.Value) {
	case tree.Less:
		side = tree.Left
	case tree.Greater:
		side = tree.Right
	case tree.Equal:
		return false
	default:
		panic("unreachable")
	}

	if next, ok := n.Child(side); ok {
		return t.insertAt(t.nodes[next], v)
	}

	id := tree.ChildID(n.ID, side)
	if _, ok := t.nodes[id]; ok {
		panic("impossible")
	}

	t.nodes[id] = tree.NodeOf(id, v)
	switch side {
	case tree.Left:
		n.Left = id
	case tree.Right:
		n.Right = id
	}

	return true
}

// Contains searches for v in the tree and returns true if it was found.
func (t *Tree) Contains(v int) bool {
	n, ok := t.nodes[t.root]

	for ok {
		var next tree.ID
		switch tree.Compare(v, n.Value) {
		case tree.Less:
			next = n.Left
		case tree.Greater:
			next = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
		n, ok = t.nodes[next]
	}

	return false
}

// Root returns the root identifier, or "" if the tree is empty.
func (t *Tree) Root() tree.ID {
	return t.root
}

// Node returns a copy of the node with identifier id, so callers
// cannot change the tree through it.
func (t *Tree) Node(id tree.ID) (tree.Node, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return tree.Node{}, false
	}
	return *n, true
}

// Child resolves the child on side s of the node with identifier id.
// ok is false if there is no such node or it has no child on that side.
func (t *Tree) Child(id tree.ID, s tree.Side) (child tree.ID, ok bool) {
	n, ok := t.nodes[id]
	if !ok {
		return "", false
	}
	return n.Child(s)
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// IDs returns every node identifier in the tree, sorted.
func (t *Tree) IDs() []tree.ID {
	ids := maps.Keys(t.nodes)
	slices.Sort(ids)
	return ids
}

// Values returns every value in the tree, sorted.
func (t *Tree) Values() []int {
	values := make([]int, 0, len(t.nodes))
	for _, n := range t.nodes {
		values = append(values, n.Value)
	}
	slices.Sort(values)
	return values
}

// Edges returns every parent to child link, parents before their
// children and left before right.
func (t *Tree) Edges() []Edge {
	if t.root == "" {
		return nil
	}

	edges := make([]Edge, 0, len(t.nodes)-1)
	var visit func(n *tree.Node)
	visit = func(n *tree.Node) {
		for _, s := range []tree.Side{tree.Left, tree.Right} {
			if c, ok := n.Child(s); ok {
				edges = append(edges, Edge{Parent: n.ID, Child: c})
				visit(t.nodes[c])
			}
		}
	}
	visit(t.nodes[t.root])

	return edges
}

// Height returns the number of nodes on the longest path from the
// root to a leaf. The empty tree has height 0.
func (t *Tree) Height() int {
	var height func(id tree.ID) int
	height = func(id tree.ID) int {
		n, ok := t.nodes[id]
		if !ok {
			return 0
		}
		l, r := height(n.Left), height(n.Right)
		if l > r {
			return l + 1
		}
		return r + 1
	}

	return height(t.root)
}

// Check verifies the tree invariants. It returns nil for a
// well-formed tree, including the empty tree.
func (t *Tree) Check() error {
	if t.root == "" {
		if len(t.nodes) != 0 {
			return errors.Errorf("no root but %d nodes", len(t.nodes))
		}
		return nil
	}

	seen := make(map[tree.ID]struct{}, len(t.nodes))

	// lo and hi are exclusive bounds. nil means unbounded
	var check func(id tree.ID, lo, hi *int) error
	check = func(id tree.ID, lo, hi *int) error {
		n, ok := t.nodes[id]
		if !ok {
			return errors.Errorf("dangling reference to node %q", id)
		}
		if n.ID != id {
			return errors.Errorf("node %q is stored under %q", n.ID, id)
		}
		if _, ok := seen[id]; ok {
			return errors.Errorf("node %q is reachable twice", id)
		}
		seen[id] = struct{}{}

		if lo != nil && n.Value <= *lo {
			return errors.Errorf("node %q value %d is not greater than %d", id, n.Value, *lo)
		}
		if hi != nil && n.Value >= *hi {
			return errors.Errorf("node %q value %d is not less than %d", id, n.Value, *hi)
		}

		if n.Left != "" {
			if err := check(n.Left, lo, &n.Value); err != nil {
				return err
			}
		}
		if n.Right != "" {
			if err := check(n.Right, &n.Value, hi); err != nil {
				return err
			}
		}
		return nil
	}

	if err := check(t.root, nil, nil); err != nil {
		return errors.Wrap(err, "bst invariant broken")
	}

	if len(seen) != len(t.nodes) {
		return errors.Errorf("%d of %d nodes are unreachable from the root",
			len(t.nodes)-len(seen), len(t.nodes))
	}

	return nil
}

// String returns a string representation of the tree.
// A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree) String() string {
	return t.Format(func(n tree.Node) string {
		return fmt.Sprint(n.Value)
	})
}

// Format is like String, but each node is written as label(n).
func (t *Tree) Format(label func(n tree.Node) string) string {
	var sb strings.Builder

	if t.root == "" {
		return ""
	}

	t.printvisit(&sb, t.nodes[t.root], label, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func (t *Tree) printvisit(sb *strings.Builder, n *tree.Node, label func(tree.Node) string,
	prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(label(*n))
	sb.WriteRune('\n')

	if n.Left != "" {
		t.printvisit(sb, t.nodes[n.Left], label, prefix, treeLeftBranch, false, n.Right != "")
	}

	if n.Right != "" {
		t.printvisit(sb, t.nodes[n.Right], label, prefix, treeRightBranch, false, false)
	}
}
