// Package tree holds the node record shared by the tree builder,
// the traversal engine and the renderers.
package tree

import (
	"golang.org/x/exp/constraints"
)

// ID identifies a node. IDs are assigned once, when the node is
// inserted, and never re-derived afterwards.
type ID string

// RootID is the identifier of every tree's root node.
const RootID ID = "root"

// Side selects a child of a node.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "<invalid tree.Side>"
	}
}

// ChildID returns the identifier a new child on side s of the node
// with identifier parent receives.
// Only the builder should call this. Everyone else follows Node.Left
// and Node.Right.
func ChildID(parent ID, s Side) ID {
	return parent + ID(s.String())
}

// Node is a single tree node. Left and Right are the identifiers of
// the children, or "" if there is no child on that side.
type Node struct {
	ID          ID
	Value       int
	Left, Right ID
}

// NodeOf returns a childless node.
func NodeOf(id ID, v int) *Node {
	return &Node{
		ID:    id,
		Value: v,
	}
}

// Child returns the child identifier on side s, and whether there
// is one.
func (n *Node) Child(s Side) (ID, bool) {
	var id ID
	switch s {
	case Left:
		id = n.Left
	case Right:
		id = n.Right
	default:
		panic("unreachable")
	}
	return id, id != ""
}

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == "" && n.Right == ""
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
