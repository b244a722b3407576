// Package traverse lists the nodes of a tree in pre-, in- or
// post-order.
//
// Traversal follows each node's Left and Right fields from the root.
// A child that is missing, or that cannot be looked up, ends that
// branch quietly.
//
// Two forms are provided: Traverse collects the whole order into a
// slice, and Iterator yields it one node at a time:
//
//	i := traverse.NewIterator(someTree, traverse.InOrder, 0)
//	for i.Next() {
//		id := i.Item()
//		... do stuff with id, or break ...
//	}
package traverse

import (
	"go.lepak.sg/treeviz/tree"
)

// Source is the read-only view of a tree that traversal needs.
// *binary.Tree satisfies it.
type Source interface {
	Root() tree.ID
	Node(id tree.ID) (tree.Node, bool)
}
