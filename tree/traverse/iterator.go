package traverse

import (
	"go.lepak.sg/treeviz/tree"
)

// Iterator is an iterator object over a tree. It yields the same
// sequence as Traverse, but keeps an explicit stack of frames
// instead of recursing.
// Next must always be called before Item, even for the first round
// of iteration. If Next returns false, Item must not be called.
// The iterator may be abandoned at any time.
type Iterator struct {
	src     Source
	order   Order
	stack   []frame
	at      tree.ID
	started bool
}

// A frame replicates one call of the recursive visit in Traverse.
// stage records how far into the call we are:
//
//	func visit(n) {
//		 --(0) pre-order yields here
//		visit(n.Left)
//		 --(2) in-order yields here
//		visit(n.Right)
//		 --(4) post-order yields here
//	}
//
// Stages 1 and 3 push the left and right children respectively.
type frame struct {
	n     tree.Node
	stage int
}

// NewIterator returns an Iterator over src in the given order.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewIterator(src Source, order Order, heightHint int) *Iterator {
	switch order {
	case PreOrder, InOrder, PostOrder:
	default:
		panic("invalid order")
	}

	return &Iterator{
		src:   src,
		order: order,
		stack: make([]frame, 0, heightHint+1),
	}
}

func (i *Iterator) push(id tree.ID) {
	if id == "" {
		return
	}
	if n, ok := i.src.Node(id); ok {
		i.stack = append(i.stack, frame{n: n})
	}
}

// Next returns true if there is a next node to yield with Item.
func (i *Iterator) Next() bool {
	if !i.started {
		i.started = true
		i.push(i.src.Root())
	}

	for len(i.stack) > 0 {
		top := &i.stack[len(i.stack)-1]
		n := top.n

		switch top.stage {
		case 0:
			top.stage++
			if i.order == PreOrder {
				i.at = n.ID
				return true
			}
		case 1:
			top.stage++
			// top is invalid after the push
			i.push(n.Left)
		case 2:
			top.stage++
			if i.order == InOrder {
				i.at = n.ID
				return true
			}
		case 3:
			top.stage++
			i.push(n.Right)
		case 4:
			i.stack = i.stack[:len(i.stack)-1]
			if i.order == PostOrder {
				i.at = n.ID
				return true
			}
		default:
			panic("unreachable")
		}
	}

	return false
}

// Item returns the identifier of the current node.
func (i *Iterator) Item() tree.ID {
	return i.at
}
