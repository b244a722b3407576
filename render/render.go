// Package render defines the Renderer that trees are drawn on and
// animations are played against, plus two implementations: Terminal,
// which draws on a text terminal, and Recorder, which just records
// the calls it receives.
package render

import (
	"go.lepak.sg/treeviz/tree"
	"go.lepak.sg/treeviz/tree/binary"
)

//go:generate mockgen -destination=mocks/mock_renderer.go -package=mocks . Renderer

// Renderer draws a tree. Implementations decide what a Style looks
// like. Implementations must be safe for concurrent use: a running
// animation calls SetNodeStyle from a timer goroutine while another
// goroutine may be resetting every node's style.
type Renderer interface {
	// Clear removes all nodes and edges.
	Clear()
	// AddNode draws a node labeled with its value.
	AddNode(id tree.ID, value int)
	// AddEdge draws an edge from parent to child.
	AddEdge(parent, child tree.ID)
	// Layout arranges the nodes and edges added since Clear.
	Layout()
	// SetNodeStyle applies style to a node that was added.
	SetNodeStyle(id tree.ID, style Style)
}

// Style describes how a node is painted. Colours are CSS-style hex
// strings.
type Style struct {
	Name       string
	Background string
	Foreground string
	// Highlight marks the node currently being visited.
	Highlight bool
}

func (s Style) String() string {
	return s.Name
}

// EdgeColor is the colour edges are drawn in.
const EdgeColor = "#ccc"

var (
	Neutral = Style{
		Name:       "neutral",
		Background: "#666",
		Foreground: "#fff",
	}
	Highlighted = Style{
		Name:       "highlighted",
		Background: "#f0c040",
		Foreground: "#000",
		Highlight:  true,
	}
)

// Draw clears r and draws every node and edge of t, parents before
// children, then lays it out.
func Draw(r Renderer, t *binary.Tree) {
	r.Clear()

	if root, ok := t.Node(t.Root()); ok {
		r.AddNode(root.ID, root.Value)
	}

	for _, e := range t.Edges() {
		child, ok := t.Node(e.Child)
		if !ok {
			panic("edge to missing node")
		}
		r.AddNode(child.ID, child.Value)
		r.AddEdge(e.Parent, e.Child)
	}

	r.Layout()
}
