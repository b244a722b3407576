package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"go.lepak.sg/treeviz/tree"
	"golang.org/x/exp/slices"
)

var _ Renderer = (*Terminal)(nil)

// Terminal draws a tree as rows of text, one row per depth, with
// each node in its own column. Columns are assigned by ascending
// value, so for a binary search tree every left child sits left of
// its parent and every right child sits right of it.
// A highlighted node is drawn in brackets, and in colour where the
// terminal supports it:
//
//	            50
//	     /           \
//	    30          70
//	 /       \
//	20     [40]
//
// The whole tree is written out again every time a node is
// highlighted.
type Terminal struct {
	lock sync.Mutex
	w    io.Writer

	nodes map[tree.ID]*termNode
	// insertion order
	ids    []tree.ID
	parent map[tree.ID]tree.ID

	// computed by Layout
	rows      [][]tree.ID
	cellWidth int

	colors map[string]*color.Color
	// EdgeColor, near enough
	edge *color.Color
}

type termNode struct {
	value      int
	depth, col int
	style      Style
}

// NewTerminal returns a Terminal that writes to w. If noColor is
// true, no colour escapes are written at all.
func NewTerminal(w io.Writer, noColor bool) *Terminal {
	colors := map[string]*color.Color{
		Neutral.Name:     color.New(color.FgHiWhite),
		Highlighted.Name: color.New(color.FgBlack, color.BgHiYellow, color.Bold),
	}
	edge := color.New(color.FgWhite)
	if noColor {
		for _, c := range colors {
			c.DisableColor()
		}
		edge.DisableColor()
	}

	t := &Terminal{
		w:      w,
		colors: colors,
		edge:   edge,
	}
	t.reset()
	return t
}

func (t *Terminal) reset() {
	t.nodes = make(map[tree.ID]*termNode)
	t.ids = nil
	t.parent = make(map[tree.ID]tree.ID)
	t.rows = nil
	t.cellWidth = 0
}

func (t *Terminal) Clear() {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.reset()
}

func (t *Terminal) AddNode(id tree.ID, value int) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if _, ok := t.nodes[id]; !ok {
		t.ids = append(t.ids, id)
	}
	t.nodes[id] = &termNode{value: value, style: Neutral}
}

func (t *Terminal) AddEdge(parent, child tree.ID) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.parent[child] = parent
}

func (t *Terminal) Layout() {
	t.lock.Lock()
	defer t.lock.Unlock()

	var depth func(id tree.ID, limit int) int
	depth = func(id tree.ID, limit int) int {
		p, ok := t.parent[id]
		// limit guards against a cycle in the edges we were given
		if !ok || limit == 0 {
			return 0
		}
		return depth(p, limit-1) + 1
	}

	byValue := slices.Clone(t.ids)
	slices.SortStableFunc(byValue, func(a, b tree.ID) int {
		return t.nodes[a].value - t.nodes[b].value
	})

	t.rows = nil
	t.cellWidth = 0
	for col, id := range byValue {
		n := t.nodes[id]
		n.col = col
		n.depth = depth(id, len(t.ids))

		for len(t.rows) <= n.depth {
			t.rows = append(t.rows, nil)
		}
		t.rows[n.depth] = append(t.rows[n.depth], id)

		// room for the brackets
		if w := len(fmt.Sprint(n.value)) + 2; w > t.cellWidth {
			t.cellWidth = w
		}
	}
}

func (t *Terminal) SetNodeStyle(id tree.ID, style Style) {
	t.lock.Lock()
	defer t.lock.Unlock()

	n, ok := t.nodes[id]
	if !ok {
		return
	}
	n.style = style

	if style.Highlight {
		fmt.Fprintln(t.w, t.frameLocked())
	}
}

// Frame returns the tree as it currently looks.
func (t *Terminal) Frame() string {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.frameLocked()
}

func (t *Terminal) frameLocked() string {
	var sb strings.Builder

	for d, row := range t.rows {
		if d > 0 {
			sb.WriteString(t.edge.Sprint(t.connectors(row)))
			sb.WriteRune('\n')
		}

		var line strings.Builder
		next := 0
		for _, id := range row {
			n := t.nodes[id]
			line.WriteString(strings.Repeat(" ", (n.col-next)*t.cellWidth))
			line.WriteString(t.label(n))
			next = n.col + 1
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteRune('\n')
	}

	return sb.String()
}

func (t *Terminal) label(n *termNode) string {
	var text string
	if n.style.Highlight {
		text = fmt.Sprintf("[%d]", n.value)
	} else {
		text = fmt.Sprintf(" %d ", n.value)
	}
	var pad string
	if w := t.cellWidth - len(text); w > 0 {
		pad = strings.Repeat(" ", w)
	}

	c, ok := t.colors[n.style.Name]
	if !ok {
		return text + pad
	}
	return c.Sprint(text) + pad
}

// connectors draws a / or \ above every node in row, pointing back
// towards its parent.
func (t *Terminal) connectors(row []tree.ID) string {
	if len(row) == 0 {
		return ""
	}

	last := t.nodes[row[len(row)-1]]
	line := []rune(strings.Repeat(" ", (last.col+1)*t.cellWidth))

	for _, id := range row {
		n := t.nodes[id]
		p, ok := t.nodes[t.parent[id]]
		if !ok {
			continue
		}
		pos := n.col*t.cellWidth + t.cellWidth/2
		if n.col < p.col {
			line[pos] = '/'
		} else {
			line[pos] = '\\'
		}
	}

	return strings.TrimRight(string(line), " ")
}
