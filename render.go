// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/cybrota/avlviz/avl"
	"github.com/patrickmn/go-cache"
)

const (
	emptyTreeMessage = "(empty tree)"
	topDownNodeLimit = 512
)

// Marks selects nodes to highlight in a drawing.
type Marks struct {
	Inserted []float64
	Rotated  []float64
}

func (m Marks) kindOf(v float64) cellKind {
	for _, x := range m.Inserted {
		if x == v {
			return kindInserted
		}
	}
	for _, x := range m.Rotated {
		if x == v {
			return kindRotated
		}
	}
	return kindNode
}

type cellKind uint8

const (
	kindBlank cellKind = iota
	kindEdge
	kindNode
	kindInserted
	kindRotated
)

type segment struct {
	text string
	kind cellKind
}

// Renderer draws snapshots as text. A nil styles value draws plain text.
type Renderer struct {
	config RenderConfig
	styles *TreeStyles
	cache  *cache.Cache
}

// NewRenderer returns a renderer for cfg. A nil c disables frame caching.
func NewRenderer(cfg RenderConfig, styles *TreeStyles, c *cache.Cache) *Renderer {
	return &Renderer{config: cfg, styles: styles, cache: c}
}

// Plain returns a renderer with the same settings that draws without color.
func (r *Renderer) Plain() *Renderer {
	return &Renderer{config: r.config, cache: r.cache}
}

// Render draws s in the configured style. A top-down drawing wider than width,
// or holding more than topDownNodeLimit nodes, is drawn sideways instead;
// width <= 0 means no width limit.
func (r *Renderer) Render(s avl.Snapshot, width int, marks Marks) string {
	if s.Empty() {
		return emptyTreeMessage
	}

	key := fmt.Sprintf("%+v|%t|%d|%v|%v|%s", r.config, r.styles != nil, width, marks.Inserted, marks.Rotated, s.Signature())
	if r.cache != nil {
		if frame := GetRender(r.cache, key); frame != "" {
			return frame
		}
	}

	layout := computeLayout(s)
	var frame string
	switch {
	case r.config.Style == StyleInOrder:
		frame = paint(r.inOrder(layout, marks), r.styles)
	case r.config.Style == StyleSideways, r.tooWide(layout, width):
		frame = r.sideways(layout, marks)
	default:
		frame = paint(r.topDown(layout, marks), r.styles)
	}

	if r.cache != nil {
		CacheRender(r.cache, key, frame)
	}
	return frame
}

func (r *Renderer) label(p PlacedNode) string {
	if r.config.ShowHeights {
		return fmt.Sprintf("%s:h%d", avl.FormatValue(p.Value), p.Height)
	}
	return avl.FormatValue(p.Value)
}

func (r *Renderer) cellWidth(l Layout) int {
	widest := 0
	for _, p := range l.Nodes {
		widest = max(widest, len(r.label(p)))
	}
	return max(r.config.CellWidth, widest+1)
}

func (r *Renderer) tooWide(l Layout, width int) bool {
	if len(l.Nodes) > topDownNodeLimit {
		return true
	}
	return width > 0 && r.topDownWidth(l) > width
}

func (r *Renderer) topDownWidth(l Layout) int {
	return 2*r.config.SidePadding + l.Width()*r.cellWidth(l)
}

// topDown draws the root on the first row and each level below it. Every node
// sits in its own column, ordered by value.
func (r *Renderer) topDown(l Layout, marks Marks) [][]segment {
	cell := r.cellWidth(l)
	gap := max(r.config.LevelGap, 1)
	center := func(column int) int {
		return r.config.SidePadding + column*cell + cell/2
	}

	c := newCanvas((l.Levels-1)*gap+1, r.topDownWidth(l))
	for _, p := range l.Nodes {
		text := r.label(p)
		row := p.Depth * gap
		start := center(p.Column) - len(text)/2
		c.put(row, start, text, marks.kindOf(p.Value))

		if p.Left != avl.None {
			cx := center(l.Nodes[p.Left].Column)
			c.fill(row, cx+1, start-1, '_')
			c.drop(row, cx, gap, '/')
		}
		if p.Right != avl.None {
			cx := center(l.Nodes[p.Right].Column)
			c.fill(row, start+len(text), cx-1, '_')
			c.drop(row, cx, gap, '\\')
		}
	}
	return c.lines()
}

// sideways draws the tree as an outline: the root on the first line and each
// node's children indented below it, left child first. Every branch is tagged
// L or R so a lone child still shows its side.
func (r *Renderer) sideways(l Layout, marks Marks) string {
	root := avl.None
	for i, p := range l.Nodes {
		if !p.HasParent {
			root = i
		}
	}

	var build func(idx int, left bool) *outlineNode
	build = func(idx int, left bool) *outlineNode {
		p := l.Nodes[idx]
		n := &outlineNode{label: r.label(p), kind: marks.kindOf(p.Value), left: left}
		if p.Left != avl.None {
			n.children = n.children.Append(build(p.Left, true))
		}
		if p.Right != avl.None {
			n.children = n.children.Append(build(p.Right, false))
		}
		return n
	}
	top := build(root, false)

	edge := r.lipglossStyle(kindEdge).PaddingRight(1)
	t := tree.Root(top.label).
		RootStyle(r.lipglossStyle(top.kind)).
		Enumerator(sideEnumerator).
		Indenter(tree.DefaultIndenter).
		EnumeratorStyle(edge).
		ItemStyleFunc(func(children tree.Children, i int) lipgloss.Style {
			if n, ok := children.At(i).(*outlineNode); ok {
				return r.lipglossStyle(n.kind)
			}
			return lipgloss.NewStyle()
		})
	for _, child := range top.children {
		t.Child(child)
	}
	return t.String()
}

func sideEnumerator(children tree.Children, i int) string {
	branch := "├─"
	if i == children.Length()-1 {
		branch = "└─"
	}
	if n, ok := children.At(i).(*outlineNode); ok && n.left {
		return branch + "L"
	}
	return branch + "R"
}

// outlineNode is a tree.Node that remembers which side of its parent it hangs on.
type outlineNode struct {
	label    string
	kind     cellKind
	left     bool
	children tree.NodeChildren
}

func (n *outlineNode) Value() string           { return n.label }
func (n *outlineNode) String() string          { return n.label }
func (n *outlineNode) Children() tree.Children { return n.children }
func (n *outlineNode) Hidden() bool            { return false }
func (n *outlineNode) SetHidden(bool)          {}
func (n *outlineNode) SetValue(v any)          { n.label = fmt.Sprint(v) }

func (r *Renderer) lipglossStyle(kind cellKind) lipgloss.Style {
	if style, ok := styleFor(r.styles, kind).(lipgloss.Style); ok {
		return style
	}
	return lipgloss.NewStyle()
}

func (r *Renderer) inOrder(l Layout, marks Marks) [][]segment {
	line := make([]segment, 0, 2*len(l.Nodes))
	for i, p := range l.Nodes {
		if i > 0 {
			line = append(line, segment{text: " ", kind: kindBlank})
		}
		line = append(line, segment{text: r.label(p), kind: marks.kindOf(p.Value)})
	}
	return [][]segment{line}
}

func paint(lines [][]segment, styles *TreeStyles) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, seg := range line {
			b.WriteString(styleFor(styles, seg.kind).Render(seg.text))
		}
	}
	return b.String()
}

type textStyle interface {
	Render(strs ...string) string
}

type unstyled struct{}

func (unstyled) Render(strs ...string) string { return strings.Join(strs, " ") }

func styleFor(styles *TreeStyles, kind cellKind) textStyle {
	if styles == nil {
		return unstyled{}
	}
	switch kind {
	case kindEdge:
		return styles.Edge
	case kindNode:
		return styles.Node
	case kindInserted:
		return styles.Inserted
	case kindRotated:
		return styles.Rotated
	default:
		return unstyled{}
	}
}

type canvas struct {
	cells [][]byte
	kinds [][]cellKind
}

func newCanvas(rows, width int) *canvas {
	c := &canvas{cells: make([][]byte, rows), kinds: make([][]cellKind, rows)}
	for i := range c.cells {
		c.cells[i] = []byte(strings.Repeat(" ", width))
		c.kinds[i] = make([]cellKind, width)
	}
	return c
}

func (c *canvas) set(row, col int, ch byte, kind cellKind) {
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return
	}
	c.cells[row][col] = ch
	c.kinds[row][col] = kind
}

func (c *canvas) put(row, col int, text string, kind cellKind) {
	for i := 0; i < len(text); i++ {
		c.set(row, col+i, text[i], kind)
	}
}

// fill writes ch on row from column from to column to, inclusive.
func (c *canvas) fill(row, from, to int, ch byte) {
	for col := from; col <= to; col++ {
		c.set(row, col, ch, kindEdge)
	}
}

// drop draws the edge from a node on row down to the child in column col,
// gap rows below.
func (c *canvas) drop(row, col, gap int, ch byte) {
	if gap < 2 {
		return
	}
	c.set(row+1, col, ch, kindEdge)
	for r := row + 2; r < row+gap; r++ {
		c.set(r, col, '|', kindEdge)
	}
}

// lines groups each row into runs of the same kind, dropping trailing blanks.
func (c *canvas) lines() [][]segment {
	out := make([][]segment, len(c.cells))
	for i, row := range c.cells {
		end := len(row)
		for end > 0 && row[end-1] == ' ' {
			end--
		}
		var line []segment
		for start := 0; start < end; {
			kind := c.kinds[i][start]
			stop := start + 1
			for stop < end && c.kinds[i][stop] == kind {
				stop++
			}
			line = append(line, segment{text: string(row[start:stop]), kind: kind})
			start = stop
		}
		out[i] = line
	}
	return out
}
