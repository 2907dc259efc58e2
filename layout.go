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
	"github.com/cybrota/avlviz/avl"
)

// PlacedNode is a node with its grid position. Column is the in-order rank,
// so no two nodes share a column.
type PlacedNode struct {
	Value       float64
	Height      int
	Column      int
	Depth       int
	Left        int // index into Layout.Nodes, avl.None when absent
	Right       int
	HasParent   bool
	ParentValue float64
}

// Layout holds the placed nodes in ascending value order.
type Layout struct {
	Nodes  []PlacedNode
	Levels int
}

func computeLayout(s avl.Snapshot) Layout {
	layout := Layout{Nodes: make([]PlacedNode, 0, s.Len())}
	if s.Empty() {
		return layout
	}

	// snapshot index -> layout index
	position := make([]int, s.Len())
	s.Walk(func(n avl.NodeView, v avl.Visit) {
		p := PlacedNode{
			Value:  n.Value,
			Height: n.Height,
			Column: v.Order,
			Depth:  v.Depth,
			Left:   avl.None,
			Right:  avl.None,
		}
		if v.Parent != avl.None {
			p.HasParent = true
			p.ParentValue = s.Nodes[v.Parent].Value
		}
		position[v.Index] = len(layout.Nodes)
		layout.Nodes = append(layout.Nodes, p)
		layout.Levels = max(layout.Levels, v.Depth+1)
	})

	s.Walk(func(n avl.NodeView, v avl.Visit) {
		p := &layout.Nodes[position[v.Index]]
		if n.Left != avl.None {
			p.Left = position[n.Left]
		}
		if n.Right != avl.None {
			p.Right = position[n.Right]
		}
	})

	return layout
}

// Width returns the number of columns the layout spans.
func (l Layout) Width() int {
	return len(l.Nodes)
}

// movedNodes lists values whose parent differs between prev and next, in
// ascending order and at most limit of them. Nodes that were the root or were
// absent in prev are not reported.
func movedNodes(prev, next Layout, limit int) []float64 {
	parents := make(map[float64]PlacedNode, len(prev.Nodes))
	for _, p := range prev.Nodes {
		parents[p.Value] = p
	}

	var moved []float64
	for _, n := range next.Nodes {
		if len(moved) >= limit {
			break
		}
		before, ok := parents[n.Value]
		if !ok || !before.HasParent {
			continue
		}
		if !n.HasParent || n.ParentValue != before.ParentValue {
			moved = append(moved, n.Value)
		}
	}
	return moved
}
