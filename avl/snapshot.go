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

package avl

import "strings"

// None marks an absent child or an empty snapshot's root.
const None = -1

// NodeView is one node of a Snapshot. Left and Right index into
// Snapshot.Nodes, or hold None.
type NodeView struct {
	Value  float64
	Height int
	Left   int
	Right  int
}

// Snapshot is a copy of the tree shape taken at one point in time. Nodes are
// stored in pre-order, so a non-empty snapshot has its root at index 0.
type Snapshot struct {
	Nodes []NodeView
	Root  int
}

// Snapshot copies the current shape of the tree. Later inserts do not affect
// the returned value.
func (tree *Tree) Snapshot() Snapshot {
	s := Snapshot{Root: None}
	if tree.root == nil {
		return s
	}
	s.Nodes = make([]NodeView, 0, tree.size)
	s.Root = copyNode(tree.root, &s.Nodes)
	return s
}

func copyNode(n *node, out *[]NodeView) int {
	if n == nil {
		return None
	}
	idx := len(*out)
	*out = append(*out, NodeView{Value: n.value, Height: n.height, Left: None, Right: None})
	left := copyNode(n.left, out)
	right := copyNode(n.right, out)
	(*out)[idx].Left = left
	(*out)[idx].Right = right
	return idx
}

// Empty reports whether the snapshot has no nodes.
func (s Snapshot) Empty() bool {
	return s.Root == None
}

// Len returns the number of nodes in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Nodes)
}

// Height returns the height recorded on the root, 0 when empty.
func (s Snapshot) Height() int {
	if s.Empty() {
		return 0
	}
	return s.Nodes[s.Root].Height
}

// Visit describes a node reached by Walk.
type Visit struct {
	Index  int // position in Snapshot.Nodes
	Order  int // in-order rank, starting at 0
	Depth  int // root is 0
	Parent int // index of the parent, None for the root
}

// Walk calls fn for every node in ascending value order.
func (s Snapshot) Walk(fn func(n NodeView, v Visit)) {
	order := 0
	var walk func(idx, depth, parent int)
	walk = func(idx, depth, parent int) {
		if idx == None {
			return
		}
		n := s.Nodes[idx]
		walk(n.Left, depth+1, idx)
		fn(n, Visit{Index: idx, Order: order, Depth: depth, Parent: parent})
		order++
		walk(n.Right, depth+1, idx)
	}
	walk(s.Root, 0, None)
}

// InOrder returns the stored values in ascending order.
func (s Snapshot) InOrder() []float64 {
	values := make([]float64, 0, len(s.Nodes))
	s.Walk(func(n NodeView, _ Visit) {
		values = append(values, n.Value)
	})
	return values
}

// Signature encodes the shape in a compact pre-order form, e.g. "2(1,3)".
// Two snapshots have the same signature exactly when they have the same shape
// and values.
func (s Snapshot) Signature() string {
	var b strings.Builder
	var write func(idx int)
	write = func(idx int) {
		if idx == None {
			b.WriteByte('.')
			return
		}
		n := s.Nodes[idx]
		b.WriteString(FormatValue(n.Value))
		if n.Left == None && n.Right == None {
			return
		}
		b.WriteByte('(')
		write(n.Left)
		b.WriteByte(',')
		write(n.Right)
		b.WriteByte(')')
	}
	write(s.Root)
	return b.String()
}
