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

import "math"

// Outcome reports what an insert did with its input.
type Outcome int

const (
	Inserted Outcome = iota
	RejectedDuplicate
	RejectedInvalid
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case RejectedDuplicate:
		return "duplicate"
	case RejectedInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Case names the imbalance a rotation resolved.
type Case int

const (
	LeftLeft Case = iota
	RightRight
	LeftRight
	RightLeft
)

func (c Case) String() string {
	switch c {
	case LeftLeft:
		return "left-left"
	case RightRight:
		return "right-right"
	case LeftRight:
		return "left-right"
	case RightLeft:
		return "right-left"
	default:
		return "unknown"
	}
}

// Rotation records one rebalancing step: the case and the value of the node
// that was out of balance.
type Rotation struct {
	Case  Case
	Pivot float64
}

type node struct {
	value  float64
	height int
	left   *node
	right  *node
}

// Tree is an AVL tree of unique float64 values. The zero value is an empty tree.
type Tree struct {
	root      *node
	size      int
	rotations []Rotation
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

func getHeight(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight(n *node) {
	n.height = max(getHeight(n.left), getHeight(n.right)) + 1
}

func getBalanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return getHeight(n.left) - getHeight(n.right)
}

func rotateLeft(n *node) *node {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	// child first: pivot's height depends on n
	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

func rotateRight(n *node) *node {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// Insert adds v to the tree. NaN and infinities are rejected, as is a value
// the tree already holds; in both cases the tree is left untouched.
func (tree *Tree) Insert(v float64) Outcome {
	tree.rotations = tree.rotations[:0]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return RejectedInvalid
	}
	if v == 0 {
		v = 0 // fold -0 into 0
	}

	outcome := Inserted
	tree.root = tree.insertRecursive(tree.root, v, &outcome)
	if outcome == Inserted {
		tree.size++
	}
	return outcome
}

// InsertString parses s with ParseValue and inserts the result.
func (tree *Tree) InsertString(s string) Outcome {
	v, ok := ParseValue(s)
	if !ok {
		tree.rotations = tree.rotations[:0]
		return RejectedInvalid
	}
	return tree.Insert(v)
}

func (tree *Tree) insertRecursive(n *node, v float64, outcome *Outcome) *node {
	if n == nil {
		return &node{value: v, height: 1}
	}

	if v < n.value {
		n.left = tree.insertRecursive(n.left, v, outcome)
	} else if v > n.value {
		n.right = tree.insertRecursive(n.right, v, outcome)
	} else {
		// Any equal value must sit on this path, so stopping here is enough.
		*outcome = RejectedDuplicate
		return n
	}

	updateHeight(n)

	balanceFactor := getBalanceFactor(n)
	if balanceFactor > 1 {
		if v < n.left.value {
			tree.record(LeftLeft, n)
			return rotateRight(n)
		}
		tree.record(LeftRight, n)
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	} else if balanceFactor < -1 {
		if v > n.right.value {
			tree.record(RightRight, n)
			return rotateLeft(n)
		}
		tree.record(RightLeft, n)
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

func (tree *Tree) record(c Case, n *node) {
	tree.rotations = append(tree.rotations, Rotation{Case: c, Pivot: n.value})
}

// Height returns the height of the root, 0 for an empty tree.
func (tree *Tree) Height() int {
	return getHeight(tree.root)
}

// Len returns the number of values stored.
func (tree *Tree) Len() int {
	return tree.size
}

// LastRotations returns the rotations performed by the most recent insert.
func (tree *Tree) LastRotations() []Rotation {
	out := make([]Rotation, len(tree.rotations))
	copy(out, tree.rotations)
	return out
}

// Clear drops every node. Clearing an empty tree is a no-op.
func (tree *Tree) Clear() {
	tree.root = nil
	tree.size = 0
	tree.rotations = tree.rotations[:0]
}
