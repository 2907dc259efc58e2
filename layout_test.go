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
	"reflect"
	"testing"

	"github.com/cybrota/avlviz/avl"
)

func TestComputeLayout(t *testing.T) {
	layout := computeLayout(snapshotOf(4, 2, 6, 1, 3))

	if layout.Levels != 3 {
		t.Errorf("Levels = %d; want 3", layout.Levels)
	}
	if layout.Width() != 5 {
		t.Errorf("Width = %d; want 5", layout.Width())
	}

	expected := []PlacedNode{
		{Value: 1, Height: 1, Column: 0, Depth: 2, Left: avl.None, Right: avl.None, HasParent: true, ParentValue: 2},
		{Value: 2, Height: 2, Column: 1, Depth: 1, Left: 0, Right: 2, HasParent: true, ParentValue: 4},
		{Value: 3, Height: 1, Column: 2, Depth: 2, Left: avl.None, Right: avl.None, HasParent: true, ParentValue: 2},
		{Value: 4, Height: 3, Column: 3, Depth: 0, Left: 1, Right: 4},
		{Value: 6, Height: 1, Column: 4, Depth: 1, Left: avl.None, Right: avl.None, HasParent: true, ParentValue: 4},
	}
	if !reflect.DeepEqual(layout.Nodes, expected) {
		t.Errorf("layout mismatch.\nExpected: %+v\nGot:      %+v", expected, layout.Nodes)
	}
}

func TestComputeLayoutEmpty(t *testing.T) {
	layout := computeLayout(avl.New().Snapshot())
	if layout.Levels != 0 || layout.Width() != 0 {
		t.Errorf("empty tree should give an empty layout, got %+v", layout)
	}
}

func TestMovedNodes(t *testing.T) {
	testCases := []struct {
		name     string
		before   []float64
		insert   float64
		limit    int
		expected []float64
	}{
		{
			name:     "No Rotation",
			before:   []float64{2, 1},
			insert:   3,
			limit:    6,
			expected: nil,
		},
		{
			name:     "Left-Left At Root",
			before:   []float64{3, 2},
			insert:   1,
			limit:    6,
			expected: []float64{2},
		},
		{
			// 30(20(10,25),40(.,50)) after 25 goes in under 30
			name:     "Right-Left At Root",
			before:   []float64{10, 20, 30, 40, 50},
			insert:   25,
			limit:    6,
			expected: []float64{30, 40},
		},
		{
			name:     "Limit",
			before:   []float64{10, 20, 30, 40, 50},
			insert:   25,
			limit:    1,
			expected: []float64{30},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := avl.New()
			for _, v := range tc.before {
				tree.Insert(v)
			}
			prev := computeLayout(tree.Snapshot())
			tree.Insert(tc.insert)
			next := computeLayout(tree.Snapshot())

			if got := movedNodes(prev, next, tc.limit); !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("movedNodes = %v; want %v", got, tc.expected)
			}
		})
	}
}
