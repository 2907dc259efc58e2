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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotIsDetached(t *testing.T) {
	tree := build(t, 2, 1, 3)
	s := tree.Snapshot()

	tree.Insert(4)
	tree.Insert(5)
	require.Equal(t, "2(1,3)", s.Signature())
	require.Equal(t, 3, s.Len())

	s.Nodes[s.Root].Value = 100
	require.NoError(t, tree.Verify())
	require.Equal(t, []float64{1, 2, 3, 4, 5}, tree.Snapshot().InOrder())
}

func TestSnapshotEmpty(t *testing.T) {
	s := New().Snapshot()
	require.True(t, s.Empty())
	require.Equal(t, None, s.Root)
	require.Equal(t, 0, s.Height())
	require.Empty(t, s.InOrder())
	require.Equal(t, ".", s.Signature())
	require.NoError(t, s.Verify())

	calls := 0
	s.Walk(func(NodeView, Visit) { calls++ })
	require.Zero(t, calls)
}

func TestSnapshotWalk(t *testing.T) {
	s := build(t, 4, 2, 6, 1, 3, 7).Snapshot()
	require.Equal(t, "4(2(1,3),6(.,7))", s.Signature())
	require.Equal(t, 3, s.Height())

	type seen struct {
		value  float64
		order  int
		depth  int
		parent float64
	}
	var got []seen
	s.Walk(func(n NodeView, v Visit) {
		parent := -1.0
		if v.Parent != None {
			parent = s.Nodes[v.Parent].Value
		}
		require.Equal(t, n, s.Nodes[v.Index])
		got = append(got, seen{n.Value, v.Order, v.Depth, parent})
	})

	require.Equal(t, []seen{
		{1, 0, 2, 2},
		{2, 1, 1, 4},
		{3, 2, 2, 2},
		{4, 3, 0, -1},
		{6, 4, 1, 4},
		{7, 5, 2, 6},
	}, got)
}

func TestSnapshotPreOrderLayout(t *testing.T) {
	s := build(t, 2, 1, 3).Snapshot()
	require.Equal(t, 0, s.Root)
	require.Equal(t, []NodeView{
		{Value: 2, Height: 2, Left: 1, Right: 2},
		{Value: 1, Height: 1, Left: None, Right: None},
		{Value: 3, Height: 1, Left: None, Right: None},
	}, s.Nodes)
}

func TestSnapshotVerifyDetectsDamage(t *testing.T) {
	testCases := []struct {
		name     string
		nodes    []NodeView
		expected error
	}{
		{
			name: "order",
			nodes: []NodeView{
				{Value: 2, Height: 2, Left: 1, Right: 2},
				{Value: 5, Height: 1, Left: None, Right: None},
				{Value: 3, Height: 1, Left: None, Right: None},
			},
			expected: ErrOrder,
		},
		{
			name: "equal values",
			nodes: []NodeView{
				{Value: 2, Height: 2, Left: 1, Right: None},
				{Value: 2, Height: 1, Left: None, Right: None},
			},
			expected: ErrOrder,
		},
		{
			name: "height",
			nodes: []NodeView{
				{Value: 2, Height: 3, Left: 1, Right: 2},
				{Value: 1, Height: 1, Left: None, Right: None},
				{Value: 3, Height: 1, Left: None, Right: None},
			},
			expected: ErrHeight,
		},
		{
			name: "balance",
			nodes: []NodeView{
				{Value: 1, Height: 3, Left: None, Right: 1},
				{Value: 2, Height: 2, Left: None, Right: 2},
				{Value: 3, Height: 1, Left: None, Right: None},
			},
			expected: ErrBalance,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Snapshot{Nodes: tc.nodes, Root: 0}.Verify()
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.expected), "got %v", err)
		})
	}
}

func TestParseValue(t *testing.T) {
	testCases := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"7", 7, true},
		{" +7 ", 7, true},
		{"-12.25", -12.25, true},
		{"1e3", 1000, true},
		{".5", 0.5, true},
		{"017", 17, true},
		{"0x10", 16, true},
		{"0XfF", 255, true},
		{"0b11", 3, true},
		{"0o7", 7, true},
		{"0x1p4", 0, false},
		{"-0x1p4", 0, false},
		{"-0x10", 0, false},
		{"0x", 0, false},
		{"0b12", 0, false},
		{"1_000", 0, false},
		{"0x_10", 0, false},
		{"", 0, false},
		{"\t", 0, false},
		{"seven", 0, false},
		{"nan", 0, false},
		{"+Inf", 0, false},
		{"1e309", 0, false},
	}

	for _, tc := range testCases {
		v, ok := ParseValue(tc.input)
		require.Equal(t, tc.ok, ok, "input %q", tc.input)
		require.Equal(t, tc.expected, v, "input %q", tc.input)
	}
}

func TestFormatValue(t *testing.T) {
	require.Equal(t, "0", FormatValue(0))
	require.Equal(t, "-2", FormatValue(-2))
	require.Equal(t, "0.5", FormatValue(0.5))
	require.Equal(t, "1000000", FormatValue(1e6))
	require.Equal(t, "1e+21", FormatValue(1e21))
	require.Equal(t, "1e-07", FormatValue(1e-7))
}
