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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cybrota/avlviz/avl"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	config := DefaultConfig()
	config.UI.ShowTips = false

	m := InitialModel(avl.New(), config, NewRenderCache())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func typeAndEnter(t *testing.T, m Model, input string) Model {
	t.Helper()
	m.textInput.SetValue(input)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func TestModelInsertAndRotate(t *testing.T) {
	m := newTestModel(t)

	m = typeAndEnter(t, m, "3 2")
	if m.textInput.Value() != "" {
		t.Errorf("input should be cleared after insert, got %q", m.textInput.Value())
	}
	if !reflect.DeepEqual(m.marks.Inserted, []float64{3, 2}) {
		t.Errorf("inserted marks = %v; want [3 2]", m.marks.Inserted)
	}

	m = typeAndEnter(t, m, "1")
	if got := m.tree.Snapshot().Signature(); got != "2(1,3)" {
		t.Fatalf("tree shape = %s; want 2(1,3)", got)
	}
	if !reflect.DeepEqual(m.marks.Inserted, []float64{1}) {
		t.Errorf("inserted marks = %v; want [1]", m.marks.Inserted)
	}
	// 2 moved from under 3 to the root
	if !reflect.DeepEqual(m.marks.Rotated, []float64{2}) {
		t.Errorf("rotated marks = %v; want [2]", m.marks.Rotated)
	}
	if !strings.Contains(m.status, "left-left rotation at 3") {
		t.Errorf("status %q does not mention the rotation", m.status)
	}
	if m.statusErr {
		t.Errorf("successful insert reported as error")
	}
}

func TestModelRejectedInput(t *testing.T) {
	m := newTestModel(t)
	m = typeAndEnter(t, m, "5")

	m = typeAndEnter(t, m, "5 abc")
	if !m.statusErr {
		t.Errorf("expected an error status when nothing was inserted")
	}
	if m.tree.Len() != 1 {
		t.Errorf("tree should still hold one value, has %d", m.tree.Len())
	}

	m = typeAndEnter(t, m, `"7`)
	if !m.statusErr || m.textInput.Value() != `"7` {
		t.Errorf("a malformed line should keep the input and report an error")
	}
}

func TestModelEmptyInputIsIgnored(t *testing.T) {
	m := newTestModel(t)
	before := m.status

	m = typeAndEnter(t, m, "   ")
	if m.status != before || m.tree.Len() != 0 {
		t.Errorf("empty input changed state: status %q, %d values", m.status, m.tree.Len())
	}
}

func TestModelReset(t *testing.T) {
	m := newTestModel(t)
	m = typeAndEnter(t, m, "1 2 3 4 5")

	for i := 0; i < 2; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
		m = updated.(Model)
		if m.tree.Height() != 0 || m.tree.Len() != 0 {
			t.Fatalf("tree not empty after reset")
		}
		if len(m.layout.Nodes) != 0 || len(m.marks.Inserted) != 0 {
			t.Errorf("reset left stale layout or marks")
		}
	}
	if !strings.Contains(m.View(), emptyTreeMessage) {
		t.Errorf("view after reset should show the empty tree message")
	}
}

func TestModelToggleHelp(t *testing.T) {
	m := newTestModel(t)
	fullWidth := m.treeViewport.Width

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = updated.(Model)
	if !m.showHelp || m.treeViewport.Width >= fullWidth {
		t.Errorf("help pane should open and narrow the tree pane")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = updated.(Model)
	if m.showHelp || m.treeViewport.Width != fullWidth {
		t.Errorf("help pane should close and restore the tree pane")
	}
}

func TestModelViewBeforeResize(t *testing.T) {
	m := InitialModel(avl.New(), DefaultConfig(), nil)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before the first resize = %q", got)
	}
}
