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
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestInsertCommand(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "insert", "3", "2", "1,x", "2", "--style", "inorder", "--stats", "--verify")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	for _, want := range []string{
		"1 2 3",
		"values: 3, height: 2",
		"3 inserted, 1 duplicate, 1 invalid, 1 rotations",
		"verified",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	if !strings.Contains(stderr, `skipped "x"`) || !strings.Contains(stderr, "skipped 2") {
		t.Errorf("stderr should report the rejected tokens:\n%s", stderr)
	}
}

func TestInsertCommandTreeStyle(t *testing.T) {
	stdout, _, err := executeCommand(t, "insert", "1 2 3")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if !strings.Contains(stdout, "___2___") {
		t.Errorf("expected a top-down drawing:\n%s", stdout)
	}
}

func TestInsertCommandBadStyle(t *testing.T) {
	_, _, err := executeCommand(t, "insert", "1", "--style", "spiral")
	if err == nil || !strings.Contains(err.Error(), "unknown style") {
		t.Errorf("expected an unknown style error, got %v", err)
	}
}

func TestLoadCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	if err := os.WriteFile(path, []byte("# ascending\n1\n2\n3\n4\n5\n6\n7\n"), 0644); err != nil {
		t.Fatalf("failed to write values: %v", err)
	}

	stdout, _, err := executeCommand(t, "load", path, "--no-progress", "--no-draw", "--verify")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !strings.Contains(stdout, "values: 7, height: 3") {
		t.Errorf("unexpected summary:\n%s", stdout)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if strings.TrimSpace(stdout) != version {
		t.Errorf("version printed %q; want %q", stdout, version)
	}
}

func TestTerminalWidthOfNonTerminal(t *testing.T) {
	if w := terminalWidth(&bytes.Buffer{}); w != 0 {
		t.Errorf("terminalWidth(buffer) = %d; want 0", w)
	}

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()
	if got := terminalWidth(w); got != 0 {
		t.Errorf("terminalWidth(pipe) = %d; want 0", got)
	}
}

func TestInsertCommandLargeTreeDrawsOutline(t *testing.T) {
	values := make([]string, 0, topDownNodeLimit+1)
	for i := 1; i <= topDownNodeLimit+1; i++ {
		values = append(values, strconv.Itoa(i))
	}

	stdout, _, err := executeCommand(t, "insert", strings.Join(values, " "))
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if strings.Contains(stdout, "_") || !strings.Contains(stdout, "├─L ") {
		t.Errorf("expected an outline drawing for %d values", len(values))
	}
}
