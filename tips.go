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
	"math/rand"
)

var tips = []string{
	"Insert 1 2 3 to watch a single left rotation",
	"Insert 3 2 1 to watch a single right rotation",
	"Insert 3 1 2 to watch a left-right double rotation",
	"Insert 1 3 2 to watch a right-left double rotation",
	"Sorted input is the worst case for a plain BST, and no trouble for an AVL tree",
	"Every node's subtrees differ in height by at most one",
	"A leaf has height 1, an empty subtree height 0",
	"Duplicates are ignored: the tree is a set",
	"Red nodes moved to a new parent in the last insert",
	"Green marks the value you just inserted",
	"Ctrl+Y copies the drawing, ready to paste into notes",
	"Set render.show_heights in ~/.avlviz.yaml to label nodes with their height",
	"Pipe numbers into 'avlviz load -' to build large trees",
}

// pickRandomString returns a random string from the provided slice.
// If the slice is empty, it returns an empty string.
func pickRandomString(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rand.Intn(len(list))]
}

func GetRandomTip() string {
	return pickRandomString(tips)
}
