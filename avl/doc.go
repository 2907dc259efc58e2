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

/*
Package avl provides a set of unique float64 values kept in an AVL tree.

Values are only ever added. Every insert rebalances the path it walked, so the
height of a tree holding n values stays below 1.44*log2(n+2).

Inserts never fail. Input that is not a finite number, and values that are
already present, are rejected and reported through the returned Outcome, which
callers are free to ignore.

The tree shape is exposed as a Snapshot: a copy that can be walked and rendered
without touching the tree itself.

A Tree is not safe for concurrent use.
*/
package avl
