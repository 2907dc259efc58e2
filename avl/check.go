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
	"fmt"
	"math"
)

var (
	ErrOrder   = errors.New("avl: values out of order")
	ErrHeight  = errors.New("avl: stale height")
	ErrBalance = errors.New("avl: node out of balance")
	ErrSize    = errors.New("avl: size mismatch")
)

// Verify checks the ordering, height and balance of every node.
func (tree *Tree) Verify() error {
	s := tree.Snapshot()
	if err := s.Verify(); err != nil {
		return err
	}
	if s.Len() != tree.size {
		return fmt.Errorf("%w: counted %d nodes, recorded %d", ErrSize, s.Len(), tree.size)
	}
	return nil
}

// Verify checks the ordering, height and balance of every node in s.
func (s Snapshot) Verify() error {
	_, err := s.check(s.Root, math.Inf(-1), math.Inf(1))
	return err
}

// check returns the height of the subtree at idx computed from its leaves.
// Every value must lie strictly between low and high.
func (s Snapshot) check(idx int, low, high float64) (int, error) {
	if idx == None {
		return 0, nil
	}
	n := s.Nodes[idx]
	if !(n.Value > low && n.Value < high) {
		return 0, fmt.Errorf("%w: %s not within (%s, %s)", ErrOrder,
			FormatValue(n.Value), FormatValue(low), FormatValue(high))
	}

	lh, err := s.check(n.Left, low, n.Value)
	if err != nil {
		return 0, err
	}
	rh, err := s.check(n.Right, n.Value, high)
	if err != nil {
		return 0, err
	}

	if h := max(lh, rh) + 1; n.Height != h {
		return 0, fmt.Errorf("%w: %s has height %d, want %d", ErrHeight, FormatValue(n.Value), n.Height, h)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: %s has balance %+d", ErrBalance, FormatValue(n.Value), bf)
	}
	return n.Height, nil
}
