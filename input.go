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
	"fmt"
	"strings"

	"github.com/cybrota/avlviz/avl"
	"github.com/mattn/go-shellwords"
)

// InsertResult is the outcome of inserting one token.
type InsertResult struct {
	Token     string
	Outcome   avl.Outcome
	Rotations []avl.Rotation
}

// Summary counts outcomes over a batch of inserts.
type Summary struct {
	Inserted   int
	Duplicates int
	Invalid    int
	Rotations  int
}

func (s *Summary) Add(results []InsertResult) {
	for _, r := range results {
		switch r.Outcome {
		case avl.Inserted:
			s.Inserted++
		case avl.RejectedDuplicate:
			s.Duplicates++
		case avl.RejectedInvalid:
			s.Invalid++
		}
		s.Rotations += len(r.Rotations)
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("%d inserted, %d duplicate, %d invalid, %d rotations",
		s.Inserted, s.Duplicates, s.Invalid, s.Rotations)
}

// tokenize splits an input line into value tokens. Words follow shell quoting
// rules and are further split on commas, so "3 2,1" gives three tokens.
func tokenize(line string) ([]string, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input %q: %w", line, err)
	}

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		for _, piece := range strings.Split(word, ",") {
			if piece = strings.TrimSpace(piece); piece != "" {
				tokens = append(tokens, piece)
			}
		}
	}
	return tokens, nil
}

// insertLine inserts every token of line in order. A line that cannot be
// tokenized leaves the tree untouched.
func insertLine(tree *avl.Tree, line string) ([]InsertResult, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return nil, err
	}

	results := make([]InsertResult, 0, len(tokens))
	for _, token := range tokens {
		outcome := tree.InsertString(token)
		results = append(results, InsertResult{
			Token:     token,
			Outcome:   outcome,
			Rotations: tree.LastRotations(),
		})
	}
	return results, nil
}

// insertedValues returns the values added by results, in input order.
func insertedValues(results []InsertResult) []float64 {
	var values []float64
	for _, r := range results {
		if r.Outcome != avl.Inserted {
			continue
		}
		if v, ok := avl.ParseValue(r.Token); ok {
			values = append(values, v)
		}
	}
	return values
}

// describeResults gives a one line account of a batch for the status bar.
func describeResults(results []InsertResult) string {
	if len(results) == 0 {
		return "Nothing to insert"
	}

	parts := make([]string, 0, len(results))
	for _, r := range results {
		switch r.Outcome {
		case avl.Inserted:
			part := "inserted " + r.Token
			for _, rot := range r.Rotations {
				part += fmt.Sprintf(" (%s rotation at %s)", rot.Case, avl.FormatValue(rot.Pivot))
			}
			parts = append(parts, part)
		case avl.RejectedDuplicate:
			parts = append(parts, r.Token+" already present")
		default:
			parts = append(parts, fmt.Sprintf("%q is not a number", r.Token))
		}
	}
	return strings.Join(parts, "; ")
}
