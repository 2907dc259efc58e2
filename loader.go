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
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cybrota/avlviz/avl"
	"github.com/schollz/progressbar/v3"
)

// LoadSummary describes a finished load.
type LoadSummary struct {
	Summary
	Lines   int
	Skipped int // lines that could not be tokenized
}

// openValueSource opens path for reading; "-" reads standard input.
func openValueSource(path string) (io.ReadCloser, int64, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), -1, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("value file %s not found", path)
		}
		return nil, 0, err
	}

	size := int64(-1)
	if stat, err := file.Stat(); err == nil {
		size = stat.Size()
	}
	return file, size, nil
}

func newLoadProgressBar(size int64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("🌳 Loading values..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintf(os.Stderr, "\n✅ Loading completed!\n")
		}),
	)
}

// loadValues reads r line by line and inserts every value it finds. Blank
// lines and lines starting with '#' are ignored. A nil bar disables progress
// reporting.
func loadValues(r io.Reader, tree *avl.Tree, bar *progressbar.ProgressBar) (LoadSummary, error) {
	var summary LoadSummary

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		summary.Lines++
		if bar != nil {
			_ = bar.Add(len(line) + 1)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		results, err := insertLine(tree, trimmed)
		if err != nil {
			log.Printf("Skipping line %d: %v", summary.Lines, err)
			summary.Skipped++
			continue
		}
		summary.Add(results)
	}

	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("failed to read values: %w", err)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return summary, nil
}

// loadFile loads the values stored in path into tree.
func loadFile(path string, tree *avl.Tree, showProgress bool) (LoadSummary, error) {
	source, size, err := openValueSource(path)
	if err != nil {
		return LoadSummary{}, err
	}
	defer source.Close()

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = newLoadProgressBar(size)
	}
	return loadValues(source, tree, bar)
}
