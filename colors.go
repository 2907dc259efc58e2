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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorScheme holds the colors used to draw nodes and edges.
type ColorScheme struct {
	Node      lipgloss.Color
	Inserted  lipgloss.Color
	Rotated   lipgloss.Color
	Edge      lipgloss.Color
	Text      lipgloss.Color
	TextMuted lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode

	// ANSI sequences for plain CLI output, set by InitializeColors
	Green, Info, Warning, Error, Reset = GetANSIColors()
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		if theme := os.Getenv(name); theme != "" {
			theme = strings.ToLower(theme)
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	return TerminalModeDark
}

// createLightColorScheme returns a color scheme optimized for light terminals
func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Node:      lipgloss.Color("#2563eb"),
		Inserted:  lipgloss.Color("#059669"),
		Rotated:   lipgloss.Color("#dc2626"),
		Edge:      lipgloss.Color("244"),
		Text:      lipgloss.Color("0"),
		TextMuted: lipgloss.Color("240"),
	}
}

// createDarkColorScheme returns a color scheme optimized for dark terminals
func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Node:      lipgloss.Color("#60a5fa"),
		Inserted:  lipgloss.Color("#34d399"),
		Rotated:   lipgloss.Color("#fb7185"),
		Edge:      lipgloss.Color("240"),
		Text:      lipgloss.Color("15"),
		TextMuted: lipgloss.Color("245"),
	}
}

// InitializeColors detects terminal mode and sets up the appropriate color scheme
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentColorScheme = createLightColorScheme()
	default:
		currentColorScheme = createDarkColorScheme()
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// GetANSIColors returns escape sequences suited to the detected terminal mode.
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}

// TreeStyles are the lipgloss styles applied to a drawing.
type TreeStyles struct {
	Node     lipgloss.Style
	Inserted lipgloss.Style
	Rotated  lipgloss.Style
	Edge     lipgloss.Style
}

func NewTreeStyles() *TreeStyles {
	scheme := GetColorScheme()
	return &TreeStyles{
		Node:     lipgloss.NewStyle().Foreground(scheme.Node).Bold(true),
		Inserted: lipgloss.NewStyle().Foreground(scheme.Inserted).Bold(true).Underline(true),
		Rotated:  lipgloss.NewStyle().Foreground(scheme.Rotated).Bold(true),
		Edge:     lipgloss.NewStyle().Foreground(scheme.Edge),
	}
}
