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
	"io"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlviz/avl"
	"github.com/patrickmn/go-cache"
)

const (
	inputHeight     = 1
	defaultDebugLog = "avlviz-debug.log"
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput    textinput.Model
	treeViewport viewport.Model
	helpViewport viewport.Model
	showHelp     bool

	// Data
	tree     *avl.Tree
	renderer *Renderer
	config   *Config

	// State
	layout    Layout // layout of the tree as last drawn
	marks     Marks
	status    string
	statusErr bool
	tip       string

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds the pane, status and key help styling
type Styles struct {
	InputPane  lipgloss.Style
	TreePane   lipgloss.Style
	PaneTitle  lipgloss.Style
	Prompt     lipgloss.Style
	KeyName    lipgloss.Style
	KeyDesc    lipgloss.Style
	StatusOK   lipgloss.Style
	StatusFail lipgloss.Style
	Tip        lipgloss.Style
}

func NewStyles() *Styles {
	scheme := GetColorScheme()
	pane := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder())

	return &Styles{
		InputPane:  pane.BorderForeground(scheme.Inserted),
		TreePane:   pane.BorderForeground(scheme.Edge),
		PaneTitle:  lipgloss.NewStyle().Foreground(scheme.Node).Bold(true).Padding(0, 1),
		Prompt:     lipgloss.NewStyle().Foreground(scheme.Inserted).Bold(true),
		KeyName:    lipgloss.NewStyle().Foreground(scheme.Text).Bold(true),
		KeyDesc:    lipgloss.NewStyle().Foreground(scheme.TextMuted),
		StatusOK:   lipgloss.NewStyle().Foreground(scheme.Inserted),
		StatusFail: lipgloss.NewStyle().Foreground(scheme.Rotated).Bold(true),
		Tip:        lipgloss.NewStyle().Foreground(scheme.TextMuted).Italic(true),
	}
}

type clipboardMsg struct {
	err error
}

// InitialModel creates the initial model
func InitialModel(tree *avl.Tree, config *Config, c *cache.Cache) Model {
	styles := NewStyles()

	ti := textinput.New()
	ti.Placeholder = "Type numbers to insert, e.g. 3 2 1"
	ti.Prompt = "› "
	ti.PromptStyle = styles.Prompt
	ti.Focus()
	ti.CharLimit = config.UI.InputCharLimit
	ti.Width = 50

	treeViewport := viewport.New(0, 0)
	helpViewport := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(40),
	)

	model := Model{
		textInput:       ti,
		treeViewport:    treeViewport,
		helpViewport:    helpViewport,
		tree:            tree,
		renderer:        NewRenderer(config.Render, NewTreeStyles(), c),
		config:          config,
		layout:          computeLayout(tree.Snapshot()),
		styles:          styles,
		glamourRenderer: glamourRenderer,
		status:          "Ready",
	}
	if config.UI.ShowTips {
		model.tip = GetRandomTip()
	}
	model.updateHelpContent()

	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.insertInput()
			return m, nil
		case "ctrl+r":
			m.reset()
			return m, nil
		case "ctrl+y":
			drawing := m.renderer.Plain().Render(m.tree.Snapshot(), 0, Marks{})
			return m, func() tea.Msg {
				return clipboardMsg{err: copyToClipboard(drawing)}
			}
		case "f1":
			m.showHelp = !m.showHelp
			m.updateLayout()
			return m, nil
		case "pgup":
			m.treeViewport.LineUp(m.treeViewport.Height)
			return m, nil
		case "pgdown":
			m.treeViewport.LineDown(m.treeViewport.Height)
			return m, nil
		case "up":
			m.treeViewport.LineUp(1)
			return m, nil
		case "down":
			m.treeViewport.LineDown(1)
			return m, nil
		case "home":
			m.treeViewport.GotoTop()
			return m, nil
		case "end":
			m.treeViewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err), true)
		} else {
			m.setStatus("📋 Drawing copied to clipboard", false)
		}
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// insertInput inserts the values typed so far. Empty input is ignored.
func (m *Model) insertInput() {
	line := m.textInput.Value()
	if strings.TrimSpace(line) == "" {
		return
	}

	results, err := insertLine(m.tree, line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.textInput.SetValue("")

	next := computeLayout(m.tree.Snapshot())
	m.marks = Marks{
		Inserted: insertedValues(results),
		Rotated:  movedNodes(m.layout, next, m.config.Render.MaxRotationHighlights),
	}
	m.layout = next

	var summary Summary
	summary.Add(results)
	m.setStatus(describeResults(results), summary.Inserted == 0)
	log.Printf("input %q: %s", line, summary)

	if m.config.UI.ShowTips {
		m.tip = GetRandomTip()
	}
	m.refreshTree()
}

func (m *Model) reset() {
	m.tree.Clear()
	m.layout = Layout{}
	m.marks = Marks{}
	m.setStatus("Tree cleared", false)
	m.refreshTree()
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func (m *Model) updateLayout() {
	treeWidth := m.width - 2
	if m.showHelp {
		helpWidth := m.width * 2 / 5
		treeWidth = m.width - helpWidth - 4
		m.helpViewport.Width = helpWidth
	}
	// input box, tree title, status, key hints and tip
	treeHeight := max(m.height-(inputHeight+2)-2-1-3, 1)

	m.treeViewport.Width = max(treeWidth, 1)
	m.treeViewport.Height = treeHeight
	m.helpViewport.Height = treeHeight
	m.refreshTree()
}

func (m *Model) refreshTree() {
	m.treeViewport.SetContent(m.renderer.Render(m.tree.Snapshot(), m.treeViewport.Width, m.marks))
}

func (m *Model) updateHelpContent() {
	content := keyBindingsMarkdown
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(content); err == nil {
			content = rendered
		}
	}
	m.helpViewport.SetContent(content)
}

// View renders the program's UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	title := fmt.Sprintf(" 🌳 AVL Tree  ·  %d values  ·  height %d ", m.tree.Len(), m.tree.Height())
	treeBox := m.styles.TreePane.
		Width(m.treeViewport.Width).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.PaneTitle.Render(title),
			m.treeViewport.View(),
		))

	main := treeBox
	if m.showHelp {
		helpBox := m.styles.TreePane.
			Width(m.helpViewport.Width).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.PaneTitle.Render(" 📖 Help "),
				m.helpViewport.View(),
			))
		main = lipgloss.JoinHorizontal(lipgloss.Top, treeBox, helpBox)
	}

	m.textInput.Width = m.width - 8
	inputBox := m.styles.InputPane.
		Width(m.width - 2).
		Render(m.textInput.View())

	statusStyle := m.styles.StatusOK
	if m.statusErr {
		statusStyle = m.styles.StatusFail
	}

	rows := []string{main, inputBox, statusStyle.Render(m.status), m.renderKeyHelp()}
	if m.tip != "" {
		rows = append(rows, m.styles.Tip.Render("💡 "+m.tip))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderKeyHelp() string {
	keys := []struct{ key, desc string }{
		{"enter", "insert"},
		{"ctrl+r", "reset"},
		{"ctrl+y", "copy"},
		{"f1", "help"},
		{"esc", "quit"},
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m.styles.KeyName.Render(k.key)+" "+m.styles.KeyDesc.Render(k.desc))
	}
	return strings.Join(parts, m.styles.KeyDesc.Render(" • "))
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(tree *avl.Tree, config *Config) error {
	InitializeColors()

	// the UI owns the terminal, so logs go to a file or nowhere
	if path := os.Getenv("AVLVIZ_DEBUG"); path != "" {
		if path == "1" || path == "true" {
			path = defaultDebugLog
		}
		f, err := tea.LogToFile(path, "avlviz")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model := InitialModel(tree, config, NewRenderCache())

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
