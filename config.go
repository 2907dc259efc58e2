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
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlviz.yaml"

// Drawing styles
const (
	StyleTree     = "tree"
	StyleSideways = "sideways"
	StyleInOrder  = "inorder"
)

type RenderConfig struct {
	CellWidth             int    `yaml:"cell_width"`
	LevelGap              int    `yaml:"level_gap"`
	SidePadding           int    `yaml:"side_padding"`
	ShowHeights           bool   `yaml:"show_heights"`
	MaxRotationHighlights int    `yaml:"max_rotation_highlights"`
	Style                 string `yaml:"style"`
}

type UIConfig struct {
	InputCharLimit int  `yaml:"input_char_limit"`
	ShowTips       bool `yaml:"show_tips"`
}

type Config struct {
	Render RenderConfig `yaml:"render"`
	UI     UIConfig     `yaml:"ui"`
}

var defaultConfig = Config{
	Render: RenderConfig{
		CellWidth:             4,
		LevelGap:              2,
		SidePadding:           2,
		ShowHeights:           false,
		MaxRotationHighlights: 6,
		Style:                 StyleTree,
	},
	UI: UIConfig{
		InputCharLimit: 256,
		ShowTips:       true,
	},
}

func DefaultConfig() *Config {
	cfg := defaultConfig
	return &cfg
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom never fails on a bad file: anything it cannot use is
// replaced with the defaults.
func loadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return DefaultConfig(), nil
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		log.Printf("Ignoring malformed config %s: %v", configPath, err)
		return DefaultConfig(), nil
	}
	config.normalize()

	return config, nil
}

func (c *Config) normalize() {
	if c.Render.CellWidth <= 0 {
		c.Render.CellWidth = defaultConfig.Render.CellWidth
	}
	if c.Render.LevelGap <= 0 {
		c.Render.LevelGap = defaultConfig.Render.LevelGap
	}
	if c.Render.SidePadding < 0 {
		c.Render.SidePadding = defaultConfig.Render.SidePadding
	}
	if c.Render.MaxRotationHighlights < 0 {
		c.Render.MaxRotationHighlights = defaultConfig.Render.MaxRotationHighlights
	}
	switch c.Render.Style {
	case StyleTree, StyleSideways, StyleInOrder:
	default:
		c.Render.Style = StyleTree
	}
	if c.UI.InputCharLimit <= 0 {
		c.UI.InputCharLimit = defaultConfig.UI.InputCharLimit
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings(w io.Writer, configPath string) error {
	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Fprintf(w, "🔧 avlviz Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	fmt.Fprintf(w, "🌳 %sRendering:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sstyle%s: %s\n", Green, Reset, config.Render.Style)
	fmt.Fprintf(w, "  • %scell_width%s: %d\n", Green, Reset, config.Render.CellWidth)
	fmt.Fprintf(w, "  • %slevel_gap%s: %d\n", Green, Reset, config.Render.LevelGap)
	fmt.Fprintf(w, "  • %sside_padding%s: %d\n", Green, Reset, config.Render.SidePadding)
	fmt.Fprintf(w, "  • %sshow_heights%s: %t\n", Green, Reset, config.Render.ShowHeights)
	fmt.Fprintf(w, "  • %smax_rotation_highlights%s: %d\n\n", Green, Reset, config.Render.MaxRotationHighlights)

	fmt.Fprintf(w, "⌨️  %sInteractive UI:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sinput_char_limit%s: %d\n", Green, Reset, config.UI.InputCharLimit)
	fmt.Fprintf(w, "  • %sshow_tips%s: %t\n\n", Green, Reset, config.UI.ShowTips)

	fmt.Fprintf(w, "💡 Edit %s to change these values.\n", configPath)
	return nil
}
