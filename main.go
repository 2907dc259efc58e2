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

	"github.com/cybrota/avlviz/avl"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const asciiLogo = `
 █████╗ ██╗   ██╗██╗    ██╗   ██╗██╗███████╗
██╔══██╗██║   ██║██║    ██║   ██║██║╚══███╔╝
███████║██║   ██║██║    ██║   ██║██║  ███╔╝
██╔══██║╚██╗ ██╔╝██║    ╚██╗ ██╔╝██║ ███╔╝
██║  ██║ ╚████╔╝ ███████╗╚████╔╝ ██║███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝ ╚═══╝  ╚═╝╚══════╝
Watch an AVL tree balance itself [Version: %s%s%s]

`

func main() {
	log.SetFlags(0)
	InitializeColors()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	logo := fmt.Sprintf(asciiLogo, Green, version, Reset)

	runInteractive := func(cmd *cobra.Command, args []string) error {
		config, err := LoadConfig()
		if err != nil {
			log.Printf("Failed to load configuration: %v. Using default settings.", err)
			config = DefaultConfig()
		}

		tree := avl.New()
		if _, err := insertArgs(cmd, tree, args); err != nil {
			return err
		}
		return runBubbleTeaApp(tree, config)
	}

	var cmdRun = &cobra.Command{
		Use:   "run [values...]",
		Short: "Launches the interactive tree view",
		Long:  fmt.Sprintf("%s\n%s", logo, `Run opens the interactive view. Values given as arguments are inserted first.`),
		RunE:  runInteractive,
	}

	var cmdInsert = &cobra.Command{
		Use:   "insert <values...>",
		Short: "Insert values and print the resulting tree",
		Long:  fmt.Sprintf("%s\n%s", logo, `Insert builds a tree from the given values and prints it`),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := configForCmd(cmd)
			if err != nil {
				return err
			}

			tree := avl.New()
			summary, err := insertArgs(cmd, tree, args)
			if err != nil {
				return err
			}
			return printTree(cmd, tree, config, summary)
		},
	}
	addOutputFlags(cmdInsert)

	var cmdLoad = &cobra.Command{
		Use:   "load <file|->",
		Short: "Insert every value found in a file or standard input",
		Long:  fmt.Sprintf("%s\n%s", logo, `Load reads values line by line. Blank lines and lines starting with # are skipped.`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := configForCmd(cmd)
			if err != nil {
				return err
			}
			noProgress, _ := cmd.Flags().GetBool("no-progress")
			noDraw, _ := cmd.Flags().GetBool("no-draw")

			tree := avl.New()
			summary, err := loadFile(args[0], tree, !noProgress)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", args[0], err)
			}
			if summary.Skipped > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s⚠️  %d unreadable lines skipped%s\n", Warning, summary.Skipped, Reset)
			}

			if noDraw {
				fmt.Fprintf(cmd.OutOrStdout(), "values: %d, height: %d (%s)\n", tree.Len(), tree.Height(), summary.Summary)
				return verifyIfAsked(cmd, tree)
			}
			return printTree(cmd, tree, config, summary.Summary)
		},
	}
	addOutputFlags(cmdLoad)
	cmdLoad.Flags().Bool("no-progress", false, "hide the progress bar")
	cmdLoad.Flags().Bool("no-draw", false, "print only the summary")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlviz usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the avlviz CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration, creating the default file if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := getConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
			return displaySettings(cmd.OutOrStdout(), configPath)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlviz version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "avlviz",
		Version:      version,
		Long:         logo,
		SilenceUsage: true,
		RunE:         runInteractive,
	}
	rootCmd.AddCommand(cmdRun, cmdInsert, cmdLoad, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("style", "", "drawing style: tree, sideways or inorder (default from config)")
	cmd.Flags().Int("width", 0, "draw sideways when the tree is wider than this many columns (default terminal width, 0 for no limit)")
	cmd.Flags().Bool("verify", false, "check the tree invariants after inserting")
	cmd.Flags().Bool("stats", false, "print value count, height and insert outcomes")
}

// configForCmd loads the config file and applies command line overrides.
func configForCmd(cmd *cobra.Command) (*Config, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("style") {
		style, _ := cmd.Flags().GetString("style")
		switch style {
		case StyleTree, StyleSideways, StyleInOrder:
			config.Render.Style = style
		default:
			return nil, fmt.Errorf("unknown style %q: want %s, %s or %s", style, StyleTree, StyleSideways, StyleInOrder)
		}
	}
	return config, nil
}

// insertArgs inserts each argument as an input line and reports rejected
// tokens on stderr.
func insertArgs(cmd *cobra.Command, tree *avl.Tree, args []string) (Summary, error) {
	var summary Summary
	for _, arg := range args {
		results, err := insertLine(tree, arg)
		if err != nil {
			return summary, err
		}
		reportRejected(cmd.ErrOrStderr(), results)
		summary.Add(results)
	}
	return summary, nil
}

func reportRejected(w io.Writer, results []InsertResult) {
	for _, r := range results {
		switch r.Outcome {
		case avl.RejectedDuplicate:
			fmt.Fprintf(w, "%s⚠️  skipped %s: already present%s\n", Warning, r.Token, Reset)
		case avl.RejectedInvalid:
			fmt.Fprintf(w, "%s⚠️  skipped %q: not a number%s\n", Warning, r.Token, Reset)
		}
	}
}

func printTree(cmd *cobra.Command, tree *avl.Tree, config *Config, summary Summary) error {
	out := cmd.OutOrStdout()
	width, _ := cmd.Flags().GetInt("width")
	if !cmd.Flags().Changed("width") {
		width = terminalWidth(out)
	}
	stats, _ := cmd.Flags().GetBool("stats")

	renderer := NewRenderer(config.Render, NewTreeStyles(), nil)
	fmt.Fprintln(out, renderer.Render(tree.Snapshot(), width, Marks{}))

	if stats {
		fmt.Fprintf(out, "\nvalues: %d, height: %d (%s)\n", tree.Len(), tree.Height(), summary)
	}
	return verifyIfAsked(cmd, tree)
}

// terminalWidth returns the column count of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func verifyIfAsked(cmd *cobra.Command, tree *avl.Tree) error {
	if ok, _ := cmd.Flags().GetBool("verify"); !ok {
		return nil
	}
	if err := tree.Verify(); err != nil {
		return fmt.Errorf("tree invariants violated: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s✅ order, height and balance verified%s\n", Green, Reset)
	return nil
}
