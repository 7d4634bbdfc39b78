package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/splc/artifact"
	"github.com/npillmayer/splc/syntree"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree <source|tree artifact>",
	Short: "Display the syntax tree of an SPL program",
	Long: `Display the syntax tree of an SPL program. If the argument is an
XML or YAML file, it is read as a syntax tree artifact.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTree(args[0])
		if err != nil {
			return err
		}
		renderTree(tree)
		return nil
	},
}

func loadTree(path string) (*syntree.Tree, error) {
	if format, err := artifact.ParseFormat(filepath.Ext(path)); err == nil {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return artifact.ReadTree(f, format)
	}
	unit, err := compileSource(path)
	if unit != nil {
		reportLexErrors(unit.LexErrors)
	}
	if err != nil {
		return nil, err
	}
	return unit.Tree, nil
}

// renderTree displays a syntax tree on the terminal.
func renderTree(tree *syntree.Tree) {
	root := pterm.NewTreeFromLeveledList(leveledTree(tree))
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledTree(tree *syntree.Tree) pterm.LeveledList {
	var ll pterm.LeveledList
	tree.Walk(func(n *syntree.Node, depth int) error {
		text := fmt.Sprintf("%s #%d", n.Symbol, n.ID)
		if tok, ok := n.Token(); ok {
			text = fmt.Sprintf("%s %q #%d", n.Symbol, tok.Lexeme(), n.ID)
		}
		ll = append(ll, pterm.LeveledListItem{Level: depth, Text: text})
		return nil
	})
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}
