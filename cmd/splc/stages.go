package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/splc/artifact"
	"github.com/npillmayer/splc/lexer"
	"github.com/npillmayer/splc/spl"
	"github.com/npillmayer/splc/syntree"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var outFile string

var lexCmd = &cobra.Command{
	Use:   "lex <source>",
	Short: "Tokenize an SPL program and write the token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := lexSource(args[0])
		if err != nil {
			return err
		}
		out := outputPath(cfg.Output.Tokens)
		if err = writeTokens(out, result.Tokens); err != nil {
			return err
		}
		if result.HasErrors() {
			reportLexErrors(result.Errors)
			return fmt.Errorf("%d lexical errors", len(result.Errors))
		}
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [tokens]",
	Short: "Parse a token stream and write the syntax tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cfg.Output.Tokens
		if len(args) > 0 {
			in = args[0]
		}
		f, err := os.Open(in)
		if err != nil {
			return err
		}
		defer f.Close()
		tokens, err := artifact.ReadTokens(f, formatFor(in))
		if err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
		fe, err := frontend()
		if err != nil {
			return err
		}
		tree, err := fe.Parse(tokens)
		if err != nil {
			return err
		}
		return writeTree(outputPath(cfg.Output.Tree), tree)
	},
}

var compileCmd = &cobra.Command{
	Use:   "compile <source>",
	Short: "Tokenize and parse an SPL program, writing both artifacts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, err := compileSource(args[0])
		if unit == nil {
			return err
		}
		if werr := writeTokens(cfg.Output.Tokens, unit.Tokens); werr != nil {
			return werr
		}
		reportLexErrors(unit.LexErrors)
		if err != nil {
			return err
		}
		return writeTree(cfg.Output.Tree, unit.Tree)
	},
}

func init() {
	lexCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default from config)")
	parseCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default from config)")
}

func outputPath(configured string) string {
	if outFile != "" {
		return outFile
	}
	return configured
}

func lexSource(path string) (*lexer.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return lexer.Lex(f)
}

// compileSource compiles a source file. On syntax errors the unit is returned
// together with the error.
func compileSource(path string) (*spl.Unit, error) {
	fe, err := frontend()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fe.Compile(f)
}

func writeTokens(path string, tokens []lexer.Token) error {
	err := writeFile(path, func(f *os.File) error {
		return artifact.WriteTokens(f, formatFor(path), tokens)
	})
	if err == nil {
		pterm.Info.Println(fmt.Sprintf("%d tokens written to %s", len(tokens), path))
	}
	return err
}

func writeTree(path string, tree *syntree.Tree) error {
	err := writeFile(path, func(f *os.File) error {
		return artifact.WriteTree(f, formatFor(path), tree)
	})
	if err == nil {
		pterm.Info.Println(fmt.Sprintf("syntax tree with %d nodes written to %s", tree.Size(), path))
	}
	return err
}
