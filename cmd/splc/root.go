package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/splc/artifact"
	"github.com/npillmayer/splc/config"
	"github.com/npillmayer/splc/lexer"
	"github.com/npillmayer/splc/lr"
	"github.com/npillmayer/splc/spl"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	traceLevel string
	cfg        *config.Config
)

var tracerKeys = []string{"splc.cli", "splc.lexer", "splc.lr", "splc.spl"}

var rootCmd = &cobra.Command{
	Use:   "splc",
	Short: "splc - front end for the SPL teaching language",
	Long: `splc tokenizes and parses SPL programs.

The lexer stage writes a token stream, the parser stage reads it and writes
a syntax tree. Both artifacts are XML or YAML files.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "", "trace level [Debug|Info|Error]")
	rootCmd.AddCommand(lexCmd, parseCmd, compileCmd, tableCmd, treeCmd, replCmd)
}

// setup loads the configuration and initializes tracing and display.
func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	var err error
	if cfgFile == "" {
		cfg = config.Default()
	} else if cfg, err = config.Load(cfgFile); err != nil {
		return err
	}
	level := cfg.TraceLevel()
	if traceLevel != "" {
		level = tracing.TraceLevelFromString(traceLevel)
	}
	for _, key := range tracerKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Debugf("configuration: %+v", *cfg)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// frontend creates an SPL front end for the table resource configured.
func frontend() (*spl.Frontend, error) {
	var table *lr.ParseTable
	var err error
	switch {
	case cfg.Table.Path != "":
		tracer().Infof("loading parse table from %s", cfg.Table.Path)
		table, err = spl.LoadTableFile(cfg.Table.Path)
	case cfg.Table.Cache != "":
		table, err = spl.CachedTable(cfg.Table.Cache)
	default:
		table, err = spl.Table()
	}
	if err != nil {
		return nil, err
	}
	return spl.NewFrontend(table)
}

// formatFor selects the artifact format from a file extension, falling back
// to the configured format.
func formatFor(path string) artifact.Format {
	if f, err := artifact.ParseFormat(filepath.Ext(path)); err == nil {
		return f
	}
	return cfg.Format()
}

func reportLexErrors(errs []*lexer.LexError) {
	for _, e := range errs {
		pterm.Error.Println(e.Error())
	}
}

// writeFile creates a file and hands it to write.
func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
