package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/splc/lr"
	"github.com/npillmayer/splc/spl"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	tableOut string
	dotOut   string
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Generate the SLR(1) parse table for SPL",
	Long: `Generate the SLR(1) parse table for SPL and write it as CSV.
The table may be used as the table resource of the parser stage.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := spl.Grammar()
		if err != nil {
			return err
		}
		g.Dump() // only visible in debug mode
		gen := lr.NewTableGenerator(lr.Analysis(g))
		if err = gen.CreateTables(); err != nil {
			return err
		}
		actions, gotos := gen.Table().Size()
		pterm.Info.Println(fmt.Sprintf("%d states, %d actions, %d gotos",
			gen.Table().StateCount(), actions, gotos))
		if dotOut != "" {
			if err = writeFile(dotOut, func(f *os.File) error {
				return gen.CFSM().CFSM2GraphViz(f)
			}); err != nil {
				return err
			}
		}
		if tableOut == "" {
			return gen.Table().WriteCSV(os.Stdout)
		}
		return writeFile(tableOut, func(f *os.File) error {
			return gen.Table().WriteCSV(f)
		})
	},
}

func init() {
	tableCmd.Flags().StringVarP(&tableOut, "out", "o", "", "CSV output file (default stdout)")
	tableCmd.Flags().StringVar(&dotOut, "dot", "", "write the characteristic automaton as GraphViz")
}
