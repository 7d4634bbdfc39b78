package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/splc/spl"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Compile SPL programs interactively",
	Long: `Start an interactive session. Each line entered is compiled as a
complete SPL program and its syntax tree is displayed. Quit with <ctrl>D.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fe, err := frontend()
		if err != nil {
			return err
		}
		rl, err := readline.New("splc> ")
		if err != nil {
			return err
		}
		defer rl.Close()
		pterm.Info.Println("Welcome to the SPL REPL")
		tracer().Infof("Quit with <ctrl>D")
		intp := &Intp{frontend: fe, repl: rl}
		intp.REPL()
		return nil
	},
}

// Intp is an interactive session.
type Intp struct {
	frontend *spl.Frontend
	repl     *readline.Instance
}

// REPL reads and compiles lines until end of input.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		intp.Eval(line)
	}
	println("Good bye!")
}

// Eval compiles a line of input and displays the result.
func (intp *Intp) Eval(line string) bool {
	unit, err := intp.frontend.Compile(strings.NewReader(line))
	if unit != nil {
		reportLexErrors(unit.LexErrors)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	renderTree(unit.Tree)
	return true
}
