/*
Command splc is the command line front end of the SPL compiler.

	splc lex     prog.spl          write the token stream artifact
	splc parse   [tokens.xml]      parse a token stream artifact, write the tree
	splc compile prog.spl          run both stages
	splc table   [--dot cfsm.dot]  print the SLR(1) table as CSV
	splc tree    prog.spl          display the syntax tree
	splc repl                      compile lines interactively

Settings are read from a TOML file given with --config.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'splc.cli'.
func tracer() tracing.Trace {
	return tracing.Select("splc.cli")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
