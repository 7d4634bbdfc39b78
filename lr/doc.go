/*
Package lr implements prerequisites for LR parsing: grammars, grammar
analysis, SLR(1) table construction, and parse tables.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Grammars may
contain epsilon-productions.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("x").End()  // S  ->  A x
    b.LHS("A").T("y").End()         // A  ->  y
    b.LHS("A").Epsilon()            // A  ->
    g, err := b.Grammar()

This results in the following trivial grammar, augmented by a start rule:

   g.Dump()

   0: S' ::= [S]
   1: S ::= [A x]
   2: A ::= [y]
   3: A ::= []

Grammars for fixed languages are more conveniently created from a table of
productions with GrammarFromProductions. Here, a symbol is a non-terminal if
and only if it is a member of a given set of non-terminals.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an LRAnalysis object, which computes FIRST and
FOLLOW sets for the grammar and determines all epsilon-derivable
non-terminals.

    ga := lr.Analysis(g)
    ga.First(g.SymbolByName("S"))  // set of symbol values for {x, y}

Parser Construction

Using grammar analysis as input, a bottom-up parser can be constructed.
First a characteristic finite state machine (CFSM) is built from the
grammar. The CFSM will then be transformed into a GOTO table
and an ACTION table for a SLR(1) parser. The CFSM will not be thrown away,
but is made available to the client. This is intended
for debugging purposes. It can be exported to Graphviz's Dot-format.

Example:

    lrgen := lr.NewTableGenerator(ga)  // ga is a grammar analysis, see above
    err := lrgen.CreateTables()        // construct SLR(1) parser tables
    table := lrgen.Table()

Parse tables may as well be loaded from a semicolon-separated resource with
LoadTable, and written to one with WriteCSV.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'splc.lr'.
func tracer() tracing.Trace {
	return tracing.Select("splc.lr")
}
