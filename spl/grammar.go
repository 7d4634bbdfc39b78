package spl

import (
	"sync"

	"github.com/npillmayer/splc/lr"
)

// NonTerminals is the closed set of non-terminals of SPL. Every other symbol
// of the grammar is a terminal.
var NonTerminals = []string{
	"E'", "PROG", "GLOBVARS", "VTYP", "VNAME", "ALGO", "INSTRUC", "COMMAND",
	"ATOMIC", "CONST", "ASSIGN", "CALL", "BRANCH", "TERM", "OP", "ARG",
	"COND", "SIMPLE", "COMPOSIT", "UNOP", "BINOP", "FNAME", "FUNCTIONS",
	"DECL", "HEADER", "FTYP", "BODY", "PROLOG", "EPILOG", "LOCVARS", "SUBFUNCS",
}

var nonterminalSet = func() map[string]bool {
	m := make(map[string]bool, len(NonTerminals))
	for _, n := range NonTerminals {
		m[n] = true
	}
	return m
}()

// IsNonTerminal is true for names of SPL non-terminals.
func IsNonTerminal(name string) bool {
	return nonterminalSet[name]
}

func p(lhs string, rhs ...string) lr.Production {
	return lr.Production{LHS: lhs, RHS: rhs}
}

// Productions is the grammar of SPL. Production 0 is the augmented start
// rule; rule numbers in parse tables refer to positions in this list.
var Productions = []lr.Production{
	p("E'", "PROG"),
	p("PROG", "main", "GLOBVARS", "ALGO", "FUNCTIONS"),
	p("GLOBVARS"),
	p("GLOBVARS", "VTYP", "VNAME", ",", "GLOBVARS"),
	p("VTYP", "num"),
	p("VTYP", "text"),
	p("VNAME", "vtoken"),
	p("ALGO", "begin", "INSTRUC", "end"),
	p("INSTRUC"),
	p("INSTRUC", "COMMAND", ";", "INSTRUC"),
	p("COMMAND", "skip"), // 10
	p("COMMAND", "halt"),
	p("COMMAND", "print", "ATOMIC"),
	p("COMMAND", "ASSIGN"),
	p("COMMAND", "CALL"),
	p("COMMAND", "BRANCH"),
	p("COMMAND", "return", "ATOMIC"),
	p("ATOMIC", "VNAME"),
	p("ATOMIC", "CONST"),
	p("CONST", "ntoken"),
	p("CONST", "ttoken"), // 20
	p("ASSIGN", "VNAME", "<", "input"),
	p("ASSIGN", "VNAME", "=", "TERM"),
	p("CALL", "FNAME", "(", "ATOMIC", ",", "ATOMIC", ",", "ATOMIC", ")"),
	p("BRANCH", "if", "COND", "then", "ALGO", "else", "ALGO"),
	p("TERM", "ATOMIC"),
	p("TERM", "CALL"),
	p("TERM", "OP"),
	p("OP", "UNOP", "(", "ARG", ")"),
	p("OP", "BINOP", "(", "ARG", ",", "ARG", ")"),
	p("ARG", "ATOMIC"), // 30
	p("ARG", "OP"),
	p("COND", "SIMPLE"),
	p("COND", "COMPOSIT"),
	p("SIMPLE", "BINOP", "(", "ATOMIC", ",", "ATOMIC", ")"),
	p("COMPOSIT", "BINOP", "(", "SIMPLE", ",", "SIMPLE", ")"),
	p("COMPOSIT", "UNOP", "(", "SIMPLE", ")"),
	p("UNOP", "not"),
	p("UNOP", "sqrt"),
	p("BINOP", "or"),
	p("BINOP", "and"), // 40
	p("BINOP", "eq"),
	p("BINOP", "grt"),
	p("BINOP", "add"),
	p("BINOP", "sub"),
	p("BINOP", "mul"),
	p("BINOP", "div"),
	p("FNAME", "ftoken"),
	p("FUNCTIONS"),
	p("FUNCTIONS", "DECL", "FUNCTIONS"),
	p("DECL", "HEADER", "BODY"), // 50
	p("HEADER", "FTYP", "FNAME", "(", "VNAME", ",", "VNAME", ",", "VNAME", ")"),
	p("FTYP", "num"),
	p("FTYP", "void"),
	p("BODY", "PROLOG", "LOCVARS", "ALGO", "EPILOG", "SUBFUNCS", "end"),
	p("PROLOG", "{"),
	p("EPILOG", "}"),
	p("LOCVARS", "VTYP", "VNAME", ",", "VTYP", "VNAME", ",", "VTYP", "VNAME", ","),
	p("SUBFUNCS", "FUNCTIONS"),
}

var grammar struct {
	once sync.Once
	g    *lr.Grammar
	err  error
}

// Grammar returns the SPL grammar. It is built once and shared.
func Grammar() (*lr.Grammar, error) {
	grammar.once.Do(func() {
		grammar.g, grammar.err = lr.GrammarFromProductions("SPL", NonTerminals, Productions)
	})
	return grammar.g, grammar.err
}

var table struct {
	once  sync.Once
	table *lr.ParseTable
	err   error
}

// Table returns the SLR(1) parse table for SPL, generated from the grammar.
// It is built once and shared.
func Table() (*lr.ParseTable, error) {
	table.once.Do(func() {
		g, err := Grammar()
		if err != nil {
			table.err = err
			return
		}
		lrgen := lr.NewTableGenerator(lr.Analysis(g))
		if table.err = lrgen.CreateTables(); table.err == nil {
			table.table = lrgen.Table()
		}
	})
	return table.table, table.err
}
