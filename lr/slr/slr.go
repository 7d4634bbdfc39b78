/*
Package slr provides a table driven shift-reduce parser. Clients have to use
the tools of package lr to prepare the necessary parse table, either by
generating it from a grammar or by loading it from a table resource.
The parser utilizes the table to create a syntax tree for a list of tokens.

The main focus for this implementation is adaptability and on-the-fly usage.
Clients are able to construct the parse tables from a grammar and use the
parser directly, without a code-generation or compile step.

Usage

Clients construct a grammar, usually by using a grammar builder:

	b := lr.NewGrammarBuilder("G")
	b.LHS("S").N("A").T("x").End()   // S  -> A x
	b.LHS("A").T("y").End()          // A  -> y
	b.LHS("A").Epsilon()             // A  ->
	g, err := b.Grammar()

This grammar is subjected to grammar analysis and table generation.

	lrgen := lr.NewTableGenerator(lr.Analysis(g))
	if err := lrgen.CreateTables(); err != nil { ... }  // cannot use an SLR parser

Finally parse some input:

	p := slr.NewParser(g, lrgen.Table())
	tree, err := p.Parse(tokens)

A Parser holds no state of its own besides the grammar and the table, both of
which are read-only. One parser may therefore serve any number of concurrent
parses.

The parser is strict: the first token without a table entry aborts the
parse with a *SyntaxError. No error recovery is attempted.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slr

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splc"
	"github.com/npillmayer/splc/lexer"
	"github.com/npillmayer/splc/lr"
	"github.com/npillmayer/splc/syntree"
)

// tracer traces with key 'splc.lr'.
func tracer() tracing.Trace {
	return tracing.Select("splc.lr")
}

// Parser is an SLR(1)-parser type. Create and initialize one with slr.NewParser(...)
type Parser struct {
	G       *lr.Grammar
	table   *lr.ParseTable
	observe func(Step)
}

// Option configures a parser.
type Option func(*Parser)

// Observe sets a function to be called for every step of a parse, before
// the step is executed. It is called synchronously from within Parse.
func Observe(f func(Step)) Option {
	return func(p *Parser) {
		p.observe = f
	}
}

// Step describes a single step of the parser, for diagnostic purposes.
type Step struct {
	State      int       // state on top of the state stack
	Symbol     string    // lookahead symbol
	Action     lr.Action // action to perform
	StateDepth int       // length of the state stack
	NodeDepth  int       // length of the node stack
}

// NewParser creates an SLR(1) parser for a grammar and its parse table.
func NewParser(g *lr.Grammar, table *lr.ParseTable, opts ...Option) *Parser {
	parser := &Parser{
		G:     g,
		table: table,
	}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// Parse parses a list of tokens, as produced by the lexer, and returns the
// syntax tree. The end of input is represented by the end marker symbol
// splc.EOF. The root of the tree is labeled with the augmented start symbol
// of the grammar.
//
// If the parse fails, no tree is returned. The error is a *SyntaxError for
// input the parser cannot accept, as well as for inconsistencies between
// the parse table and the grammar.
func (p *Parser) Parse(tokens []lexer.Token) (*syntree.Tree, error) {
	if p.G == nil || p.table == nil {
		tracer().Errorf("SLR(1)-parser not initialized")
		return nil, fmt.Errorf("SLR(1)-parser not initialized")
	}
	r := p.newRun(tokens)
	if err := r.loop(); err != nil {
		tracer().Errorf("%s", err.Error())
		return nil, err
	}
	return syntree.NewTree(r.root)
}

// run holds the mutable state of a single parse: the state stack and the
// node stack, which always have the same size, and the serial for node ids.
type run struct {
	p      *Parser
	tokens []lexer.Token
	pos    int
	states *arraystack.Stack
	nodes  *arraystack.Stack
	ids    *splc.Serial
	root   *syntree.Node
}

func (p *Parser) newRun(tokens []lexer.Token) *run {
	r := &run{
		p:      p,
		tokens: tokens,
		states: arraystack.New(),
		nodes:  arraystack.New(),
		ids:    splc.NewSerial(1),
	}
	r.root = syntree.NewInner(r.ids.Next(), p.G.Start().Name)
	r.states.Push(0)
	r.nodes.Push(r.root)
	return r
}

// lookahead returns the current token and its terminal symbol. At the end
// of input, the token is nil and the symbol is splc.EOF.
func (r *run) lookahead() (*lexer.Token, string) {
	if r.pos >= len(r.tokens) {
		return nil, splc.EOF
	}
	return &r.tokens[r.pos], r.tokens[r.pos].Terminal()
}

// http://www.cse.unt.edu/~sweany/CSCE3650/HANDOUTS/LRParseAlg.pdf
func (r *run) loop() error {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	for {
		state := r.top()
		token, a := r.lookahead()
		action := r.p.table.Action(state, a)
		tracer().Debugf("action(%d,%q) = %s", state, a, valstring(action))
		if r.p.observe != nil {
			r.p.observe(Step{
				State:      state,
				Symbol:     a,
				Action:     action,
				StateDepth: r.states.Size(),
				NodeDepth:  r.nodes.Size(),
			})
		}
		switch action.Kind {
		case lr.AcceptAction:
			tracer().Infof("input accepted, %d nodes", r.ids.Peek()-1)
			return nil
		case lr.ShiftAction:
			if token == nil { // table shifts the end marker
				return r.noAction(state, a, token)
			}
			r.shift(action.Target, a, *token)
		case lr.ReduceAction:
			if err := r.reduce(action.Target); err != nil {
				return err
			}
		default:
			return r.noAction(state, a, token)
		}
	}
}

func (r *run) top() int {
	s, _ := r.states.Peek()
	return s.(int)
}

func (r *run) topNode() *syntree.Node {
	n, _ := r.nodes.Peek()
	return n.(*syntree.Node)
}

// shift creates a leaf for the lookahead token. The leaf is appended to the
// node on top of the node stack; a later reduce will move it to its final
// parent.
func (r *run) shift(target int, a string, token lexer.Token) {
	leaf := syntree.NewLeaf(r.ids.Next(), a, token)
	r.topNode().AppendChild(leaf)
	r.states.Push(target)
	r.nodes.Push(leaf)
	r.pos++
	tracer().Debugf("shift %v, next state = %d", leaf, target)
}

// reduce performs a reduce action for a rule
//
//    LHS --> X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn are represented on the stacks as
//
//    [TOS]  Sn(Xn) ... S1(X1)  ...
//
// Every node on the node stack is the last child of the node below it. The
// nodes for X1 … Xn are popped and become the children of a new node for LHS,
// which is appended to the node exposed on top of the stack.
func (r *run) reduce(ruleno int) error {
	rule := r.p.G.Rule(ruleno)
	if rule == nil {
		return &SyntaxError{Kind: UnknownRule, State: r.top(), Rule: ruleno}
	}
	tracer().Debugf("reduce %v", rule)
	k := len(rule.RHS())
	if r.states.Size() <= k || r.nodes.Size() <= k {
		return &SyntaxError{Kind: StackUnderflow, State: r.top(), Symbol: rule.LHS.Name, Rule: ruleno}
	}
	handle := make([]*syntree.Node, k)
	for i := k - 1; i >= 0; i-- {
		r.states.Pop()
		x, _ := r.nodes.Pop()
		n := x.(*syntree.Node)
		r.topNode().Detach(n)
		handle[i] = n
	}
	lhs := syntree.NewInner(r.ids.Next(), rule.LHS.Name)
	for _, n := range handle {
		lhs.AppendChild(n)
	}
	state := r.top()
	nextstate, ok := r.p.table.Goto(state, rule.LHS.Name)
	if !ok {
		return &SyntaxError{Kind: NoGoto, State: state, Symbol: rule.LHS.Name, Rule: ruleno}
	}
	r.topNode().AppendChild(lhs)
	r.states.Push(nextstate)
	r.nodes.Push(lhs)
	tracer().Debugf("reduced to %v, next state = %d", lhs, nextstate)
	return nil
}

func (r *run) noAction(state int, a string, token *lexer.Token) error {
	err := &SyntaxError{Kind: NoAction, State: state, Symbol: a, Rule: -1}
	if token != nil {
		err.Token = *token
	} else {
		err.AtEOF = true
	}
	return err
}

// valstring is a short helper to stringify an action table entry.
func valstring(a lr.Action) string {
	if a.IsError() {
		return "<none>"
	}
	return "<" + a.String() + ">"
}
