package lr

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/splc"
)

// --- Symbols ---------------------------------------------------------------

// Symbol is a grammar symbol, either a terminal or a non-terminal.
// Symbols are numbered in order of first appearance in the grammar; the
// number is available as Value.
type Symbol struct {
	Name     string
	Value    int
	terminal bool
}

// IsTerminal returns true if this symbol is a terminal.
func (s *Symbol) IsTerminal() bool {
	return s.terminal
}

func (s *Symbol) String() string {
	return s.Name
}

// --- Rules -----------------------------------------------------------------

// Rule is a production of a grammar, numbered by its position in the grammar.
type Rule struct {
	Serial int
	LHS    *Symbol
	rhs    []*Symbol
}

// RHS returns the right hand side of a rule. Callers must not modify it.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// IsEps returns true if this is an epsilon-rule.
func (r *Rule) IsEps() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	names := make([]string, len(r.rhs))
	for i, sym := range r.rhs {
		names[i] = sym.Name
	}
	return fmt.Sprintf("%d: %s ::= [%s]", r.Serial, r.LHS.Name, strings.Join(names, " "))
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a context free grammar, augmented by a start rule with serial 0.
// Grammars are immutable once built and may be shared.
type Grammar struct {
	Name         string
	rules        []*Rule
	terminals    []*Symbol // in order of first appearance, end marker last
	nonterminals []*Symbol // in order of first appearance
	symbols      map[string]*Symbol
	bynumber     []*Symbol
	eof          *Symbol
}

// Size returns the number of rules in the grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule no. i, or nil.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Start returns the augmented start symbol, i.e. the LHS of rule 0.
func (g *Grammar) Start() *Symbol {
	return g.rules[0].LHS
}

// EOF returns the end-of-input terminal.
func (g *Grammar) EOF() *Symbol {
	return g.eof
}

// SymbolByName returns the symbol for a name, or nil.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.symbols[name]
}

// SymbolByValue returns the symbol numbered v, or nil.
func (g *Grammar) SymbolByValue(v int) *Symbol {
	if v < 0 || v >= len(g.bynumber) {
		return nil
	}
	return g.bynumber[v]
}

// Terminals returns the terminal symbols, in order of first appearance.
// The end-of-input marker is last.
func (g *Grammar) Terminals() []*Symbol {
	return g.terminals
}

// NonTerminals returns the non-terminal symbols, in order of first appearance.
// The augmented start symbol is first.
func (g *Grammar) NonTerminals() []*Symbol {
	return g.nonterminals
}

// EachSymbol iterates over all terminals, then all non-terminals.
func (g *Grammar) EachSymbol(mapper func(A *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.terminals {
		r = append(r, mapper(A))
	}
	for _, A := range g.nonterminals {
		r = append(r, mapper(A))
	}
	return r
}

// FindNonTermRules returns all rules with LHS A.
func (g *Grammar) FindNonTermRules(A *Symbol) []*Rule {
	var rules []*Rule
	for _, r := range g.rules {
		if r.LHS == A {
			rules = append(rules, r)
		}
	}
	return rules
}

// Dump is a debugging helper, tracing all the rules of g.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%s", r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// Fingerprint returns a hash over the rules of g. Grammars with identical
// rules have identical fingerprints, regardless of their name.
func (g *Grammar) Fingerprint() (string, error) {
	type production struct {
		LHS string
		RHS []string
	}
	var fp struct {
		Productions []production
		Terminals   []string
	}
	for _, r := range g.rules {
		p := production{LHS: r.LHS.Name, RHS: make([]string, len(r.rhs))}
		for i, sym := range r.rhs {
			p.RHS[i] = sym.Name
		}
		fp.Productions = append(fp.Productions, p)
	}
	for _, t := range g.terminals {
		fp.Terminals = append(fp.Terminals, t.Name)
	}
	hash, err := structhash.Hash(fp, 1)
	if err != nil {
		return "", fmt.Errorf("cannot fingerprint grammar %s: %w", g.Name, err)
	}
	return strings.TrimPrefix(hash, "v1_"), nil
}

// --- Grammar builder -------------------------------------------------------

// GrammarBuilder is a builder type for grammars. Clients add rules, each
// starting with a call to LHS(...):
//
//     b := lr.NewGrammarBuilder("G")
//     b.LHS("S").N("A").T("x").End()  // S  ->  A x
//     b.LHS("A").T("y").End()         // A  ->  y
//     b.LHS("A").Epsilon()            // A  ->
//     g, err := b.Grammar()
//
// The first rule's LHS is taken to be the start symbol. The builder will
// augment the grammar with a rule 0, deriving the start symbol from a
// symbol named after it with a prime appended.
type GrammarBuilder struct {
	g       *Grammar
	rule    *Rule
	kinds   map[string]bool // symbol name -> is terminal
	err     error
	augment bool
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		g:       newGrammar(gname),
		kinds:   make(map[string]bool),
		augment: true,
	}
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:    name,
		symbols: make(map[string]*Symbol),
	}
}

// LHS starts a new rule for non-terminal name.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	if gb.augment && len(gb.g.rules) == 0 {
		start := gb.symbol(name+"'", false)
		gb.g.rules = append(gb.g.rules, &Rule{
			Serial: 0,
			LHS:    start,
			rhs:    []*Symbol{gb.symbol(name, false)},
		})
	}
	gb.rule = &Rule{
		Serial: len(gb.g.rules),
		LHS:    gb.symbol(name, false),
	}
	return &RuleBuilder{gb: gb, rule: gb.rule}
}

func (gb *GrammarBuilder) symbol(name string, terminal bool) *Symbol {
	if sym, ok := gb.g.symbols[name]; ok {
		if sym.terminal != terminal && gb.err == nil {
			gb.err = fmt.Errorf("symbol %q used as terminal and as non-terminal", name)
		}
		return sym
	}
	sym := &Symbol{Name: name, terminal: terminal}
	gb.g.symbols[name] = sym
	if terminal {
		gb.g.terminals = append(gb.g.terminals, sym)
	} else {
		gb.g.nonterminals = append(gb.g.nonterminals, sym)
	}
	return sym
}

// Grammar returns the grammar constructed so far. After this call the
// builder must not be used any more.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	g := gb.g
	if len(g.rules) == 0 {
		return nil, fmt.Errorf("grammar %s has no rules", g.Name)
	}
	if _, ok := g.symbols[splc.EOF]; ok {
		return nil, fmt.Errorf("grammar %s uses reserved symbol %q", g.Name, splc.EOF)
	}
	g.eof = &Symbol{Name: splc.EOF, terminal: true}
	g.symbols[splc.EOF] = g.eof
	g.terminals = append(g.terminals, g.eof)
	for _, A := range g.nonterminals {
		if A != g.Start() && len(g.FindNonTermRules(A)) == 0 {
			return nil, fmt.Errorf("non-terminal %s of grammar %s has no rules", A.Name, g.Name)
		}
	}
	g.EachSymbol(func(A *Symbol) interface{} {
		A.Value = len(g.bynumber)
		g.bynumber = append(g.bynumber, A)
		return nil
	})
	return g, nil
}

// RuleBuilder adds symbols to the right hand side of a rule.
type RuleBuilder struct {
	gb   *GrammarBuilder
	rule *Rule
}

// N appends a non-terminal to the RHS of the rule.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, rb.gb.symbol(name, false))
	return rb
}

// T appends a terminal to the RHS of the rule.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, rb.gb.symbol(name, true))
	return rb
}

// End ends the rule.
func (rb *RuleBuilder) End() *Rule {
	rb.gb.g.rules = append(rb.gb.g.rules, rb.rule)
	rb.gb.rule = nil
	return rb.rule
}

// Epsilon sets an empty RHS and ends the rule.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rule.rhs = nil
	return rb.End()
}

// --- Grammars from production tables ---------------------------------------

// Production is a grammar rule given as plain symbol names.
type Production struct {
	LHS string
	RHS []string
}

// GrammarFromProductions creates a grammar from a list of productions.
// Production 0 is expected to be the augmented start rule. A symbol is a
// non-terminal if and only if it is a member of nonterminals; every other
// symbol is a terminal.
func GrammarFromProductions(name string, nonterminals []string, productions []Production) (*Grammar, error) {
	if len(productions) == 0 {
		return nil, fmt.Errorf("grammar %s has no productions", name)
	}
	isN := make(map[string]bool, len(nonterminals))
	for _, n := range nonterminals {
		isN[n] = true
	}
	gb := NewGrammarBuilder(name)
	gb.augment = false
	for i, p := range productions {
		if !isN[p.LHS] {
			return nil, fmt.Errorf("production %d of grammar %s: LHS %q is not a non-terminal", i, name, p.LHS)
		}
		rb := gb.LHS(p.LHS)
		for _, sym := range p.RHS {
			if isN[sym] {
				rb.N(sym)
			} else {
				rb.T(sym)
			}
		}
		rb.End()
	}
	return gb.Grammar()
}
