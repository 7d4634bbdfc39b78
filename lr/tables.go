package lr

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/splc/lr/iteratable"
)

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// Compute the closure of an item.
func (ga *LRAnalysis) closure(i Item) *iteratable.Set {
	S := newItemSet()
	S.Add(i)
	return ga.closureSet(S)
}

// Compute the closure of an item set.
// https://www.cs.bgu.ac.il/~comp151/wiki.files/ps6.html#sec-2-7-3
func (ga *LRAnalysis) closureSet(S *iteratable.Set) *iteratable.Set {
	C := S.Copy() // add start items to closure
	C.IterateOnce()
	for C.Next() {
		item := asItem(C.Item())
		A := item.PeekSymbol()           // get symbol A after dot
		if A != nil && !A.IsTerminal() { // A is non-terminal
			R := newItemSet()
			for _, r := range ga.g.FindNonTermRules(A) {
				i, _ := StartItem(r)
				R.Add(i)
			}
			if New := R.Difference(C); !New.Empty() {
				C.Union(New)
			}
		}
	}
	return C
}

func (ga *LRAnalysis) gotoSet(closure *iteratable.Set, A *Symbol) *iteratable.Set {
	// for every item in closure C
	// if item in C:  N -> ... *A ...
	//     advance N -> ... A * ...
	gotoset := newItemSet()
	for _, x := range closure.Values() {
		i := asItem(x)
		if i.PeekSymbol() == A {
			gotoset.Add(i.Advance())
		}
	}
	return gotoset
}

func (ga *LRAnalysis) gotoSetClosure(i *iteratable.Set, A *Symbol) *iteratable.Set {
	gclosure := ga.closureSet(ga.gotoSet(i, A))
	tracer().Debugf("goto(%s) --%s--> %s", itemSetString(i), A, itemSetString(gclosure))
	return gclosure
}

// === CFSM Construction =====================================================

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID     int             // serial ID of this state
	items  *iteratable.Set // configuration items within this state
	Accept bool            // is this an accepting state?
}

// CFSM edge between 2 states, directed and labeled with a grammar symbol
type cfsmEdge struct {
	from  *CFSMState
	to    *CFSMState
	label *Symbol
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	Dump(s.items)
	tracer().Debugf("-------------------------")
}

// Items returns the LR(0) items of a state, ordered by rule.
func (s *CFSMState) Items() []Item {
	vals := s.items.Values()
	items := make([]Item, len(vals))
	for k, x := range vals {
		items[k] = asItem(x)
	}
	return items
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

func (s *CFSMState) containsCompletedStartRule() bool {
	for _, x := range s.items.Values() {
		i := asItem(x)
		if i.rule.Serial == 0 && i.IsComplete() {
			return true
		}
	}
	return false
}

// We need this for the set of states. It sorts states by serial ID.
func stateComparator(s1, s2 interface{}) int {
	c1 := s1.(*CFSMState)
	c2 := s2.(*CFSMState)
	return utils.IntComparator(c1.ID, c2.ID)
}

// CFSM is the characteristic finite state machine for a LR grammar, i.e. the
// LR(0) state diagram. Will be constructed by a TableGenerator.
// Clients normally do not use it directly. Nevertheless, there are some methods
// defined on it, e.g, for debugging purposes.
type CFSM struct {
	g       *Grammar        // this CFSM is for Grammar g
	states  *treeset.Set    // all the states
	edges   *arraylist.List // all the edges between states
	S0      *CFSMState      // start state
	cfsmIds int             // serial IDs for CFSM states
}

// create an empty (initial) CFSM automata.
func emptyCFSM(g *Grammar) *CFSM {
	c := &CFSM{g: g}
	c.states = treeset.NewWith(stateComparator)
	c.edges = arraylist.New()
	return c
}

// Add a state to the CFSM. Checks first if state is present.
func (c *CFSM) addState(iset *iteratable.Set) *CFSMState {
	s := c.findStateByItems(iset)
	if s == nil {
		s = &CFSMState{ID: c.cfsmIds, items: iset}
		c.cfsmIds++
		c.states.Add(s)
	}
	return s
}

// Find a CFSM state by the contained item set.
func (c *CFSM) findStateByItems(iset *iteratable.Set) *CFSMState {
	it := c.states.Iterator()
	for it.Next() {
		s := it.Value().(*CFSMState)
		if s.items.Equals(iset) {
			return s
		}
	}
	return nil
}

func (c *CFSM) addEdge(s0, s1 *CFSMState, sym *Symbol) {
	c.edges.Add(&cfsmEdge{from: s0, to: s1, label: sym})
}

func (c *CFSM) allEdges(s *CFSMState) []*cfsmEdge {
	it := c.edges.Iterator()
	r := make([]*cfsmEdge, 0, 2)
	for it.Next() {
		e := it.Value().(*cfsmEdge)
		if e.from == s {
			r = append(r, e)
		}
	}
	return r
}

// States returns all states of the CFSM, ordered by ID.
func (c *CFSM) States() []*CFSMState {
	vals := c.states.Values()
	states := make([]*CFSMState, len(vals))
	for k, x := range vals {
		states[k] = x.(*CFSMState)
	}
	return states
}

// Successor returns the state reached from s over an edge labeled A, or nil.
func (c *CFSM) Successor(s *CFSMState, A *Symbol) *CFSMState {
	for _, e := range c.allEdges(s) {
		if e.label == A {
			return e.to
		}
	}
	return nil
}

// CFSM2GraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) CFSM2GraphViz(w io.Writer) error {
	var b strings.Builder
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.States() {
		fmt.Fprintf(&b, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s))
	}
	it := c.edges.Iterator()
	for it.Next() {
		edge := it.Value().(*cfsmEdge)
		fmt.Fprintf(&b, "s%03d -> s%03d [label=\"%s\"]\n", edge.from.ID, edge.to.ID,
			escapeGraphviz(edge.label.Name))
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(s *CFSMState) string {
	items := s.Items()
	lines := make([]string, len(items))
	for k, i := range items {
		lines[k] = escapeGraphviz(i.String())
	}
	return strings.Join(lines, "\\l") + "\\l"
}

var graphvizEscaper = strings.NewReplacer(`"`, `\"`, `{`, `\{`, `}`, `\}`,
	`<`, `\<`, `>`, `\>`, `|`, `\|`)

func escapeGraphviz(s string) string {
	return graphvizEscaper.Replace(s)
}

// === Table Generation ======================================================

// TableGenerator is a generator object to construct LR parser tables.
// Clients usually create a Grammar G, then a LRAnalysis-object for G,
// and then a table generator. TableGenerator.CreateTables() constructs
// the CFSM and parser tables for an SLR(1)-parser recognizing grammar G.
type TableGenerator struct {
	g         *Grammar
	ga        *LRAnalysis
	dfa       *CFSM
	table     *ParseTable
	conflicts []Conflict
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LRAnalysis) *TableGenerator {
	lrgen := &TableGenerator{}
	lrgen.g = ga.Grammar()
	lrgen.ga = ga
	return lrgen
}

// CFSM returns the characteristic finite state machine (CFSM) for a grammar.
// Usually clients call lrgen.CreateTables() beforehand, but it is possible
// to call lrgen.CFSM() directly. The CFSM will be created, if it has not
// been constructed previously.
func (lrgen *TableGenerator) CFSM() *CFSM {
	if lrgen.dfa == nil {
		lrgen.dfa = lrgen.buildCFSM()
	}
	return lrgen.dfa
}

// Table returns the parse table. The table has to be built by calling
// CreateTables() previously.
func (lrgen *TableGenerator) Table() *ParseTable {
	if lrgen.table == nil {
		tracer().P("lr", "gen").Errorf("tables not yet initialized")
	}
	return lrgen.table
}

// HasConflicts is true if the grammar is not SLR(1).
func (lrgen *TableGenerator) HasConflicts() bool {
	return len(lrgen.conflicts) > 0
}

// Conflicts returns the conflicts found during table construction.
func (lrgen *TableGenerator) Conflicts() []Conflict {
	return lrgen.conflicts
}

// CreateTables creates the necessary data structures for an SLR parser.
// If the grammar is not SLR(1), a *ConflictError is returned, and the table
// must not be used for parsing.
func (lrgen *TableGenerator) CreateTables() error {
	lrgen.dfa = lrgen.buildCFSM()
	var err error
	if lrgen.table, lrgen.conflicts, err = lrgen.buildSLR1Table(); err != nil {
		return err
	}
	if len(lrgen.conflicts) > 0 {
		return &ConflictError{Grammar: lrgen.g.Name, Conflicts: lrgen.conflicts}
	}
	tracer().Infof("SLR(1) tables for %s have %d states", lrgen.g.Name, lrgen.table.StateCount())
	return nil
}

// AcceptingStates returns all states of the CFSM which represent an accept action.
// Clients have to call CreateTables() first.
func (lrgen *TableGenerator) AcceptingStates() []int {
	if lrgen.dfa == nil {
		tracer().Errorf("tables not yet generated; call CreateTables() first")
		return nil
	}
	acc := make([]int, 0, 1)
	for _, state := range lrgen.dfa.States() {
		if state.Accept {
			acc = append(acc, state.ID)
		}
	}
	return acc
}

// Construct the characteristic finite state machine CFSM for a grammar.
// States are numbered in order of discovery, the start state being 0.
func (lrgen *TableGenerator) buildCFSM() *CFSM {
	tracer().Debugf("=== build CFSM ==================================================")
	G := lrgen.g
	cfsm := emptyCFSM(G)
	item, sym := StartItem(G.rules[0])
	tracer().Debugf("Start item=%v/%v", item, sym)
	cfsm.S0 = cfsm.addState(lrgen.ga.closure(item))
	cfsm.S0.Dump()
	S := treeset.NewWith(stateComparator)
	S.Add(cfsm.S0)
	for S.Size() > 0 {
		s := S.Values()[0].(*CFSMState)
		S.Remove(s)
		G.EachSymbol(func(A *Symbol) interface{} {
			gotoset := lrgen.ga.gotoSetClosure(s.items, A)
			if gotoset.Empty() {
				return nil
			}
			snew := cfsm.findStateByItems(gotoset)
			if snew == nil {
				snew = cfsm.addState(gotoset)
				snew.Accept = snew.containsCompletedStartRule()
				S.Add(snew)
				snew.Dump()
			}
			cfsm.addEdge(s, snew, A)
			return nil
		})
	}
	return cfsm
}

// For building the tables we iterate over all the states of the CFSM.
// An inner loop iterates over all the items within a CFSM-state.
// If an item has a terminal immediately after the dot, we produce a shift
// entry. If an item's dot is behind the complete RHS of a rule, then we
// produce a reduce-entry for the rule for each terminal from FOLLOW(LHS),
// or an accept-entry for the start rule.
// Edges labeled with non-terminals become GOTO entries.
//
// Every (state, terminal) pair may have at most one action. Additional
// actions are recorded as conflicts.
func (lrgen *TableGenerator) buildSLR1Table() (*ParseTable, []Conflict, error) {
	var terminals, nonterminals []string
	for _, A := range lrgen.g.terminals {
		terminals = append(terminals, A.Name)
	}
	for _, A := range lrgen.g.nonterminals {
		if A != lrgen.g.Start() {
			nonterminals = append(nonterminals, A.Name)
		}
	}
	states := lrgen.dfa.States()
	tracer().Infof("ACTION table of size %d x %d", len(states), len(terminals))
	table := NewParseTable(len(states), terminals, nonterminals)
	var conflicts []Conflict
	var err error
	enter := func(state *CFSMState, A *Symbol, a Action) {
		if a1 := table.Action(state.ID, A.Name); !a1.IsError() {
			if a1 != a {
				tracer().Debugf("    conflict in state %d on %s: %s/%s", state.ID, A, a1, a)
				conflicts = append(conflicts, Conflict{
					State: state.ID, Terminal: A.Name, Actions: [2]Action{a1, a},
				})
			}
			return
		}
		if e := table.SetAction(state.ID, A.Name, a); e != nil && err == nil {
			err = fmt.Errorf("state %d, %s: %w", state.ID, A.Name, e)
		}
	}
	for _, state := range states {
		tracer().Debugf("--- state %d --------------------------------", state.ID)
		for _, i := range state.Items() {
			A := i.PeekSymbol()
			if A != nil && A.IsTerminal() { // create a shift entry
				if next := lrgen.dfa.Successor(state, A); next != nil {
					enter(state, A, Shift(next.ID))
				}
			} else if A == nil { // we are at the end of a rule
				if i.rule.Serial == 0 {
					enter(state, lrgen.g.EOF(), Accept())
					continue
				}
				lookaheads := lrgen.ga.Follow(i.rule.LHS)
				tracer().Debugf("    Follow(%v) = %v", i.rule.LHS, lookaheads)
				for _, la := range lookaheads.Values() {
					enter(state, lrgen.g.SymbolByValue(la.(int)), Reduce(i.rule.Serial))
				}
			}
		}
		for _, e := range lrgen.dfa.allEdges(state) {
			if !e.label.IsTerminal() {
				if gerr := table.SetGoto(state.ID, e.label.Name, e.to.ID); gerr != nil && err == nil {
					err = fmt.Errorf("state %d, %s: %w", state.ID, e.label.Name, gerr)
				}
			}
		}
	}
	return table, conflicts, err
}

// --- Conflicts -------------------------------------------------------------

// Conflict is a pair of competing actions for a (state, terminal) entry.
type Conflict struct {
	State    int
	Terminal string
	Actions  [2]Action
}

func (c Conflict) String() string {
	return fmt.Sprintf("state %d on %q: %s/%s", c.State, c.Terminal, c.Actions[0], c.Actions[1])
}

// ConflictError is returned if a grammar cannot be parsed with an SLR(1) table.
type ConflictError struct {
	Grammar   string
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("grammar %s is not SLR(1): %d conflicts", e.Grammar, len(e.Conflicts))
	if len(e.Conflicts) > 0 {
		msg += ", first in " + e.Conflicts[0].String()
	}
	return msg
}
