package lr

import (
	"fmt"
	"math"

	"github.com/npillmayer/splc/lr/sparse"
)

// ActionKind is the kind of an entry in an ACTION table.
type ActionKind uint8

// Kinds of parser actions. ErrorAction is the zero value and stands for an
// empty table entry.
const (
	ErrorAction ActionKind = iota
	ShiftAction
	ReduceAction
	AcceptAction
)

func (k ActionKind) String() string {
	switch k {
	case ShiftAction:
		return "shift"
	case ReduceAction:
		return "reduce"
	case AcceptAction:
		return "accept"
	}
	return "error"
}

// Action is an entry of an ACTION table. For shift actions, Target is the
// state to shift to; for reduce actions, it is the number of the rule to
// reduce by. For accept and error actions, Target is meaningless.
type Action struct {
	Kind   ActionKind
	Target int
}

// Shift creates a shift action to a state.
func Shift(state int) Action { return Action{Kind: ShiftAction, Target: state} }

// Reduce creates a reduce action for rule no. rule.
func Reduce(rule int) Action { return Action{Kind: ReduceAction, Target: rule} }

// Accept creates an accept action.
func Accept() Action { return Action{Kind: AcceptAction} }

// IsError is true for empty table entries.
func (a Action) IsError() bool {
	return a.Kind == ErrorAction
}

// String returns the action in table cell notation: s<N>, r<N>, acc, or an
// empty string for errors.
func (a Action) String() string {
	switch a.Kind {
	case ShiftAction:
		return fmt.Sprintf("s%d", a.Target)
	case ReduceAction:
		return fmt.Sprintf("r%d", a.Target)
	case AcceptAction:
		return "acc"
	}
	return ""
}

// MaxRule is the largest rule number an ACTION table entry can hold.
const MaxRule = math.MaxInt32 >> 2

// Actions are stored in a sparse matrix as target<<2 | kind.
func (a Action) encode() int32 {
	return int32(a.Target)<<2 | int32(a.Kind)
}

func decodeAction(v int32) Action {
	if v == sparse.DefaultNullValue {
		return Action{}
	}
	return Action{Kind: ActionKind(v & 3), Target: int(v >> 2)}
}

// --- Parse tables ----------------------------------------------------------

// ParseTable holds the ACTION table and the GOTO table for an LR parser.
// Rows are states, columns are terminals (ACTION) or non-terminals (GOTO),
// addressed by symbol name.
//
// A ParseTable is filled once, either by a TableGenerator or by LoadTable.
// After that it is read-only and may be shared between concurrent parsers.
type ParseTable struct {
	terminals    []string
	nonterminals []string
	tcol         map[string]int
	ncol         map[string]int
	actions      *sparse.IntMatrix
	gotos        *sparse.IntMatrix
}

// NewParseTable creates an empty table for a number of states and the given
// column symbols.
func NewParseTable(states int, terminals, nonterminals []string) *ParseTable {
	t := &ParseTable{
		terminals:    append([]string(nil), terminals...),
		nonterminals: append([]string(nil), nonterminals...),
		tcol:         make(map[string]int, len(terminals)),
		ncol:         make(map[string]int, len(nonterminals)),
		actions:      sparse.NewIntMatrix(states, len(terminals), sparse.DefaultNullValue),
		gotos:        sparse.NewIntMatrix(states, len(nonterminals), sparse.DefaultNullValue),
	}
	for j, name := range terminals {
		t.tcol[name] = j
	}
	for j, name := range nonterminals {
		t.ncol[name] = j
	}
	return t
}

// StateCount returns the number of states (rows) of the table.
func (t *ParseTable) StateCount() int {
	return t.actions.M()
}

// Terminals returns the names of the ACTION columns.
func (t *ParseTable) Terminals() []string {
	return t.terminals
}

// NonTerminals returns the names of the GOTO columns.
func (t *ParseTable) NonTerminals() []string {
	return t.nonterminals
}

// Action returns the parser action for a state and a terminal. Unknown
// states or terminals yield an error action.
func (t *ParseTable) Action(state int, terminal string) Action {
	j, ok := t.tcol[terminal]
	if !ok {
		return Action{}
	}
	return decodeAction(t.actions.Value(state, j))
}

// Goto returns the successor state for a state and a non-terminal, if
// the table has an entry for it.
func (t *ParseTable) Goto(state int, nonterminal string) (int, bool) {
	j, ok := t.ncol[nonterminal]
	if !ok {
		return 0, false
	}
	v := t.gotos.Value(state, j)
	if v == t.gotos.NullValue() {
		return 0, false
	}
	return int(v), true
}

// SetAction puts an action into the ACTION table. Shift targets have to be
// states of the table, reduce targets may not exceed MaxRule.
func (t *ParseTable) SetAction(state int, terminal string, a Action) error {
	j, ok := t.tcol[terminal]
	if !ok {
		return fmt.Errorf("no ACTION column for terminal %q", terminal)
	}
	switch a.Kind {
	case ShiftAction:
		if a.Target < 0 || a.Target >= t.StateCount() {
			return fmt.Errorf("shift target %d is not a state of the table", a.Target)
		}
	case ReduceAction:
		if a.Target < 0 || a.Target > MaxRule {
			return fmt.Errorf("reduce target %d out of range", a.Target)
		}
	}
	return t.actions.Set(state, j, a.encode())
}

// SetGoto puts a successor state into the GOTO table.
func (t *ParseTable) SetGoto(state int, nonterminal string, target int) error {
	j, ok := t.ncol[nonterminal]
	if !ok {
		return fmt.Errorf("no GOTO column for non-terminal %q", nonterminal)
	}
	if target < 0 || target >= t.StateCount() {
		return fmt.Errorf("goto target %d is not a state of the table", target)
	}
	return t.gotos.Set(state, j, int32(target))
}

// Size returns the number of entries in the ACTION and GOTO tables.
func (t *ParseTable) Size() (actions int, gotos int) {
	return t.actions.ValueCount(), t.gotos.ValueCount()
}
