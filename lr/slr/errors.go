package slr

import (
	"fmt"

	"github.com/npillmayer/splc/lexer"
)

// ErrorKind classifies syntax errors.
type ErrorKind int

// Kinds of syntax errors. Only NoAction is caused by the input; the other
// kinds indicate a parse table inconsistent with the grammar.
const (
	NoAction       ErrorKind = iota // no table entry for state and lookahead
	NoGoto                          // no goto entry after a reduce
	StackUnderflow                  // reduce pops more entries than present
	UnknownRule                     // reduce by a rule missing from the grammar
)

func (k ErrorKind) String() string {
	switch k {
	case NoAction:
		return "NoAction"
	case NoGoto:
		return "NoGoto"
	case StackUnderflow:
		return "StackUnderflow"
	case UnknownRule:
		return "UnknownRule"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// SyntaxError is a fatal parse error.
type SyntaxError struct {
	Kind   ErrorKind
	State  int         // state on top of the stack
	Symbol string      // lookahead terminal, or non-terminal for NoGoto
	Token  lexer.Token // offending token, for NoAction
	AtEOF  bool        // for NoAction: lookahead is the end of input
	Rule   int         // rule being reduced, or -1
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case NoAction:
		if e.AtEOF {
			return fmt.Sprintf("syntax error: unexpected end of input in state %d", e.State)
		}
		return fmt.Sprintf("syntax error on line %d: unexpected %q (%s) in state %d",
			e.Token.Line(), e.Token.Lexeme(), e.Symbol, e.State)
	case NoGoto:
		return fmt.Sprintf("parse table has no goto for state %d and %s after reducing rule %d",
			e.State, e.Symbol, e.Rule)
	case StackUnderflow:
		return fmt.Sprintf("parse stack underflow reducing rule %d in state %d", e.Rule, e.State)
	case UnknownRule:
		return fmt.Sprintf("parse table references unknown rule %d in state %d", e.Rule, e.State)
	}
	return fmt.Sprintf("syntax error (%s) in state %d", e.Kind, e.State)
}
