package splc

import "fmt"

// --- Token classes ---------------------------------------------------------

// TokClass is a category type for a token. Classes are a closed set; the
// order of the constants is the order artifacts and diagnostics use.
type TokClass int

// Token classes of the SPL lexer.
const (
	Delimiter TokClass = iota
	VariableName
	FunctionName
	Operator
	Text
	Number
	Keyword
	Error
)

var classNames = [...]string{
	Delimiter:    "DELIMITER",
	VariableName: "VARIABLE_NAME",
	FunctionName: "FUNCTION_NAME",
	Operator:     "OPERATOR",
	Text:         "TEXT",
	Number:       "NUMBER",
	Keyword:      "KEYWORD",
	Error:        "ERROR",
}

func (c TokClass) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("TokClass(%d)", int(c))
	}
	return classNames[c]
}

// ParseTokClass returns the class for a class name as written by String.
func ParseTokClass(name string) (TokClass, error) {
	for c, n := range classNames {
		if n == name {
			return TokClass(c), nil
		}
	}
	return Error, fmt.Errorf("unknown token class %q", name)
}

// --- Terminals -------------------------------------------------------------

// EOF is the grammar terminal representing the end of input.
const EOF = "$"

// Placeholder terminals for token classes whose lexemes vary.
const (
	VToken = "vtoken" // variable names
	NToken = "ntoken" // numbers
	TToken = "ttoken" // text literals
	FToken = "ftoken" // function names
)

// TerminalFor returns the grammar terminal a token of class c with the given
// lexeme stands for. Keywords, delimiters and operators are spelled like
// their lexeme; the other classes map to a placeholder terminal.
// Error tokens map to their class name, which never occurs in a grammar.
func TerminalFor(c TokClass, lexeme string) string {
	switch c {
	case VariableName:
		return VToken
	case Number:
		return NToken
	case Text:
		return TToken
	case FunctionName:
		return FToken
	case Keyword, Delimiter, Operator:
		return lexeme
	}
	return c.String()
}

// --- Serial numbers --------------------------------------------------------

// Serial hands out increasing identifiers. A Serial is owned by a single
// run (one tokenization or one parse) and must not be shared between
// concurrent runs.
type Serial struct {
	next int
}

// NewSerial creates a counter whose first identifier is start.
func NewSerial(start int) *Serial {
	return &Serial{next: start}
}

// Next returns the next identifier.
func (s *Serial) Next() int {
	id := s.next
	s.next++
	return id
}

// Peek returns the identifier Next will return, without consuming it.
func (s *Serial) Peek() int {
	return s.next
}
