package lexer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/splc"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// --- Categories ------------------------------------------------------------

// A category couples a token class with the pattern its lexemes have to
// match completely.
type category struct {
	class   splc.TokClass
	pattern string
}

var keywords = []string{
	"begin", "halt", "if", "input", "print", "return", "text",
	"then", "void", "else", "end", "main", "num", "skip",
}

var wordOperators = []string{
	"eq", "mul", "not", "sqrt", "sub", "and", "add", "div", "grt", "or",
}

// categories lists the classes in order of precedence. A candidate string
// is assigned the first class whose pattern matches all of it.
var categories = []category{
	{splc.Delimiter, alternatives(literals(",", ";", "(", ")", "{", "}"))},
	{splc.FunctionName, `F_[a-z]([a-z]|[0-9])*`},
	{splc.VariableName, `V_[a-z]([a-z]|[0-9])*`},
	{splc.Keyword, alternatives(keywords)},
	{splc.Number, alternatives([]string{
		`0`,
		`0\.[0-9]*[1-9]`,
		`\-0\.[0-9]*[1-9]`,
		`[1-9][0-9]*`,
		`\-[1-9][0-9]*`,
		`[1-9][0-9]*\.[0-9]*[1-9]`,
		`\-[1-9][0-9]*\.[0-9]*[1-9]`,
	})},
	{splc.Operator, alternatives(append(append([]string{}, wordOperators...), literals("<", "=")...))},
	{splc.Text, `\"[A-Z]` + upTo(7, `[a-z]`) + `\"`},
}

// literals escapes every rune of every literal, making them safe to use
// within a pattern.
func literals(lits ...string) []string {
	r := make([]string, len(lits))
	for i, lit := range lits {
		r[i] = "\\" + strings.Join(strings.Split(lit, ""), "\\")
	}
	return r
}

func alternatives(alts []string) string {
	return strings.Join(alts, "|")
}

// upTo creates a pattern matching 0…n repetitions of p. lexmachine does not
// support bounded repetition, so we nest optional groups.
func upTo(n int, p string) string {
	if n == 0 {
		return ""
	}
	return "(" + p + upTo(n-1, p) + ")?"
}

// --- Classifier ------------------------------------------------------------

// Classifier maps candidate strings to token classes.
// A Classifier is read-only after construction and may be shared between
// goroutines.
type Classifier struct {
	all    *lexmachine.Lexer                   // all classes, in order of precedence
	single map[splc.TokClass]*lexmachine.Lexer // one DFA per class
}

// NewClassifier compiles the DFAs for all token classes.
// It will return an error if compiling a DFA failed.
func NewClassifier() (*Classifier, error) {
	c := &Classifier{
		all:    lexmachine.NewLexer(),
		single: make(map[splc.TokClass]*lexmachine.Lexer, len(categories)),
	}
	for _, cat := range categories {
		c.all.Add([]byte(cat.pattern), makeToken(cat.class))
		lx := lexmachine.NewLexer()
		lx.Add([]byte(cat.pattern), makeToken(cat.class))
		if err := lx.Compile(); err != nil {
			tracer().Errorf("error compiling DFA for %s: %v", cat.class, err)
			return nil, fmt.Errorf("compiling DFA for %s: %w", cat.class, err)
		}
		c.single[cat.class] = lx
	}
	if err := c.all.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, fmt.Errorf("compiling classifier DFA: %w", err)
	}
	return c, nil
}

// makeToken is an action which wraps a scanned match into a token carrying
// the class as its type.
func makeToken(class splc.TokClass) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(class), string(m.Bytes), m), nil
	}
}

// Classify returns the class of a candidate string. If the candidate
// matches none of the classes, false is returned.
//
// The DFA resolves ties between patterns matching the same (full) length in
// favour of the pattern added first, which gives us the precedence order of
// the classes.
func (c *Classifier) Classify(s string) (splc.TokClass, bool) {
	typ, ok := fullMatch(c.all, s)
	if !ok {
		return splc.Error, false
	}
	return splc.TokClass(typ), true
}

// Is checks if a candidate string is a complete lexeme of class cl.
func (c *Classifier) Is(cl splc.TokClass, s string) bool {
	lx, ok := c.single[cl]
	if !ok {
		return false
	}
	_, ok = fullMatch(lx, s)
	return ok
}

// fullMatch runs a DFA on s and reports the token type if the longest
// match spans all of s.
func fullMatch(lx *lexmachine.Lexer, s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	scan, err := lx.Scanner([]byte(s))
	if err != nil {
		return 0, false
	}
	tok, err, eos := scan.Next()
	if err != nil || eos || tok == nil {
		return 0, false
	}
	token := tok.(*lexmachine.Token)
	if len(token.Lexeme) != len(s) {
		return 0, false
	}
	return token.Type, true
}

// --- Default classifier ----------------------------------------------------

var defaultClassifier struct {
	once sync.Once
	c    *Classifier
}

// DefaultClassifier returns a shared classifier, compiled on first use.
// The patterns are fixed, therefore a compile failure is a programming
// error and DefaultClassifier panics.
func DefaultClassifier() *Classifier {
	defaultClassifier.once.Do(func() {
		c, err := NewClassifier()
		if err != nil {
			panic(fmt.Sprintf("lexer: cannot compile classifier: %v", err))
		}
		defaultClassifier.c = c
	})
	return defaultClassifier.c
}

// Classify classifies a candidate string using the default classifier.
func Classify(s string) (splc.TokClass, bool) {
	return DefaultClassifier().Classify(s)
}

// IsDelimiter checks for one of , ; ( ) { }
func IsDelimiter(s string) bool { return DefaultClassifier().Is(splc.Delimiter, s) }

// IsFunctionName checks for F_ followed by a lower case letter and further
// lower case letters or digits.
func IsFunctionName(s string) bool { return DefaultClassifier().Is(splc.FunctionName, s) }

// IsVariableName checks for V_ followed by a lower case letter and further
// lower case letters or digits.
func IsVariableName(s string) bool { return DefaultClassifier().Is(splc.VariableName, s) }

// IsKeyword checks for one of the reserved words.
func IsKeyword(s string) bool { return DefaultClassifier().Is(splc.Keyword, s) }

// IsNumber checks for an integer or decimal without leading zeros. Decimals
// must not end in 0.
func IsNumber(s string) bool { return DefaultClassifier().Is(splc.Number, s) }

// IsOperator checks for one of the named operators or < and =.
func IsOperator(s string) bool { return DefaultClassifier().Is(splc.Operator, s) }

// IsText checks for a quoted capitalized word of at most 8 letters.
func IsText(s string) bool { return DefaultClassifier().Is(splc.Text, s) }
