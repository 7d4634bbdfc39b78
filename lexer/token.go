package lexer

import (
	"fmt"

	"github.com/npillmayer/splc"
)

// Token is a classified piece of input. Tokens are immutable once created.
type Token struct {
	class  splc.TokClass
	lexeme string
	id     int
	line   int
}

// MakeToken creates a token. Identifiers are expected to be handed out by
// a splc.Serial owned by the current tokenization run.
func MakeToken(class splc.TokClass, lexeme string, id int, line int) Token {
	return Token{
		class:  class,
		lexeme: lexeme,
		id:     id,
		line:   line,
	}
}

// Class returns the token's class.
func (t Token) Class() splc.TokClass {
	return t.class
}

// Lexeme returns the literal text of the token.
func (t Token) Lexeme() string {
	return t.lexeme
}

// ID returns the sequence-assigned identifier of the token.
func (t Token) ID() int {
	return t.id
}

// Line returns the source line the token was found on, or 0 if unknown.
func (t Token) Line() int {
	return t.line
}

// Terminal returns the grammar terminal this token stands for.
func (t Token) Terminal() string {
	return splc.TerminalFor(t.class, t.lexeme)
}

func (t Token) String() string {
	return fmt.Sprintf("<%d:%s %q>", t.id, t.class, t.lexeme)
}
