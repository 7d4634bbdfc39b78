package lexer

import (
	"io"
)

// Result is the outcome of lexing a compilation unit.
type Result struct {
	Tokens []Token     // all tokens, Error tokens included, in input order
	Errors []*LexError // one diagnostic per Error token
}

// HasErrors is true if the token list contains Error tokens.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Lex tokenizes all of the input with the default classifier.
func Lex(input io.Reader) (*Result, error) {
	return LexWith(NewTokenizer(nil), input)
}

// LexWith tokenizes all of the input, using tokenizer t. Every chunk is
// tokenized on its own, so lexical errors do not influence the tokenization
// of other chunks. Lexical errors are collected in the result; the error
// return value is reserved for failures of the input reader.
func LexWith(t *Tokenizer, input io.Reader) (*Result, error) {
	result := &Result{}
	chunks := NewChunkReader(input)
	for {
		chunk, line, err := chunks.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return result, err
		}
		tokens, lexerr := t.Chunk(chunk, line)
		result.Tokens = append(result.Tokens, tokens...)
		if lexerr != nil {
			result.Errors = append(result.Errors, lexerr)
		}
	}
	tracer().Infof("lexer produced %d tokens, %d errors", len(result.Tokens), len(result.Errors))
	return result, nil
}
