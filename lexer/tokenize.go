package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/splc"
)

// LexError reports a span of input which could not be tokenized. It
// corresponds to a token of class splc.Error in the token list.
type LexError struct {
	Line    int    // source line of the chunk
	Text    string // text which could not be classified
	TokenID int    // id of the Error token standing in for Text
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexical error on line %d: cannot tokenize %q", e.Line, e.Text)
}

// Tokenizer splits whitespace-free chunks of input into tokens, using a
// classifier. Token identifiers are drawn from a serial owned by the
// tokenizer, so one tokenizer serves exactly one tokenization run.
type Tokenizer struct {
	classifier *Classifier
	ids        *splc.Serial
}

// NewTokenizer creates a tokenizer for one run. If c is nil, the default
// classifier is used. Token identifiers start at 0.
func NewTokenizer(c *Classifier) *Tokenizer {
	if c == nil {
		c = DefaultClassifier()
	}
	return &Tokenizer{
		classifier: c,
		ids:        splc.NewSerial(0),
	}
}

// NextID returns the identifier the next token will receive.
func (t *Tokenizer) NextID() int {
	return t.ids.Peek()
}

// Chunk tokenizes a whitespace-free chunk of input found on a given line.
//
// The longest classifiable prefix is found by removing runes from the right
// end of the chunk until the remainder classifies. The runes removed form the
// leftover, which is tokenized the same way afterwards.
//
// If no prefix at all classifies, the leftover is searched for the longest
// classifiable suffix, removing runes from the front. This is repeated on
// what remains in front of the suffix found. Whatever cannot be classified
// becomes a single Error token, followed by the tokens for the suffixes.
// A LexError is returned in this case; the token list is complete anyway.
func (t *Tokenizer) Chunk(chunk string, line int) ([]Token, *LexError) {
	var tokens []Token
	prefix, leftover := chunk, ""
	for prefix != "" {
		if class, ok := t.classifier.Classify(prefix); ok {
			tokens = append(tokens, MakeToken(class, prefix, t.ids.Next(), line))
			tracer().Debugf("token %v on line %d", tokens[len(tokens)-1], line)
			prefix, leftover = leftover, ""
			continue
		}
		_, size := utf8.DecodeLastRuneInString(prefix)
		leftover = prefix[len(prefix)-size:] + leftover
		prefix = prefix[:len(prefix)-size]
	}
	if leftover == "" {
		return tokens, nil
	}
	unmatched, suffixes := t.recoverSuffixes(leftover)
	errtok := MakeToken(splc.Error, unmatched, t.ids.Next(), line)
	tokens = append(tokens, errtok)
	for _, s := range suffixes {
		tokens = append(tokens, MakeToken(s.class, s.lexeme, t.ids.Next(), line))
	}
	lexerr := &LexError{Line: line, Text: unmatched, TokenID: errtok.ID()}
	tracer().Errorf("%s", lexerr.Error())
	return tokens, lexerr
}

type lexeme struct {
	class  splc.TokClass
	lexeme string
}

// recoverSuffixes searches s for the longest classifiable suffix, trimming
// from the front. Once found, the search continues on the part in front of
// it. Returns the unclassifiable head of s and the suffixes found, in
// left-to-right order.
//
// The head is never empty: the part in front of a suffix is only ever
// tested after its first rune has been trimmed.
func (t *Tokenizer) recoverSuffixes(s string) (string, []lexeme) {
	var found []lexeme
	head, probe := s, s
	for probe != "" {
		_, size := utf8.DecodeRuneInString(probe)
		probe = probe[size:]
		if class, ok := t.classifier.Classify(probe); ok {
			found = append([]lexeme{{class, probe}}, found...)
			head = head[:len(head)-len(probe)]
			probe = head
		}
	}
	return head, found
}

// TokenizeChunk tokenizes a single chunk with the default classifier,
// assigning identifiers starting at firstID. It returns the tokens and the
// identifier to use for the next token.
func TokenizeChunk(chunk string, line int, firstID int) ([]Token, int, *LexError) {
	t := NewTokenizer(nil)
	t.ids = splc.NewSerial(firstID)
	tokens, err := t.Chunk(chunk, line)
	return tokens, t.NextID(), err
}
