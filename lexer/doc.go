/*
Package lexer implements the lexical analysis for SPL.

Lexing works on whitespace-free chunks of source text. A classifier decides
whether a candidate string forms a complete token of one of the token
classes, and a maximal-munch tokenizer splits a chunk into tokens by
shrinking the candidate from the right. If no prefix of a chunk classifies,
the tokenizer recovers by searching for classifiable suffixes; whatever
remains unclassified becomes a single token of class Error. Lexical errors
never stop lexing of the rest of the input.

Usage

	result, err := lexer.Lex(strings.NewReader("main begin end"))
	for _, tok := range result.Tokens {
		fmt.Println(tok)
	}

Classification is backed by DFAs compiled with lexmachine. Classes are tested
in a fixed precedence order: delimiter, function name, variable name,
keyword, number, operator, text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'splc.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("splc.lexer")
}
