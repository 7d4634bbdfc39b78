package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// --- Category codes --------------------------------------------------------

// CatCode is the category of a rune, as far as chunking is concerned.
type CatCode int8

// Rune categories for chunking.
const (
	CatText    CatCode = iota // anything else
	CatSpace                  // blank, tab, carriage return
	CatNewline                // line feed
)

// Cat returns the chunking category of a rune.
func Cat(r rune) CatCode {
	switch r {
	case '\n':
		return CatNewline
	case ' ', '\t', '\r':
		return CatSpace
	}
	return CatText
}

// --- Chunk reader ----------------------------------------------------------

// ChunkReader splits input into chunks, i.e. maximal runs of runes of
// category CatText, and keeps track of line numbers. Lines are counted
// from 1.
//
// Chunks are separated by blanks, line feeds, carriage returns and tabs.
// Tabs are separators as well, so an indented source line yields the same
// chunks as one indented with blanks; other control characters end up in
// chunks and fail to classify.
type ChunkReader struct {
	reader io.RuneReader
	next   rune // lookahead, valid if hasLA
	isEOF  bool
	hasLA  bool
	line   int
	buf    strings.Builder
}

// NewChunkReader creates a chunk reader. If r is not an io.RuneReader,
// it will be buffered.
func NewChunkReader(r io.Reader) *ChunkReader {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &ChunkReader{
		reader: rr,
		line:   1,
	}
}

// Next returns the next chunk together with the line it starts on.
// At the end of input, Next returns io.EOF; a chunk directly in front of
// the end of input is returned before that.
func (cr *ChunkReader) Next() (chunk string, line int, err error) {
	var r rune
	for { // skip whitespace
		if r, err = cr.lookahead(); err != nil {
			return "", cr.line, err
		}
		if Cat(r) == CatText {
			break
		}
		cr.match(r)
	}
	line = cr.line
	cr.buf.Reset()
	for Cat(r) == CatText {
		cr.buf.WriteRune(r)
		cr.match(r)
		if r, err = cr.lookahead(); err != nil {
			if err == io.EOF {
				break
			}
			return "", line, err
		}
	}
	return cr.buf.String(), line, nil
}

// Line returns the current line number.
func (cr *ChunkReader) Line() int {
	return cr.line
}

func (cr *ChunkReader) lookahead() (rune, error) {
	if cr.hasLA {
		return cr.next, nil
	}
	if cr.isEOF {
		return utf8.RuneError, io.EOF
	}
	r, _, err := cr.reader.ReadRune()
	if err == io.EOF {
		cr.isEOF = true
		return utf8.RuneError, io.EOF
	} else if err != nil {
		return utf8.RuneError, fmt.Errorf("lexer cannot read input (%w)", err)
	}
	cr.next, cr.hasLA = r, true
	return r, nil
}

func (cr *ChunkReader) match(r rune) {
	cr.hasLA = false
	if Cat(r) == CatNewline {
		cr.line++
	}
}
