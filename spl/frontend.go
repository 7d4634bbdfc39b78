package spl

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/npillmayer/splc/lexer"
	"github.com/npillmayer/splc/lr"
	"github.com/npillmayer/splc/lr/slr"
	"github.com/npillmayer/splc/syntree"
)

// Unit is the result of compiling a source unit.
type Unit struct {
	Tokens    []lexer.Token     // complete token list, including Error tokens
	LexErrors []*lexer.LexError // one per Error token
	Tree      *syntree.Tree     // nil if parsing failed
}

// Frontend is the SPL compiler pipeline: tokenize, then parse.
// A Frontend may be used for any number of units, concurrently.
type Frontend struct {
	grammar *lr.Grammar
	table   *lr.ParseTable
	parser  *slr.Parser
}

// NewFrontend creates a front end using a parse table. If table is nil,
// the table generated from the SPL grammar is used.
func NewFrontend(table *lr.ParseTable, opts ...slr.Option) (*Frontend, error) {
	g, err := Grammar()
	if err != nil {
		return nil, err
	}
	if table == nil {
		if table, err = Table(); err != nil {
			return nil, err
		}
	}
	return &Frontend{
		grammar: g,
		table:   table,
		parser:  slr.NewParser(g, table, opts...),
	}, nil
}

// Table returns the parse table of f.
func (f *Frontend) Table() *lr.ParseTable {
	return f.table
}

// Lex tokenizes a source unit.
func (f *Frontend) Lex(input io.Reader) (*lexer.Result, error) {
	return lexer.Lex(input)
}

// Parse parses a token list.
func (f *Frontend) Parse(tokens []lexer.Token) (*syntree.Tree, error) {
	return f.parser.Parse(tokens)
}

// Compile tokenizes and parses a source unit. Lexical errors do not stop
// compilation; they are reported in the unit, and the Error tokens will
// usually cause a syntax error. On a syntax error, the unit is returned
// without a tree, together with the error.
func (f *Frontend) Compile(input io.Reader) (*Unit, error) {
	result, err := f.Lex(input)
	if err != nil {
		return nil, err
	}
	unit := &Unit{Tokens: result.Tokens, LexErrors: result.Errors}
	unit.Tree, err = f.Parse(result.Tokens)
	if err != nil {
		return unit, err
	}
	tracer().Infof("compiled unit: %d tokens, %d tree nodes", len(unit.Tokens), unit.Tree.Size())
	return unit, nil
}

// Compile compiles a source unit with the generated SPL parse table.
func Compile(input io.Reader) (*Unit, error) {
	f, err := NewFrontend(nil)
	if err != nil {
		return nil, err
	}
	return f.Compile(input)
}

// --- Table resources -------------------------------------------------------

// LoadTableFile loads a parse table resource for SPL from a file.
func LoadTableFile(path string) (*lr.ParseTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := lr.LoadTable(f, IsNonTerminal)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// CachedTable returns the parse table for SPL from a cache directory. Cached
// tables are named after the fingerprint of the grammar. If the cache has no
// table for the current grammar, it is generated and stored.
func CachedTable(dir string) (*lr.ParseTable, error) {
	g, err := Grammar()
	if err != nil {
		return nil, err
	}
	fp, err := g.Fingerprint()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, "spl-"+fp+".csv")
	t, err := LoadTableFile(path)
	if err == nil {
		tracer().Debugf("parse table loaded from cache %s", path)
		return t, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if t, err = Table(); err != nil {
		return nil, err
	}
	if err = writeTableFile(t, dir, path); err != nil {
		return nil, err
	}
	tracer().Infof("parse table cached as %s", path)
	return t, nil
}

func writeTableFile(t *lr.ParseTable, dir, path string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "spl-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err = t.WriteCSV(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
