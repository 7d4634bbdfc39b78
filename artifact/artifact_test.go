package artifact

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splc"
	"github.com/npillmayer/splc/lexer"
	"github.com/npillmayer/splc/spl"
	"github.com/npillmayer/splc/syntree"
)

func dump(tree *syntree.Tree) string {
	var b strings.Builder
	tree.Walk(func(n *syntree.Node, depth int) error {
		b.WriteString(strings.Repeat(".", depth))
		b.WriteString(n.String())
		b.WriteString("\n")
		return nil
	})
	return b.String()
}

// The parser stage consumes what the lexer stage wrote.
func TestStagePipeline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.spl")
	defer teardown()
	//
	src := `main num V_x , begin V_x = add ( V_x , 1 ) ; print "Done" ; end`
	for _, format := range []Format{XML, YAML} {
		result, err := lexer.Lex(strings.NewReader(src))
		if err != nil {
			t.Fatal(err)
		}
		var tokbuf bytes.Buffer
		if err := WriteTokens(&tokbuf, format, result.Tokens); err != nil {
			t.Fatal(err)
		}
		tokens, err := ReadTokens(&tokbuf, format)
		if err != nil {
			t.Fatalf("%v: %v", format, err)
		}
		if len(tokens) != len(result.Tokens) {
			t.Fatalf("%v: expected %d tokens, have %d", format, len(result.Tokens), len(tokens))
		}
		for i, tok := range tokens {
			orig := result.Tokens[i]
			if tok.ID() != orig.ID() || tok.Class() != orig.Class() || tok.Lexeme() != orig.Lexeme() {
				t.Errorf("%v: token %d read back as %v", format, i, tok)
			}
		}
		f, err := spl.NewFrontend(nil)
		if err != nil {
			t.Fatal(err)
		}
		tree, err := f.Parse(tokens)
		if err != nil {
			t.Fatal(err)
		}
		var treebuf bytes.Buffer
		if err := WriteTree(&treebuf, format, tree); err != nil {
			t.Fatal(err)
		}
		rebuilt, err := ReadTree(&treebuf, format)
		if err != nil {
			t.Fatalf("%v: %v", format, err)
		}
		if dump(rebuilt) != dump(tree) {
			t.Errorf("%v: rebuilt tree differs:\n%s\nvs.\n%s", format, dump(rebuilt), dump(tree))
		}
	}
}

func TestXMLSchema(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.spl")
	defer teardown()
	//
	unit, err := spl.Compile(strings.NewReader("main begin end"))
	if err != nil {
		t.Fatal(err)
	}
	var tokbuf, treebuf bytes.Buffer
	WriteTokens(&tokbuf, XML, unit.Tokens)
	WriteTree(&treebuf, XML, unit.Tree)
	for _, frag := range []string{
		"<TOKENSTREAM>", "<TOK>", "<ID>0</ID>", "<CLASS>KEYWORD</CLASS>", "<WORD>main</WORD>",
	} {
		if !strings.Contains(tokbuf.String(), frag) {
			t.Errorf("expected token stream to contain %s", frag)
		}
	}
	for _, frag := range []string{
		"<SYNTREE>", "<ROOT>", "<UNID>1</UNID>", "<SYMB>PROG</SYMB>", "<INNERNODES>", "<IN>",
		"<PARENT>9</PARENT>", "<LEAFNODES>", "<LEAF>", "<TERMINAL>KEYWORD: main</TERMINAL>",
	} {
		if !strings.Contains(treebuf.String(), frag) {
			t.Errorf("expected syntax tree to contain %s", frag)
		}
	}
}

func TestReadTokensErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.spl")
	defer teardown()
	//
	bad := "<TOKENSTREAM><TOK><ID>0</ID><CLASS>NOUN</CLASS><WORD>x</WORD></TOK></TOKENSTREAM>"
	if _, err := ReadTokens(strings.NewReader(bad), XML); err == nil {
		t.Errorf("expected error for unknown token class")
	}
	if _, err := ReadTokens(strings.NewReader("<TOKENSTREAM>"), XML); err == nil {
		t.Errorf("expected error for truncated XML")
	}
	tokens, err := ReadTokens(strings.NewReader("- id: 3\n  class: NUMBER\n  value: \"-0.5\"\n"), YAML)
	if err != nil || len(tokens) != 1 || tokens[0].Class() != splc.Number || tokens[0].Lexeme() != "-0.5" {
		t.Errorf("expected one number token from YAML, have %v, %v", tokens, err)
	}
}

func TestReadTreeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.spl")
	defer teardown()
	//
	for _, doc := range []string{
		"<SYNTREE><ROOT><UNID>1</UNID><SYMB>E'</SYMB><CHILDREN><ID>2</ID></CHILDREN></ROOT>" +
			"<LEAFNODES><LEAF><PARENT>1</PARENT><UNID>2</UNID><TERMINAL>main</TERMINAL></LEAF></LEAFNODES></SYNTREE>",
		"<SYNTREE><ROOT><UNID>1</UNID><SYMB>E'</SYMB><CHILDREN><ID>2</ID></CHILDREN></ROOT>" +
			"<INNERNODES><IN><UNID>2</UNID><SYMB>PROG</SYMB></IN></INNERNODES></SYNTREE>",
		"<SYNTREE><ROOT><UNID>1</UNID><SYMB>E'</SYMB><CHILDREN><ID>7</ID></CHILDREN></ROOT></SYNTREE>",
	} {
		if _, err := ReadTree(strings.NewReader(doc), XML); err == nil {
			t.Errorf("expected error reading %s", doc)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"xml": XML, "YAML": YAML, ".yml": YAML} {
		if f, err := ParseFormat(name); err != nil || f != want {
			t.Errorf("expected %q to be %v, is %v", name, want, f)
		}
	}
	if _, err := ParseFormat("json"); err == nil {
		t.Errorf("expected error for unknown format")
	}
}
