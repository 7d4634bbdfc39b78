package lexer

import (
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splc"
)

type tok struct {
	class  splc.TokClass
	lexeme string
}

func checkTokens(t *testing.T, name string, have []Token, want []tok) {
	t.Helper()
	if len(have) != len(want) {
		t.Errorf("%s: expected %d tokens, have %d: %v", name, len(want), len(have), have)
		return
	}
	for i, w := range want {
		if have[i].Class() != w.class || have[i].Lexeme() != w.lexeme {
			t.Errorf("%s: expected token #%d to be %v %q, is %v", name, i, w.class, w.lexeme, have[i])
		}
	}
}

func TestTokenizeChunk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lexer")
	defer teardown()
	//
	for _, test := range []struct {
		chunk  string
		tokens []tok
		errs   bool
	}{
		{"V_x;", []tok{{splc.VariableName, "V_x"}, {splc.Delimiter, ";"}}, false},
		{"main", []tok{{splc.Keyword, "main"}}, false},
		{"10;", []tok{{splc.Number, "10"}, {splc.Delimiter, ";"}}, false},
		{"print(V_x)", []tok{
			{splc.Keyword, "print"}, {splc.Delimiter, "("},
			{splc.VariableName, "V_x"}, {splc.Delimiter, ")"},
		}, false},
		{"@@@", []tok{{splc.Error, "@@@"}}, true},
		{"@V_x", []tok{{splc.Error, "@"}, {splc.VariableName, "V_x"}}, true},
		{"#main;", []tok{{splc.Error, "#"}, {splc.Keyword, "main"}, {splc.Delimiter, ";"}}, true},
		{"V_x@@", []tok{{splc.VariableName, "V_x"}, {splc.Error, "@@"}}, true},
		{"V_xé;", []tok{{splc.VariableName, "V_x"}, {splc.Error, "é"}, {splc.Delimiter, ";"}}, true},
	} {
		tokens, _, err := TokenizeChunk(test.chunk, 3, 0)
		checkTokens(t, test.chunk, tokens, test.tokens)
		if (err != nil) != test.errs {
			t.Errorf("%s: expected error = %v, have %v", test.chunk, test.errs, err)
		}
	}
}

func TestTokenizeUnrecognizable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lexer")
	defer teardown()
	//
	tokens, next, err := TokenizeChunk("?!?", 7, 12)
	if len(tokens) != 1 {
		t.Fatalf("expected exactly one token, have %v", tokens)
	}
	if tokens[0].Class() != splc.Error || tokens[0].Lexeme() != "?!?" || tokens[0].Line() != 7 {
		t.Errorf("expected Error token for whole chunk on line 7, have %v", tokens[0])
	}
	if tokens[0].ID() != 12 || next != 13 {
		t.Errorf("expected id 12 and next id 13, have %d and %d", tokens[0].ID(), next)
	}
	if err == nil || err.Line != 7 || err.Text != "?!?" || err.TokenID != 12 {
		t.Errorf("expected lexical error for line 7, have %v", err)
	}
}

func TestTokenIDs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lexer")
	defer teardown()
	//
	tz := NewTokenizer(nil)
	var all []Token
	for _, chunk := range []string{"main", "#V_x;", "begin", "end"} {
		tokens, _ := tz.Chunk(chunk, 1)
		all = append(all, tokens...)
	}
	for i, token := range all {
		if token.ID() != i {
			t.Errorf("expected token #%d to have id %d, has %d", i, i, token.ID())
		}
	}
	if tz.NextID() != len(all) {
		t.Errorf("expected next id to be %d, is %d", len(all), tz.NextID())
	}
}

func TestChunkReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lexer")
	defer teardown()
	//
	input := "main\n  num V_x ,\r\n\tbegin end"
	want := []struct {
		chunk string
		line  int
	}{
		{"main", 1}, {"num", 2}, {"V_x", 2}, {",", 2}, {"begin", 3}, {"end", 3},
	}
	cr := NewChunkReader(strings.NewReader(input))
	for i, w := range want {
		chunk, line, err := cr.Next()
		if err != nil {
			t.Fatalf("chunk #%d: unexpected error %v", i, err)
		}
		if chunk != w.chunk || line != w.line {
			t.Errorf("chunk #%d: expected %q@%d, have %q@%d", i, w.chunk, w.line, chunk, line)
		}
	}
	if _, _, err := cr.Next(); err != io.EOF {
		t.Errorf("expected EOF after last chunk, have %v", err)
	}
	if _, _, err := NewChunkReader(strings.NewReader(" \n ")).Next(); err != io.EOF {
		t.Errorf("expected EOF for blank input, have %v", err)
	}
}

func TestLex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lexer")
	defer teardown()
	//
	input := `main
num V_x@ ,
begin
V_x < input ;
end`
	result, err := Lex(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	checkTokens(t, "program", result.Tokens, []tok{
		{splc.Keyword, "main"}, {splc.Keyword, "num"}, {splc.VariableName, "V_x"},
		{splc.Error, "@"}, {splc.Delimiter, ","}, {splc.Keyword, "begin"},
		{splc.VariableName, "V_x"}, {splc.Operator, "<"}, {splc.Keyword, "input"},
		{splc.Delimiter, ";"}, {splc.Keyword, "end"},
	})
	if !result.HasErrors() || len(result.Errors) != 1 {
		t.Fatalf("expected 1 lexical error, have %v", result.Errors)
	}
	if e := result.Errors[0]; e.Line != 2 || e.TokenID != 3 || e.Text != "@" {
		t.Errorf("unexpected lexical error %+v", e)
	}
	for i, token := range result.Tokens {
		if token.ID() != i {
			t.Errorf("expected token ids to be sequential, token #%d has id %d", i, token.ID())
		}
	}
}
