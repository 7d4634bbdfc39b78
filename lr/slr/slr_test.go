package slr

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splc"
	"github.com/npillmayer/splc/lexer"
	"github.com/npillmayer/splc/lr"
	"github.com/npillmayer/splc/syntree"
)

// S' -> S, S -> A x, A -> y, A -> ε
func smallGrammar(t *testing.T) *lr.Grammar {
	b := lr.NewGrammarBuilder("G")
	b.LHS("S").N("A").T("x").End()
	b.LHS("A").T("y").End()
	b.LHS("A").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

const smallTableCSV = `state;x;y;$;S;A
0;r3;s3;;1;2
1;;;acc;;
2;s4;;;;
3;r2;;;;
4;;;r1;;
`

func loadTable(t *testing.T, csv string) *lr.ParseTable {
	table, err := lr.LoadTable(strings.NewReader(csv), func(s string) bool {
		return s == "S" || s == "A"
	})
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func tokens(words ...string) []lexer.Token {
	toks := make([]lexer.Token, len(words))
	for i, w := range words {
		toks[i] = lexer.MakeToken(splc.Keyword, w, i, 1)
	}
	return toks
}

// sexpr formats a tree as an S-expression of symbols and node ids.
func sexpr(n *syntree.Node) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(n.Symbol)
	b.WriteString(":")
	b.WriteString(string(rune('0' + n.ID)))
	for _, c := range n.Children() {
		b.WriteString(" ")
		b.WriteString(sexpr(c))
	}
	b.WriteString(")")
	return b.String()
}

func TestParseTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lr")
	defer teardown()
	//
	p := NewParser(smallGrammar(t), loadTable(t, smallTableCSV))
	for _, test := range []struct {
		input []lexer.Token
		tree  string
	}{
		{tokens("y", "x"), "(S':1 (S:5 (A:3 (y:2)) (x:4)))"},
		{tokens("x"), "(S':1 (S:4 (A:2) (x:3)))"},
	} {
		tree, err := p.Parse(test.input)
		if err != nil {
			t.Fatal(err)
		}
		if s := sexpr(tree.Root); s != test.tree {
			t.Errorf("expected tree %s, have %s", test.tree, s)
		}
	}
}

func TestEpsilonNodeIsInner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lr")
	defer teardown()
	//
	p := NewParser(smallGrammar(t), loadTable(t, smallTableCSV))
	tree, err := p.Parse(tokens("x"))
	if err != nil {
		t.Fatal(err)
	}
	A := tree.Node(2)
	if A.IsLeaf() || len(A.Children()) != 0 || A.Parent() != 4 {
		t.Errorf("expected epsilon node A to be an inner node without children below S")
	}
	x := tree.Node(3)
	if tok, ok := x.Token(); !ok || tok.Lexeme() != "x" || len(x.Children()) != 0 {
		t.Errorf("expected leaf x to carry its token")
	}
}

func TestParseWithGeneratedTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lr")
	defer teardown()
	//
	g := smallGrammar(t)
	lrgen := lr.NewTableGenerator(lr.Analysis(g))
	if err := lrgen.CreateTables(); err != nil {
		t.Fatal(err)
	}
	tree, err := NewParser(g, lrgen.Table()).Parse(tokens("y", "x"))
	if err != nil {
		t.Fatal(err)
	}
	if s := sexpr(tree.Root); s != "(S':1 (S:5 (A:3 (y:2)) (x:4)))" {
		t.Errorf("unexpected tree %s", s)
	}
}

func TestStacksInLockStep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lr")
	defer teardown()
	//
	steps := 0
	p := NewParser(smallGrammar(t), loadTable(t, smallTableCSV), Observe(func(s Step) {
		steps++
		if s.StateDepth != s.NodeDepth {
			t.Errorf("state stack (%d) and node stack (%d) out of step", s.StateDepth, s.NodeDepth)
		}
	}))
	if _, err := p.Parse(tokens("y", "x")); err != nil {
		t.Fatal(err)
	}
	if steps != 5 {
		t.Errorf("expected 5 steps (2 shifts, 2 reduces, accept), have %d", steps)
	}
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lr")
	defer teardown()
	//
	g := smallGrammar(t)
	for i, test := range []struct {
		csv    string
		input  []lexer.Token
		kind   ErrorKind
		state  int
		symbol string
	}{
		{smallTableCSV, tokens("y", "y"), NoAction, 3, "y"},
		{smallTableCSV, tokens("y"), NoAction, 3, "$"},
		{smallTableCSV, tokens("x", "x"), NoAction, 4, "x"},
		{"state;x;y;$;S;A\n0;r3;s3;;1;\n1;;;acc;;\n2;s4;;;;\n3;r2;;;;\n4;;;r1;;\n", tokens("y", "x"), NoGoto, 0, "A"},
		{"state;x;y;$;S;A\n0;r1;;;;\n", tokens("x"), StackUnderflow, 0, "S"},
		{"state;x;y;$;S;A\n0;r9;;;;\n", tokens("x"), UnknownRule, 0, ""},
		{"state;x;y;$;S;A\n0;;;s1;;\n1;;;;;\n", nil, NoAction, 0, "$"},
	} {
		tree, err := NewParser(g, loadTable(t, test.csv)).Parse(test.input)
		if tree != nil {
			t.Errorf("test %d: expected no tree for failed parse", i)
		}
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("test %d: expected syntax error, have %v", i, err)
			continue
		}
		if serr.Kind != test.kind || serr.State != test.state || serr.Symbol != test.symbol {
			t.Errorf("test %d: expected %v in state %d on %q, have %v in state %d on %q", i,
				test.kind, test.state, test.symbol, serr.Kind, serr.State, serr.Symbol)
		}
	}
}

func TestSyntaxErrorToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lr")
	defer teardown()
	//
	p := NewParser(smallGrammar(t), loadTable(t, smallTableCSV))
	_, err := p.Parse(tokens("y", "y"))
	var serr *SyntaxError
	if !errors.As(err, &serr) || serr.AtEOF || serr.Token.ID() != 1 {
		t.Errorf("expected syntax error to carry the offending token, have %v", err)
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("expected error message to name the line, is %q", err.Error())
	}
}

func TestConcurrentParses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lr")
	defer teardown()
	//
	p := NewParser(smallGrammar(t), loadTable(t, smallTableCSV))
	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := tokens("y", "x")
			if i%2 == 1 {
				input = tokens("x")
			}
			if tree, err := p.Parse(input); err == nil {
				results[i] = sexpr(tree.Root)
			}
		}(i)
	}
	wg.Wait()
	for i, s := range results {
		want := "(S':1 (S:5 (A:3 (y:2)) (x:4)))"
		if i%2 == 1 {
			want = "(S':1 (S:4 (A:2) (x:3)))"
		}
		if s != want {
			t.Errorf("parse %d: expected %s, have %s", i, want, s)
		}
	}
}
