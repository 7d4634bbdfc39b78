package spl

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splc"
	"github.com/npillmayer/splc/lr/slr"
	"github.com/npillmayer/splc/syntree"
)

const sample = `main
num V_x , text V_s ,
begin
  V_x < input ;
  V_s = "Hello" ;
  print V_x ;
  if grt ( V_x , 10 ) then begin print V_s ; end else begin skip ; end ;
  V_x = add ( V_x , 1 ) ;
  V_x = F_add ( V_x , 2 , 3 ) ;
  halt ;
end
num F_add ( V_a , V_b , V_c )
{
  num V_l , num V_m , num V_n ,
  begin
    V_l = add ( V_a , V_b ) ;
    return V_l ;
  end
}
end
`

func TestGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lr")
	defer teardown()
	//
	g, err := Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 59 {
		t.Errorf("expected 59 productions, have %d", g.Size())
	}
	if len(g.NonTerminals()) != 31 {
		t.Errorf("expected 31 non-terminals, have %d", len(g.NonTerminals()))
	}
	for _, A := range g.NonTerminals() {
		if !IsNonTerminal(A.Name) {
			t.Errorf("%s is not in the set of non-terminals", A)
		}
	}
	for _, name := range []string{splc.VToken, splc.NToken, splc.TToken, splc.FToken, ";", "main"} {
		if sym := g.SymbolByName(name); sym == nil || !sym.IsTerminal() {
			t.Errorf("expected %q to be a terminal", name)
		}
	}
	if g.Start().Name != "E'" {
		t.Errorf("expected start symbol E', is %s", g.Start())
	}
}

func TestTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lr")
	defer teardown()
	//
	table, err := Table()
	if err != nil {
		t.Fatalf("expected SPL grammar to be SLR(1): %v", err)
	}
	if table.Action(0, "main").IsError() {
		t.Errorf("expected state 0 to shift 'main'")
	}
	again, _ := Table()
	if again != table {
		t.Errorf("expected table to be built once")
	}
}

func TestMinimalProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lr")
	defer teardown()
	//
	unit, err := Compile(strings.NewReader("main begin end"))
	if err != nil {
		t.Fatal(err)
	}
	root := unit.Tree.Root
	if root.Symbol != "E'" || root.ID != 1 || len(root.Children()) != 1 {
		t.Fatalf("expected root E' with one child, is %v", root)
	}
	prog := root.Children()[0]
	expect := func(n *syntree.Node, id int, symbol string, children int, leaf bool) {
		t.Helper()
		if n.ID != id || n.Symbol != symbol || len(n.Children()) != children || n.IsLeaf() != leaf {
			t.Errorf("expected node %d %s with %d children (leaf=%v), is %v with %d children",
				id, symbol, children, leaf, n, len(n.Children()))
		}
	}
	expect(prog, 9, "PROG", 4, false)
	if len(prog.Children()) != 4 {
		t.FailNow()
	}
	expect(prog.Children()[0], 2, "main", 0, true)
	expect(prog.Children()[1], 3, "GLOBVARS", 0, false)
	expect(prog.Children()[2], 7, "ALGO", 3, false)
	expect(prog.Children()[3], 8, "FUNCTIONS", 0, false)
	algo := prog.Children()[2]
	if len(algo.Children()) == 3 {
		expect(algo.Children()[0], 4, "begin", 0, true)
		expect(algo.Children()[1], 5, "INSTRUC", 0, false)
		expect(algo.Children()[2], 6, "end", 0, true)
	}
}

func TestSampleProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lr")
	defer teardown()
	//
	steps := 0
	f, err := NewFrontend(nil, slr.Observe(func(s slr.Step) {
		steps++
		if s.StateDepth != s.NodeDepth {
			t.Errorf("stacks out of step: %d states, %d nodes", s.StateDepth, s.NodeDepth)
		}
	}))
	if err != nil {
		t.Fatal(err)
	}
	unit, err := f.Compile(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if len(unit.LexErrors) != 0 {
		t.Errorf("expected no lexical errors, have %v", unit.LexErrors)
	}
	if steps == 0 {
		t.Errorf("observer not called")
	}
	leaves, lastLeaf := 0, 0
	seen := make(map[int]bool)
	unit.Tree.Walk(func(n *syntree.Node, depth int) error {
		if seen[n.ID] {
			t.Errorf("node id %d not unique", n.ID)
		}
		seen[n.ID] = true
		if n.IsLeaf() {
			leaves++
			if n.ID <= lastLeaf {
				t.Errorf("leaf ids not increasing in input order at %v", n)
			}
			lastLeaf = n.ID
			if len(n.Children()) != 0 {
				t.Errorf("leaf %v has children", n)
			}
		} else if n != unit.Tree.Root {
			for _, c := range n.Children() {
				if c.ID >= n.ID {
					t.Errorf("child %v created after parent %v", c, n)
				}
				if c.Parent() != n.ID {
					t.Errorf("child %v does not refer to parent %v", c, n)
				}
			}
		}
		return nil
	})
	if leaves != len(unit.Tokens) {
		t.Errorf("expected one leaf per token (%d), have %d", len(unit.Tokens), leaves)
	}
}

func TestSyntaxError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lr")
	defer teardown()
	//
	unit, err := Compile(strings.NewReader("main\nbegin\nV_x\nend"))
	var serr *slr.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("expected syntax error, have %v", err)
	}
	if serr.Kind != slr.NoAction || serr.Symbol != "end" || serr.Token.Line() != 4 {
		t.Errorf("expected unexpected 'end' on line 4, have %v", serr)
	}
	if unit == nil || unit.Tree != nil || len(unit.Tokens) != 4 {
		t.Errorf("expected unit with tokens but without tree")
	}
}

func TestLexicalErrorStopsParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lr")
	defer teardown()
	//
	unit, err := Compile(strings.NewReader("main begin @ ; end"))
	if err == nil {
		t.Fatalf("expected Error token to cause a syntax error")
	}
	if len(unit.LexErrors) != 1 || unit.LexErrors[0].Text != "@" {
		t.Errorf("expected one lexical error for '@', have %v", unit.LexErrors)
	}
}

func TestCachedTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lr")
	defer teardown()
	//
	dir := filepath.Join(t.TempDir(), "cache")
	t1, err := CachedTable(dir)
	if err != nil {
		t.Fatal(err)
	}
	files, _ := filepath.Glob(filepath.Join(dir, "spl-*.csv"))
	if len(files) != 1 {
		t.Fatalf("expected one cached table, have %v", files)
	}
	t2, err := CachedTable(dir)
	if err != nil {
		t.Fatal(err)
	}
	var b1, b2 bytes.Buffer
	t1.WriteCSV(&b1)
	t2.WriteCSV(&b2)
	if b1.String() != b2.String() {
		t.Errorf("cached table differs from generated table")
	}
	f, err := NewFrontend(t2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Compile(strings.NewReader(sample)); err != nil {
		t.Errorf("cannot parse with cached table: %v", err)
	}
}

func TestLoadTableFileErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.lr")
	defer teardown()
	//
	if _, err := LoadTableFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Errorf("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.csv")
	os.WriteFile(path, []byte("state;main;PROG\n0;x;1\n"), 0o644)
	if _, err := LoadTableFile(path); err == nil {
		t.Errorf("expected error for malformed table")
	}
}
