package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splc/artifact"
	"github.com/npillmayer/splc/config"
	"github.com/npillmayer/splc/spl"
)

func TestFormatFor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.cli")
	defer teardown()
	//
	cfg = config.Default()
	cfg.Output.Format = "yaml"
	for path, want := range map[string]artifact.Format{
		"tokens.xml": artifact.XML, "tree.yml": artifact.YAML, "tokens.out": artifact.YAML,
	} {
		if f := formatFor(path); f != want {
			t.Errorf("expected %s to be written as %v, is %v", path, want, f)
		}
	}
}

func TestLeveledTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.cli")
	defer teardown()
	//
	unit, err := spl.Compile(strings.NewReader("main begin end"))
	if err != nil {
		t.Fatal(err)
	}
	ll := leveledTree(unit.Tree)
	if len(ll) != unit.Tree.Size() {
		t.Fatalf("expected one list item per node, have %d", len(ll))
	}
	if ll[0].Level != 0 || ll[0].Text != "E' #1" {
		t.Errorf("expected root item, is %+v", ll[0])
	}
	if ll[2].Level != 2 || ll[2].Text != `main "main" #2` {
		t.Errorf("expected leaf item for 'main', is %+v", ll[2])
	}
}

func TestStageCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "splc.cli")
	defer teardown()
	//
	dir := t.TempDir()
	cfg = config.Default()
	cfg.Output.Tokens = filepath.Join(dir, "tokens.yaml")
	cfg.Output.Tree = filepath.Join(dir, "syntax_tree.xml")
	cfg.Table.Cache = filepath.Join(dir, "cache")
	src := filepath.Join(dir, "prog.spl")
	os.WriteFile(src, []byte("main num V_x ,\nbegin\n  V_x < input ;\n  print V_x ;\nend\n"), 0o644)
	outFile = ""
	if err := lexCmd.RunE(lexCmd, []string{src}); err != nil {
		t.Fatal(err)
	}
	if err := parseCmd.RunE(parseCmd, nil); err != nil {
		t.Fatal(err)
	}
	tree, err := loadTree(cfg.Output.Tree)
	if err != nil {
		t.Fatal(err)
	}
	direct, err := loadTree(src)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Size() != direct.Size() {
		t.Errorf("expected tree from artifacts to match compiled tree, sizes %d and %d",
			tree.Size(), direct.Size())
	}
}
