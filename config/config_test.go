package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splc/artifact"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "splc.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Output.Format != "xml" || cfg.Output.Tokens != "tokens.xml" || cfg.Output.Tree != "syntax_tree.xml" {
		t.Errorf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Table.Path != "" || cfg.Table.Cache != "" {
		t.Errorf("expected no table resource by default, have %+v", cfg.Table)
	}
	if cfg.TraceLevel() != tracing.LevelInfo {
		t.Errorf("expected trace level Info, is %v", cfg.TraceLevel())
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("SPLC_CACHE", "/tmp/splc")
	path := writeConfig(t, `
[table]
cache = "$SPLC_CACHE/tables"

[output]
format = "yaml"
tree = "tree.yaml"

[trace]
level = "Debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Table.Cache != "/tmp/splc/tables" {
		t.Errorf("expected cache dir with expanded variable, is %q", cfg.Table.Cache)
	}
	if cfg.Format() != artifact.YAML || cfg.Output.Tree != "tree.yaml" {
		t.Errorf("unexpected output config %+v", cfg.Output)
	}
	if cfg.Output.Tokens != "tokens.xml" {
		t.Errorf("expected default for missing key, is %q", cfg.Output.Tokens)
	}
	if cfg.TraceLevel() != tracing.LevelDebug {
		t.Errorf("expected trace level Debug, is %v", cfg.TraceLevel())
	}
}

func TestLoadErrors(t *testing.T) {
	for _, content := range []string{
		"[output]\nformat = \"json\"\n",
		"[table]\npath = \"spl.csv\"\ncache = \"/tmp\"\n",
		"[output]\nfromat = \"xml\"\n",
		"[output\n",
	} {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Errorf("expected error loading %q", content)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected error for missing config file")
	}
}
