/*
Package config loads the configuration of the splc command.

Configuration is a TOML file:

    [table]
    path  = ""        # external CSV table resource
    cache = ""        # directory for generated tables
    [output]
    format = "xml"    # xml | yaml
    tokens = "tokens.xml"
    tree   = "syntax_tree.xml"
    [trace]
    level = "Info"

Every key is optional. Missing keys are set to the defaults shown.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splc/artifact"
)

// Config holds the complete configuration of splc.
type Config struct {
	Table  TableConfig  `toml:"table"`
	Output OutputConfig `toml:"output"`
	Trace  TraceConfig  `toml:"trace"`
}

// TableConfig selects the parse table resource. If Path is set, the table is
// loaded from there. Otherwise it is generated from the grammar and, if Cache
// is set, stored in the cache directory.
type TableConfig struct {
	Path  string `toml:"path"`
	Cache string `toml:"cache"`
}

// OutputConfig names the artifact files written between stages.
type OutputConfig struct {
	Format string `toml:"format"`
	Tokens string `toml:"tokens"`
	Tree   string `toml:"tree"`
}

// TraceConfig holds tracing settings.
type TraceConfig struct {
	Level string `toml:"level"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
	}
	cfg.applyDefaults()
	cfg.Table.Path = os.ExpandEnv(cfg.Table.Path)
	cfg.Table.Cache = os.ExpandEnv(cfg.Table.Cache)
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "xml"
	}
	if c.Output.Tokens == "" {
		c.Output.Tokens = "tokens.xml"
	}
	if c.Output.Tree == "" {
		c.Output.Tree = "syntax_tree.xml"
	}
	if c.Trace.Level == "" {
		c.Trace.Level = "Info"
	}
}

// Validate checks settings which are not simple strings.
func (c *Config) Validate() error {
	if _, err := artifact.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if c.Table.Path != "" && c.Table.Cache != "" {
		return fmt.Errorf("table path and table cache are mutually exclusive")
	}
	return nil
}

// Format is the artifact format to write.
func (c *Config) Format() artifact.Format {
	f, _ := artifact.ParseFormat(c.Output.Format)
	return f
}

// TraceLevel is the trace level to set for all tracers.
func (c *Config) TraceLevel() tracing.TraceLevel {
	return tracing.TraceLevelFromString(c.Trace.Level)
}
