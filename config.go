package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/htmlisp/htmlisp/htmlisp"
)

// defaultConfigFile is looked up in the working directory when no --config
// flag is given. It is fine for it to be absent.
const defaultConfigFile = "htmlisp.yaml"

// Config holds the options for one run, merged from the optional YAML
// config file and the command line (flags win).
type Config struct {
	// OutputDir is the root that watch mode mirrors compiled files into.
	OutputDir string `yaml:"output"`
	// Indent is the number of spaces per nesting level in prettified output.
	Indent int `yaml:"indent"`
	// Prettify selects indented output instead of compact output.
	Prettify bool `yaml:"prettify"`

	// Set from the command line, never from the file.
	InputFile  string `yaml:"-"`
	OutputFile string `yaml:"-"`
	WatchDir   string `yaml:"-"`
}

// LoadConfig reads the YAML config file at path, or the default
// htmlisp.yaml when path is empty. A missing default file just yields the
// defaults; an explicitly named file must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		OutputDir: "output",
		Indent:    htmlisp.DefaultIndentWidth,
	}

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Indent < 0 {
		return nil, fmt.Errorf("config file %s: indent must not be negative", path)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	return cfg, nil
}
