// Package pyconfig holds the YAML-backed rendering configuration for
// pyfmt, grounded on the teacher's lint.Config / cmd/init.go.
package pyconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is pyfmt's on-disk configuration: rendering defaults and a
// list of fixture paths to ignore, mirroring the shape of the teacher's
// own .tlin.yaml.
type Config struct {
	Name string `yaml:"name"`
	// DefaultQuote is the quote character used when rendering a Str node
	// that was never matched against source (spec.md §4.4, Str).
	DefaultQuote string `yaml:"default_quote"`
	// IndentWidth is stored and round-tripped but not read by any
	// component: pymatch's indentation fix-up always uses two spaces per
	// indent level.
	IndentWidth int `yaml:"indent_width"`
	// Ignore lists fixture paths that render should skip entirely,
	// analogous to the teacher's engine.IgnorePath.
	Ignore []string `yaml:"ignore"`
}

// Default returns pyfmt's out-of-the-box configuration.
func Default() Config {
	return Config{
		Name:         "pyfmt",
		DefaultQuote: "'",
		IndentWidth:  4,
		Ignore:       []string{},
	}
}

// Load reads and parses a config file at path, matching the teacher's
// parseConfigurationFile.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("pyconfig: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("pyconfig: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// WriteDefault writes a starter configuration file to path, the same role
// as the teacher's initConfigurationFile.
func WriteDefault(path string) error {
	if path == "" {
		path = ".pyfmt.yaml"
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("pyconfig: marshaling default config: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pyconfig: creating %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("pyconfig: writing %s: %w", path, err)
	}
	return nil
}
