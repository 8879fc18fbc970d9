// Package config loads settings for the arc tool from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "arc.toml"

// Config holds tool settings. Command-line flags take precedence.
type Config struct {
	Grammar   string      `toml:"grammar"`
	Format    string      `toml:"format"`
	Color     string      `toml:"color"` // auto, always, never
	Verbosity int         `toml:"verbosity"`
	LSP       LSPConfig   `toml:"lsp"`
	Serve     ServeConfig `toml:"serve"`
}

// LSPConfig holds language server settings.
type LSPConfig struct {
	// GrammarByExtension maps a file extension such as ".arr" to a
	// registered grammar name.
	GrammarByExtension map[string]string `toml:"grammar_by_extension"`
}

// ServeConfig holds playground settings.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration at path. An empty path means DefaultFile in
// the working directory, which may be absent.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	path = os.ExpandEnv(path)

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Grammar == "" {
		c.Grammar = "tagged"
	}
	if c.Format == "" {
		c.Format = "text"
	}
	if c.Color == "" {
		c.Color = "auto"
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = "localhost:8417"
	}
	if c.LSP.GrammarByExtension == nil {
		c.LSP.GrammarByExtension = map[string]string{
			".arr":    "array",
			".tagged": "tagged",
		}
	}
}

// Validate checks values that have a fixed set of choices.
func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must not be negative, got %d", c.Verbosity)
	}
	for ext := range c.LSP.GrammarByExtension {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("lsp extension %q must start with a dot", ext)
		}
	}
	return nil
}

// GrammarFor returns the grammar configured for path's extension, falling
// back to the default grammar.
func (c *Config) GrammarFor(path string) string {
	if name, ok := c.LSP.GrammarByExtension[filepath.Ext(path)]; ok {
		return name
	}
	return c.Grammar
}
