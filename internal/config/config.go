// Package config loads the settings of the glox tools from a TOML or YAML
// file. The file format is chosen by its extension.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ltungv/lox/glox/internal/lox"
	"github.com/ltungv/lox/glox/internal/parser"
	"gopkg.in/yaml.v3"
)

// Output formats of the parse command
const (
	FormatSExpr  = "sexpr"
	FormatSource = "source"
	FormatJSON   = "json"
)

// FileNames lists the names searched by Discover, in order.
var FileNames = []string{".glox.toml", ".glox.yaml", ".glox.yml"}

// Config holds the settings shared by every glox command.
type Config struct {
	MaxDepth  int    `toml:"max_depth" yaml:"max_depth"`
	Format    string `toml:"format" yaml:"format"`
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	Color     bool   `toml:"color" yaml:"color"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		MaxDepth:  parser.DefaultMaxDepth,
		Format:    FormatSExpr,
		Verbosity: 0,
		Color:     true,
	}
}

// Load reads the file at path on top of the defaults. Keys missing from the
// file keep their default value.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, fmt.Errorf("parse toml config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover looks for one of FileNames in dir and loads the first one found.
// The defaults are returned when there is none.
func Discover(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat config: %w", err)
		}
		return Load(path)
	}
	return Default(), nil
}

// Validate checks that every setting holds a usable value.
func (cfg *Config) Validate() error {
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", cfg.MaxDepth)
	}
	if cfg.Verbosity < 0 {
		return fmt.Errorf("verbosity must not be negative, got %d", cfg.Verbosity)
	}
	switch cfg.Format {
	case FormatSExpr, FormatSource, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	return nil
}

// Options returns the front-end options described by the configuration.
func (cfg *Config) Options() lox.Options {
	return lox.Options{MaxDepth: cfg.MaxDepth}
}
