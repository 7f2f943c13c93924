// Package config holds the settings of the sysyc driver and loads them
// from TOML or YAML files.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/tinyrange/sysy/internal/errors"
	"github.com/tinyrange/sysy/internal/parser"
)

// Output formats of the driver.
const (
	FormatText       = "text"
	FormatPretty     = "pretty"
	FormatJSON       = "json"
	FormatIndentJSON = "json-indent"
)

// Config holds the driver settings. Fields missing from a file keep their
// defaults.
type Config struct {
	// Format is one of the Format constants.
	Format string `toml:"format" yaml:"format"`
	// Width is the line width used by FormatPretty and FormatIndentJSON.
	Width int `toml:"width" yaml:"width"`
	// LogLevel is a zerolog level name.
	LogLevel string `toml:"log_level" yaml:"log_level"`
	// Color enables colored error messages.
	Color bool `toml:"color" yaml:"color"`
	// MaxDepth bounds the nesting accepted by the parser.
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
}

// Default returns the configuration used when no file is given. Color is
// on only when stderr is a terminal.
func Default() *Config {
	return &Config{
		Format:   FormatText,
		Width:    80,
		LogLevel: zerolog.WarnLevel.String(),
		Color:    isTerminal(os.Stderr),
		MaxDepth: parser.DefaultMaxDepth,
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Load reads the file at path over the defaults. The format is chosen by
// extension: .toml, or .yaml / .yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(path, err)
	}

	cfg := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, errors.NewConfigError(path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, errors.NewConfigError(path, fmt.Errorf("unknown key %q", undecoded[0].String()))
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return nil, errors.NewConfigError(path, err)
		}
	default:
		return nil, errors.NewConfigError(path, fmt.Errorf("unsupported file extension %q", ext))
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.NewConfigError(path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatPretty, FormatJSON, FormatIndentJSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Width < 1 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.MaxDepth < 1 || c.MaxDepth > parser.MaxDepthLimit {
		return fmt.Errorf("max_depth must be between 1 and %d, got %d", parser.MaxDepthLimit, c.MaxDepth)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty LogLevel means zerolog.NoLevel.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}
