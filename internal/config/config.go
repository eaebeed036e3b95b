// Package config loads the optional shared configuration of the anno
// tools from ~/.anno/config.{toml,yaml,yml,json}. Command-line flags
// always take precedence over the file; a missing file is not an error.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/naoina/toml"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type unmarshal func([]byte, interface{}) error

// Config is the shared configuration surface of the tool suite.
type Config struct {
	// Color, when set, is the default for color output. Flags override
	// it, and tools that report to a non-terminal suppress it.
	Color *bool `json:"color" yaml:"color" toml:"color"`

	// Pager overrides the pager command run by anno. Default "less".
	Pager string `json:"pager" yaml:"pager" toml:"pager"`

	// MaxColumns is the maximum line length handled by match.
	MaxColumns int `json:"max_columns" yaml:"max_columns" toml:"max_columns"`

	// BufferSize is the working window capacity of annofilter.
	BufferSize int `json:"buffer_size" yaml:"buffer_size" toml:"buffer_size"`
}

// Load finds and loads the config file. When no file exists an empty
// Config is returned.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return &Config{}, nil
	}
	configDir := filepath.Join(home, ".anno")
	for _, ext := range []string{"toml", "yaml", "yml", "json"} {
		maybe := filepath.Join(configDir, fmt.Sprintf("config.%s", ext))
		if _, err := os.Stat(maybe); err != nil {
			continue
		}
		log.Infof("using config file %s", maybe)
		return LoadFile(maybe)
	}
	return &Config{}, nil
}

// LoadFile loads a specific config file, dispatching the parser on the
// file extension.
func LoadFile(path string) (*Config, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return parse(yaml.Unmarshal, body)
	case ".toml":
		return parse(toml.Unmarshal, body)
	case ".json":
		return parse(json.Unmarshal, body)
	default:
		return nil, fmt.Errorf("unknown config file type '%s'", filepath.Ext(path))
	}
}

func parse(un unmarshal, body []byte) (*Config, error) {
	c := &Config{}
	if err := un(body, c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.MaxColumns < 0 {
		return errors.New("max_columns must not be negative")
	}
	if c.BufferSize < 0 {
		return errors.New("buffer_size must not be negative")
	}
	return nil
}
