package config

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed defaults.toml
var defaultsTOML string

type Config struct {
	Output OutputConfig `toml:"output"`
	Layout LayoutConfig `toml:"layout"`
}

type OutputConfig struct {
	File  string `toml:"file"`
	Sheet string `toml:"sheet"`
	// Directory is resolved against the working directory when empty
	Directory string `toml:"directory"`
}

type LayoutConfig struct {
	ColumnPadding int `toml:"column_padding"`
}

// Default returns the built-in generator settings
func Default() Config {
	cfg, err := Parse(defaultsTOML)
	if err != nil {
		// defaults.toml is compiled in; failing here is a build defect
		panic(fmt.Sprintf("invalid embedded defaults: %v", err))
	}
	return cfg
}

// Parse decodes a TOML document into a Config and validates it
func Parse(doc string) (Config, error) {
	var cfg Config
	if _, err := toml.Decode(doc, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the output target is usable
func (c Config) Validate() error {
	if strings.TrimSpace(c.Output.File) == "" {
		return fmt.Errorf("output file name is empty")
	}
	if strings.TrimSpace(c.Output.Sheet) == "" {
		return fmt.Errorf("output sheet name is empty")
	}
	if c.Layout.ColumnPadding < 0 {
		return fmt.Errorf("column padding must not be negative, got %d", c.Layout.ColumnPadding)
	}
	return nil
}
