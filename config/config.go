// Package config holds the CLI's settings: a small, explicit struct loaded
// either from a YAML file via viper or from flags, rather than a
// framework-managed settings object. When the CLI is given a config file,
// the file's values are used as a whole; flags passed alongside it are not
// applied on top.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Format selects the serialization backend the CLI targets.
type Format string

const (
	FormatCNF Format = "cnf"
	FormatANF Format = "anf"
)

// Config is the full set of knobs the CLI accepts, file- or flag-provided.
type Config struct {
	Input      string `mapstructure:"input"`
	Output     string `mapstructure:"output"`
	Format     Format `mapstructure:"format"`
	Circuit    string `mapstructure:"circuit"`
	AddMaxArgs uint32 `mapstructure:"add_max_args"`
	XorMaxArgs uint32 `mapstructure:"xor_max_args"`
	LogLevel   string `mapstructure:"log_level"`
}

// Defaults returns a Config with every knob at its documented default.
func Defaults() Config {
	return Config{
		Format:     FormatCNF,
		AddMaxArgs: 3,
		XorMaxArgs: 3,
		LogLevel:   "info",
	}
}

// Load reads path (if non-empty) via viper, falling back to Defaults for
// anything the file doesn't set.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("format", string(cfg.Format))
	v.SetDefault("add_max_args", cfg.AddMaxArgs)
	v.SetDefault("xor_max_args", cfg.XorMaxArgs)
	v.SetDefault("log_level", cfg.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the encoding knobs are within their documented domains.
func (c Config) Validate() error {
	if c.AddMaxArgs < 2 || c.AddMaxArgs > 6 {
		return fmt.Errorf("config: add_max_args %d should be between 2 and 6", c.AddMaxArgs)
	}
	if c.XorMaxArgs < 2 || c.XorMaxArgs > 10 {
		return fmt.Errorf("config: xor_max_args %d should be between 2 and 10", c.XorMaxArgs)
	}
	if c.Format != FormatCNF && c.Format != FormatANF {
		return fmt.Errorf("config: format %q should be %q or %q", c.Format, FormatCNF, FormatANF)
	}
	return nil
}
