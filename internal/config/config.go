// Package config provides configuration management for fontls using Viper.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/fontkit/fontls/internal/fontdir"
)

// AppName is the application name used for config file naming.
const AppName = "fontls"

// Config represents the top-level configuration structure.
type Config struct {
	// DefaultScopes are the scopes searched when --scope is not given.
	DefaultScopes []string `mapstructure:"default_scopes" yaml:"default_scopes"`

	// DefaultPatterns are the name globs applied when --name is not given.
	DefaultPatterns []string `mapstructure:"default_patterns" yaml:"default_patterns"`

	// Format is the default output format for list (table, json, yaml, toml).
	Format string `mapstructure:"format" yaml:"format"`
}

// Formats lists the accepted output formats.
var Formats = []string{"table", "json", "yaml", "toml"}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	viper.SetEnvPrefix("FONTLS")
	viper.AutomaticEnv()

	viper.SetDefault("default_scopes", []string{"user"})
	viper.SetDefault("default_patterns", []string{"*"})
	viper.SetDefault("format", "table")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found
// (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If the user named a file explicitly, missing is an error;
			// an implicit load just falls back to defaults.
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks that configured values parse.
func (c *Config) validate() error {
	for _, s := range c.DefaultScopes {
		if _, err := fontdir.ParseScope(s); err != nil {
			return fmt.Errorf("default_scopes: %w", err)
		}
	}

	if c.Format != "" {
		valid := false
		for _, f := range Formats {
			if c.Format == f {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unsupported format: %s (valid: %v)", c.Format, Formats)
		}
	}

	return nil
}

// Scopes parses DefaultScopes into scope values.
// Invalid entries cannot occur after Load since validate rejects them.
func (c *Config) Scopes() ([]fontdir.Scope, error) {
	scopes := make([]fontdir.Scope, 0, len(c.DefaultScopes))
	for _, s := range c.DefaultScopes {
		scope, err := fontdir.ParseScope(s)
		if err != nil {
			return nil, err
		}
		scopes = append(scopes, scope)
	}
	return scopes, nil
}
