// Package config resolves the ambient defaults the command line can
// override: the governor's poll ceiling, the aggregator snapshot size,
// and the default highlight-match toggle. It never touches the
// persisted session/parser/history formats spec.md §6 defines — those
// are plain JSON/text handled by internal/persist.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the ambient, overridable defaults.
type Config struct {
	PollCeilingMs  int  `mapstructure:"poll_ceiling_ms"`
	NumToAggregate int  `mapstructure:"num_to_aggregate"`
	HighlightMatch bool `mapstructure:"highlight_match"`
}

// Default returns the built-in defaults, matching spec.md §4.2's
// SLOWEST bound and a reasonable aggregator snapshot size.
func Default() *Config {
	return &Config{
		PollCeilingMs:  1000,
		NumToAggregate: 5,
		HighlightMatch: false,
	}
}

// Load resolves Config from, in ascending precedence: built-in
// defaults, a config file found by findConfigFile, then LOGRIA_-
// prefixed environment variables.
func Load() (*Config, error) {
	cfg := Default()
	v := viper.New()

	v.SetDefault("poll_ceiling_ms", cfg.PollCeilingMs)
	v.SetDefault("num_to_aggregate", cfg.NumToAggregate)
	v.SetDefault("highlight_match", cfg.HighlightMatch)

	v.SetEnvPrefix("LOGRIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := findConfigFile(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific file, bypassing the
// search path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile searches, in order of precedence: the current
// directory, the user's home directory, and the XDG config directory,
// for a .logria.yaml/.logria.yml file.
func findConfigFile() string {
	names := []string{".logria.yaml", ".logria.yml"}

	var searchPaths []string
	if cwd, err := os.Getwd(); err == nil {
		searchPaths = append(searchPaths, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, home)
	}
	if cfgDir, err := os.UserConfigDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(cfgDir, "logria"))
	}

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// ConfigFile returns the path to the config file that would be loaded.
func ConfigFile() string {
	return findConfigFile()
}

// Validate checks the resolved values for basic sanity.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.PollCeilingMs <= 0 {
		return fmt.Errorf("poll_ceiling_ms must be > 0, got %d", c.PollCeilingMs)
	}
	if c.NumToAggregate <= 0 {
		return fmt.Errorf("num_to_aggregate must be > 0, got %d", c.NumToAggregate)
	}
	return nil
}
