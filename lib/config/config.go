// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads.
const EnvironmentVariable = "SWITCHBOARD_CONFIG"

// Config is the switchboard configuration.
type Config struct {
	// Table is the command table used when --table is not given.
	Table string `yaml:"table"`

	// Log configures the command logger.
	Log LogConfig `yaml:"log"`

	// Cache configures the compiled-table cache.
	Cache CacheConfig `yaml:"cache"`

	// Dispatch holds run options applied unless the table or the
	// command line sets them.
	Dispatch DispatchConfig `yaml:"dispatch"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is a slog level name: debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`
}

// CacheConfig configures the compiled-table cache.
type CacheConfig struct {
	// Enabled turns the cache on. Default: true
	Enabled bool `yaml:"enabled"`

	// Directory holds compiled tables named by source digest.
	// Default: ${SWITCHBOARD_CACHE} (the user cache directory plus
	// "switchboard").
	Directory string `yaml:"directory"`

	// Compression is "none", "lz4", or "zstd". Default: zstd
	Compression string `yaml:"compression"`
}

// DispatchConfig holds default run options.
type DispatchConfig struct {
	CompleteAll     bool `yaml:"complete_all"`
	FollowUserOrder bool `yaml:"follow_user_order"`
}

// Default returns the configuration used when no file is given, and
// the base that a loaded file is merged over.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Cache: CacheConfig{
			Enabled:     true,
			Directory:   "${SWITCHBOARD_CACHE}",
			Compression: "zstd",
		},
	}
}

// Load loads configuration from the file named by SWITCHBOARD_CONFIG.
// It fails when the variable is not set; callers that can run without
// a config file check the variable first or use [Default].
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your switchboard.yaml config file, or use --config flag",
			EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merged over
// [Default], and expands variables in path fields.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.ExpandVariables()
	return cfg, nil
}

// ExpandVariables expands ${VAR} and ${VAR:-default} in Table and
// Cache.Directory. [LoadFile] calls it; callers using [Default]
// directly call it themselves.
func (c *Config) ExpandVariables() {
	vars := map[string]string{
		"HOME":              os.Getenv("HOME"),
		"SWITCHBOARD_CACHE": defaultCacheDirectory(),
	}

	c.Table = expandVars(c.Table, vars)
	c.Cache.Directory = expandVars(c.Cache.Directory, vars)
}

// defaultCacheDirectory is the user cache directory plus
// "switchboard", or a directory under the system temp directory when
// the platform has no user cache directory.
func defaultCacheDirectory() string {
	if directory := os.Getenv("SWITCHBOARD_CACHE"); directory != "" {
		return directory
	}
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "switchboard")
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns, checking
// vars before the environment.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	switch c.Cache.Compression {
	case "none", "lz4", "zstd":
	default:
		errs = append(errs, fmt.Errorf("cache.compression: unknown algorithm %q (want none, lz4, or zstd)", c.Cache.Compression))
	}

	if c.Cache.Enabled && c.Cache.Directory == "" {
		errs = append(errs, fmt.Errorf("cache.directory is required when the cache is enabled"))
	}

	return errors.Join(errs...)
}
