// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the config file when --config is not given.
const EnvironmentVariable = "JDVRIF_CONFIG"

// Config is the jdvrif configuration.
type Config struct {
	// Output configures where conceal writes carriers.
	Output OutputConfig `yaml:"output"`

	// Recover configures where recover writes extracted files.
	Recover RecoverConfig `yaml:"recover"`

	// Image configures cover image re-encoding.
	Image ImageConfig `yaml:"image"`

	// Log configures diagnostic logging on stderr.
	Log LogConfig `yaml:"log"`
}

// OutputConfig configures carrier output.
type OutputConfig struct {
	// Directory receives new carriers.
	// Default: . (the current directory)
	Directory string `yaml:"directory"`

	// Prefix starts every carrier filename; five random digits and
	// ".jpg" follow it.
	// Default: jrif_
	Prefix string `yaml:"prefix"`
}

// RecoverConfig configures payload extraction.
type RecoverConfig struct {
	// Directory receives recovered files, named as stored in the
	// carrier.
	// Default: .
	Directory string `yaml:"directory"`
}

// ImageConfig configures cover re-encoding.
type ImageConfig struct {
	// BlueskyQuality is the JPEG quality every Bluesky cover is
	// re-encoded at.
	// Default: 85
	BlueskyQuality int `yaml:"bluesky_quality"`

	// TranscodeQuality is the JPEG quality for PNG, BMP, and WebP
	// covers.
	// Default: 90
	TranscodeQuality int `yaml:"transcode_quality"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: warn
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Directory: ".",
			Prefix:    "jrif_",
		},
		Recover: RecoverConfig{
			Directory: ".",
		},
		Image: ImageConfig{
			BlueskyQuality:   85,
			TranscodeQuality: 90,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads the file named by JDVRIF_CONFIG, or returns Default when
// the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Fields the
// file leaves out keep their defaults. Environment variables do not
// override values; they are only expanded where a path field names
// them.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.expandVariables()

	return cfg, nil
}

// loadFile merges one YAML file into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Output.Directory = expandVars(c.Output.Directory, vars)
	c.Recover.Directory = expandVars(c.Recover.Directory, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

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

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Output.Directory == "" {
		errs = append(errs, fmt.Errorf("output.directory is required"))
	}

	if !validPrefix(c.Output.Prefix) {
		errs = append(errs, fmt.Errorf("output.prefix %q may only contain letters, digits, and . _ @ %% -", c.Output.Prefix))
	}

	if c.Recover.Directory == "" {
		errs = append(errs, fmt.Errorf("recover.directory is required"))
	}

	for _, field := range []struct {
		name  string
		value int
	}{
		{"image.bluesky_quality", c.Image.BlueskyQuality},
		{"image.transcode_quality", c.Image.TranscodeQuality},
	} {
		if field.value < minQuality || field.value > maxQuality {
			errs = append(errs, fmt.Errorf("%s must be between %d and %d, got %d",
				field.name, minQuality, maxQuality, field.value))
		}
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", logLevels))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// validPrefix reports whether prefix is safe to start a filename: no
// path separators, no shell-hostile characters. Empty is allowed.
func validPrefix(prefix string) bool {
	for _, r := range prefix {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("._@%-", r):
		default:
			return false
		}
	}
	return true
}

// Re-encode quality bounds. The upper bound matches the highest cover
// quality conceal accepts.
const (
	minQuality = 1
	maxQuality = 97
)

// SlogLevel returns Log.Level as a slog level. Unknown values map to
// warn; Validate reports them.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// EnsurePaths creates the output and recover directories if they don't
// exist.
func (c *Config) EnsurePaths() error {
	paths := []string{
		c.Output.Directory,
		c.Recover.Directory,
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}

	return nil
}
