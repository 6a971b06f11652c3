// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/jdvrif/lib/config"
)

// Settings holds the flags shared by conceal and recover.
type Settings struct {
	// ConfigPath overrides JDVRIF_CONFIG when set.
	ConfigPath string

	// Verbose lowers the log level to at most info.
	Verbose bool
}

// AddFlags registers --config and --verbose on flagSet.
func (settings *Settings) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&settings.ConfigPath, "config", "", "YAML config file (default: $"+config.EnvironmentVariable+")")
	flagSet.BoolVarP(&settings.Verbose, "verbose", "v", false, "log each pipeline stage to stderr")
}

// Load reads and validates the configuration, then builds the logger
// for one command run.
func (settings *Settings) Load() (*config.Config, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if settings.ConfigPath != "" {
		cfg, err = config.LoadFile(settings.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	level := cfg.SlogLevel()
	if settings.Verbose {
		level = min(level, slog.LevelInfo)
	}
	return cfg, NewCommandLogger(level), nil
}
