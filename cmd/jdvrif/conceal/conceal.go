// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package conceal implements "jdvrif conceal".
package conceal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/jdvrif/cmd/jdvrif/cli"
	"github.com/bureau-foundation/jdvrif/lib/carrier"
	"github.com/bureau-foundation/jdvrif/lib/layout"
	"github.com/bureau-foundation/jdvrif/lib/report"
)

// Command returns the conceal command, reporting to stdout.
func Command() *cli.Command {
	return newCommand(os.Stdout)
}

func newCommand(stdout io.Writer) *cli.Command {
	var (
		settings  cli.Settings
		bluesky   bool
		reddit    bool
		outputDir string
	)

	return &cli.Command{
		Name:    "conceal",
		Summary: "Compress, encrypt, and embed a file in a JPG cover image",
		Description: `Compress, encrypt, and embed a file in a JPG cover image.

The payload is zlib-compressed (unless it is already a large archive or
media file), encrypted with XSalsa20-Poly1305, and written into metadata
segments of the cover. The carrier is saved under a fresh random name
and never overwrites an existing file.

A recovery PIN is printed once. It is the only way to recover the file;
three wrong PIN entries in a row destroy the embedded data.

PNG, BMP, and WebP covers are converted to JPG first.`,
		Usage: "jdvrif conceal [-b|-r] [flags] <cover_image> <secret_file>",
		Examples: []cli.Example{
			{
				Description: "Embed a document for general sharing",
				Command:     "jdvrif conceal my_image.jpg report.pdf",
			},
			{
				Description: "Embed a small file for posting to Bluesky",
				Command:     "jdvrif conceal -b my_image.jpg notes.txt",
			},
			{
				Description: "Embed an audio file for posting to Reddit",
				Command:     "jdvrif conceal -r my_image.jpg secret.mp3",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("conceal", pflag.ContinueOnError)
			flagSet.BoolVarP(&bluesky, "bluesky", "b", false, "create a carrier for Bluesky")
			flagSet.BoolVarP(&reddit, "reddit", "r", false, "create a carrier for Reddit")
			flagSet.StringVarP(&outputDir, "output", "o", "", "directory for the carrier (default: output.directory from config)")
			settings.AddFlags(flagSet)
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected <cover_image> and <secret_file>, got %d argument(s)\n\nRun 'jdvrif conceal --help' for usage.", len(args))
			}
			mode, err := selectMode(bluesky, reddit)
			if err != nil {
				return err
			}

			cfg, logger, err := settings.Load()
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.Output.Directory = outputDir
			}
			if err := cfg.EnsurePaths(); err != nil {
				return err
			}

			result, err := carrier.Conceal(carrier.ConcealOptions{
				Mode:             mode,
				CoverPath:        args[0],
				PayloadPath:      args[1],
				OutputDirectory:  cfg.Output.Directory,
				OutputPrefix:     cfg.Output.Prefix,
				BlueskyQuality:   cfg.Image.BlueskyQuality,
				TranscodeQuality: cfg.Image.TranscodeQuality,
				Logger:           logger.With("command", "conceal"),
			})
			if err != nil {
				return err
			}
			return report.New(stdout).Conceal(result)
		},
	}
}

// selectMode maps the platform flags to a storage mode.
func selectMode(bluesky, reddit bool) (layout.Mode, error) {
	switch {
	case bluesky && reddit:
		return 0, fmt.Errorf("-b (Bluesky) and -r (Reddit) cannot be combined")
	case bluesky:
		return layout.Bluesky, nil
	case reddit:
		return layout.Reddit, nil
	default:
		return layout.Default, nil
	}
}
