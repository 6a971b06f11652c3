// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package recovery implements "jdvrif recover".
package recovery

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/jdvrif/cmd/jdvrif/cli"
	"github.com/bureau-foundation/jdvrif/lib/carrier"
	"github.com/bureau-foundation/jdvrif/lib/pinentry"
	"github.com/bureau-foundation/jdvrif/lib/report"
)

// Command returns the recover command. The PIN is read from the
// terminal and the report goes to stdout.
func Command() *cli.Command {
	return newCommand(os.Stdout, pinentry.NewPrompt())
}

func newCommand(stdout io.Writer, pin carrier.PINSource) *cli.Command {
	var (
		settings  cli.Settings
		outputDir string
	)

	return &cli.Command{
		Name:    "recover",
		Summary: "Decrypt and extract a file concealed in a JPG image",
		Description: `Decrypt, decompress, and extract a file concealed by "jdvrif conceal".

The recovery PIN printed at conceal time is requested interactively.
The carrier's storage kind (default, Bluesky, or Reddit) is detected
from the image itself.

Each wrong PIN is recorded in the carrier. After three consecutive
failures the embedded data is destroyed. A correct PIN resets the
count.`,
		Usage: "jdvrif recover [flags] <carrier_image>",
		Examples: []cli.Example{
			{
				Description: "Extract into the current directory",
				Command:     "jdvrif recover jrif_12345.jpg",
			},
			{
				Description: "Extract into a chosen directory",
				Command:     "jdvrif recover -o ~/recovered jrif_12345.jpg",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("recover", pflag.ContinueOnError)
			flagSet.StringVarP(&outputDir, "output", "o", "", "directory for the recovered file (default: recover.directory from config)")
			settings.AddFlags(flagSet)
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected <carrier_image>, got %d argument(s)\n\nRun 'jdvrif recover --help' for usage.", len(args))
			}

			cfg, logger, err := settings.Load()
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.Recover.Directory = outputDir
			}
			if err := cfg.EnsurePaths(); err != nil {
				return err
			}

			result, err := carrier.Recover(ctx, carrier.RecoverOptions{
				CarrierPath:     args[0],
				OutputDirectory: cfg.Recover.Directory,
				PIN:             pin,
				Logger:          logger.With("command", "recover"),
			})
			if err != nil {
				return err
			}
			return report.New(stdout).Recover(result)
		},
	}
}
