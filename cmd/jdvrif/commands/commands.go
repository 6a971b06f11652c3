// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the jdvrif command tree.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/jdvrif/cmd/jdvrif/cli"
	"github.com/bureau-foundation/jdvrif/cmd/jdvrif/conceal"
	"github.com/bureau-foundation/jdvrif/cmd/jdvrif/recovery"
	"github.com/bureau-foundation/jdvrif/lib/version"
)

// Root builds and returns the complete jdvrif command tree.
func Root() *cli.Command {
	return newRoot(os.Stdout, os.Stderr, conceal.Command(), recovery.Command())
}

func newRoot(stdout, stderr io.Writer, subcommands ...*cli.Command) *cli.Command {
	var (
		showInfo    bool
		showVersion bool
	)

	root := &cli.Command{
		Name: "jdvrif",
		Description: version.Name + `

Conceal any file inside a JPG image, and recover it again with the PIN
printed at conceal time. Carriers can be shared on common image hosts;
use -b for Bluesky and -r for Reddit.`,
		HelpOutput: stderr,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("jdvrif", pflag.ContinueOnError)
			flagSet.BoolVar(&showInfo, "info", false, "describe modes and platform size limits")
			flagSet.BoolVar(&showVersion, "version", false, "print version information")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Hide a file in an image",
				Command:     "jdvrif conceal my_image.jpg hidden.doc",
			},
			{
				Description: "Recover it (prompts for the PIN)",
				Command:     "jdvrif recover jrif_12345.jpg",
			},
		},
	}

	root.Subcommands = append(subcommands,
		&cli.Command{
			Name:    "info",
			Summary: "Describe modes and platform size limits",
			Run: func(_ context.Context, _ []string) error {
				return writeInfo(stdout)
			},
		},
		&cli.Command{
			Name:    "version",
			Summary: "Print version information",
			Run: func(_ context.Context, _ []string) error {
				_, err := fmt.Fprintln(stdout, version.Full())
				return err
			},
		},
	)

	root.Run = func(_ context.Context, args []string) error {
		switch {
		case showVersion:
			_, err := fmt.Fprintln(stdout, version.Info())
			return err
		case showInfo:
			return writeInfo(stdout)
		case len(args) > 0:
			return fmt.Errorf("unexpected argument %q\n\nRun 'jdvrif --help' for usage.", args[0])
		}
		root.PrintHelp(stderr)
		return &cli.ExitError{Code: 1}
	}

	return root
}
