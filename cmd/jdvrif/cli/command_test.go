// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "jdvrif",
		Subcommands: []*Command{
			{
				Name: "conceal",
				Run: func(ctx context.Context, args []string) error {
					called = "conceal"
					return nil
				},
			},
			{
				Name: "recover",
				Run: func(ctx context.Context, args []string) error {
					called = "recover"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"recover"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "recover" {
		t.Errorf("dispatched to %q, want %q", called, "recover")
	}
}

func TestCommand_Execute_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "marker")

	var received any
	root := &Command{
		Name: "jdvrif",
		Subcommands: []*Command{
			{
				Name: "recover",
				Run: func(ctx context.Context, args []string) error {
					received = ctx.Value(key{})
					return nil
				},
			},
		},
	}

	if err := root.Execute(ctx, []string{"recover", "image.jpg"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if received != "marker" {
		t.Errorf("context value = %v, want marker", received)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var bluesky bool
	var output string
	var positional []string

	command := &Command{
		Name: "conceal",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("conceal", pflag.ContinueOnError)
			flagSet.BoolVarP(&bluesky, "bluesky", "b", false, "Bluesky mode")
			flagSet.StringVarP(&output, "output", "o", ".", "output directory")
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error {
			positional = args
			return nil
		},
	}

	err := command.Execute(context.Background(), []string{"-b", "-o", "/tmp/out", "cover.jpg", "secret.txt"})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !bluesky {
		t.Error("bluesky flag not set")
	}
	if output != "/tmp/out" {
		t.Errorf("output = %q, want %q", output, "/tmp/out")
	}
	if len(positional) != 2 || positional[0] != "cover.jpg" || positional[1] != "secret.txt" {
		t.Errorf("args = %v, want [cover.jpg secret.txt]", positional)
	}
}

func TestCommand_Execute_RunError(t *testing.T) {
	want := errors.New("boom")
	command := &Command{
		Name: "recover",
		Run:  func(ctx context.Context, args []string) error { return want },
	}

	if err := command.Execute(context.Background(), nil); !errors.Is(err, want) {
		t.Errorf("Execute() = %v, want %v", err, want)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "conceal",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("conceal", pflag.ContinueOnError)
			flagSet.Bool("reddit", false, "Reddit mode")
			flagSet.String("config", "", "config file")
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--redit"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --reddit") {
		t.Errorf("error = %q, want suggestion for '--reddit'", errStr)
	}
	if !strings.Contains(errStr, "redit") {
		t.Errorf("error = %q, should mention the bad flag", errStr)
	}
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "conceal",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("conceal", pflag.ContinueOnError)
			flagSet.Bool("reddit", false, "Reddit mode")
			return flagSet
		},
		Run: func(ctx context.Context, args []string) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "jdvrif",
		Subcommands: []*Command{
			{Name: "conceal"},
			{Name: "recover"},
			{Name: "info"},
		},
	}

	err := root.Execute(context.Background(), []string{"recvoer"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "did you mean \"recover\"") {
		t.Errorf("error = %q, want suggestion for 'recover'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "jdvrif",
		Subcommands: []*Command{
			{Name: "conceal"},
			{Name: "recover"},
		},
	}

	err := root.Execute(context.Background(), []string{"zzzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			var buffer bytes.Buffer
			root := &Command{
				Name:       "jdvrif",
				Summary:    "Hide files inside JPG images",
				HelpOutput: &buffer,
				Subcommands: []*Command{
					{Name: "conceal", Summary: "Embed a file"},
				},
			}

			if err := root.Execute(context.Background(), []string{helpArg}); err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
			if !strings.Contains(buffer.String(), "conceal") {
				t.Errorf("help output missing subcommand:\n%s", buffer.String())
			}
		})
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	var buffer bytes.Buffer
	root := &Command{
		Name:       "jdvrif",
		HelpOutput: &buffer,
		Subcommands: []*Command{
			{Name: "conceal", Summary: "Embed a file"},
		},
	}

	err := root.Execute(context.Background(), []string{})
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
	if !strings.Contains(buffer.String(), "Usage:") {
		t.Errorf("expected help on HelpOutput, got:\n%s", buffer.String())
	}
}

func TestCommand_Execute_RootRunWithFlags(t *testing.T) {
	var info bool
	ran := false
	root := &Command{
		Name: "jdvrif",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("jdvrif", pflag.ContinueOnError)
			flagSet.BoolVar(&info, "info", false, "show information")
			return flagSet
		},
		Subcommands: []*Command{{Name: "conceal"}},
		Run: func(ctx context.Context, args []string) error {
			ran = true
			return nil
		},
	}

	if err := root.Execute(context.Background(), []string{"--info"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !ran || !info {
		t.Errorf("ran = %v, info = %v; want both true", ran, info)
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "jdvrif",
		Description: "JPG Data Vehicle.",
		Subcommands: []*Command{
			{Name: "conceal", Summary: "Compress, encrypt, and embed a file"},
			{Name: "recover", Summary: "Extract a concealed file"},
		},
		Examples: []Example{
			{
				Description: "Hide a document for Bluesky",
				Command:     "jdvrif conceal -b cover.jpg notes.txt",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"JPG Data Vehicle.",
		"Usage:",
		"jdvrif <command> [flags]",
		"Commands:",
		"conceal",
		"Compress, encrypt, and embed a file",
		"recover",
		"Examples:",
		"# Hide a document for Bluesky",
		"jdvrif conceal -b cover.jpg notes.txt",
		"Run 'jdvrif <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_PrintHelp_WithFlags(t *testing.T) {
	command := &Command{
		Name:    "recover",
		Summary: "Extract a concealed file",
		Usage:   "jdvrif recover [flags] <carrier_image>",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("recover", pflag.ContinueOnError)
			flagSet.StringP("output", "o", "", "directory for the recovered file")
			flagSet.Bool("verbose", false, "log stages")
			return flagSet
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"jdvrif recover [flags] <carrier_image>",
		"Flags:",
		"-o, --output",
		"--verbose",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "jdvrif"}
	conceal := &Command{Name: "conceal", parent: root}

	if got := root.fullName(); got != "jdvrif" {
		t.Errorf("root.fullName() = %q, want %q", got, "jdvrif")
	}
	if got := conceal.fullName(); got != "jdvrif conceal" {
		t.Errorf("conceal.fullName() = %q, want %q", got, "jdvrif conceal")
	}
}
