// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/jdvrif/cmd/jdvrif/cli"
	"github.com/bureau-foundation/jdvrif/lib/platform"
	"github.com/bureau-foundation/jdvrif/lib/version"
)

func TestRoot_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := newRoot(&stdout, &stderr).Execute(context.Background(), []string{"--version"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != version.Info() {
		t.Errorf("--version printed %q, want %q", got, version.Info())
	}
}

func TestRoot_VersionSubcommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := newRoot(&stdout, &stderr).Execute(context.Background(), []string{"version"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), version.Info()) {
		t.Errorf("version printed %q", stdout.String())
	}
}

func TestRoot_Info(t *testing.T) {
	for _, args := range [][]string{{"--info"}, {"info"}} {
		var stdout, stderr bytes.Buffer
		if err := newRoot(&stdout, &stderr).Execute(context.Background(), args); err != nil {
			t.Fatalf("Execute(%v): %v", args, err)
		}
		output := stdout.String()
		for _, want := range []string{"jdvrif conceal [-b|-r]", "jdvrif recover", "Bluesky (-b)", "Reddit (-r)"} {
			if !strings.Contains(output, want) {
				t.Errorf("Execute(%v) output missing %q", args, want)
			}
		}
		for _, entry := range platform.Table {
			if !strings.Contains(output, entry.Name) {
				t.Errorf("Execute(%v) output missing platform %s", args, entry.Name)
			}
		}
	}
}

func TestRoot_NoArgumentsExitsWithHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := newRoot(&stdout, &stderr).Execute(context.Background(), nil)

	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("Execute = %v, want ExitError code 1", err)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("expected help on stderr, got:\n%s", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", stdout.String())
	}
}

func TestRoot_UnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := newRoot(&stdout, &stderr, &cli.Command{Name: "conceal"}, &cli.Command{Name: "recover"}).
		Execute(context.Background(), []string{"conceel"})
	if err == nil || !strings.Contains(err.Error(), `did you mean "conceal"`) {
		t.Errorf("Execute = %v, want suggestion", err)
	}
}

func TestFormatLimit(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "-"},
		{-1, "-"},
		{512, "512 B"},
		{10 * 1024, "10 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{200 * 1024 * 1024, "200 MiB"},
		{1536 * 1024, "1.5 MiB"},
	}
	for _, test := range tests {
		if got := formatLimit(test.size); got != test.want {
			t.Errorf("formatLimit(%d) = %q, want %q", test.size, got, test.want)
		}
	}
}
