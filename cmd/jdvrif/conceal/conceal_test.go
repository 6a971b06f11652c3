// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package conceal

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/bureau-foundation/jdvrif/lib/config"
	"github.com/bureau-foundation/jdvrif/lib/layout"
	"github.com/bureau-foundation/jdvrif/lib/testutil"
)

var pinPattern = regexp.MustCompile(`Recovery PIN: \[\*\*\*(\d+)\*\*\*\]`)

func TestConceal_WritesCarrierAndReport(t *testing.T) {
	t.Setenv(config.EnvironmentVariable, "")

	inputs := t.TempDir()
	outputs := t.TempDir()
	cover := testutil.WriteFile(t, inputs, "cover.jpg", testutil.CoverJPEG(t, 400, 400, 80))
	payload := testutil.WriteFile(t, inputs, "notes.txt", []byte("meet at the usual place at noon"))

	var stdout bytes.Buffer
	err := newCommand(&stdout).Execute(context.Background(), []string{"-o", outputs, cover, payload})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(outputs, "jrif_*.jpg"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected exactly one carrier, got %v (err %v)", matches, err)
	}

	output := stdout.String()
	if !pinPattern.MatchString(output) {
		t.Errorf("report has no recovery PIN:\n%s", output)
	}
	if !strings.Contains(output, matches[0]) {
		t.Errorf("report does not name the carrier %s:\n%s", matches[0], output)
	}
	if !strings.Contains(output, "X-Twitter") {
		t.Errorf("small carrier should list X-Twitter:\n%s", output)
	}
}

func TestConceal_ArgumentCount(t *testing.T) {
	for _, args := range [][]string{{}, {"cover.jpg"}, {"a.jpg", "b.txt", "c"}} {
		err := newCommand(&bytes.Buffer{}).Execute(context.Background(), args)
		if err == nil {
			t.Errorf("Execute(%v) = nil, want argument error", args)
			continue
		}
		if !strings.Contains(err.Error(), "<cover_image>") {
			t.Errorf("Execute(%v) error = %v, want usage hint", args, err)
		}
	}
}

func TestConceal_ConflictingModes(t *testing.T) {
	err := newCommand(&bytes.Buffer{}).Execute(context.Background(), []string{"-b", "-r", "cover.jpg", "secret.txt"})
	if err == nil || !strings.Contains(err.Error(), "cannot be combined") {
		t.Errorf("Execute = %v, want mode conflict error", err)
	}
}

func TestConceal_MissingCoverWritesNothing(t *testing.T) {
	t.Setenv(config.EnvironmentVariable, "")

	inputs := t.TempDir()
	outputs := t.TempDir()
	payload := testutil.WriteFile(t, inputs, "notes.txt", []byte("hello"))

	var stdout bytes.Buffer
	err := newCommand(&stdout).Execute(context.Background(),
		[]string{"-o", outputs, filepath.Join(inputs, "absent.jpg"), payload})
	if err == nil {
		t.Fatal("expected error for missing cover")
	}
	if stdout.Len() != 0 {
		t.Errorf("no report expected on failure, got:\n%s", stdout.String())
	}
	if matches, _ := filepath.Glob(filepath.Join(outputs, "*")); len(matches) != 0 {
		t.Errorf("output directory should be empty, got %v", matches)
	}
}

func TestSelectMode(t *testing.T) {
	tests := []struct {
		bluesky, reddit bool
		want            layout.Mode
		wantErr         bool
	}{
		{false, false, layout.Default, false},
		{true, false, layout.Bluesky, false},
		{false, true, layout.Reddit, false},
		{true, true, 0, true},
	}
	for _, test := range tests {
		got, err := selectMode(test.bluesky, test.reddit)
		if (err != nil) != test.wantErr {
			t.Errorf("selectMode(%v, %v) error = %v, wantErr %v", test.bluesky, test.reddit, err, test.wantErr)
			continue
		}
		if !test.wantErr && got != test.want {
			t.Errorf("selectMode(%v, %v) = %s, want %s", test.bluesky, test.reddit, got, test.want)
		}
	}
}
