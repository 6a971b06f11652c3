// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fingerprint

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFile_MatchesSum(t *testing.T) {
	content := []byte("hello, jdvrif")
	path := filepath.Join(t.TempDir(), "carrier.jpg")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if want := Sum(content); got != want {
		t.Errorf("File = %x, want %x", got, want)
	}
}

func TestFile_Large(t *testing.T) {
	// Larger than one BLAKE3 chunk group, so streaming crosses
	// several hasher buffers.
	content := make([]byte, 256*1024)
	for i := range content {
		content[i] = byte(i % 251)
	}
	path := filepath.Join(t.TempDir(), "large")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := File(path)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if want := Sum(content); got != want {
		t.Errorf("File(large) = %x, want %x", got, want)
	}
}

func TestFile_Nonexistent(t *testing.T) {
	if _, err := File(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Fatal("File should fail for a nonexistent file")
	}
}

func TestSum_KnownVector(t *testing.T) {
	// BLAKE3 of the empty input.
	const want = "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"
	if got := Format(Sum(nil)); got != want {
		t.Errorf("Format(Sum(nil)) = %s, want %s", got, want)
	}
}

func TestSum_DifferentContent(t *testing.T) {
	if Sum([]byte("content A")) == Sum([]byte("content B")) {
		t.Error("different content produced the same digest")
	}
}
