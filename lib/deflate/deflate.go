// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package deflate is the zlib codec applied to payloads before
// encryption, together with the policy that decides whether and how
// hard to compress.
package deflate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// Size thresholds for level selection and for skipping compression.
const (
	bestSpeedThreshold     = 500 << 20
	defaultLevelThreshold  = 250 << 20
	skipCompressionMinimum = 10 << 20
)

// ErrEmptyOutput is returned when inflating yields no bytes.
var ErrEmptyOutput = errors.New("inflate error, output empty")

// compressedExtensions lists formats that are already compressed.
// Deflating them again costs time and saves next to nothing.
var compressedExtensions = map[string]bool{
	".zip": true, ".jar": true, ".rar": true, ".7z": true, ".bz2": true,
	".gz": true, ".xz": true, ".tar": true, ".lz": true, ".lz4": true,
	".cab": true, ".rpm": true, ".deb": true, ".mp4": true, ".mp3": true,
	".exe": true, ".jpg": true, ".jpeg": true, ".jfif": true, ".png": true,
	".webp": true, ".bmp": true, ".gif": true, ".ogg": true, ".flac": true,
}

// Level returns the zlib level for an input of size bytes. Large inputs
// trade ratio for speed.
func Level(size int) int {
	switch {
	case size > bestSpeedThreshold:
		return zlib.BestSpeed
	case size > defaultLevelThreshold:
		return zlib.DefaultCompression
	default:
		return zlib.BestCompression
	}
}

// ShouldCompress reports whether a payload called name of size bytes
// should be deflated. Already-compressed formats over 10 MiB are
// stored as-is.
func ShouldCompress(name string, size int) bool {
	extension := strings.ToLower(filepath.Ext(name))
	return !(compressedExtensions[extension] && size > skipCompressionMinimum)
}

// Compress returns data as a zlib stream at the level chosen by Level.
func Compress(data []byte) ([]byte, error) {
	var output bytes.Buffer
	output.Grow(len(data)/2 + 64)

	writer, err := zlib.NewWriterLevel(&output, Level(len(data)))
	if err != nil {
		return nil, fmt.Errorf("creating zlib writer: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return nil, fmt.Errorf("deflating: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finishing zlib stream: %w", err)
	}
	return output.Bytes(), nil
}

// Decompress inflates a zlib stream. The stream must be complete and
// must inflate to at least one byte.
func Decompress(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading zlib header: %w", err)
	}
	defer reader.Close()

	var output bytes.Buffer
	output.Grow(len(data) * 2)
	if _, err := io.Copy(&output, reader); err != nil {
		return nil, fmt.Errorf("inflating: %w", err)
	}
	if output.Len() == 0 {
		return nil, ErrEmptyOutput
	}
	return output.Bytes(), nil
}
