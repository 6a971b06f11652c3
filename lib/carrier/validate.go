// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package carrier

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bureau-foundation/jdvrif/lib/layout"
)

const (
	kibibyte = 1024
	mebibyte = 1024 * kibibyte
	gibibyte = 1024 * mebibyte
)

// Input size limits.
const (
	MinCoverSize           = 134
	MaxCoverSize           = 8 * mebibyte
	MaxBlueskyCoverSize    = 800 * kibibyte
	MaxBlueskyPayloadSize  = 5 * mebibyte
	MaxRedditCombinedSize  = 20 * mebibyte
	MaxDefaultCombinedSize = 2 * gibibyte
	MaxFileSize            = 3 * gibibyte
)

var (
	// CoverExtensions are accepted for cover images. PNG, BMP, and WebP
	// covers are transcoded to JPEG.
	CoverExtensions = []string{".jpg", ".jpeg", ".jfif", ".png", ".bmp", ".webp"}

	// CarrierExtensions are accepted for images passed to Recover.
	CarrierExtensions = []string{".jpg", ".jpeg", ".jfif"}
)

// ValidFilenameChar reports whether c may appear in an input filename:
// ASCII letters, digits, and . - _ @ %.
func ValidFilenameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.', c == '-', c == '_', c == '@', c == '%':
		return true
	}
	return false
}

// ValidateFilename checks the final element of path against the
// filename character set.
func ValidateFilename(path string) error {
	name := filepath.Base(path)
	if path == "" || name == "." || name == string(filepath.Separator) {
		return validationError("Invalid Input Error: Missing filename.")
	}
	for index := range len(name) {
		if !ValidFilenameChar(name[index]) {
			return validationError("Invalid Input Error: Unsupported characters in filename arguments.")
		}
	}
	return nil
}

// HasExtension reports whether path ends in one of extensions,
// compared case-insensitively.
func HasExtension(path string, extensions []string) bool {
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(path)))
}

// inputKind selects the checks readInput applies.
type inputKind uint8

const (
	inputCover inputKind = iota
	inputCarrier
	inputPayload
)

// readInput validates and reads one input file.
func readInput(path string, kind inputKind) ([]byte, error) {
	if err := ValidateFilename(path); err != nil {
		return nil, err
	}

	switch kind {
	case inputCover:
		if !HasExtension(path, CoverExtensions) {
			return nil, validationError("File Type Error: Invalid image extension. Only expecting %s.",
				strings.Join(CoverExtensions, ", "))
		}
	case inputCarrier:
		if !HasExtension(path, CarrierExtensions) {
			return nil, validationError("File Type Error: Invalid image extension. Only expecting %s.",
				strings.Join(CarrierExtensions, ", "))
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, wrap(KindValidation, err, "Error: File %q not found", path)
		}
		return nil, wrap(KindIO, err, "Error: Cannot access %q", path)
	}
	if !info.Mode().IsRegular() {
		return nil, validationError("Error: File %q is not a regular file.", path)
	}

	size := info.Size()
	if size == 0 {
		return nil, validationError("Error: File %q is empty.", path)
	}
	if size > MaxFileSize {
		return nil, validationError("Error: File exceeds program size limit.")
	}
	if kind == inputCover {
		if size < MinCoverSize {
			return nil, validationError("File Error: Invalid image file size.")
		}
		if size > MaxCoverSize {
			return nil, validationError("Image File Error: Cover image file exceeds maximum size limit.")
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(KindIO, err, "Error: Failed to read %q", path)
	}
	if int64(len(data)) != size {
		return nil, wrap(KindIO, fmt.Errorf("read %d of %d bytes", len(data), size), "Error: Failed to read full file %q", path)
	}
	return data, nil
}

// checkPayloadName validates the name that will be stored in the
// carrier and restored on recovery.
func checkPayloadName(name string) error {
	if len(name) > layout.FilenameMaxLength {
		return validationError("Data File Error: Length of data filename %q exceeds the %d character limit.",
			name, layout.FilenameMaxLength)
	}
	return ValidateFilename(name)
}

// checkConcealSizes applies the per-mode size ceilings to the raw input
// files.
func checkConcealSizes(mode layout.Mode, coverSize, payloadSize int) error {
	combined := int64(coverSize) + int64(payloadSize)
	switch mode {
	case layout.Bluesky:
		if coverSize > MaxBlueskyCoverSize {
			return &Error{Kind: KindCapacity, Message: "File Size Error: Image file exceeds maximum size limit for the Bluesky platform."}
		}
		if payloadSize > MaxBlueskyPayloadSize {
			return &Error{Kind: KindCapacity, Message: "Data File Size Error: File exceeds maximum size limit for the Bluesky platform."}
		}
	case layout.Reddit:
		if combined > MaxRedditCombinedSize {
			return &Error{Kind: KindCapacity, Message: "File Size Error: Combined size of image and data file exceeds maximum size limit for the Reddit platform."}
		}
	default:
		if combined > MaxDefaultCombinedSize {
			return &Error{Kind: KindCapacity, Message: "File Size Error: Combined size of image and data file exceeds maximum default size limit."}
		}
	}
	return nil
}

// checkRecoveredName rejects stored filenames that could escape the
// output directory.
func checkRecoveredName(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return &Error{Kind: KindFormat, Message: fmt.Sprintf("Recovered filename %q is not a plain file name", name)}
	}
	return nil
}
