// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"bytes"
	"fmt"

	"github.com/bureau-foundation/jdvrif/lib/layout"
)

// Location describes where a carrier's header frame sits.
type Location struct {
	// Mode is Default when the frame starts the file, Reddit when a
	// Default frame sits behind the cover image, or Bluesky.
	Mode layout.Mode

	// Base is the offset of the frame's SOI position within the
	// carrier. For Reddit carriers no SOI is present at Base; the
	// frame's offsets are still measured from it.
	Base int

	// AttemptsOffset is the absolute file offset of the PIN attempt
	// counter.
	AttemptsOffset int64
}

// Locate finds the protocol signature and classifies the carrier by
// the template structure around it.
func Locate(carrier []byte) (Location, error) {
	index := bytes.Index(carrier, layout.Signature[:])
	if index < 0 {
		return Location{}, fmt.Errorf("%w: signature check failure", ErrNotCarrier)
	}

	if base := index - layout.SignatureOffset(layout.Default); base >= 0 {
		icc := carrier[base+layout.DefaultICCSignatureOffset:]
		if bytes.HasPrefix(icc, layout.ICCSignature[:]) {
			mode := layout.Default
			if base > 0 {
				mode = layout.Reddit
			}
			return Location{
				Mode:           mode,
				Base:           base,
				AttemptsOffset: int64(base + layout.DefaultAttemptsOffset),
			}, nil
		}
	}

	if base := index - layout.SignatureOffset(layout.Bluesky); base >= 0 {
		exif := carrier[base:]
		if len(exif) >= 10 && exif[2] == 0xFF && exif[3] == 0xE1 && bytes.Equal(exif[6:10], []byte("Exif")) {
			return Location{
				Mode:           layout.Bluesky,
				Base:           base,
				AttemptsOffset: int64(base + layout.BlueskyAttemptsOffset),
			}, nil
		}
	}

	return Location{}, fmt.Errorf("%w: signature found without a recognised template", ErrNotCarrier)
}

// Decode dispatches to the decoder for location's mode.
func Decode(carrier []byte, location Location) ([]byte, error) {
	if location.Mode == layout.Bluesky {
		return DecodeBluesky(carrier, location.Base)
	}
	return DecodeICC(carrier, location.Base)
}
