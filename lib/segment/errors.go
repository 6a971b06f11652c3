// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import "errors"

var (
	// ErrNotCarrier means no protocol signature was found at a position
	// consistent with either template.
	ErrNotCarrier = errors.New("not a valid embedded image")

	// ErrCorrupt means the carrier's segment structure does not match
	// its stored sizes and counts.
	ErrCorrupt = errors.New("embedded data file is corrupt")

	// ErrCapacity means the payload does not fit the storage mode.
	ErrCapacity = errors.New("data file exceeds segment size limit")
)
