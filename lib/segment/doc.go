// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package segment splits a sealed payload across JPEG metadata
// segments and reassembles it from a carrier image.
//
// Three encodings exist, one per [layout.Mode]:
//
//   - ICC ([EncodeICC], [DecodeICC]): the filled Default header and the
//     ciphertext form one APP2 "ICC_PROFILE" segment when they fit,
//     otherwise a run of APP2 segments of 65,519 data bytes each. The
//     per-segment sequence number is two bytes wide so a payload can
//     span more than 255 segments.
//   - Bluesky ([EncodeBluesky], [DecodeBluesky]): up to 65,027 bytes in
//     the EXIF segment, up to two IPTC datasets in a Photoshop IRB
//     segment, and any remainder as Base64 text in an XMP segment.
//   - Reddit ([EncodeReddit]): the ICC segments placed after the cover
//     image's entropy-coded data behind an APP2 block of printable
//     filler. It is decoded by [DecodeICC].
//
// [Locate] finds the protocol signature in a carrier and tells the
// caller which decoder applies and where the header frame begins.
//
// Decoders never guess. A length that overruns the buffer, a missing
// segment marker, or a reassembled size that disagrees with the stored
// payload size fails with [ErrCorrupt].
package segment
