// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package layout defines the byte-exact carrier templates and the field
// offsets within them.
//
// Two template families exist. The Default template is a JPEG SOI
// followed by a single APP2 "ICC_PROFILE" segment whose profile body
// hides the payload header: filename, filename XOR key, AEAD key and
// nonce, payload size, segment count, protocol signature, and PIN
// attempt counter. The Bluesky template carries the same fields inside
// an APP1 EXIF segment, for hosts that strip ICC profiles. Reddit mode
// reuses the Default template.
//
// Offsets are constants. Nothing here computes a field position from
// parsed input: [Frame] maps named accessors onto the fixed positions,
// and both [New] (fresh per-operation copy of a template) and [Parse]
// (view over a loaded carrier header) share the same field map.
//
// The on-disk layout is load-bearing for compatibility with carriers
// produced by earlier releases and must not change.
package layout
