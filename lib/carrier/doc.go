// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package carrier runs the two user-facing operations: [Conceal] embeds
// a payload file in a cover image, and [Recover] extracts it again.
//
// Conceal validates both inputs, prepares the cover, compresses the
// payload when worthwhile, encrypts it under a fresh key and nonce,
// hides the key behind a recovery PIN, lays the result into metadata
// segments for the selected mode, and writes the carrier under a new
// name. Nothing is written until every earlier step has succeeded.
//
// Recover locates the carrier template, reassembles the ciphertext,
// asks a [PINSource] for the PIN, and decrypts. Authentication failures
// go through a [Lockout] that persists an attempt counter in the
// carrier file itself and truncates the file after
// [MaxFailedAttempts] consecutive failures.
//
// Every error returned by this package is an [*Error] carrying a
// [Kind]. Authentication failures always carry [CryptoMessage] and
// nothing more specific.
package carrier
