// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package custody manages the AEAD key and nonce of a carrier from
// generation through obfuscation to recovery.
//
// A conceal operation calls [Generate] to draw a fresh key and nonce
// into locked memory and copy them into the header [layout.Frame],
// seals the payload with [Material.Seal], then calls [Obfuscate]. That
// step reads the first 8 key bytes as the recovery PIN, XORs the
// following 48 bytes of the key and nonce fields against them, and
// overwrites the 8 PIN bytes with random data. The carrier then holds
// everything needed to decrypt itself except the PIN.
//
// [Deobfuscate] reverses the mask given a PIN. A wrong PIN produces a
// key and nonce indistinguishable from random, so [Material.Open]
// fails authentication without telling the caller which input was bad.
//
// The cipher is NaCl secretbox (XSalsa20-Poly1305), byte-compatible
// with libsodium's crypto_secretbox_easy: ciphertext is the 16-byte
// Poly1305 tag followed by the encrypted payload.
//
// [EncryptFilename] and [DecryptFilename] hide the payload's original
// name with a random XOR key stored alongside it. This is obscurity
// against casual inspection, not confidentiality.
package custody
