// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fingerprint computes the BLAKE3 digests shown in conceal and
// recover reports.
//
// A user who keeps the digest printed at conceal time can check that a
// carrier downloaded from an image host is byte-identical to the one
// jdvrif wrote, and that a recovered file matches what was embedded.
//
//   - [Sum] -- digest of an in-memory buffer
//   - [File] -- streams a file through BLAKE3 with constant memory
//   - [Format] -- canonical lowercase hex form
//
// This package has no dependencies on other jdvrif packages.
package fingerprint
