// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for jdvrif packages.
//
// [CoverImage], [CoverJPEG], and [CoverPNG] build deterministic cover
// images. The pixels mix a gradient with seeded noise so the JPEG
// encoder produces realistic quantization tables and file sizes, which
// matters to tests that exercise quality estimation and size limits.
//
// [WriteFile] and [ReadFile] wrap file I/O with t.Fatalf on failure.
// [RandomBytes] returns seeded, incompressible payloads for tests that
// need a payload to stay large after zlib.
package testutil
