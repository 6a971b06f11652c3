// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package jpegimage prepares cover images for embedding.
//
// [Prepare] is the single entry point used by conceal. It transcodes
// PNG, BMP, and WebP covers to baseline JPEG, rejects covers that are
// too small or encoded at a quality above [MaxQuality], applies the
// EXIF orientation by rotating pixels (the stored orientation tag goes
// away with the rest of the metadata), optionally forces a re-encode at
// a fixed quality, and finally strips every APPn and COM segment so
// the carrier's own segments are the only metadata left.
//
// Pixel work uses image/jpeg, which has no lossless transform and no
// progressive encoder, so any transform means a full decode and
// baseline re-encode. Covers that need neither are passed through
// byte-for-byte apart from metadata stripping.
package jpegimage
