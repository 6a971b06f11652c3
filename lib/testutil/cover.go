// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand/v2"
	"testing"
)

// CoverImage returns a deterministic RGB image of the given size: a
// diagonal gradient with low-amplitude noise, so that encoded sizes
// are realistic without exceeding the cover limits.
func CoverImage(width, height int) *image.RGBA {
	random := rand.New(rand.NewPCG(uint64(width), uint64(height)))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			noise := uint8(random.IntN(16))
			img.Set(x, y, color.RGBA{
				R: uint8(x*255/width) ^ noise,
				G: uint8(y*255/height) + noise,
				B: uint8((x+y)*127/(width+height)) + noise,
				A: 0xFF,
			})
		}
	}
	return img
}

// CoverJPEG returns CoverImage encoded as a baseline JPEG at quality.
func CoverJPEG(t *testing.T, width, height, quality int) []byte {
	t.Helper()
	var buffer bytes.Buffer
	if err := jpeg.Encode(&buffer, CoverImage(width, height), &jpeg.Options{Quality: quality}); err != nil {
		t.Fatalf("encoding %dx%d cover: %v", width, height, err)
	}
	return buffer.Bytes()
}

// CoverPNG returns CoverImage encoded as PNG.
func CoverPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buffer bytes.Buffer
	if err := png.Encode(&buffer, CoverImage(width, height)); err != nil {
		t.Fatalf("encoding %dx%d cover: %v", width, height, err)
	}
	return buffer.Bytes()
}
