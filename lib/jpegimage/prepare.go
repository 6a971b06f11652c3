// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jpegimage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// MinDimension is the smallest accepted cover width and height.
const MinDimension = 400

var (
	// ErrTooSmall means a cover is narrower or shorter than MinDimension.
	ErrTooSmall = errors.New("cover image dimensions are too small")

	// ErrQuality means a cover was encoded above MaxQuality.
	ErrQuality = errors.New("cover image quality is too high")

	// ErrUnsupportedFormat means the cover is not JPEG, PNG, BMP, or WebP.
	ErrUnsupportedFormat = errors.New("unsupported cover image format")
)

// Options controls cover preparation.
type Options struct {
	// Reencode forces a decode and baseline re-encode at ReencodeQuality
	// even when no orientation fix is needed.
	Reencode        bool
	ReencodeQuality int

	// TranscodeQuality is the JPEG quality used for PNG, BMP, and WebP
	// covers.
	TranscodeQuality int
}

// Cover is a prepared cover image.
type Cover struct {
	// Body is the JPEG without SOI and without metadata segments. It
	// starts at the first table segment and ends with EOI.
	Body []byte

	Width   int
	Height  int
	Quality int

	// Orientation is the EXIF orientation found on the input, already
	// applied to the pixels when it was not OrientationNormal.
	Orientation int

	Transcoded bool
	Reencoded  bool
}

// Prepare validates and normalizes a cover image. See the package
// documentation for the sequence of steps.
func Prepare(data []byte, options Options) (*Cover, error) {
	cover := &Cover{Orientation: OrientationNormal}

	format := sniffFormat(data)
	switch format {
	case "jpeg":
	case "png", "bmp", "webp":
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding %s cover: %w", format, err)
		}
		data, err = encode(img, options.TranscodeQuality)
		if err != nil {
			return nil, err
		}
		cover.Transcoded = true
	default:
		return nil, ErrUnsupportedFormat
	}

	if err := CheckMarkers(data); err != nil {
		return nil, err
	}
	config, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading cover dimensions: %w", err)
	}
	if config.Width < MinDimension || config.Height < MinDimension {
		return nil, fmt.Errorf("%w: %dx%d, each side must be at least %dpx",
			ErrTooSmall, config.Width, config.Height, MinDimension)
	}

	if !cover.Transcoded {
		cover.Orientation = Orientation(data)
	}
	if options.Reencode || cover.Orientation != OrientationNormal {
		quality := options.ReencodeQuality
		if !options.Reencode {
			quality = EstimateQuality(data)
		}
		img, err := jpeg.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding cover: %w", err)
		}
		data, err = encode(Orient(img, cover.Orientation), quality)
		if err != nil {
			return nil, err
		}
		cover.Reencoded = true
	}

	cover.Quality = EstimateQuality(data)
	if cover.Quality > MaxQuality {
		return nil, fmt.Errorf("%w: estimated quality %d exceeds maximum (%d)",
			ErrQuality, cover.Quality, MaxQuality)
	}

	config, err = jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading cover dimensions: %w", err)
	}
	cover.Width, cover.Height = config.Width, config.Height

	cover.Body, err = StripMetadata(data)
	if err != nil {
		return nil, err
	}
	return cover, nil
}

func encode(img image.Image, quality int) ([]byte, error) {
	var buffer bytes.Buffer
	if err := jpeg.Encode(&buffer, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encoding cover: %w", err)
	}
	return buffer.Bytes(), nil
}

func sniffFormat(data []byte) string {
	switch {
	case len(data) >= 3 && data[0] == 0xFF && data[1] == markerSOI && data[2] == 0xFF:
		return "jpeg"
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "png"
	case bytes.HasPrefix(data, []byte("BM")):
		return "bmp"
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return "webp"
	default:
		return ""
	}
}
