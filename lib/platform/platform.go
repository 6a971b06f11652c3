// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package platform lists the image hosts a carrier can be posted to
// without the host stripping or rejecting it.
//
// The table is advisory. It feeds the conceal report and never changes
// the bytes written.
package platform

import "github.com/bureau-foundation/jdvrif/lib/layout"

const mebibyte = 1024 * 1024

// Platform describes the limits of one image host. A zero limit means
// the host imposes none that a carrier can reach.
type Platform struct {
	Name string

	// MaxImageSize bounds the whole output file in bytes.
	MaxImageSize int64

	// MaxFirstSegment bounds the size of the first metadata segment.
	MaxFirstSegment int

	// MaxSegments bounds the number of metadata segments.
	MaxSegments int

	// Note is shown next to the name in the report.
	Note string
}

// Table holds the hosts that accept Default carriers, in report order.
var Table = []Platform{
	{Name: "X-Twitter", MaxImageSize: 5 * mebibyte, MaxFirstSegment: 10 * 1024, MaxSegments: 65535},
	{Name: "Tumblr", MaxFirstSegment: 65534, MaxSegments: 65535},
	{Name: "Mastodon", MaxImageSize: 16 * mebibyte, MaxSegments: 100},
	{Name: "Pixelfed", MaxImageSize: 15 * mebibyte, MaxSegments: 65535},
	{Name: "PostImage", MaxImageSize: 32 * mebibyte, MaxSegments: 65535},
	{Name: "ImgBB", MaxImageSize: 32 * mebibyte, MaxSegments: 65535},
	{Name: "ImgPile", MaxImageSize: 100 * mebibyte, MaxSegments: 65535},
	{Name: "Flickr", MaxImageSize: 200 * mebibyte, MaxSegments: 65535},
}

var (
	// Bluesky is the only host for Bluesky carriers.
	Bluesky = Platform{
		Name: "Bluesky",
		Note: "only share this image on Bluesky, and upload it through the API so the metadata is kept",
	}

	// Reddit is the only host for Reddit carriers.
	Reddit = Platform{
		Name: "Reddit",
		Note: "only share this image on Reddit",
	}

	// Unknown is reported when no host in Table fits.
	Unknown = Platform{
		Name: "Unknown",
		Note: "no known platform accepts an image this large; local use only",
	}
)

// Usage is what a conceal produced.
type Usage struct {
	Mode layout.Mode

	// ImageSize is the size of the output file.
	ImageSize int64

	// FirstSegmentSize is the size of the first metadata segment,
	// marker included.
	FirstSegmentSize int

	// Segments is the number of metadata segments.
	Segments int
}

// Compatible returns the hosts that accept an output with the given
// usage. The result is never empty.
func Compatible(usage Usage) []Platform {
	switch usage.Mode {
	case layout.Bluesky:
		return []Platform{Bluesky}
	case layout.Reddit:
		return []Platform{Reddit}
	}

	var compatible []Platform
	for _, platform := range Table {
		if platform.Accepts(usage) {
			compatible = append(compatible, platform)
		}
	}
	if len(compatible) == 0 {
		return []Platform{Unknown}
	}
	return compatible
}

// Accepts reports whether usage fits within the platform's limits.
func (platform Platform) Accepts(usage Usage) bool {
	if platform.MaxImageSize > 0 && usage.ImageSize > platform.MaxImageSize {
		return false
	}
	if platform.MaxFirstSegment > 0 && usage.FirstSegmentSize > platform.MaxFirstSegment {
		return false
	}
	if platform.MaxSegments > 0 && usage.Segments > platform.MaxSegments {
		return false
	}
	return true
}
