// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"slices"
	"testing"

	"github.com/bureau-foundation/jdvrif/lib/layout"
)

func names(platforms []Platform) []string {
	var result []string
	for _, platform := range platforms {
		result = append(result, platform.Name)
	}
	return result
}

func TestCompatible_Default(t *testing.T) {
	tests := []struct {
		name  string
		usage Usage
		want  []string
	}{
		{
			name:  "small single segment",
			usage: Usage{ImageSize: 200 * 1024, FirstSegmentSize: 2000, Segments: 1},
			want:  []string{"X-Twitter", "Tumblr", "Mastodon", "Pixelfed", "PostImage", "ImgBB", "ImgPile", "Flickr"},
		},
		{
			name:  "first segment over X-Twitter limit",
			usage: Usage{ImageSize: 200 * 1024, FirstSegmentSize: 10*1024 + 1, Segments: 1},
			want:  []string{"Tumblr", "Mastodon", "Pixelfed", "PostImage", "ImgBB", "ImgPile", "Flickr"},
		},
		{
			name:  "full first segment",
			usage: Usage{ImageSize: 3 * mebibyte, FirstSegmentSize: 65535, Segments: 40},
			want:  []string{"Mastodon", "Pixelfed", "PostImage", "ImgBB", "ImgPile", "Flickr"},
		},
		{
			name:  "too many segments for Mastodon",
			usage: Usage{ImageSize: 15 * mebibyte, FirstSegmentSize: 65535, Segments: 101},
			want:  []string{"Pixelfed", "PostImage", "ImgBB", "ImgPile", "Flickr"},
		},
		{
			name:  "only Flickr",
			usage: Usage{ImageSize: 150 * mebibyte, FirstSegmentSize: 65535, Segments: 2400},
			want:  []string{"Flickr"},
		},
		{
			name:  "nothing fits",
			usage: Usage{ImageSize: 300 * mebibyte, FirstSegmentSize: 65535, Segments: 4800},
			want:  []string{"Unknown"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := names(Compatible(test.usage))
			if !slices.Equal(got, test.want) {
				t.Errorf("Compatible = %v, want %v", got, test.want)
			}
		})
	}
}

func TestCompatible_DedicatedModes(t *testing.T) {
	huge := Usage{ImageSize: 1 << 40, FirstSegmentSize: 65535, Segments: 65535}

	huge.Mode = layout.Bluesky
	if got := names(Compatible(huge)); !slices.Equal(got, []string{"Bluesky"}) {
		t.Errorf("Bluesky mode: %v", got)
	}
	huge.Mode = layout.Reddit
	if got := names(Compatible(huge)); !slices.Equal(got, []string{"Reddit"}) {
		t.Errorf("Reddit mode: %v", got)
	}
}
