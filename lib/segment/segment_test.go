// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/bureau-foundation/jdvrif/lib/layout"
)

// fakeCover is the remainder of a JPEG after its metadata: a DQT
// segment, a little entropy data, and EOI.
var fakeCover = []byte{
	0xFF, 0xDB, 0x00, 0x06, 0x00, 0x01, 0x02, 0x03,
	0xFF, 0xDA, 0x00, 0x04, 0x00, 0x00, 0x12, 0x34,
	0xFF, 0xD9,
}

func testCiphertext(size int) []byte {
	source := rand.New(rand.NewPCG(uint64(size), 0x6A647672))
	data := make([]byte, size)
	for index := range data {
		data[index] = byte(source.UintN(256))
	}
	return data
}

func assemble(segments []byte) []byte {
	carrier := make([]byte, 0, len(segments)+len(fakeCover))
	carrier = append(carrier, segments...)
	return append(carrier, fakeCover...)
}

func TestEncodeICC_SingleSegment(t *testing.T) {
	ciphertext := testCiphertext(50 + 16)
	frame := layout.New(layout.Default)

	result, err := EncodeICC(frame, ciphertext)
	if err != nil {
		t.Fatalf("EncodeICC: %v", err)
	}
	if result.Count != 1 {
		t.Errorf("Count = %d, want 1", result.Count)
	}
	output := result.Segments
	if len(output) != layout.DefaultDataOffset+len(ciphertext) {
		t.Fatalf("output length = %d", len(output))
	}
	if got := binary.BigEndian.Uint16(output[layout.DefaultSegmentCountOffset:]); got != 1 {
		t.Errorf("segment count field = %d, want 1", got)
	}
	if got := binary.BigEndian.Uint16(output[layout.DefaultSegmentLengthOffset:]); int(got) != len(output)-4 {
		t.Errorf("segment length = %d, want %d", got, len(output)-4)
	}
	if got := binary.BigEndian.Uint16(output[layout.DefaultProfileSizeOffset:]); int(got) != len(output)-20 {
		t.Errorf("profile size = %d, want %d", got, len(output)-20)
	}
	if got := binary.BigEndian.Uint32(output[layout.DefaultPayloadSizeOffset:]); int(got) != len(ciphertext) {
		t.Errorf("payload size field = %d, want %d", got, len(ciphertext))
	}

	decoded, err := DecodeICC(assemble(output), 0)
	if err != nil {
		t.Fatalf("DecodeICC: %v", err)
	}
	if !bytes.Equal(decoded, ciphertext) {
		t.Error("decoded ciphertext differs")
	}
}

func TestICC_BoundaryRoundTrip(t *testing.T) {
	singleMax := iccSingleLimit - layout.DefaultDataOffset
	twoChunksExact := 2*ICCChunkDataSize - (layout.DefaultDataOffset - 20)

	tests := []struct {
		size  int
		count int
	}{
		{1, 1},
		{singleMax - 1, 1},
		{singleMax, 1},
		{singleMax + 1, 2},
		{twoChunksExact, 2},
		{twoChunksExact + 1, 3},
		{5*ICCChunkDataSize + 12345, 6},
	}
	for _, test := range tests {
		ciphertext := testCiphertext(test.size)
		frame := layout.New(layout.Default)
		result, err := EncodeICC(frame, ciphertext)
		if err != nil {
			t.Fatalf("size %d: EncodeICC: %v", test.size, err)
		}
		if result.Count != test.count {
			t.Errorf("size %d: Count = %d, want %d", test.size, result.Count, test.count)
		}
		if got := binary.BigEndian.Uint16(result.Segments[layout.DefaultSegmentCountOffset:]); int(got) != test.count {
			t.Errorf("size %d: count field = %d, want %d", test.size, got, test.count)
		}
		payloadSize := binary.BigEndian.Uint32(result.Segments[layout.DefaultPayloadSizeOffset:])
		if int(payloadSize) != len(result.Segments)-layout.DefaultDataOffset {
			t.Errorf("size %d: payload size field = %d, want %d", test.size, payloadSize, len(result.Segments)-layout.DefaultDataOffset)
		}

		decoded, err := DecodeICC(assemble(result.Segments), 0)
		if err != nil {
			t.Fatalf("size %d: DecodeICC: %v", test.size, err)
		}
		if !bytes.Equal(decoded, ciphertext) {
			t.Errorf("size %d: round trip changed the ciphertext", test.size)
		}
	}
}

func TestEncodeICC_SegmentHeaders(t *testing.T) {
	ciphertext := testCiphertext(3*ICCChunkDataSize + 100)
	result, err := EncodeICC(layout.New(layout.Default), ciphertext)
	if err != nil {
		t.Fatalf("EncodeICC: %v", err)
	}
	output := result.Segments
	if !bytes.Equal(output[:2], soi) {
		t.Fatalf("output does not start with SOI")
	}

	remaining := len(output) - 2
	for index := range result.Count {
		position := 2 + index*iccStride
		header := output[position : position+iccHeaderLength]
		if header[0] != 0xFF || header[1] != 0xE2 {
			t.Fatalf("segment %d: marker % X", index+1, header[:2])
		}
		if !bytes.Equal(header[4:15], iccIdentifier) {
			t.Errorf("segment %d: identifier %q", index+1, header[4:15])
		}
		if sequence := binary.BigEndian.Uint16(header[15:17]); int(sequence) != index+1 {
			t.Errorf("segment %d: sequence %d", index+1, sequence)
		}
		chunk := min(ICCChunkDataSize, remaining-iccHeaderLength)
		if length := binary.BigEndian.Uint16(header[2:4]); int(length) != chunk+16 {
			t.Errorf("segment %d: length %d, want %d", index+1, length, chunk+16)
		}
		remaining -= iccStride
	}
	if !bytes.Equal(output[layout.DefaultSignatureOffset:layout.DefaultSignatureOffset+7], layout.Signature[:]) {
		t.Error("signature moved in multi-segment output")
	}
}

func TestDecodeICC_LegacyZeroCount(t *testing.T) {
	ciphertext := testCiphertext(300)
	frame := layout.New(layout.Default)
	result, err := EncodeICC(frame, ciphertext)
	if err != nil {
		t.Fatalf("EncodeICC: %v", err)
	}
	binary.BigEndian.PutUint16(result.Segments[layout.DefaultSegmentCountOffset:], 0)

	decoded, err := DecodeICC(assemble(result.Segments), 0)
	if err != nil {
		t.Fatalf("DecodeICC: %v", err)
	}
	if !bytes.Equal(decoded, ciphertext) {
		t.Error("decoded ciphertext differs")
	}
}

func TestDecodeICC_Corrupt(t *testing.T) {
	ciphertext := testCiphertext(2*ICCChunkDataSize + 10)
	result, err := EncodeICC(layout.New(layout.Default), ciphertext)
	if err != nil {
		t.Fatalf("EncodeICC: %v", err)
	}
	carrier := assemble(result.Segments)

	t.Run("missing last segment", func(t *testing.T) {
		lastStart := 2 + (result.Count-1)*iccStride
		damaged := append(bytes.Clone(carrier[:lastStart]), fakeCover...)
		if _, err := DecodeICC(damaged, 0); !errors.Is(err, ErrCorrupt) {
			t.Errorf("err = %v, want ErrCorrupt", err)
		}
	})
	t.Run("damaged middle header", func(t *testing.T) {
		damaged := bytes.Clone(carrier)
		damaged[2+iccStride+5] ^= 0xFF
		if _, err := DecodeICC(damaged, 0); !errors.Is(err, ErrCorrupt) {
			t.Errorf("err = %v, want ErrCorrupt", err)
		}
	})
	t.Run("truncated", func(t *testing.T) {
		if _, err := DecodeICC(carrier[:len(carrier)/2], 0); !errors.Is(err, ErrCorrupt) {
			t.Errorf("err = %v, want ErrCorrupt", err)
		}
	})
	t.Run("size field mismatch", func(t *testing.T) {
		damaged := bytes.Clone(carrier)
		size := binary.BigEndian.Uint32(damaged[layout.DefaultPayloadSizeOffset:])
		binary.BigEndian.PutUint32(damaged[layout.DefaultPayloadSizeOffset:], size+3)
		if _, err := DecodeICC(damaged, 0); !errors.Is(err, ErrCorrupt) {
			t.Errorf("err = %v, want ErrCorrupt", err)
		}
	})
}

func TestBluesky_BoundaryRoundTrip(t *testing.T) {
	photoshopFull := ExifDataLimit + firstDatasetLimit + secondDatasetLimit
	tests := []struct {
		size  int
		tiers int
	}{
		{16, 1},
		{ExifDataLimit, 1},
		{ExifDataLimit + 1, 2},
		{ExifDataLimit + firstDatasetLimit, 2},
		{ExifDataLimit + firstDatasetLimit + 1, 2},
		{photoshopFull, 2},
		{photoshopFull + 1, 3},
		{photoshopFull + 2, 3},
		{photoshopFull + 3, 3},
		{BlueskyCapacity(), 3},
	}
	for _, test := range tests {
		ciphertext := testCiphertext(test.size)
		result, err := EncodeBluesky(layout.New(layout.Bluesky), ciphertext)
		if err != nil {
			t.Fatalf("size %d: EncodeBluesky: %v", test.size, err)
		}
		if result.Tiers != test.tiers {
			t.Errorf("size %d: Tiers = %d, want %d", test.size, result.Tiers, test.tiers)
		}

		carrier := assemble(result.Segments)
		location, err := Locate(carrier)
		if err != nil {
			t.Fatalf("size %d: Locate: %v", test.size, err)
		}
		if location.Mode != layout.Bluesky || location.Base != 0 {
			t.Fatalf("size %d: location = %+v", test.size, location)
		}
		decoded, err := Decode(carrier, location)
		if err != nil {
			t.Fatalf("size %d: Decode: %v", test.size, err)
		}
		if !bytes.Equal(decoded, ciphertext) {
			t.Errorf("size %d: round trip changed the ciphertext", test.size)
		}
	}
}

func TestEncodeBluesky_OverCapacity(t *testing.T) {
	_, err := EncodeBluesky(layout.New(layout.Bluesky), testCiphertext(BlueskyCapacity()+3))
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("err = %v, want ErrCapacity", err)
	}
}

func TestEncodeBluesky_ExifFields(t *testing.T) {
	for _, size := range []int{100, ExifDataLimit + 5000} {
		result, err := EncodeBluesky(layout.New(layout.Bluesky), testCiphertext(size))
		if err != nil {
			t.Fatalf("EncodeBluesky: %v", err)
		}
		output := result.Segments
		exifLength := int(binary.BigEndian.Uint16(output[layout.BlueskySegmentLengthOffset:]))
		wantLength := layout.BlueskyTemplateLength + min(size, ExifDataLimit) - 4
		if exifLength != wantLength {
			t.Errorf("size %d: EXIF length = %d, want %d", size, exifLength, wantLength)
		}
		if exifLength > 0xFFFE {
			t.Errorf("size %d: EXIF length %d exceeds 0xFFFE", size, exifLength)
		}
		fields := map[int]int{
			layout.BlueskyXResolutionOffset: exifLength - 0x36,
			layout.BlueskyYResolutionOffset: exifLength - 0x2E,
			layout.BlueskyArtistCountOffset: exifLength - 0x8C,
			layout.BlueskyExifIFDOffset:     exifLength - 0x26,
		}
		for offset, want := range fields {
			if got := binary.BigEndian.Uint32(output[offset:]); int(got) != want {
				t.Errorf("size %d: field at 0x%X = %d, want %d", size, offset, got, want)
			}
		}
		// The XResolution rational sits at the start of the tail, in TIFF
		// coordinates measured from offset 0x0C.
		xres := int(binary.BigEndian.Uint32(output[layout.BlueskyXResolutionOffset:])) + 0x0C
		if xres != exifLength+4-blueskyTailLength {
			t.Errorf("size %d: XResolution points at %d, tail starts at %d", size, xres, exifLength+4-blueskyTailLength)
		}
		if got := binary.BigEndian.Uint32(output[layout.BlueskyPayloadSizeOffset:]); int(got) != size {
			t.Errorf("size %d: payload size = %d", size, got)
		}
	}
}

func TestEncodeBluesky_SegmentOrder(t *testing.T) {
	size := ExifDataLimit + firstDatasetLimit + secondDatasetLimit + 1000
	result, err := EncodeBluesky(layout.New(layout.Bluesky), testCiphertext(size))
	if err != nil {
		t.Fatalf("EncodeBluesky: %v", err)
	}
	output := result.Segments
	exifEnd := 4 + int(binary.BigEndian.Uint16(output[4:]))
	if output[exifEnd] != 0xFF || output[exifEnd+1] != 0xE1 {
		t.Fatalf("segment after EXIF is % X, want XMP APP1", output[exifEnd:exifEnd+2])
	}
	xmpEnd := exifEnd + 2 + int(binary.BigEndian.Uint16(output[exifEnd+2:]))
	if output[xmpEnd] != 0xFF || output[xmpEnd+1] != 0xED {
		t.Fatalf("segment after XMP is % X, want Photoshop APP13", output[xmpEnd:xmpEnd+2])
	}
	photoshopLength := int(binary.BigEndian.Uint16(output[xmpEnd+2:]))
	if photoshopLength != 0xFFFF {
		t.Errorf("full Photoshop segment length = %d, want 65535", photoshopLength)
	}
	if xmpEnd+2+photoshopLength != len(output) {
		t.Error("Photoshop segment is not last")
	}
	if !bytes.Contains(output[exifEnd:xmpEnd], []byte(`<?xpacket end="w"?>`)) {
		t.Error("XMP footer missing")
	}
}

func TestDecodeBluesky_Corrupt(t *testing.T) {
	ciphertext := testCiphertext(ExifDataLimit + 40000)
	result, err := EncodeBluesky(layout.New(layout.Bluesky), ciphertext)
	if err != nil {
		t.Fatalf("EncodeBluesky: %v", err)
	}
	carrier := assemble(result.Segments)
	exifEnd := 4 + int(binary.BigEndian.Uint16(carrier[4:]))

	t.Run("photoshop stripped", func(t *testing.T) {
		damaged := append(bytes.Clone(carrier[:exifEnd]), fakeCover...)
		if _, err := DecodeBluesky(damaged, 0); !errors.Is(err, ErrCorrupt) {
			t.Errorf("err = %v, want ErrCorrupt", err)
		}
	})
	t.Run("second dataset size", func(t *testing.T) {
		damaged := bytes.Clone(carrier)
		secondHeader := exifEnd + photoshopHeaderLength + firstDatasetLimit
		damaged[secondHeader+4]++
		if _, err := DecodeBluesky(damaged, 0); !errors.Is(err, ErrCorrupt) {
			t.Errorf("err = %v, want ErrCorrupt", err)
		}
	})
	t.Run("exif length overruns", func(t *testing.T) {
		damaged := bytes.Clone(carrier[:exifEnd-10])
		if _, err := DecodeBluesky(damaged, 0); !errors.Is(err, ErrCorrupt) {
			t.Errorf("err = %v, want ErrCorrupt", err)
		}
	})
}

func TestEncodeReddit_RoundTrip(t *testing.T) {
	cover := append([]byte{0xFF, 0xD8}, fakeCover...)
	for _, size := range []int{200, 3 * ICCChunkDataSize} {
		ciphertext := testCiphertext(size)
		icc, err := EncodeICC(layout.New(layout.Reddit), ciphertext)
		if err != nil {
			t.Fatalf("EncodeICC: %v", err)
		}
		carrier, err := EncodeReddit(cover, icc)
		if err != nil {
			t.Fatalf("EncodeReddit: %v", err)
		}

		if !bytes.HasPrefix(carrier, cover[:len(cover)-2]) {
			t.Error("carrier does not begin with the cover body")
		}
		if !bytes.HasSuffix(carrier, []byte{0xFF, 0xD9}) {
			t.Error("carrier does not end with EOI")
		}
		padding := len(cover) - 2
		if !bytes.Equal(carrier[padding:padding+4], []byte{0xFF, 0xE2, 0x1F, 0x42}) {
			t.Errorf("padding header = % X", carrier[padding:padding+4])
		}
		for _, value := range carrier[padding+4 : padding+4+RedditPaddingLength] {
			if value < 33 || value > 126 {
				t.Fatalf("padding byte %d outside printable range", value)
			}
		}

		location, err := Locate(carrier)
		if err != nil {
			t.Fatalf("Locate: %v", err)
		}
		if location.Mode != layout.Reddit {
			t.Errorf("Mode = %s, want reddit", location.Mode)
		}
		if location.Base != padding+4+RedditPaddingLength-2 {
			t.Errorf("Base = %d", location.Base)
		}
		decoded, err := Decode(carrier, location)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !bytes.Equal(decoded, ciphertext) {
			t.Error("round trip changed the ciphertext")
		}
	}
}

func TestEncodeReddit_RejectsBareCover(t *testing.T) {
	icc, err := EncodeICC(layout.New(layout.Default), testCiphertext(10))
	if err != nil {
		t.Fatalf("EncodeICC: %v", err)
	}
	if _, err := EncodeReddit(fakeCover, icc); err == nil {
		t.Error("expected error for cover without SOI")
	}
}

func TestLocate(t *testing.T) {
	icc, err := EncodeICC(layout.New(layout.Default), testCiphertext(64))
	if err != nil {
		t.Fatalf("EncodeICC: %v", err)
	}
	location, err := Locate(assemble(icc.Segments))
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if location.Mode != layout.Default || location.Base != 0 {
		t.Errorf("location = %+v", location)
	}
	if location.AttemptsOffset != layout.DefaultAttemptsOffset {
		t.Errorf("AttemptsOffset = %d", location.AttemptsOffset)
	}

	if _, err := Locate(append([]byte{0xFF, 0xD8}, fakeCover...)); !errors.Is(err, ErrNotCarrier) {
		t.Errorf("plain JPEG: err = %v, want ErrNotCarrier", err)
	}

	stray := append([]byte{0xFF, 0xD8}, layout.Signature[:]...)
	if _, err := Locate(stray); !errors.Is(err, ErrNotCarrier) {
		t.Errorf("stray signature: err = %v, want ErrNotCarrier", err)
	}
}
