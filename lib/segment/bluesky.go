// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/bureau-foundation/jdvrif/lib/layout"
)

// Bluesky tier limits, in ciphertext bytes unless noted.
const (
	// ExifDataLimit keeps the EXIF segment length at or below 0xFFFE.
	ExifDataLimit = 65027

	firstDatasetLimit  = 32767
	secondDatasetLimit = 32730

	// xmpSegmentLimit bounds the whole XMP segment including marker,
	// header, Base64 text, and footer.
	xmpSegmentLimit = 60033

	blueskyTailLength = layout.BlueskyTemplateLength - layout.BlueskyDataOffset

	photoshopHeaderLength     = 35
	photoshopFirstSizeOffset  = 0x21
	photoshopBlockSizeOffset  = 0x1C
	photoshopBlockSizeBias    = 28
	photoshopDatasetTagOffset = 0x1E
	datasetHeaderLength       = 5
)

// photoshopHeader is an APP13 Photoshop IRB segment holding one 8BIM
// IPTC resource whose first dataset (2:10) starts at the last byte.
// Size fields are patched per payload.
var photoshopHeader = [photoshopHeaderLength]byte{
	0xFF, 0xED, 0xFF, 0xFF,
	'P', 'h', 'o', 't', 'o', 's', 'h', 'o', 'p', ' ', '3', '.', '0', 0x00,
	'8', 'B', 'I', 'M', 0x04, 0x04, 0x00, 0x00, 0x00, 0x00, 0xFF, 0xE3,
	0x1C, 0x08, 0x0A, 0x7F, 0xFF,
}

var (
	photoshopIdentifier = []byte("Photoshop 3.0\x00")
	datasetTag          = []byte{0x1C, 0x08, 0x0A}
	xmpIdentifier       = []byte("http://ns.adobe.com/xap/1.0/\x00")
	xmpOpen             = []byte("<rdf:li>")
)

// xmpHeader opens an APP1 XMP packet up to the dc:creator list item
// that receives the Base64 text. The segment length is patched.
const xmpHeader = "\xFF\xE1\x01\x93" +
	"http://ns.adobe.com/xap/1.0/\x00" +
	`<?xpacket begin="" id="W5M0MpCehiHzreSzNTczkc9d"?>` + "\n" +
	`<x:xmpmeta xmlns:x="adobe:ns:meta/" x:xmptk="Go XMP SDK 1.0">` +
	`<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">` +
	`<rdf:Description xmlns:dc="http://purl.org/dc/elements/1.1/" rdf:about="">` +
	`<dc:creator><rdf:Seq><rdf:li>`

const xmpFooter = `</rdf:li></rdf:Seq></dc:creator></rdf:Description></rdf:RDF></x:xmpmeta>` + "\n" +
	`<?xpacket end="w"?>`

// BlueskyResult is the output of EncodeBluesky.
type BlueskyResult struct {
	// Segments starts with SOI, followed by the EXIF segment and any
	// XMP and Photoshop overflow segments.
	Segments []byte

	// Tiers is the number of segments used: 1 (EXIF), 2 (+Photoshop),
	// or 3 (+XMP).
	Tiers int

	// FirstSegmentSize is the size of the EXIF segment including its
	// marker.
	FirstSegmentSize int
}

// EncodeBluesky lays out the filled Bluesky frame and the ciphertext.
// The frame's payload-size field is written as part of encoding.
func EncodeBluesky(frame *layout.Frame, ciphertext []byte) (*BlueskyResult, error) {
	if frame.Storage() != layout.Bluesky {
		return nil, fmt.Errorf("EncodeBluesky: frame is %s, want bluesky", frame.Storage())
	}
	frame.SetPayloadSize(uint32(len(ciphertext)))

	exifPart := ciphertext[:min(len(ciphertext), ExifDataLimit)]
	rest := ciphertext[len(exifPart):]

	exif := make([]byte, 0, len(frame.Header())+len(exifPart)+len(frame.Tail()))
	exif = append(exif, frame.Header()...)
	exif = append(exif, exifPart...)
	exif = append(exif, frame.Tail()...)
	finalizeExif(exif)

	result := &BlueskyResult{Tiers: 1, FirstSegmentSize: len(exif) - len(soi)}
	if len(rest) == 0 {
		result.Segments = exif
		return result, nil
	}

	photoshop, rest := buildPhotoshop(rest)
	result.Tiers = 2

	var xmp []byte
	if len(rest) > 0 {
		var err error
		if xmp, err = buildXMP(rest); err != nil {
			return nil, err
		}
		result.Tiers = 3
	}

	result.Segments = make([]byte, 0, len(exif)+len(xmp)+len(photoshop))
	result.Segments = append(result.Segments, exif...)
	result.Segments = append(result.Segments, xmp...)
	result.Segments = append(result.Segments, photoshop...)
	return result, nil
}

// finalizeExif writes the EXIF segment length and the TIFF fields that
// locate structures after the variable-length Artist string.
func finalizeExif(exif []byte) {
	length := len(exif) - 4
	binary.BigEndian.PutUint16(exif[layout.BlueskySegmentLengthOffset:], uint16(length))
	binary.BigEndian.PutUint32(exif[layout.BlueskyXResolutionOffset:], uint32(length-0x36))
	binary.BigEndian.PutUint32(exif[layout.BlueskyYResolutionOffset:], uint32(length-0x2E))
	binary.BigEndian.PutUint32(exif[layout.BlueskyArtistCountOffset:], uint32(length-0x8C))
	binary.BigEndian.PutUint32(exif[layout.BlueskyExifIFDOffset:], uint32(length-0x26))
}

// buildPhotoshop packs up to two IPTC datasets and returns the segment
// and whatever did not fit.
func buildPhotoshop(data []byte) ([]byte, []byte) {
	first := data[:min(len(data), firstDatasetLimit)]
	data = data[len(first):]

	segment := make([]byte, 0, photoshopHeaderLength+len(first)+datasetHeaderLength+min(len(data), secondDatasetLimit))
	segment = append(segment, photoshopHeader[:]...)
	binary.BigEndian.PutUint16(segment[photoshopFirstSizeOffset:], uint16(len(first)))
	segment = append(segment, first...)

	if len(data) > 0 {
		second := data[:min(len(data), secondDatasetLimit)]
		data = data[len(second):]
		segment = append(segment, datasetTag...)
		segment = binary.BigEndian.AppendUint16(segment, uint16(len(second)))
		segment = append(segment, second...)
	}

	length := len(segment) - 2
	binary.BigEndian.PutUint16(segment[2:], uint16(length))
	binary.BigEndian.PutUint16(segment[photoshopBlockSizeOffset:], uint16(length-photoshopBlockSizeBias))
	return segment, data
}

func buildXMP(data []byte) ([]byte, error) {
	encodedLength := base64.StdEncoding.EncodedLen(len(data))
	total := len(xmpHeader) + encodedLength + len(xmpFooter)
	if total > xmpSegmentLimit {
		return nil, fmt.Errorf("%w for Bluesky: XMP segment would be %d bytes, limit is %d",
			ErrCapacity, total, xmpSegmentLimit)
	}

	segment := make([]byte, total)
	copy(segment, xmpHeader)
	base64.StdEncoding.Encode(segment[len(xmpHeader):], data)
	copy(segment[len(xmpHeader)+encodedLength:], xmpFooter)
	binary.BigEndian.PutUint16(segment[2:], uint16(total-2))
	return segment, nil
}

// BlueskyCapacity is the largest ciphertext EncodeBluesky accepts.
func BlueskyCapacity() int {
	textRoom := xmpSegmentLimit - len(xmpHeader) - len(xmpFooter)
	return ExifDataLimit + firstDatasetLimit + secondDatasetLimit + textRoom/4*3
}

// DecodeBluesky reassembles the ciphertext of a Bluesky carrier whose
// header frame begins at base. Overflow segments are found by walking
// the APPn segments that follow the EXIF segment.
func DecodeBluesky(carrier []byte, base int) ([]byte, error) {
	if base < 0 || base > len(carrier) {
		return nil, fmt.Errorf("%w: header offset %d outside file", ErrCorrupt, base)
	}
	frame, err := layout.Parse(layout.Bluesky, carrier[base:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if carrier[base+2] != 0xFF || carrier[base+3] != 0xE1 {
		return nil, fmt.Errorf("%w: EXIF segment marker missing", ErrCorrupt)
	}

	size := int(frame.PayloadSize())
	exifEnd := base + 4 + int(binary.BigEndian.Uint16(carrier[base+layout.BlueskySegmentLengthOffset:]))
	dataStart := base + layout.BlueskyDataOffset
	dataEnd := exifEnd - blueskyTailLength
	if exifEnd > len(carrier) || dataEnd < dataStart {
		return nil, fmt.Errorf("%w: invalid EXIF segment size", ErrCorrupt)
	}
	if size <= 0 || dataEnd-dataStart > size {
		return nil, fmt.Errorf("%w: stored size %d disagrees with EXIF segment", ErrCorrupt, size)
	}

	ciphertext := make([]byte, 0, size)
	ciphertext = append(ciphertext, carrier[dataStart:dataEnd]...)
	if len(ciphertext) == size {
		return ciphertext, nil
	}

	photoshop, xmp, err := findOverflowSegments(carrier, exifEnd)
	if err != nil {
		return nil, err
	}
	if photoshop == nil {
		return nil, fmt.Errorf("%w: Photoshop segment missing", ErrCorrupt)
	}
	if ciphertext, err = appendDatasets(ciphertext, photoshop); err != nil {
		return nil, err
	}
	if len(ciphertext) < size {
		if xmp == nil {
			return nil, fmt.Errorf("%w: XMP segment missing", ErrCorrupt)
		}
		if ciphertext, err = appendXMPText(ciphertext, xmp); err != nil {
			return nil, err
		}
	}
	if len(ciphertext) != size {
		return nil, fmt.Errorf("%w: reassembled %d bytes, stored size is %d", ErrCorrupt, len(ciphertext), size)
	}
	return ciphertext, nil
}

// findOverflowSegments walks consecutive APPn segments starting at
// position and returns the Photoshop and XMP segments, marker included.
func findOverflowSegments(carrier []byte, position int) (photoshop, xmp []byte, err error) {
	for position+4 <= len(carrier) && carrier[position] == 0xFF {
		marker := carrier[position+1]
		if marker < 0xE0 || marker > 0xEF {
			break
		}
		length := int(binary.BigEndian.Uint16(carrier[position+2:]))
		next := position + 2 + length
		if length < 2 || next > len(carrier) {
			return nil, nil, fmt.Errorf("%w: segment at offset %d overruns the file", ErrCorrupt, position)
		}
		body := carrier[position+4 : next]
		switch {
		case marker == 0xED && bytes.HasPrefix(body, photoshopIdentifier):
			photoshop = carrier[position:next]
		case marker == 0xE1 && bytes.HasPrefix(body, xmpIdentifier):
			xmp = carrier[position:next]
		}
		position = next
	}
	return photoshop, xmp, nil
}

func appendDatasets(ciphertext, segment []byte) ([]byte, error) {
	if len(segment) < photoshopHeaderLength ||
		!bytes.Equal(segment[photoshopDatasetTagOffset:photoshopDatasetTagOffset+len(datasetTag)], datasetTag) {
		return nil, fmt.Errorf("%w: Photoshop segment header damaged", ErrCorrupt)
	}
	position := photoshopHeaderLength
	firstLength := int(binary.BigEndian.Uint16(segment[photoshopFirstSizeOffset:]))
	if position+firstLength > len(segment) {
		return nil, fmt.Errorf("%w: first dataset overruns its segment", ErrCorrupt)
	}
	ciphertext = append(ciphertext, segment[position:position+firstLength]...)
	position += firstLength

	if position < len(segment) {
		if position+datasetHeaderLength > len(segment) || !bytes.Equal(segment[position:position+len(datasetTag)], datasetTag) {
			return nil, fmt.Errorf("%w: second dataset header damaged", ErrCorrupt)
		}
		secondLength := int(binary.BigEndian.Uint16(segment[position+len(datasetTag):]))
		position += datasetHeaderLength
		if position+secondLength != len(segment) {
			return nil, fmt.Errorf("%w: second dataset size disagrees with its segment", ErrCorrupt)
		}
		ciphertext = append(ciphertext, segment[position:]...)
	}
	return ciphertext, nil
}

func appendXMPText(ciphertext, segment []byte) ([]byte, error) {
	open := bytes.Index(segment, xmpOpen)
	if open < 0 {
		return nil, fmt.Errorf("%w: XMP list item missing", ErrCorrupt)
	}
	text := segment[open+len(xmpOpen):]
	closing := bytes.IndexByte(text, '<')
	if closing <= 0 {
		return nil, fmt.Errorf("%w: XMP text unterminated", ErrCorrupt)
	}
	text = text[:closing]

	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(decoded, text)
	if err != nil {
		return nil, fmt.Errorf("%w: XMP text is not Base64: %v", ErrCorrupt, err)
	}
	return append(ciphertext, decoded[:n]...), nil
}
