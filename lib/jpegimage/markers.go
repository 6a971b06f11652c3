// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jpegimage

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	markerSOI   = 0xD8
	markerEOI   = 0xD9
	markerSOS   = 0xDA
	markerDQT   = 0xDB
	markerCOM   = 0xFE
	markerAPP0  = 0xE0
	markerAPP1  = 0xE1
	markerAPP15 = 0xEF
)

var (
	// ErrNotJPEG means the data does not start with SOI and end with EOI.
	ErrNotJPEG = errors.New("not a valid JPG image")

	// ErrNoDQT means no quantization table precedes the first scan.
	ErrNoDQT = errors.New("JPG image has no DQT segment")

	// ErrTruncated means a marker segment overruns the data.
	ErrTruncated = errors.New("JPG segment overruns the file")
)

// segment is one marker segment before SOS. Start is the offset of the
// 0xFF byte; End is one past the last byte of its body.
type segment struct {
	marker byte
	start  int
	end    int
}

// body returns the segment payload after the length field.
func (s segment) body(data []byte) []byte {
	return data[s.start+4 : s.end]
}

// CheckMarkers verifies SOI at the start and EOI at the end.
func CheckMarkers(data []byte) error {
	if len(data) < 4 || data[0] != 0xFF || data[1] != markerSOI ||
		data[len(data)-2] != 0xFF || data[len(data)-1] != markerEOI {
		return ErrNotJPEG
	}
	return nil
}

// walkHeader calls visit for every marker segment from after SOI up to
// and including SOS. Walking stops early when visit returns false.
func walkHeader(data []byte, visit func(segment) bool) error {
	if len(data) < 2 || data[0] != 0xFF || data[1] != markerSOI {
		return ErrNotJPEG
	}
	position := 2
	for position+4 <= len(data) {
		if data[position] != 0xFF {
			return fmt.Errorf("%w: expected marker at offset %d", ErrNotJPEG, position)
		}
		marker := data[position+1]
		if marker == 0xFF {
			// Fill byte.
			position++
			continue
		}
		length := int(binary.BigEndian.Uint16(data[position+2:]))
		end := position + 2 + length
		if length < 2 || end > len(data) {
			return fmt.Errorf("%w: marker 0x%02X at offset %d", ErrTruncated, marker, position)
		}
		if !visit(segment{marker: marker, start: position, end: end}) || marker == markerSOS {
			return nil
		}
		position = end
	}
	return fmt.Errorf("%w: no scan found", ErrTruncated)
}

func isMetadata(marker byte) bool {
	return (marker >= markerAPP0 && marker <= markerAPP15) || marker == markerCOM
}

// StripMetadata returns data without SOI and without the APPn and COM
// segments that precede the first scan. The result starts at the first
// remaining marker, normally DQT. A DQT must appear before the scan.
func StripMetadata(data []byte) ([]byte, error) {
	var kept []segment
	hasDQT := false
	scanStart := -1
	err := walkHeader(data, func(s segment) bool {
		switch {
		case s.marker == markerSOS:
			scanStart = s.start
		case isMetadata(s.marker):
		default:
			if s.marker == markerDQT {
				hasDQT = true
			}
			kept = append(kept, s)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if !hasDQT {
		return nil, ErrNoDQT
	}

	output := make([]byte, 0, len(data))
	for _, s := range kept {
		output = append(output, data[s.start:s.end]...)
	}
	return append(output, data[scanStart:]...), nil
}
