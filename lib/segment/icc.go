// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/bureau-foundation/jdvrif/lib/layout"
)

const (
	// ICCChunkDataSize is the number of payload bytes carried by every
	// APP2 segment of a multi-segment carrier except the last.
	ICCChunkDataSize = 65519

	// iccHeaderLength is marker + length + "ICC_PROFILE" + 2-byte
	// sequence + count.
	iccHeaderLength = 18

	// iccStride is the distance between consecutive segment markers.
	iccStride = iccHeaderLength + ICCChunkDataSize

	// iccLengthBias is what the segment length field adds to the chunk
	// size: the length field itself and the 14 identifier bytes.
	iccLengthBias = iccHeaderLength - 2

	// iccSingleLimit is the largest header+ciphertext buffer that
	// still fits in one segment: a segment length of 0xFFFF.
	iccSingleLimit = 2 + iccHeaderLength + ICCChunkDataSize

	// firstStrip is the position, relative to the first ciphertext
	// byte, of the second segment's header.
	firstStrip = 2 + iccHeaderLength + ICCChunkDataSize - layout.DefaultDataOffset

	// maxICCSegments is bounded by the 2-byte segment-count field.
	maxICCSegments = math.MaxUint16
)

var (
	soi           = []byte{0xFF, 0xD8}
	iccIdentifier = []byte("ICC_PROFILE")
)

// ICCResult is the output of EncodeICC.
type ICCResult struct {
	// Segments starts with SOI, followed by the APP2 segments.
	Segments []byte

	// Count is the number of APP2 segments.
	Count int

	// FirstSegmentSize is the byte size of the first APP2 segment
	// including its marker.
	FirstSegmentSize int
}

// EncodeICC lays out the filled Default frame and the ciphertext as one
// or more APP2 segments. The frame's segment-count and payload-size
// fields are written as part of encoding.
func EncodeICC(frame *layout.Frame, ciphertext []byte) (*ICCResult, error) {
	if frame.Storage() != layout.Default {
		return nil, fmt.Errorf("EncodeICC: frame is %s, want default", frame.Storage())
	}
	header := frame.Header()
	total := len(header) + len(ciphertext)

	if total <= iccSingleLimit {
		frame.SetSegmentCount(1)
		frame.SetPayloadSize(uint32(len(ciphertext)))

		output := make([]byte, 0, total)
		output = append(output, header...)
		output = append(output, ciphertext...)

		segmentLength := total - 4
		binary.BigEndian.PutUint16(output[layout.DefaultSegmentLengthOffset:], uint16(segmentLength))
		binary.BigEndian.PutUint16(output[layout.DefaultProfileSizeOffset:], uint16(segmentLength-iccLengthBias))
		return &ICCResult{Segments: output, Count: 1, FirstSegmentSize: total - 2}, nil
	}

	// Everything after SOI and the template's own segment header is
	// re-chunked under fresh headers.
	dataLength := total - len(soi) - iccHeaderLength
	count := (dataLength + ICCChunkDataSize - 1) / ICCChunkDataSize
	if count > maxICCSegments {
		return nil, fmt.Errorf("%w: %d segments needed, limit is %d", ErrCapacity, count, maxICCSegments)
	}
	outputLength := len(soi) + dataLength + count*iccHeaderLength
	if uint64(outputLength-layout.DefaultDataOffset) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: carrier would exceed 4 GiB", ErrCapacity)
	}

	frame.SetSegmentCount(uint16(count))
	frame.SetPayloadSize(uint32(outputLength - layout.DefaultDataOffset))

	output := make([]byte, 0, outputLength)
	output = append(output, soi...)

	data := chain{header[len(soi)+iccHeaderLength:], ciphertext}
	for sequence := 1; sequence <= count; sequence++ {
		size := min(ICCChunkDataSize, data.len())
		output = appendICCHeader(output, sequence, size)
		output = data.take(output, size)
	}
	return &ICCResult{Segments: output, Count: count, FirstSegmentSize: iccStride}, nil
}

func appendICCHeader(output []byte, sequence, size int) []byte {
	output = append(output, 0xFF, 0xE2)
	output = binary.BigEndian.AppendUint16(output, uint16(size+iccLengthBias))
	output = append(output, iccIdentifier...)
	output = binary.BigEndian.AppendUint16(output, uint16(sequence))
	return append(output, 0x01)
}

// DecodeICC reassembles the ciphertext of a Default-storage carrier
// whose header frame begins at base. The sealed bytes are returned in a
// new slice; carrier is not modified.
func DecodeICC(carrier []byte, base int) ([]byte, error) {
	if base < 0 || base > len(carrier) {
		return nil, fmt.Errorf("%w: header offset %d outside file", ErrCorrupt, base)
	}
	frame, err := layout.Parse(layout.Default, carrier[base:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	size := int(frame.PayloadSize())
	count := int(frame.SegmentCount())
	start := base + layout.DefaultDataOffset
	end := start + size
	if size <= 0 || end > len(carrier) {
		return nil, fmt.Errorf("%w: stored size %d overruns the file", ErrCorrupt, size)
	}
	if end < len(carrier) && carrier[end] != 0xFF {
		return nil, fmt.Errorf("%w: no segment marker after embedded data", ErrCorrupt)
	}

	if count <= 1 {
		return bytes.Clone(carrier[start:end]), nil
	}

	last := base + len(soi) + (count-1)*iccStride
	if last+iccHeaderLength > end || carrier[last] != 0xFF || carrier[last+1] != 0xE2 {
		return nil, fmt.Errorf("%w: missing segments", ErrCorrupt)
	}

	ciphertext := make([]byte, 0, size-(count-1)*iccHeaderLength)
	read := start
	for index := range count - 1 {
		boundary := start + firstStrip + index*iccStride
		if !isICCHeader(carrier[boundary:end]) {
			return nil, fmt.Errorf("%w: segment %d header missing", ErrCorrupt, index+2)
		}
		ciphertext = append(ciphertext, carrier[read:boundary]...)
		read = boundary + iccHeaderLength
	}
	ciphertext = append(ciphertext, carrier[read:end]...)
	return ciphertext, nil
}

func isICCHeader(data []byte) bool {
	return len(data) >= iccHeaderLength &&
		data[0] == 0xFF && data[1] == 0xE2 &&
		bytes.Equal(data[4:4+len(iccIdentifier)], iccIdentifier)
}

// chain reads sequentially across two slices without joining them.
type chain [2][]byte

func (c *chain) len() int { return len(c[0]) + len(c[1]) }

// take appends the next n bytes to output and advances.
func (c *chain) take(output []byte, n int) []byte {
	for part := 0; part < 2 && n > 0; part++ {
		step := min(n, len(c[part]))
		output = append(output, c[part][:step]...)
		c[part] = c[part][step:]
		n -= step
	}
	return output
}
