// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Frame is a typed view over the header bytes of one carrier: the
// template region from SOI up to the first ciphertext byte. Writes
// through a Frame land directly in the backing slice, so a Frame
// parsed from a loaded carrier edits that carrier in place.
type Frame struct {
	storage Mode
	offsets *offsets
	header  []byte
	tail    []byte
}

// New returns a Frame over a fresh copy of the template for mode. No
// two Frames share memory.
func New(mode Mode) *Frame {
	storage := mode.Storage()
	frame := &Frame{storage: storage, offsets: offsetsFor(storage)}
	switch storage {
	case Bluesky:
		buffer := make([]byte, len(blueskyTemplate))
		copy(buffer, blueskyTemplate[:])
		frame.header = buffer[:BlueskyDataOffset:BlueskyDataOffset]
		frame.tail = buffer[BlueskyDataOffset:]
	default:
		buffer := make([]byte, len(defaultTemplate))
		copy(buffer, defaultTemplate[:])
		frame.header = buffer
	}
	return frame
}

// Parse returns a Frame over header, which must start at the carrier
// template's SOI position and hold at least HeaderLength(mode) bytes.
// The protocol signature is verified.
func Parse(mode Mode, header []byte) (*Frame, error) {
	storage := mode.Storage()
	fieldOffsets := offsetsFor(storage)
	if len(header) < fieldOffsets.header {
		return nil, fmt.Errorf("layout: %s header truncated: %d bytes, need %d",
			storage, len(header), fieldOffsets.header)
	}
	header = header[:fieldOffsets.header:fieldOffsets.header]
	signature := header[fieldOffsets.signature : fieldOffsets.signature+SignatureLength]
	if !bytes.Equal(signature, Signature[:]) {
		return nil, fmt.Errorf("layout: %s header has no protocol signature", storage)
	}
	return &Frame{storage: storage, offsets: fieldOffsets, header: header}, nil
}

// Storage returns the template family of the frame (Default or Bluesky).
func (frame *Frame) Storage() Mode { return frame.storage }

// Header returns the header bytes. For a Default frame this is the
// complete 851-byte template; for a Bluesky frame it stops at the
// ciphertext insertion point.
func (frame *Frame) Header() []byte { return frame.header }

// Tail returns the template bytes that follow the ciphertext. Only a
// Bluesky frame built with New has a tail.
func (frame *Frame) Tail() []byte { return frame.tail }

// FilenameLength returns the stored filename length.
func (frame *Frame) FilenameLength() int {
	return int(frame.header[frame.offsets.filenameLength])
}

// SetFilenameLength stores the filename length.
func (frame *Frame) SetFilenameLength(length int) error {
	if length < 1 || length > FilenameMaxLength {
		return fmt.Errorf("layout: filename length %d outside 1..%d", length, FilenameMaxLength)
	}
	frame.header[frame.offsets.filenameLength] = byte(length)
	return nil
}

// FilenameField returns the 20-byte filename ciphertext field.
func (frame *Frame) FilenameField() []byte {
	return frame.field(frame.offsets.filename, FilenameMaxLength)
}

// FilenameKeyField returns the 24-byte filename XOR key field.
func (frame *Frame) FilenameKeyField() []byte {
	return frame.field(frame.offsets.filenameKey, FilenameKeyLength)
}

// KeyField returns the 32-byte AEAD key field.
func (frame *Frame) KeyField() []byte {
	return frame.field(frame.offsets.key, KeyLength)
}

// NonceField returns the 24-byte AEAD nonce field.
func (frame *Frame) NonceField() []byte {
	return frame.field(frame.offsets.nonce, NonceLength)
}

// CustodyWindow returns the contiguous key and nonce fields.
func (frame *Frame) CustodyWindow() []byte {
	return frame.field(frame.offsets.key, CustodyWindowLength)
}

// PayloadSize returns the stored embedded-size field.
func (frame *Frame) PayloadSize() uint32 {
	return binary.BigEndian.Uint32(frame.header[frame.offsets.payloadSize:])
}

// SetPayloadSize stores the embedded-size field.
func (frame *Frame) SetPayloadSize(size uint32) {
	binary.BigEndian.PutUint32(frame.header[frame.offsets.payloadSize:], size)
}

// SegmentCount returns the stored ICC segment count. Bluesky frames
// always report 1.
func (frame *Frame) SegmentCount() uint16 {
	if frame.offsets.segmentCount < 0 {
		return 1
	}
	return binary.BigEndian.Uint16(frame.header[frame.offsets.segmentCount:])
}

// SetSegmentCount stores the ICC segment count. It is a no-op on a
// Bluesky frame.
func (frame *Frame) SetSegmentCount(count uint16) {
	if frame.offsets.segmentCount < 0 {
		return
	}
	binary.BigEndian.PutUint16(frame.header[frame.offsets.segmentCount:], count)
}

// Compressed reports whether the payload was zlib-compressed before
// encryption. Bluesky payloads are always compressed.
func (frame *Frame) Compressed() bool {
	if frame.offsets.compressionFlag < 0 {
		return true
	}
	return frame.header[frame.offsets.compressionFlag] != NoCompressionFlag
}

// SetCompressed records whether the payload was compressed. Returns an
// error when asked to mark a Bluesky frame uncompressed, since that
// template has nowhere to record it.
func (frame *Frame) SetCompressed(compressed bool) error {
	if frame.offsets.compressionFlag < 0 {
		if !compressed {
			return fmt.Errorf("layout: %s carriers cannot hold an uncompressed payload", frame.storage)
		}
		return nil
	}
	if compressed {
		frame.header[frame.offsets.compressionFlag] = defaultTemplate[DefaultCompressionFlagOffset]
	} else {
		frame.header[frame.offsets.compressionFlag] = NoCompressionFlag
	}
	return nil
}

// Attempts returns the persisted PIN attempt counter.
func (frame *Frame) Attempts() byte {
	return frame.header[frame.offsets.attempts]
}

// SetAttempts writes the attempt counter into the header bytes.
func (frame *Frame) SetAttempts(value byte) {
	frame.header[frame.offsets.attempts] = value
}

// AttemptsOffset returns the position of the attempt counter relative
// to the frame's SOI.
func (frame *Frame) AttemptsOffset() int {
	return frame.offsets.attempts
}

func (frame *Frame) field(offset, length int) []byte {
	return frame.header[offset : offset+length : offset+length]
}
