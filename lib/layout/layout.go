// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import "fmt"

// Mode selects how a payload is stored in the carrier image. These
// values never reach disk; the storage kind of an existing carrier is
// recognised from its segment structure.
type Mode uint8

const (
	// Default stores the payload in one or more APP2 (ICC profile)
	// segments placed directly after SOI.
	Default Mode = iota

	// Bluesky stores the payload in an APP1 (EXIF) segment, spilling
	// into Photoshop IRB and XMP segments when it does not fit.
	Bluesky

	// Reddit uses the Default template, but places the segments at the
	// end of the cover image behind a block of filler.
	Reddit
)

// String returns the mode name as used on the command line.
func (mode Mode) String() string {
	switch mode {
	case Default:
		return "default"
	case Bluesky:
		return "bluesky"
	case Reddit:
		return "reddit"
	default:
		return fmt.Sprintf("unknown(%d)", mode)
	}
}

// Storage returns the template family used by mode. Reddit output is
// byte-for-byte a Default carrier, only positioned differently.
func (mode Mode) Storage() Mode {
	if mode == Reddit {
		return Default
	}
	return mode
}

// Field sizes shared by every template.
const (
	SignatureLength   = 7
	FilenameMaxLength = 20
	FilenameKeyLength = 24
	KeyLength         = 32
	NonceLength       = 24

	// PINLength is the number of leading key bytes that form the
	// recovery PIN (big-endian uint64).
	PINLength = 8

	// CustodyWindowLength spans the key and nonce fields, which are
	// contiguous in both templates.
	CustodyWindowLength = KeyLength + NonceLength
)

// Protocol byte values.
const (
	// AttemptsReset is the attempt counter value meaning "no failures
	// since the last success".
	AttemptsReset byte = 0x90

	// NoCompressionFlag marks a Default carrier whose payload was stored
	// without zlib compression.
	NoCompressionFlag byte = 0x58
)

// Signature identifies a carrier. It sits directly before the attempt
// counter in both templates.
var Signature = [SignatureLength]byte{0xB4, 0x6A, 0x3E, 0xEA, 0x5E, 0x9D, 0xF9}

// ICCSignature is the "mntrRGB" device-class and colour-space pair at
// DefaultICCSignatureOffset. Its presence distinguishes a Default
// carrier from a Bluesky one.
var ICCSignature = [7]byte{'m', 'n', 't', 'r', 'R', 'G', 'B'}

// Default (ICC) template offsets, measured from the template's SOI.
const (
	DefaultSegmentLengthOffset   = 0x04
	DefaultProfileSizeOffset     = 0x16
	DefaultICCSignatureOffset    = 0x20
	DefaultCompressionFlagOffset = 0x80
	DefaultSegmentCountOffset    = 0x2E0
	DefaultPayloadSizeOffset     = 0x2E2
	DefaultFilenameLengthOffset  = 0x2E6
	DefaultFilenameOffset        = 0x2E7
	DefaultFilenameKeyOffset     = 0x2FB
	DefaultKeyOffset             = 0x313
	DefaultNonceOffset           = 0x333
	DefaultSignatureOffset       = 0x34B
	DefaultAttemptsOffset        = 0x352
	DefaultDataOffset            = 0x353
)

// Bluesky (EXIF) template offsets, measured from the template's SOI.
const (
	BlueskySegmentLengthOffset  = 0x04
	BlueskyXResolutionOffset    = 0x2A
	BlueskyYResolutionOffset    = 0x36
	BlueskyArtistCountOffset    = 0x4A
	BlueskyExifIFDOffset        = 0x5A
	BlueskyFilenameLengthOffset = 0x160
	BlueskyFilenameOffset       = 0x161
	BlueskyFilenameKeyOffset    = 0x175
	BlueskyKeyOffset            = 0x18D
	BlueskyNonceOffset          = 0x1AD
	BlueskySignatureOffset      = 0x1C5
	BlueskyAttemptsOffset       = 0x1CC
	BlueskyPayloadSizeOffset    = 0x1CD
	BlueskyDataOffset           = 0x1D1
	BlueskyTemplateLength       = 511
)

// The custody window must cover key and nonce without a gap, the
// signature must be immediately followed by the attempt counter, and
// fields must not overlap. Each pair of conversions fails to compile
// unless the two sides are equal.
const (
	_ = uint(DefaultNonceOffset - DefaultKeyOffset - KeyLength)
	_ = uint(DefaultKeyOffset + KeyLength - DefaultNonceOffset)
	_ = uint(DefaultAttemptsOffset - DefaultSignatureOffset - SignatureLength)
	_ = uint(DefaultSignatureOffset + SignatureLength - DefaultAttemptsOffset)
	_ = uint(DefaultFilenameKeyOffset - DefaultFilenameOffset - FilenameMaxLength)
	_ = uint(DefaultFilenameOffset + FilenameMaxLength - DefaultFilenameKeyOffset)
	_ = uint(DefaultKeyOffset - DefaultFilenameKeyOffset - FilenameKeyLength)
	_ = uint(DefaultFilenameKeyOffset + FilenameKeyLength - DefaultKeyOffset)
	_ = uint(DefaultDataOffset - DefaultAttemptsOffset - 1)
	_ = uint(DefaultAttemptsOffset + 1 - DefaultDataOffset)

	_ = uint(BlueskyNonceOffset - BlueskyKeyOffset - KeyLength)
	_ = uint(BlueskyKeyOffset + KeyLength - BlueskyNonceOffset)
	_ = uint(BlueskyAttemptsOffset - BlueskySignatureOffset - SignatureLength)
	_ = uint(BlueskySignatureOffset + SignatureLength - BlueskyAttemptsOffset)
	_ = uint(BlueskyFilenameKeyOffset - BlueskyFilenameOffset - FilenameMaxLength)
	_ = uint(BlueskyFilenameOffset + FilenameMaxLength - BlueskyFilenameKeyOffset)
	_ = uint(BlueskyDataOffset - BlueskyPayloadSizeOffset - 4)
	_ = uint(BlueskyPayloadSizeOffset + 4 - BlueskyDataOffset)
)

// offsets is the per-template field map. SegmentCount and
// CompressionFlag are -1 where the template has no such field.
type offsets struct {
	filenameLength  int
	filename        int
	filenameKey     int
	key             int
	nonce           int
	signature       int
	attempts        int
	payloadSize     int
	segmentCount    int
	compressionFlag int
	header          int
}

var defaultOffsets = offsets{
	filenameLength:  DefaultFilenameLengthOffset,
	filename:        DefaultFilenameOffset,
	filenameKey:     DefaultFilenameKeyOffset,
	key:             DefaultKeyOffset,
	nonce:           DefaultNonceOffset,
	signature:       DefaultSignatureOffset,
	attempts:        DefaultAttemptsOffset,
	payloadSize:     DefaultPayloadSizeOffset,
	segmentCount:    DefaultSegmentCountOffset,
	compressionFlag: DefaultCompressionFlagOffset,
	header:          DefaultDataOffset,
}

var blueskyOffsets = offsets{
	filenameLength:  BlueskyFilenameLengthOffset,
	filename:        BlueskyFilenameOffset,
	filenameKey:     BlueskyFilenameKeyOffset,
	key:             BlueskyKeyOffset,
	nonce:           BlueskyNonceOffset,
	signature:       BlueskySignatureOffset,
	attempts:        BlueskyAttemptsOffset,
	payloadSize:     BlueskyPayloadSizeOffset,
	segmentCount:    -1,
	compressionFlag: -1,
	header:          BlueskyDataOffset,
}

func offsetsFor(storage Mode) *offsets {
	if storage == Bluesky {
		return &blueskyOffsets
	}
	return &defaultOffsets
}

// HeaderLength returns the number of template bytes that precede the
// ciphertext for mode.
func HeaderLength(mode Mode) int {
	return offsetsFor(mode.Storage()).header
}

// SignatureOffset returns the offset of Signature from the template's
// SOI for mode.
func SignatureOffset(mode Mode) int {
	return offsetsFor(mode.Storage()).signature
}
