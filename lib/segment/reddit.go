// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const (
	// RedditPaddingLength is the filler carried by the padding segment.
	RedditPaddingLength = 8000

	paddingFirst = 33
	paddingRange = 94
)

// EncodeReddit builds a Reddit carrier: cover (which must begin with
// SOI and end with EOI) with, just before its EOI, an APP2 segment of
// printable filler followed by the ICC segments (without their SOI).
// The filler absorbs truncation by hosts that shorten the file on
// redistribution.
func EncodeReddit(cover []byte, icc *ICCResult) ([]byte, error) {
	return encodeReddit(cover, icc, rand.Reader)
}

func encodeReddit(cover []byte, icc *ICCResult, random io.Reader) ([]byte, error) {
	if len(cover) < 4 || cover[0] != 0xFF || cover[1] != 0xD8 ||
		cover[len(cover)-2] != 0xFF || cover[len(cover)-1] != 0xD9 {
		return nil, fmt.Errorf("EncodeReddit: cover must start with SOI and end with EOI")
	}
	segments := icc.Segments[len(soi):]
	body := cover[:len(cover)-2]

	output := make([]byte, 0, len(cover)+4+RedditPaddingLength+len(segments))
	output = append(output, body...)
	output = append(output, 0xFF, 0xE2, byte((RedditPaddingLength+2)>>8), byte((RedditPaddingLength+2)&0xFF))

	filler, err := printableFiller(random, RedditPaddingLength)
	if err != nil {
		return nil, err
	}
	output = append(output, filler...)
	output = append(output, segments...)
	output = append(output, 0xFF, 0xD9)
	return output, nil
}

// printableFiller returns n bytes drawn uniformly from 0x21..0x7E.
func printableFiller(random io.Reader, n int) ([]byte, error) {
	filler := make([]byte, n)
	limit := big.NewInt(paddingRange)
	for index := range filler {
		value, err := rand.Int(random, limit)
		if err != nil {
			return nil, fmt.Errorf("generating padding: %w", err)
		}
		filler[index] = paddingFirst + byte(value.Int64())
	}
	return filler, nil
}
