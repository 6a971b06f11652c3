// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package carrier

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/bureau-foundation/jdvrif/lib/custody"
	"github.com/bureau-foundation/jdvrif/lib/deflate"
	"github.com/bureau-foundation/jdvrif/lib/fingerprint"
	"github.com/bureau-foundation/jdvrif/lib/jpegimage"
	"github.com/bureau-foundation/jdvrif/lib/layout"
	"github.com/bureau-foundation/jdvrif/lib/platform"
	"github.com/bureau-foundation/jdvrif/lib/segment"
)

// Output naming: <prefix><5 digits>.jpg.
const (
	outputNumberMin    = 10000
	outputNumberRange  = 90000
	outputNameAttempts = 32
)

// ConcealOptions configures one Conceal call.
type ConcealOptions struct {
	Mode        layout.Mode
	CoverPath   string
	PayloadPath string

	// OutputDirectory receives the carrier. Empty means the current
	// directory.
	OutputDirectory string

	// OutputPrefix starts the generated output filename.
	OutputPrefix string

	// BlueskyQuality is the re-encode quality for Bluesky covers.
	BlueskyQuality int

	// TranscodeQuality is the JPEG quality for PNG, BMP, and WebP
	// covers.
	TranscodeQuality int

	Logger *slog.Logger
}

// ConcealResult describes a written carrier.
type ConcealResult struct {
	Mode       layout.Mode
	OutputPath string
	OutputSize int64

	// PIN recovers the payload. It is not stored anywhere and must be
	// shown to the user exactly once.
	PIN uint64

	PayloadName string
	PayloadSize int
	Compressed  bool

	// Segments is the number of metadata segments holding the
	// ciphertext: ICC segments for Default and Reddit, tiers for
	// Bluesky.
	Segments         int
	FirstSegmentSize int

	Cover       *jpegimage.Cover
	Platforms   []platform.Platform
	Fingerprint [32]byte
}

// Conceal embeds the payload file into the cover image and writes the
// carrier under a fresh name in the output directory. No file is
// written unless every step before the write succeeds.
func Conceal(options ConcealOptions) (*ConcealResult, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("mode", options.Mode.String())

	coverData, err := readInput(options.CoverPath, inputCover)
	if err != nil {
		return nil, err
	}
	payload, err := readInput(options.PayloadPath, inputPayload)
	if err != nil {
		return nil, err
	}
	payloadName := filepath.Base(options.PayloadPath)
	if err := checkPayloadName(payloadName); err != nil {
		return nil, err
	}
	if err := checkConcealSizes(options.Mode, len(coverData), len(payload)); err != nil {
		return nil, err
	}

	cover, err := jpegimage.Prepare(coverData, jpegimage.Options{
		Reencode:         options.Mode == layout.Bluesky,
		ReencodeQuality:  options.BlueskyQuality,
		TranscodeQuality: options.TranscodeQuality,
	})
	if err != nil {
		return nil, coverError(err)
	}
	logger.Info("cover prepared",
		"width", cover.Width,
		"height", cover.Height,
		"quality", cover.Quality,
		"orientation", cover.Orientation,
		"reencoded", cover.Reencoded,
		"transcoded", cover.Transcoded,
	)

	result := &ConcealResult{
		Mode:        options.Mode,
		PayloadName: payloadName,
		PayloadSize: len(payload),
		Cover:       cover,
	}

	frame := layout.New(options.Mode)
	result.Compressed = options.Mode == layout.Bluesky || deflate.ShouldCompress(payloadName, len(payload))
	if result.Compressed {
		if payload, err = deflate.Compress(payload); err != nil {
			return nil, wrap(KindIO, err, "Zlib Compression Error")
		}
	}
	if err := frame.SetCompressed(result.Compressed); err != nil {
		return nil, wrap(KindValidation, err, "Compression Error")
	}
	logger.Info("payload staged", "payload_bytes", len(payload), "compressed", result.Compressed)

	ciphertext, pin, err := seal(frame, payloadName, payload)
	if err != nil {
		return nil, err
	}

	output, err := assemble(options.Mode, frame, cover, ciphertext, result)
	if err != nil {
		return nil, err
	}
	result.PIN = pin

	result.OutputPath, err = writeOutput(options.OutputDirectory, options.OutputPrefix, output)
	if err != nil {
		return nil, err
	}
	result.OutputSize = int64(len(output))
	result.Fingerprint = fingerprint.Sum(output)
	result.Platforms = platform.Compatible(platform.Usage{
		Mode:             options.Mode,
		ImageSize:        result.OutputSize,
		FirstSegmentSize: result.FirstSegmentSize,
		Segments:         result.Segments,
	})
	logger.Info("carrier written",
		"output", result.OutputPath,
		"output_bytes", result.OutputSize,
		"segments", result.Segments,
	)
	return result, nil
}

// seal fills the frame's filename and custody fields and encrypts the
// payload. The key and nonce are released before returning; only the
// PIN leaves.
func seal(frame *layout.Frame, name string, payload []byte) (ciphertext []byte, pin uint64, err error) {
	if err := custody.EncryptFilename(frame, name); err != nil {
		return nil, 0, wrap(KindValidation, err, "Filename Error")
	}
	material, err := custody.Generate(frame)
	if err != nil {
		return nil, 0, wrap(KindIO, err, "Key Generation Error")
	}
	ciphertext = material.Seal(payload)
	if err := material.Close(); err != nil {
		return nil, 0, wrap(KindIO, err, "Key Release Error")
	}
	pin, err = custody.Obfuscate(frame)
	if err != nil {
		return nil, 0, wrap(KindIO, err, "Key Obfuscation Error")
	}
	return ciphertext, pin, nil
}

// assemble lays the ciphertext into segments and joins them with the
// cover. result's segment fields are filled in.
func assemble(mode layout.Mode, frame *layout.Frame, cover *jpegimage.Cover, ciphertext []byte, result *ConcealResult) ([]byte, error) {
	switch mode {
	case layout.Bluesky:
		encoded, err := segment.EncodeBluesky(frame, ciphertext)
		if err != nil {
			return nil, segmentError(err)
		}
		result.Segments, result.FirstSegmentSize = encoded.Tiers, encoded.FirstSegmentSize
		return join(encoded.Segments, cover.Body), nil

	case layout.Reddit:
		encoded, err := segment.EncodeICC(frame, ciphertext)
		if err != nil {
			return nil, segmentError(err)
		}
		result.Segments, result.FirstSegmentSize = encoded.Count, encoded.FirstSegmentSize
		output, err := segment.EncodeReddit(join([]byte{0xFF, 0xD8}, cover.Body), encoded)
		if err != nil {
			return nil, wrap(KindFormat, err, "Reddit Encoding Error")
		}
		return output, nil

	default:
		encoded, err := segment.EncodeICC(frame, ciphertext)
		if err != nil {
			return nil, segmentError(err)
		}
		result.Segments, result.FirstSegmentSize = encoded.Count, encoded.FirstSegmentSize
		return join(encoded.Segments, cover.Body), nil
	}
}

func join(head, tail []byte) []byte {
	output := make([]byte, 0, len(head)+len(tail))
	output = append(output, head...)
	return append(output, tail...)
}

// writeOutput creates <directory>/<prefix>NNNNN.jpg without replacing
// an existing file. A partially written file is removed.
func writeOutput(directory, prefix string, data []byte) (string, error) {
	if directory == "" {
		directory = "."
	}
	for range outputNameAttempts {
		name := fmt.Sprintf("%s%d.jpg", prefix, outputNumberMin+rand.IntN(outputNumberRange))
		path := filepath.Join(directory, name)

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", wrap(KindIO, err, "Write Error: Unable to write to file. Make sure you have WRITE permissions for this location")
		}
		_, writeErr := file.Write(data)
		closeErr := file.Close()
		if err := errors.Join(writeErr, closeErr); err != nil {
			os.Remove(path)
			return "", wrap(KindIO, err, "Write Error: Failed to write complete output file")
		}
		return path, nil
	}
	return "", &Error{Kind: KindIO, Message: fmt.Sprintf("Write Error: No free output filename in %s after %d attempts", directory, outputNameAttempts)}
}

// coverError classifies a jpegimage failure.
func coverError(err error) error {
	switch {
	case errors.Is(err, jpegimage.ErrTooSmall), errors.Is(err, jpegimage.ErrQuality):
		return wrap(KindValidation, err, "Image Error")
	default:
		return wrap(KindFormat, err, "Image File Error")
	}
}

// segmentError classifies a segment encode or decode failure.
func segmentError(err error) error {
	switch {
	case errors.Is(err, segment.ErrCapacity):
		return wrap(KindCapacity, err, "File Size Error")
	case errors.Is(err, segment.ErrNotCarrier):
		return wrap(KindFormat, err, "Image File Error: Signature check failure. This is not a valid embedded image")
	default:
		return wrap(KindFormat, err, "Image File Error")
	}
}
