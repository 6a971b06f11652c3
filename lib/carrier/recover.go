// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package carrier

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bureau-foundation/jdvrif/lib/custody"
	"github.com/bureau-foundation/jdvrif/lib/deflate"
	"github.com/bureau-foundation/jdvrif/lib/fingerprint"
	"github.com/bureau-foundation/jdvrif/lib/layout"
	"github.com/bureau-foundation/jdvrif/lib/segment"
)

// PINSource supplies the recovery PIN. ReadPIN is called once per
// Recover, after the carrier has been located and reassembled.
type PINSource interface {
	ReadPIN(ctx context.Context) (uint64, error)
}

// PINFunc adapts a function to PINSource.
type PINFunc func(ctx context.Context) (uint64, error)

// ReadPIN calls f.
func (f PINFunc) ReadPIN(ctx context.Context) (uint64, error) {
	return f(ctx)
}

// StaticPIN is a PINSource that always returns the same PIN.
type StaticPIN uint64

// ReadPIN returns the PIN.
func (pin StaticPIN) ReadPIN(context.Context) (uint64, error) {
	return uint64(pin), nil
}

// RecoverOptions configures one Recover call.
type RecoverOptions struct {
	CarrierPath string

	// OutputDirectory receives the recovered file. Empty means the
	// current directory.
	OutputDirectory string

	PIN    PINSource
	Logger *slog.Logger
}

// RecoverResult describes a recovered payload.
type RecoverResult struct {
	Mode        layout.Mode
	Filename    string
	OutputPath  string
	Size        int
	Compressed  bool
	Fingerprint [32]byte
}

// Recover extracts the payload from a carrier. A failed authentication
// is recorded in the carrier's attempt counter and destroys the file
// on the MaxFailedAttempts-th consecutive failure; the returned error
// has KindCrypto either way.
func Recover(ctx context.Context, options RecoverOptions) (*RecoverResult, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if options.PIN == nil {
		return nil, validationError("Recover: no PIN source")
	}

	data, err := readInput(options.CarrierPath, inputCarrier)
	if err != nil {
		return nil, err
	}

	location, err := segment.Locate(data)
	if err != nil {
		return nil, segmentError(err)
	}
	logger = logger.With("mode", location.Mode.String())

	frame, err := layout.Parse(location.Mode, data[location.Base:])
	if err != nil {
		return nil, wrap(KindFormat, err, "Image File Error")
	}
	lockout := NewLockout(options.CarrierPath, location.AttemptsOffset, frame.Attempts())
	logger.Info("carrier located", "base", location.Base, "failures", lockout.Failures())

	ciphertext, err := segment.Decode(data, location)
	if err != nil {
		return nil, segmentError(err)
	}
	logger.Info("ciphertext reassembled", "payload_bytes", len(ciphertext), "segments", frame.SegmentCount())

	pin, err := options.PIN.ReadPIN(ctx)
	if err != nil {
		return nil, wrap(KindIO, err, "PIN Entry Error")
	}

	plaintext, err := open(frame, pin, ciphertext)
	if errors.Is(err, custody.ErrAuthentication) {
		destroyed, lockoutErr := lockout.RecordFailure()
		logger.Warn("recovery PIN rejected", "failures", lockout.Failures(), "destroyed", destroyed)
		if lockoutErr != nil {
			logger.Error("updating attempt counter failed", "error", lockoutErr)
		}
		return nil, &Error{Kind: KindCrypto, Message: "File Decryption Error: " + CryptoMessage + "."}
	}
	if err != nil {
		return nil, err
	}

	result := &RecoverResult{Mode: location.Mode, Compressed: frame.Compressed()}
	if result.Compressed {
		plaintext, err = deflate.Decompress(plaintext)
		if errors.Is(err, deflate.ErrEmptyOutput) {
			return nil, wrap(KindFormat, err, "Zlib Compression Error: Output file is empty. Inflating file failed")
		}
		if err != nil {
			return nil, wrap(KindFormat, err, "Zlib Compression Error")
		}
	}
	if len(plaintext) == 0 {
		return nil, &Error{Kind: KindFormat, Message: "Zlib Compression Error: Output file is empty. Inflating file failed."}
	}

	if err := lockout.Reset(); err != nil {
		return nil, wrap(KindIO, err, "Write Error")
	}

	result.Filename, err = custody.DecryptFilename(frame)
	if err != nil {
		return nil, wrap(KindFormat, err, "Image File Error")
	}
	if err := checkRecoveredName(result.Filename); err != nil {
		return nil, err
	}

	directory := options.OutputDirectory
	if directory == "" {
		directory = "."
	}
	result.OutputPath = filepath.Join(directory, result.Filename)
	if err := os.WriteFile(result.OutputPath, plaintext, 0o644); err != nil {
		return nil, wrap(KindIO, err, "Write Error: Unable to write to file. Make sure you have WRITE permissions for this location")
	}
	result.Size = len(plaintext)
	result.Fingerprint = fingerprint.Sum(plaintext)
	logger.Info("payload recovered", "output", result.OutputPath, "payload_bytes", result.Size)
	return result, nil
}

// open restores the key from the frame with pin and decrypts. The key
// material is released on every path.
func open(frame *layout.Frame, pin uint64, ciphertext []byte) (plaintext []byte, err error) {
	material, err := custody.Deobfuscate(frame, pin)
	if err != nil {
		return nil, wrap(KindIO, err, "Key Restore Error")
	}
	defer func() {
		if closeErr := material.Close(); closeErr != nil && err == nil {
			err = wrap(KindIO, closeErr, "Key Release Error")
		}
	}()
	return material.Open(ciphertext)
}
