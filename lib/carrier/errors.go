// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package carrier

import (
	"errors"
	"fmt"
)

// Kind classifies a conceal or recover failure.
type Kind uint8

const (
	// KindUnknown is reported by KindOf for errors not raised by this
	// package.
	KindUnknown Kind = iota

	// KindValidation covers bad arguments and input files: filename
	// characters, extensions, sizes, and cover dimensions or quality.
	KindValidation

	// KindFormat covers structurally invalid images: missing markers,
	// missing DQT, missing signature, or damaged segments.
	KindFormat

	// KindCapacity means the payload does not fit the selected mode.
	KindCapacity

	// KindCrypto is an authentication failure on recovery. Its message
	// never says whether the PIN or the file was at fault.
	KindCrypto

	// KindIO covers read and write failures.
	KindIO
)

// String returns the kind name.
func (kind Kind) String() string {
	switch kind {
	case KindValidation:
		return "validation"
	case KindFormat:
		return "format"
	case KindCapacity:
		return "capacity"
	case KindCrypto:
		return "crypto"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// CryptoMessage is the only message a recovery authentication failure
// ever carries.
const CryptoMessage = "Invalid recovery PIN or file is corrupt"

// Error is returned by Conceal and Recover. Message is written for the
// person running the tool; Err, when set, is the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (err *Error) Error() string {
	if err.Err == nil || err.Kind == KindCrypto {
		return err.Message
	}
	return fmt.Sprintf("%s: %v", err.Message, err.Err)
}

func (err *Error) Unwrap() error {
	return err.Err
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var carrierError *Error
	if errors.As(err, &carrierError) {
		return carrierError.Kind
	}
	return KindUnknown
}

func validationError(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func wrap(kind Kind, err error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}
