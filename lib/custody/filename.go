// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package custody

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/bureau-foundation/jdvrif/lib/layout"
)

// EncryptFilename stores name in the frame: its length, a random XOR
// key of the same length, and name XORed against that key. Key bytes
// past the name length keep their template values.
func EncryptFilename(frame *layout.Frame, name string) error {
	return encryptFilename(frame, name, rand.Reader)
}

func encryptFilename(frame *layout.Frame, name string, random io.Reader) error {
	if err := frame.SetFilenameLength(len(name)); err != nil {
		return err
	}
	xorKey := frame.FilenameKeyField()[:len(name)]
	if _, err := io.ReadFull(random, xorKey); err != nil {
		return fmt.Errorf("generating filename key: %w", err)
	}
	field := frame.FilenameField()
	for index := range len(name) {
		field[index] = name[index] ^ xorKey[index]
	}
	return nil
}

// DecryptFilename returns the filename stored in the frame. The result
// is not validated; callers decide whether it is safe to write.
func DecryptFilename(frame *layout.Frame) (string, error) {
	length := frame.FilenameLength()
	if length < 1 || length > layout.FilenameMaxLength {
		return "", fmt.Errorf("stored filename length %d outside 1..%d", length, layout.FilenameMaxLength)
	}
	field := frame.FilenameField()
	xorKey := frame.FilenameKeyField()
	name := make([]byte, length)
	for index := range name {
		name[index] = field[index] ^ xorKey[index]
	}
	return string(name), nil
}
