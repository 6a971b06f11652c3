// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package custody

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bureau-foundation/jdvrif/lib/layout"
	"github.com/bureau-foundation/jdvrif/lib/secret"
)

// Overhead is the number of bytes secretbox adds to a plaintext.
const Overhead = secretbox.Overhead

// ErrAuthentication is returned by [Material.Open] when the ciphertext
// does not authenticate under the key and nonce. A wrong PIN and a
// damaged carrier are deliberately indistinguishable.
var ErrAuthentication = errors.New("custody: message authentication failed")

// Material is an AEAD key and nonce held in locked memory. Close must
// be called on every path once the material is no longer needed.
type Material struct {
	key   *secret.Buffer
	nonce *secret.Buffer
}

// Generate draws a random key and nonce, writes them into the frame's
// key and nonce fields, and returns them in locked memory.
func Generate(frame *layout.Frame) (*Material, error) {
	return generate(frame, rand.Reader)
}

func generate(frame *layout.Frame, random io.Reader) (*Material, error) {
	key, err := secret.New(layout.KeyLength)
	if err != nil {
		return nil, fmt.Errorf("allocating key buffer: %w", err)
	}
	nonce, err := secret.New(layout.NonceLength)
	if err != nil {
		key.Close()
		return nil, fmt.Errorf("allocating nonce buffer: %w", err)
	}
	material := &Material{key: key, nonce: nonce}

	if _, err := io.ReadFull(random, key.Bytes()); err != nil {
		material.Close()
		return nil, fmt.Errorf("generating key: %w", err)
	}
	if _, err := io.ReadFull(random, nonce.Bytes()); err != nil {
		material.Close()
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	copy(frame.KeyField(), key.Bytes())
	copy(frame.NonceField(), nonce.Bytes())
	return material, nil
}

// Obfuscate turns the plaintext key and nonce in the frame into their
// stored form and returns the recovery PIN. After it returns, the PIN
// exists only in the return value.
func Obfuscate(frame *layout.Frame) (uint64, error) {
	return obfuscate(frame, rand.Reader)
}

func obfuscate(frame *layout.Frame, random io.Reader) (uint64, error) {
	window := frame.CustodyWindow()
	pin := binary.BigEndian.Uint64(window[:layout.PINLength])

	applyMask(window)

	if _, err := io.ReadFull(random, window[:layout.PINLength]); err != nil {
		// The mask bytes are still in place; wipe the whole window so
		// the frame never leaves here holding a usable key.
		secret.Zero(window)
		return 0, fmt.Errorf("overwriting PIN bytes: %w", err)
	}
	return pin, nil
}

// Deobfuscate restores the key and nonce from the frame given a PIN and
// moves them into locked memory. The frame's custody window is zeroed
// afterwards, so the carrier bytes in memory never retain a plaintext
// key. A wrong PIN is not detected here; it surfaces as
// [ErrAuthentication] from [Material.Open].
func Deobfuscate(frame *layout.Frame, pin uint64) (*Material, error) {
	window := frame.CustodyWindow()
	defer secret.Zero(window)

	binary.BigEndian.PutUint64(window[:layout.PINLength], pin)
	applyMask(window)

	key, err := secret.NewFromBytes(window[:layout.KeyLength])
	if err != nil {
		return nil, fmt.Errorf("allocating key buffer: %w", err)
	}
	nonce, err := secret.NewFromBytes(window[layout.KeyLength:])
	if err != nil {
		key.Close()
		return nil, fmt.Errorf("allocating nonce buffer: %w", err)
	}
	return &Material{key: key, nonce: nonce}, nil
}

// applyMask XORs window[8:] cyclically against window[:8]. The
// operation is its own inverse.
func applyMask(window []byte) {
	mask := window[:layout.PINLength]
	for index, position := 0, layout.PINLength; position < len(window); index, position = index+1, position+1 {
		window[position] ^= mask[index%layout.PINLength]
	}
}

// Seal encrypts plaintext and returns tag ++ ciphertext.
func (material *Material) Seal(plaintext []byte) []byte {
	output := make([]byte, 0, len(plaintext)+Overhead)
	return secretbox.Seal(output, plaintext, material.nonceArray(), material.keyArray())
}

// Open authenticates and decrypts a sealed payload.
func (material *Material) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < Overhead {
		return nil, ErrAuthentication
	}
	plaintext, ok := secretbox.Open(make([]byte, 0, len(sealed)-Overhead), sealed, material.nonceArray(), material.keyArray())
	if !ok {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}

// Close zeroes and releases the key and nonce. Close is idempotent.
func (material *Material) Close() error {
	return errors.Join(material.key.Close(), material.nonce.Close())
}

func (material *Material) keyArray() *[layout.KeyLength]byte {
	return (*[layout.KeyLength]byte)(material.key.Bytes())
}

func (material *Material) nonceArray() *[layout.NonceLength]byte {
	return (*[layout.NonceLength]byte)(material.nonce.Bytes())
}
