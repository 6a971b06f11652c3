// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package carrier

import (
	"errors"
	"fmt"
	"os"

	"github.com/bureau-foundation/jdvrif/lib/layout"
)

// MaxFailedAttempts is the number of consecutive failed recoveries
// after which the carrier file is destroyed.
const MaxFailedAttempts = 3

// Lockout is the persisted PIN attempt counter of one carrier file.
//
// The counter holds layout.AttemptsReset while no failure has been
// recorded since the last success, and otherwise the number of
// recorded failures minus one. Each update opens the file, performs a
// single positioned write or truncation, syncs, and closes the handle
// before returning.
type Lockout struct {
	path     string
	offset   int64
	attempts byte
}

// NewLockout returns the lockout state of the carrier at path whose
// counter byte sits at offset and currently holds attempts.
func NewLockout(path string, offset int64, attempts byte) *Lockout {
	return &Lockout{path: path, offset: offset, attempts: attempts}
}

// Attempts returns the counter value as last read or written.
func (lockout *Lockout) Attempts() byte {
	return lockout.attempts
}

// Failures returns the number of failures recorded since the last
// success.
func (lockout *Lockout) Failures() int {
	if lockout.attempts == layout.AttemptsReset {
		return 0
	}
	return int(lockout.attempts) + 1
}

// RecordFailure counts one failed recovery. When the count reaches
// MaxFailedAttempts the carrier file is truncated to zero bytes and
// destroyed is true; otherwise the new counter is written back.
func (lockout *Lockout) RecordFailure() (destroyed bool, err error) {
	failures := lockout.Failures() + 1
	if failures >= MaxFailedAttempts {
		err = lockout.update(func(file *os.File) error {
			return file.Truncate(0)
		})
		if err != nil {
			return false, fmt.Errorf("destroying carrier: %w", err)
		}
		return true, nil
	}

	next := byte(failures - 1)
	if err := lockout.write(next); err != nil {
		return false, err
	}
	return false, nil
}

// Reset writes layout.AttemptsReset unless the counter already holds
// it.
func (lockout *Lockout) Reset() error {
	if lockout.attempts == layout.AttemptsReset {
		return nil
	}
	return lockout.write(layout.AttemptsReset)
}

func (lockout *Lockout) write(value byte) error {
	err := lockout.update(func(file *os.File) error {
		_, err := file.WriteAt([]byte{value}, lockout.offset)
		return err
	})
	if err != nil {
		return fmt.Errorf("writing attempt counter: %w", err)
	}
	lockout.attempts = value
	return nil
}

// update runs change against the carrier opened read-write and
// guarantees the handle is synced and closed on every path.
func (lockout *Lockout) update(change func(*os.File) error) (err error) {
	file, err := os.OpenFile(lockout.path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	if err := change(file); err != nil {
		return err
	}
	return file.Sync()
}
