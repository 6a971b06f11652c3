// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds AEAD key and nonce material in memory that the
// Go runtime never sees.
//
// [Buffer] is an anonymous mmap region, mlocked against swap and marked
// MADV_DONTDUMP so it stays out of core dumps. Close zeroes, unlocks,
// and unmaps it; any later access panics. Heap slices that briefly held
// a secret (the random source buffer, a reconstructed custody window)
// are wiped with [Zero].
//
// Depends on golang.org/x/sys/unix.
package secret
