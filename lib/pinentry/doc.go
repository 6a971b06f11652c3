// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package pinentry reads a recovery PIN from the user.
//
// On a terminal, [Prompt] runs a small bubbletea program that echoes
// each digit as '*' and accepts up to [MaxDigits] digits. Other input
// (pipes, files, tests) is read as a single line. Either way the digits
// are converted by [Parse], which maps empty or out-of-range input to
// zero; zero is never a valid PIN in practice, so it simply fails
// authentication.
package pinentry
