// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the jdvrif
// binary.
//
// Four package-level variables are injected at build time via
// -ldflags -X, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/jdvrif/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// They default to "unknown" and a -dev version when not injected,
// which occurs during development builds and test runs. [Info] is the
// --version line; [Full] adds the Go toolchain and platform.
package version
