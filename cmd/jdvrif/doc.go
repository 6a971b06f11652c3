// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// jdvrif conceals a file inside a JPG image and recovers it again.
//
// Subcommands:
//
//	jdvrif conceal [-b|-r] <cover_image> <secret_file>
//	jdvrif recover <carrier_image>
//	jdvrif info
//	jdvrif version
//
// Every command exits 0 on success and 1 on any error, which is
// printed to stderr as "error: <message>".
package main
