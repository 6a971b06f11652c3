// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package pinentry

import "strconv"

// MaxDigits is the length of the largest uint64 in decimal.
const MaxDigits = 20

// Parse converts a string of decimal digits to a PIN. Empty input,
// non-digits, and values above the uint64 range yield 0.
func Parse(digits string) uint64 {
	if digits == "" || len(digits) > MaxDigits {
		return 0
	}
	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// keepDigits returns the ASCII digits of input in order, at most
// MaxDigits of them.
func keepDigits(input string) string {
	digits := make([]byte, 0, MaxDigits)
	for index := 0; index < len(input) && len(digits) < MaxDigits; index++ {
		if c := input[index]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	return string(digits)
}
