// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jpegimage

import "encoding/binary"

const (
	// MaxQuality is the highest estimated encoder quality accepted for a
	// cover. Images above it are near-lossless and inflate badly when a
	// platform recompresses them.
	MaxQuality = 97

	// UnknownQuality is reported when no luminance table can be found.
	UnknownQuality = 80
)

// luminanceSums[q] is the sum of the 64 entries of the IJG standard
// luminance table scaled for quality q. Index 0 is unused.
var luminanceSums = [101]int{
	0,
	16320, 16315, 15946, 15277, 14655, 14073, 13623, 13230, 12859, 12560,
	12240, 11861, 11456, 11081, 10714, 10360, 10027, 9679, 9368, 9056,
	8680, 8331, 7995, 7668, 7376, 7084, 6823, 6562, 6345, 6125,
	5939, 5756, 5571, 5421, 5240, 5086, 4976, 4829, 4719, 4616,
	4463, 4393, 4280, 4166, 4092, 3980, 3909, 3835, 3755, 3688,
	3621, 3541, 3467, 3396, 3323, 3247, 3170, 3096, 3021, 2952,
	2874, 2804, 2727, 2657, 2583, 2509, 2437, 2362, 2290, 2211,
	2136, 2068, 1996, 1915, 1858, 1773, 1692, 1620, 1552, 1477,
	1398, 1326, 1251, 1179, 1109, 1031, 961, 884, 814, 736,
	667, 592, 518, 441, 369, 292, 221, 151, 86, 64,
}

// EstimateQuality returns the IJG quality (1..100) whose standard
// luminance table is closest to table 0 of the image. Images with no
// readable luminance table report UnknownQuality.
func EstimateQuality(data []byte) int {
	sum, found := luminanceSum(data)
	if !found {
		return UnknownQuality
	}
	return qualityForSum(sum)
}

func qualityForSum(sum int) int {
	if sum <= luminanceSums[100] {
		return 100
	}
	if sum >= luminanceSums[1] {
		return 1
	}
	for quality := 1; quality <= 100; quality++ {
		if sum < luminanceSums[quality] {
			continue
		}
		if quality > 1 && luminanceSums[quality-1]-sum < sum-luminanceSums[quality] {
			return quality - 1
		}
		return quality
	}
	return 100
}

// luminanceSum finds quantization table 0 in any DQT segment before
// the scan and sums its entries.
func luminanceSum(data []byte) (int, bool) {
	sum, found := 0, false
	_ = walkHeader(data, func(s segment) bool {
		if s.marker != markerDQT {
			return true
		}
		body := s.body(data)
		for len(body) > 0 {
			precision, id := body[0]>>4, body[0]&0x0F
			size := 64
			if precision != 0 {
				size = 128
			}
			if len(body) < 1+size {
				return false
			}
			table := body[1 : 1+size]
			if id == 0 {
				for i := range 64 {
					if precision != 0 {
						sum += int(binary.BigEndian.Uint16(table[2*i:]))
					} else {
						sum += int(table[i])
					}
				}
				found = true
				return false
			}
			body = body[1+size:]
		}
		return true
	})
	return sum, found
}
