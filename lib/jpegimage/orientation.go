// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jpegimage

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/draw"
)

// Orientation values from the EXIF Orientation tag (0x0112).
const (
	OrientationNormal     = 1
	OrientationFlipH      = 2
	OrientationRotate180  = 3
	OrientationFlipV      = 4
	OrientationTranspose  = 5
	OrientationRotate90   = 6
	OrientationTransverse = 7
	OrientationRotate270  = 8
)

const orientationTag = 0x0112

var exifHeader = []byte("Exif\x00\x00")

// Orientation returns the EXIF orientation of a JPEG image, or
// OrientationNormal when the image carries none or the tag is out of
// range.
func Orientation(data []byte) int {
	orientation := OrientationNormal
	_ = walkHeader(data, func(s segment) bool {
		if s.marker != markerAPP1 {
			return true
		}
		body := s.body(data)
		if !bytes.HasPrefix(body, exifHeader) {
			return true
		}
		if value, ok := tiffOrientation(body[len(exifHeader):]); ok {
			orientation = value
		}
		return false
	})
	return orientation
}

// tiffOrientation reads tag 0x0112 from IFD0 of a TIFF structure.
func tiffOrientation(tiff []byte) (int, bool) {
	if len(tiff) < 8 {
		return 0, false
	}
	var order binary.ByteOrder
	switch string(tiff[:2]) {
	case "II":
		order = binary.LittleEndian
	case "MM":
		order = binary.BigEndian
	default:
		return 0, false
	}
	if order.Uint16(tiff[2:]) != 0x2A {
		return 0, false
	}
	ifd := int(order.Uint32(tiff[4:]))
	if ifd < 8 || ifd+2 > len(tiff) {
		return 0, false
	}
	count := int(order.Uint16(tiff[ifd:]))
	for i := range count {
		entry := ifd + 2 + 12*i
		if entry+12 > len(tiff) {
			return 0, false
		}
		if order.Uint16(tiff[entry:]) != orientationTag {
			continue
		}
		value := int(order.Uint16(tiff[entry+8:]))
		if value < OrientationNormal || value > OrientationRotate270 {
			return 0, false
		}
		return value, true
	}
	return 0, false
}

// Orient returns img with the EXIF orientation applied, so that the
// result displays correctly with no orientation tag. OrientationNormal
// and unknown values return img unchanged.
func Orient(img image.Image, orientation int) image.Image {
	if orientation <= OrientationNormal || orientation > OrientationRotate270 {
		return img
	}
	source := toRGBA(img)
	bounds := source.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	transposed := orientation >= OrientationTranspose
	outWidth, outHeight := width, height
	if transposed {
		outWidth, outHeight = height, width
	}
	output := image.NewRGBA(image.Rect(0, 0, outWidth, outHeight))

	for y := range outHeight {
		for x := range outWidth {
			var sx, sy int
			switch orientation {
			case OrientationFlipH:
				sx, sy = width-1-x, y
			case OrientationRotate180:
				sx, sy = width-1-x, height-1-y
			case OrientationFlipV:
				sx, sy = x, height-1-y
			case OrientationTranspose:
				sx, sy = y, x
			case OrientationRotate90:
				sx, sy = y, height-1-x
			case OrientationTransverse:
				sx, sy = width-1-y, height-1-x
			case OrientationRotate270:
				sx, sy = width-1-y, x
			}
			sourceOffset := source.PixOffset(bounds.Min.X+sx, bounds.Min.Y+sy)
			outputOffset := output.PixOffset(x, y)
			copy(output.Pix[outputOffset:outputOffset+4], source.Pix[sourceOffset:sourceOffset+4])
		}
	}
	return output
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}
