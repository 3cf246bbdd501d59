// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ledcolor

import (
	"fmt"
	"image/color"

	"cogentcore.org/ledcolor/math32"
)

// Color is implemented by the color space types that can be used as
// an input to any conversion: [RGB], [XYZ], [CIELUV] and [HCL].
// RGBW is an output-only representation and does not implement it.
type Color interface {
	fmt.Stringer

	// XYZ returns the color in the CIE 1931 XYZ color space.
	XYZ() XYZ

	// CIELUV returns the color in the CIELUV color space.
	CIELUV() CIELUV
}

var (
	_ Color = RGB{}
	_ Color = XYZ{}
	_ Color = CIELUV{}
	_ Color = HCL{}

	_ color.Color = RGB{}
	_ color.Color = RGBW{}
)

// Interpolate interpolates between the two given colors in the CIELUV
// color space; see [CIELUV.Interpolate].
func Interpolate(start, end Color, t float32) CIELUV {
	return start.CIELUV().Interpolate(end.CIELUV(), t)
}

// uint16Comp converts a 0-1 channel value to the 0-0xffff range
// used by [color.Color].
func uint16Comp(c float32) uint32 {
	return uint32(math32.Clamp01(c)*65535.0 + 0.5)
}

// uint8Comp converts a 0-1 channel value to a byte.
func uint8Comp(c float32) uint8 {
	return uint8(math32.Clamp01(c)*255.0 + 0.5)
}
