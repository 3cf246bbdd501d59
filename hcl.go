// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ledcolor

import (
	"fmt"

	"cogentcore.org/ledcolor/math32"
)

// HCL (also known as CIELCh(uv)) is the cylindrical representation
// of the CIELUV color space.
type HCL struct {

	// H is the hue, as an angle in degrees, 0-360.
	H float32

	// C is the chroma, in the same units as [CIELUV.Chroma].
	C float32

	// L is the CIELUV lightness.
	L float32
}

// NewHCL returns a new [HCL] color with the given components.
func NewHCL(h, c, l float32) HCL {
	return HCL{H: h, C: c, L: l}
}

// CIELUV converts the color to the CIELUV color space.
func (c HCL) CIELUV() CIELUV {
	hr := math32.DegToRad(c.H)
	return CIELUV{L: c.L, U: c.C * math32.Cos(hr), V: c.C * math32.Sin(hr)}
}

// XYZ converts the color to XYZ through the CIELUV color space.
func (c HCL) XYZ() XYZ {
	return c.CIELUV().XYZ()
}

// RGB converts the color to sRGB through the CIELUV and XYZ color spaces.
func (c HCL) RGB() RGB {
	return c.CIELUV().RGB()
}

// RGBW converts the color to RGBW through the CIELUV color space.
func (c HCL) RGBW() RGBW {
	return c.CIELUV().RGBW()
}

func (c HCL) String() string {
	return fmt.Sprintf("HCL H=%1.2f, C=%1.2f, L=%1.2f", c.H, c.C, c.L)
}
