// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ledcolor

import (
	"fmt"

	"cogentcore.org/ledcolor/cie"
	"cogentcore.org/ledcolor/math32"
)

// XYZ represents a color in the CIE 1931 XYZ color space, which defines
// the relationship between the visible spectrum and the visual sensation
// of specific colors by human color vision. It is linear light, on the
// 0-100 scale of the D65 reference white (see [cie.XRef]).
type XYZ struct {

	// X is a mix of all three RGB curves chosen to be nonnegative.
	X float32

	// Y is the luminance.
	Y float32

	// Z is quasi-equal to blue.
	Z float32
}

// NewXYZ returns a new [XYZ] color with the given components.
func NewXYZ(x, y, z float32) XYZ {
	return XYZ{X: x, Y: y, Z: z}
}

// XYZ returns the color itself, satisfying [Color].
func (c XYZ) XYZ() XYZ {
	return c
}

// CIELUV converts the color to the CIELUV color space.
// Black converts to the zero CIELUV value.
func (c XYZ) CIELUV() CIELUV {
	l, u, v := cie.XYZToLUV(c.X, c.Y, c.Z)
	return CIELUV{L: l, U: u, V: v}
}

// HCL converts the color to HCL through the CIELUV color space.
func (c XYZ) HCL() HCL {
	return c.CIELUV().HCL()
}

// RGB converts the color to sRGB, clamping each channel to 0-1
// after gamma encoding.
func (c XYZ) RGB() RGB {
	r, g, b := cie.XYZ100ToSRGB(c.X, c.Y, c.Z)
	return RGB{R: math32.Clamp01(r), G: math32.Clamp01(g), B: math32.Clamp01(b)}
}

// RGBW converts the color to RGBW through the CIELUV color space,
// deriving the white component from its saturation; see [CIELUV.RGBW].
func (c XYZ) RGBW() RGBW {
	return c.CIELUV().RGBW()
}

func (c XYZ) String() string {
	return fmt.Sprintf("CIEXYZ X=%1.2f, Y=%1.2f, Z=%1.2f", c.X, c.Y, c.Z)
}
