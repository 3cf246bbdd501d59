// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ledcolor

import (
	"fmt"

	"cogentcore.org/ledcolor/cie"
	"cogentcore.org/ledcolor/math32"
)

// CIELUV represents a color in the CIE 1976 L*, u*, v* color space,
// in which euclidean distance approximates perceived color difference
// and linear interpolation approximates perceptually linear gradients.
type CIELUV struct {

	// L is the lightness, nominally 0-100.
	L float32

	// U is the green/red axis, approximately -134 to 224.
	U float32

	// V is the blue/yellow axis, approximately -140 to 122.
	V float32
}

// NewCIELUV returns a new [CIELUV] color with the given components.
func NewCIELUV(l, u, v float32) CIELUV {
	return CIELUV{L: l, U: u, V: v}
}

// CIELUV returns the color itself, satisfying [Color].
func (c CIELUV) CIELUV() CIELUV {
	return c
}

// XYZ converts the color to the XYZ color space.
// Zero lightness converts to black.
func (c CIELUV) XYZ() XYZ {
	x, y, z := cie.LUVToXYZ(c.L, c.U, c.V)
	return XYZ{X: x, Y: y, Z: z}
}

// RGB converts the color to sRGB through the XYZ color space.
func (c CIELUV) RGB() RGB {
	return c.XYZ().RGB()
}

// HCL converts the color to its cylindrical HCL representation.
func (c CIELUV) HCL() HCL {
	return HCL{H: c.Hue(), C: c.Chroma(), L: c.L}
}

// RGBW converts the color to RGBW, deriving the white component
// from the saturation of the color:
//
//   - the linear RGB channels are obtained through the XYZ color space
//     and multiplied by the saturation,
//   - the white channel is the relative luminance Y/YRef multiplied
//     by the whiteness, 1 - saturation,
//
// and all four channels are gamma encoded and clamped to 0-1.
//
// Fully saturated colors (saturation >= 1) therefore have no white
// component, while greys are rendered by the white channel alone.
// This produces deep saturated colors on SK6812 style LEDs while
// avoiding whites that are a mixture of the RGB emitters.
func (c CIELUV) RGBW() RGBW {
	sat := c.Saturation()
	whiteness := 1 - sat

	xyz := c.XYZ()
	rl, gl, bl := cie.XYZ100ToSRGBLin(xyz.X, xyz.Y, xyz.Z)
	w := xyz.Y / cie.YRef * whiteness
	return rgbwFromLinear(rl*sat, gl*sat, bl*sat, w)
}

// Chroma returns the colorfulness of the color, the magnitude of its
// (u, v) vector.
func (c CIELUV) Chroma() float32 {
	return math32.Sqrt(c.U*c.U + c.V*c.V)
}

// Saturation returns the chroma relative to the lightness, or 0
// if the lightness is zero or negative.
func (c CIELUV) Saturation() float32 {
	if c.L <= 0 {
		return 0
	}
	return c.Chroma() / c.L
}

// Hue returns the hue angle of the color in degrees, in [0, 360).
// Colors without chroma have a hue of 0.
func (c CIELUV) Hue() float32 {
	h := math32.RadToDeg(math32.Atan2(c.V, c.U))
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h
}

// Interpolate interpolates between this color (at t = 0) and the given
// end color (at t = 1), using linear interpolation of each component.
// t is not clamped, so values outside of 0-1 extrapolate.
// A gradient of n steps is obtained by evaluating t = i/n for i in 0..n.
func (c CIELUV) Interpolate(end CIELUV, t float32) CIELUV {
	return CIELUV{
		L: math32.Lerp(c.L, end.L, t),
		U: math32.Lerp(c.U, end.U, t),
		V: math32.Lerp(c.V, end.V, t),
	}
}

func (c CIELUV) String() string {
	return fmt.Sprintf("CIELUV L*=%1.2f, u*=%1.2f, v*=%1.2f", c.L, c.U, c.V)
}
