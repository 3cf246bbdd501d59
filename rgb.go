// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ledcolor

import (
	"fmt"
	"image/color"

	"cogentcore.org/ledcolor/cie"
	"cogentcore.org/ledcolor/math32"
)

// RGB represents a color in the gamma encoded sRGB color space,
// with values in the range 0-1.
type RGB struct {

	// R is the amount of red.
	R float32

	// G is the amount of green.
	G float32

	// B is the amount of blue.
	B float32
}

// NewRGB returns a new [RGB] color with the given components.
// Values outside of 0-1 are accepted as is.
func NewRGB(r, g, b float32) RGB {
	return RGB{R: r, G: g, B: b}
}

// XYZ converts the color to the XYZ color space, on the 0-100 scale.
func (c RGB) XYZ() XYZ {
	x, y, z := cie.SRGBToXYZ100(c.R, c.G, c.B)
	return XYZ{X: x, Y: y, Z: z}
}

// CIELUV converts the color to CIELUV through the XYZ color space.
func (c RGB) CIELUV() CIELUV {
	return c.XYZ().CIELUV()
}

// HCL converts the color to HCL through the CIELUV color space.
func (c RGB) HCL() HCL {
	return c.CIELUV().HCL()
}

// RGBW returns the color as [RGBW] without any white component:
// plain RGB colors pass through unchanged, clamped to 0-1.
func (c RGB) RGBW() RGBW {
	cl := c.Clamped()
	return RGBW{R: cl.R, G: cl.G, B: cl.B}
}

// Clamped returns the color with each channel clamped to 0-1.
func (c RGB) Clamped() RGB {
	return RGB{R: math32.Clamp01(c.R), G: math32.Clamp01(c.G), B: math32.Clamp01(c.B)}
}

// RGBA implements the [color.Color] interface, with an alpha of 1.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return uint16Comp(c.R), uint16Comp(c.G), uint16Comp(c.B), 0xffff
}

// AsRGBA returns a standard [color.RGBA] type.
func (c RGB) AsRGBA() color.RGBA {
	return color.RGBA{uint8Comp(c.R), uint8Comp(c.G), uint8Comp(c.B), 255}
}

func (c RGB) String() string {
	return fmt.Sprintf("RGB R=%1.2f, G=%1.2f, B=%1.2f", c.R, c.G, c.B)
}

// RGBModel is the standard [color.Model] that converts colors to [RGB].
var RGBModel = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if r, ok := c.(RGB); ok {
		return r
	}
	return FromColor(c)
}

// FromColor constructs a new [RGB] color from a standard [color.Color],
// removing the alpha premultiplication. A fully transparent color is black.
func FromColor(c color.Color) RGB {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGB{}
	}
	fa := float32(a)
	return RGB{R: float32(r) / fa, G: float32(g) / fa, B: float32(b) / fa}
}
