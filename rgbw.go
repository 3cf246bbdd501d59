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

// RGBW represents a color using gamma encoded RGB components and
// a white component, as driven on RGBW LEDs. Values are 0-1.
type RGBW struct {

	// R is the amount of red.
	R float32

	// G is the amount of green.
	G float32

	// B is the amount of blue.
	B float32

	// W is the amount of white.
	W float32
}

// NewRGBW returns a new [RGBW] color with the given components.
func NewRGBW(r, g, b, w float32) RGBW {
	return RGBW{R: r, G: g, B: b, W: w}
}

// rgbwFromLinear gamma encodes the given linear components
// and clamps each of them to 0-1.
func rgbwFromLinear(rl, gl, bl, wl float32) RGBW {
	return RGBW{
		R: math32.Clamp01(cie.SRGBFromLinearComp(rl)),
		G: math32.Clamp01(cie.SRGBFromLinearComp(gl)),
		B: math32.Clamp01(cie.SRGBFromLinearComp(bl)),
		W: math32.Clamp01(cie.SRGBFromLinearComp(wl)),
	}
}

// Preview returns an [RGB] approximation of how the color looks,
// adding the white emitter equally to each RGB channel in linear light.
func (c RGBW) Preview() RGB {
	wl := cie.SRGBToLinearComp(c.W)
	mix := func(v float32) float32 {
		return math32.Clamp01(cie.SRGBFromLinearComp(cie.SRGBToLinearComp(v) + wl))
	}
	return RGB{R: mix(c.R), G: mix(c.G), B: mix(c.B)}
}

// RGBA implements the [color.Color] interface using the [RGBW.Preview].
func (c RGBW) RGBA() (r, g, b, a uint32) {
	return c.Preview().RGBA()
}

// AsRGBA returns the [RGBW.Preview] as a standard [color.RGBA] type.
func (c RGBW) AsRGBA() color.RGBA {
	return c.Preview().AsRGBA()
}

// Bytes returns the four channels scaled to 0-255, as sent to
// 8 bit LED drivers.
func (c RGBW) Bytes() [4]uint8 {
	return [4]uint8{uint8Comp(c.R), uint8Comp(c.G), uint8Comp(c.B), uint8Comp(c.W)}
}

func (c RGBW) String() string {
	return fmt.Sprintf("RGBW R=%1.2f, G=%1.2f, B=%1.2f, W=%1.2f", c.R, c.G, c.B, c.W)
}
