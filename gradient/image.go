// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"image"
	"image/color"

	"cogentcore.org/ledcolor"
)

// Preview is an [image.Image] showing a gradient from left to right,
// with each RGBW color rendered through [ledcolor.RGBW.Preview].
type Preview struct {
	Gradient *Gradient

	// Width and Height are the size of the image in pixels.
	Width, Height int
}

// Image returns a preview image of the given gradient with the given size.
func Image(g *Gradient, width, height int) *Preview {
	return &Preview{Gradient: g, Width: width, Height: height}
}

// ColorModel returns the color model of the image, which is [ledcolor.RGBModel].
func (p *Preview) ColorModel() color.Model {
	return ledcolor.RGBModel
}

// Bounds returns the bounds of the image.
func (p *Preview) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Width, p.Height)
}

// Pos returns the gradient position of the given pixel column.
func (p *Preview) Pos(x int) float32 {
	if p.Width <= 1 {
		return 0
	}
	return float32(x) / float32(p.Width-1)
}

// At returns the preview color at the given pixel; it is
// the same for every row.
func (p *Preview) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Bounds())) {
		return ledcolor.RGB{}
	}
	return p.Gradient.RGBW(p.Pos(x)).Preview()
}
