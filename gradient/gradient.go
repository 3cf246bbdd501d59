// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient provides multi-stop color gradients that are
// interpolated in the CIELUV color space and rendered as RGBW colors.
package gradient

import (
	"slices"

	"cogentcore.org/ledcolor"
	"cogentcore.org/ledcolor/math32"
)

// Gradient is a perceptual color gradient made of any number of stops.
// Colors between two stops are interpolated in the CIELUV color space.
type Gradient struct {

	// the stops for the gradient; use AddStop to add stops
	Stops []Stop

	// the spread method used for positions outside of 0-1
	Spread Spreads

	// White is the white split used to render the gradient as RGBW.
	White ledcolor.WhiteSplit
}

// Stop represents a single stop in a gradient.
type Stop struct {

	// the color of the stop, in any color space
	Color ledcolor.Color

	// the position of the stop, normally between 0 and 1
	Pos float32
}

// New returns a new gradient going from the given start color
// at position 0 to the given end color at position 1, with the
// default white split.
func New(start, end ledcolor.Color) *Gradient {
	g := &Gradient{White: ledcolor.DefaultWhiteSplit}
	return g.AddStop(start, 0).AddStop(end, 1)
}

// AddStop adds a new stop with the given color and position
// to the gradient. It returns the gradient for chaining.
func (g *Gradient) AddStop(c ledcolor.Color, pos float32) *Gradient {
	g.Stops = append(g.Stops, Stop{Color: c, Pos: pos})
	return g
}

// sortedStops returns the stops ordered by position. Stops at the
// same position keep the order in which they were added.
func (g *Gradient) sortedStops() []Stop {
	if slices.IsSortedFunc(g.Stops, compareStops) {
		return g.Stops
	}
	stops := slices.Clone(g.Stops)
	slices.SortStableFunc(stops, compareStops)
	return stops
}

func compareStops(a, b Stop) int {
	switch {
	case a.Pos < b.Pos:
		return -1
	case a.Pos > b.Pos:
		return 1
	}
	return 0
}

// spreadPos maps the given position into 0-1 using the spread method.
func (g *Gradient) spreadPos(pos float32) float32 {
	if pos >= 0 && pos <= 1 {
		return pos
	}
	switch g.Spread {
	case Repeat:
		mod := math32.Mod(pos, 1)
		if mod < 0 {
			mod++
		}
		return mod
	case Reflect:
		mod := math32.Mod(pos, 2)
		if mod < 0 {
			mod += 2
		}
		if mod > 1 {
			mod = 2 - mod
		}
		return mod
	default: // Pad
		return math32.Clamp01(pos)
	}
}

// At returns the color at the given position along the gradient,
// using its spread method for positions outside of 0-1. A gradient
// without stops is black, and a gradient with a single stop has
// that color everywhere.
func (g *Gradient) At(pos float32) ledcolor.CIELUV {
	stops := g.sortedStops()
	d := len(stops)
	switch d {
	case 0:
		return ledcolor.CIELUV{}
	case 1:
		return stops[0].Color.CIELUV()
	}

	pos = g.spreadPos(pos)
	place := 0 // first stop at or beyond pos
	for place != d && pos > stops[place].Pos {
		place++
	}
	switch place {
	case 0:
		return stops[0].Color.CIELUV()
	case d:
		return stops[d-1].Color.CIELUV()
	}
	return BlendStops(pos, stops[place-1], stops[place])
}

// BlendStops interpolates between the given two stops at the given
// position, which is expected to lie between their positions.
func BlendStops(pos float32, s1, s2 Stop) ledcolor.CIELUV {
	if s2.Pos == s1.Pos {
		return s2.Color.CIELUV()
	}
	t := (pos - s1.Pos) / (s2.Pos - s1.Pos)
	return ledcolor.Interpolate(s1.Color, s2.Color, t)
}

// RGBW returns the RGBW color at the given position along the
// gradient, using its white split.
func (g *Gradient) RGBW(pos float32) ledcolor.RGBW {
	return g.White.RGBW(g.At(pos))
}

// Steps returns the gradient sampled at steps+1 evenly spaced
// positions t = i/steps for i in 0..steps, so that both the start
// and the end of the gradient are included. A steps value of zero
// or less returns only the start of the gradient.
func (g *Gradient) Steps(steps int) []ledcolor.CIELUV {
	if steps <= 0 {
		return []ledcolor.CIELUV{g.At(0)}
	}
	res := make([]ledcolor.CIELUV, steps+1)
	for i := range res {
		res[i] = g.At(float32(i) / float32(steps))
	}
	return res
}

// Ramp returns the RGBW colors of [Gradient.Steps] for the given
// number of steps, using the white split of the gradient.
func (g *Gradient) Ramp(steps int) []ledcolor.RGBW {
	samples := g.Steps(steps)
	res := make([]ledcolor.RGBW, len(samples))
	for i, c := range samples {
		res[i] = g.White.RGBW(c)
	}
	Logger().Debug("gradient ramp", "steps", steps, "stops", len(g.Stops), "policy", g.White.Policy)
	return res
}
