// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ledcolor

import (
	"cogentcore.org/ledcolor/cie"
	"cogentcore.org/ledcolor/enums"
)

// WhitePolicy is the algorithm used to derive the white
// component of an [RGBW] color.
type WhitePolicy int32

const (
	// Saturation scales the RGB components by the CIELUV saturation
	// and assigns the remaining luminance to the white component.
	// See [CIELUV.RGBW].
	Saturation WhitePolicy = iota

	// Luminance assigns a fixed fraction of the luminance to the white
	// component and subtracts it from each RGB component, without any
	// regard to saturation. It is kept for LED strips that were
	// calibrated against it; prefer [Saturation].
	Luminance
)

// WhitePolicyN is the highest valid value for type WhitePolicy, plus one.
const WhitePolicyN WhitePolicy = 2

var _WhitePolicyValueMap = map[string]WhitePolicy{`saturation`: 0, `luminance`: 1}

var _WhitePolicyMap = map[WhitePolicy]string{0: `saturation`, 1: `luminance`}

// String returns the string representation of this WhitePolicy value.
func (i WhitePolicy) String() string { return enums.String(i, _WhitePolicyMap) }

// SetString sets the WhitePolicy value from its case insensitive string
// representation, and returns an error if the string is invalid.
func (i *WhitePolicy) SetString(s string) error {
	return enums.SetStringLower(i, s, _WhitePolicyValueMap, "WhitePolicy")
}

// WhitePolicyValues returns all possible values for the type WhitePolicy.
func WhitePolicyValues() []WhitePolicy { return enums.Values(WhitePolicyN) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i WhitePolicy) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *WhitePolicy) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}

// WhiteSplit derives [RGBW] colors from any [Color] using
// one of the [WhitePolicy] algorithms.
type WhiteSplit struct {

	// Policy is the algorithm used to derive the white component.
	Policy WhitePolicy

	// WhiteFactor is the fraction of the relative luminance that
	// is assigned to the white component by the [Luminance] policy.
	WhiteFactor float32

	// WhiteScaling is how much of the white component is subtracted
	// from each linear RGB component by the [Luminance] policy.
	WhiteScaling float32
}

// DefaultWhiteSplit uses the [Saturation] policy, with the
// [Luminance] parameters set to their standard values.
var DefaultWhiteSplit = WhiteSplit{Policy: Saturation, WhiteFactor: 0.5, WhiteScaling: 1}

// RGBW converts the given color to RGBW using the policy.
func (ws WhiteSplit) RGBW(c Color) RGBW {
	switch ws.Policy {
	case Luminance:
		return ws.luminance(c.XYZ())
	default:
		return c.CIELUV().RGBW()
	}
}

// luminance implements the [Luminance] policy.
func (ws WhiteSplit) luminance(xyz XYZ) RGBW {
	rl, gl, bl := cie.XYZ100ToSRGBLin(xyz.X, xyz.Y, xyz.Z)
	w := ws.WhiteFactor * xyz.Y / cie.YRef
	sub := ws.WhiteScaling * w
	return rgbwFromLinear(rl-sub, gl-sub, bl-sub, w)
}
