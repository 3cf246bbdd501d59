// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import "cogentcore.org/ledcolor/enums"

// Spreads are the spread methods used when a gradient is evaluated
// at a position outside of its 0-1 range.
type Spreads int32

const (
	// Pad indicates to have the final color of the gradient fill
	// the positions beyond the end of the gradient.
	Pad Spreads = iota

	// Reflect indicates to have the gradient repeat in reverse order
	// (offset 1 to 0) beyond the end of the gradient.
	Reflect

	// Repeat indicates to have the gradient continue in its original
	// order (offset 0 to 1) by jumping back to the start.
	Repeat
)

// SpreadsN is the highest valid value for type Spreads, plus one.
const SpreadsN Spreads = 3

var _SpreadsValueMap = map[string]Spreads{`pad`: 0, `reflect`: 1, `repeat`: 2}

var _SpreadsMap = map[Spreads]string{0: `pad`, 1: `reflect`, 2: `repeat`}

// String returns the string representation of this Spreads value.
func (i Spreads) String() string { return enums.String(i, _SpreadsMap) }

// SetString sets the Spreads value from its case insensitive string
// representation, and returns an error if the string is invalid.
func (i *Spreads) SetString(s string) error {
	return enums.SetStringLower(i, s, _SpreadsValueMap, "Spreads")
}

// SpreadsValues returns all possible values for the type Spreads.
func SpreadsValues() []Spreads { return enums.Values(SpreadsN) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Spreads) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Spreads) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
