// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "cogentcore.org/ledcolor/enums"

// Formats are the output formats of the ledgrad tool.
type Formats int32

const (
	// Text is a table with one row per gradient step.
	Text Formats = iota

	// JSON is an array with one object per gradient step.
	JSON

	// PNG is a preview image of the gradient.
	PNG
)

// FormatsN is the highest valid value for type Formats, plus one.
const FormatsN Formats = 3

var _FormatsValueMap = map[string]Formats{`text`: 0, `json`: 1, `png`: 2}

var _FormatsMap = map[Formats]string{0: `text`, 1: `json`, 2: `png`}

// String returns the string representation of this Formats value.
func (i Formats) String() string { return enums.String(i, _FormatsMap) }

// SetString sets the Formats value from its case insensitive string
// representation, and returns an error if the string is invalid.
func (i *Formats) SetString(s string) error {
	return enums.SetStringLower(i, s, _FormatsValueMap, "Formats")
}

// FormatsValues returns all possible values for the type Formats.
func FormatsValues() []Formats { return enums.Values(FormatsN) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Formats) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Formats) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
