// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ledcolor

import (
	"testing"

	"cogentcore.org/ledcolor/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestFromHex(t *testing.T) {
	c, err := FromHex("#ff0000")
	assert.NoError(t, err)
	assert.Equal(t, Red, c)

	c, err = FromHex("0f0")
	assert.NoError(t, err)
	assert.Equal(t, Green, c)

	c, err = FromHex("#808080")
	assert.NoError(t, err)
	tolassert.Equal(t, 128.0/255, c.G)

	_, err = FromHex("#12345")
	assert.Error(t, err)
	_, err = FromHex("#zzzzzz")
	assert.Error(t, err)
}

func TestFromString(t *testing.T) {
	tests := []struct {
		str  string
		want Color
	}{
		{"#0000ff", Blue},
		{"  RED ", Red},
		{"green", Green},
		{"magenta", Magenta},
		{"rgb(255, 255, 0)", Yellow},
		{"srgb(0.2 0.4 0.6)", RGB{0.2, 0.4, 0.6}},
		{"xyz(41.2, 21.3, 1.9)", XYZ{41.2, 21.3, 1.9}},
		{"luv(50, 10, -20)", CIELUV{50, 10, -20}},
		{"hcl(120, 40, 60)", HCL{120, 40, 60}},
	}
	for _, test := range tests {
		c, err := FromString(test.str)
		if assert.NoError(t, err, test.str) {
			assert.Equal(t, test.want, c, test.str)
		}
	}

	c, err := FromString("orange")
	assert.NoError(t, err)
	rgb, ok := c.(RGB)
	assert.True(t, ok)
	tolassert.Equal(t, 1, rgb.R)
	tolassert.Equal(t, 165.0/255, rgb.G)
	tolassert.Equal(t, 0, rgb.B)
}

func TestFromStringErrors(t *testing.T) {
	for _, str := range []string{
		"",
		"notacolor",
		"rgb(1, 2)",
		"rgb(1, 2, 3, 4)",
		"rgb(1, 2, 3",
		"cmyk(1, 2, 3)",
		"luv(a, b, c)",
	} {
		_, err := FromString(str)
		assert.Error(t, err, str)
	}
}

func TestMustLogFromString(t *testing.T) {
	assert.Equal(t, Cyan, MustFromString("cyan"))
	assert.Panics(t, func() { MustFromString("nope") })
	assert.Equal(t, Black, LogFromString("nope"))
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#ff0000", AsHex(Red))
	assert.Equal(t, "#ffffff", AsHex(White))
	assert.Equal(t, "#ff0000", AsHex(Red.XYZ()))
	assert.Equal(t, "#000000", AsHex(XYZ{}))
}
