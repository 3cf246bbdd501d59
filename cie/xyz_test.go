// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/ledcolor/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestXYZ(t *testing.T) {
	x, y, z := SRGBLinToXYZ(0.5, 0.6, 0.7)
	tolassert.Equal(t, float32(0.5470991), x)
	tolassert.Equal(t, float32(0.58596003), y)
	tolassert.Equal(t, float32(0.74640036), z)

	rl, gl, bl := XYZToSRGBLin(x, y, z)
	tolassert.Equal(t, float32(0.50002426), rl)
	tolassert.Equal(t, float32(0.6000643), gl)
	tolassert.Equal(t, float32(0.69994748), bl)
}

func TestXYZ100(t *testing.T) {
	x, y, z := SRGBToXYZ100(0.3, 0.2, 0.6)
	tolassert.EqualTol(t, 9.952313, x, 0.001)
	tolassert.EqualTol(t, 6.2242002, y, 0.001)
	tolassert.EqualTol(t, 30.807812, z, 0.001)

	r, g, b := XYZ100ToSRGB(x, y, z)
	tolassert.EqualTol(t, 0.3, r, 0.001)
	tolassert.EqualTol(t, 0.2, g, 0.001)
	tolassert.EqualTol(t, 0.6, b, 0.001)

	// white maps to (very nearly) the reference white
	x, y, z = SRGBToXYZ100(1, 1, 1)
	tolassert.EqualTol(t, XRef, x, 0.01)
	tolassert.EqualTol(t, YRef, y, 0.01)
	tolassert.EqualTol(t, ZRef, z, 0.05)

	x, y, z = SRGBToXYZ100(0, 0, 0)
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(0), y)
	assert.Equal(t, float32(0), z)
}
