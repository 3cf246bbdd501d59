// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/ledcolor/base/tolassert"
	"cogentcore.org/ledcolor/math32"
	"github.com/stretchr/testify/assert"
)

func TestLUV(t *testing.T) {
	tolassert.Equal(t, float32(0.19783983), float32(UPrimeRef))
	tolassert.Equal(t, float32(0.46833631), float32(VPrimeRef))

	l, u, v := XYZToLUV(10, 30, 50)
	tolassert.EqualTol(t, 61.65422, l, 0.001)
	tolassert.EqualTol(t, -106.01189, u, 0.01)
	tolassert.EqualTol(t, -20.609386, v, 0.01)

	// near black uses the linear segment
	l, u, v = XYZToLUV(0.2, 0.5, 0.3)
	tolassert.EqualTol(t, 4.5164814, l, 0.001)
	tolassert.EqualTol(t, -6.154227, u, 0.001)
	tolassert.EqualTol(t, 3.224558, v, 0.001)

	x, y, z := LUVToXYZ(28, 14, 36.2)
	tolassert.EqualTol(t, 5.1103125, x, 0.001)
	tolassert.EqualTol(t, 5.4573784, y, 0.001)
	tolassert.EqualTol(t, -0.15532781, z, 0.001)

	tolassert.Equal(t, float32(2.3023315), LToY(17))
	tolassert.Equal(t, float32(0.55352596), LToY(5))
	tolassert.Equal(t, float32(21.579498), YToL(3.4))
	tolassert.Equal(t, float32(4.5164814), YToL(0.5))
}

func TestLUVZero(t *testing.T) {
	l, u, v := XYZToLUV(0, 0, 0)
	assert.Equal(t, [3]float32{0, 0, 0}, [3]float32{l, u, v})

	x, y, z := LUVToXYZ(0, 0, 0)
	assert.Equal(t, [3]float32{0, 0, 0}, [3]float32{x, y, z})

	// chromaticity is ignored at zero lightness
	x, y, z = LUVToXYZ(0, 50, -20)
	assert.Equal(t, [3]float32{0, 0, 0}, [3]float32{x, y, z})

	// x + 15y + 3z == 0 without being black
	l, u, v = XYZToLUV(-15, 1, 0)
	assert.False(t, math32.IsNaN(l))
	assert.Equal(t, float32(0), u)
	assert.Equal(t, float32(0), v)
}

func TestLUVRoundTrip(t *testing.T) {
	cases := [][3]float32{
		{41.24, 21.26, 1.93},
		{35.76, 71.52, 11.92},
		{18.05, 7.22, 95.03},
		{95.047, 100, 108.883},
		{0.5, 0.4, 0.3},
	}
	for _, c := range cases {
		l, u, v := XYZToLUV(c[0], c[1], c[2])
		x, y, z := LUVToXYZ(l, u, v)
		tolassert.EqualTol(t, c[0], x, 0.01)
		tolassert.EqualTol(t, c[1], y, 0.01)
		tolassert.EqualTol(t, c[2], z, 0.01)
	}
}

func TestLContinuity(t *testing.T) {
	// both segments meet at E, where L* is 8
	below := YToL(E*YRef - 0.0001)
	above := YToL(E*YRef + 0.0001)
	tolassert.EqualTol(t, LThreshold, below, 0.01)
	tolassert.EqualTol(t, LThreshold, above, 0.01)
	assert.Less(t, below, above)
}
