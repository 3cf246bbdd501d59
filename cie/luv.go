// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "cogentcore.org/ledcolor/math32"

// CIE constants for the L* continuity correction:
// http://www.brucelindbloom.com/LContinuity.html
const (
	// K is the slope of the linear segment of L* near black.
	K = 24389.0 / 27.0

	// E is the Y/YRef threshold between the linear and cube root segments.
	E = 216.0 / 24389.0

	// LThreshold is the L* value at the crossover point E.
	LThreshold = 8.0

	// kInverse is the rounded K used when solving Y back from L*.
	kInverse = 903.3
)

// u' and v' chromaticity coordinates of the reference white.
const (
	UPrimeRef = 4 * XRef / (XRef + 15*YRef + 3*ZRef)
	VPrimeRef = 9 * YRef / (XRef + 15*YRef + 3*ZRef)
)

// YToL converts Y on the 0-100 scale to the L* lightness value.
func YToL(y float32) float32 {
	yr := y / YRef
	if yr > E {
		return 116*math32.Cbrt(yr) - 16
	}
	return K * yr
}

// LToY converts the L* lightness value to Y on the 0-100 scale.
func LToY(l float32) float32 {
	if l > LThreshold {
		f := (l + 16) / 116
		return YRef * f * f * f
	}
	return YRef * l / kInverse
}

// UVPrime returns the u', v' chromaticity coordinates of the given XYZ.
// ok is false when x + 15y + 3z is zero, and u', v' are undefined.
func UVPrime(x, y, z float32) (up, vp float32, ok bool) {
	d := x + 15*y + 3*z
	if d == 0 {
		return 0, 0, false
	}
	return 4 * x / d, 9 * y / d, true
}

// XYZToLUV converts XYZ on the 0-100 scale to CIELUV.
// Verified here: http://www.brucelindbloom.com/index.html?Eqn_XYZ_to_Luv.html
// Black (0, 0, 0) maps to (0, 0, 0).
func XYZToLUV(x, y, z float32) (l, u, v float32) {
	if x == 0 && y == 0 && z == 0 {
		return 0, 0, 0
	}
	l = YToL(y)
	up, vp, ok := UVPrime(x, y, z)
	if !ok {
		return l, 0, 0
	}
	u = 13 * l * (up - UPrimeRef)
	v = 13 * l * (vp - VPrimeRef)
	return
}

// LUVToXYZ converts CIELUV to XYZ on the 0-100 scale.
// l == 0 maps to black (0, 0, 0), as does any input whose
// recovered v' is zero.
func LUVToXYZ(l, u, v float32) (x, y, z float32) {
	if l == 0 {
		return 0, 0, 0
	}
	up := u/(13*l) + UPrimeRef
	vp := v/(13*l) + VPrimeRef
	if vp == 0 {
		return 0, 0, 0
	}
	y = LToY(l)
	x = y * 9 * up / (4 * vp)
	z = y * (12 - 3*up - 20*vp) / (4 * vp)
	return
}
