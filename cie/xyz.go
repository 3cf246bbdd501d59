// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// D65 reference white, on the 0-100 scale.
const (
	XRef = 95.047
	YRef = 100.0
	ZRef = 108.883
)

// SRGBLinToXYZ converts sRGB linear into XYZ CIE standard color space,
// using the sRGB working space matrix:
// http://www.brucelindbloom.com/Eqn_RGB_XYZ_Matrix.html
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 0.4124564*rl + 0.3575761*gl + 0.1804375*bl
	y = 0.2126729*rl + 0.7151522*gl + 0.0721750*bl
	z = 0.0193339*rl + 0.1191920*gl + 0.9503041*bl
	return
}

// XYZToSRGBLin converts XYZ CIE standard color space to sRGB linear.
// The coefficients are the seven decimal ones of sYCC:
// Amendment 1 to IEC 61966-2-1:1999. Results are not clamped.
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	rl = 3.2406255*x - 1.5372080*y - 0.4986286*z
	gl = -0.9689307*x + 1.8758561*y + 0.0415175*z
	bl = 0.0557101*x - 0.2040211*y + 1.0570959*z
	return
}

// SRGBToXYZ converts sRGB into XYZ CIE standard color space, 0-1 scale.
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	x, y, z = SRGBLinToXYZ(rl, gl, bl)
	return
}

// SRGBToXYZ100 converts sRGB into XYZ CIE standard color space, 0-100 scale.
func SRGBToXYZ100(r, g, b float32) (x, y, z float32) {
	x, y, z = SRGBToXYZ(r, g, b)
	x *= 100
	y *= 100
	z *= 100
	return
}

// XYZ100ToSRGBLin converts XYZ on the 0-100 scale to sRGB linear 0-1 values.
func XYZ100ToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	return XYZToSRGBLin(x/100, y/100, z/100)
}

// XYZ100ToSRGB converts XYZ on the 0-100 scale to gamma corrected sRGB.
// Results are not clamped.
func XYZ100ToSRGB(x, y, z float32) (r, g, b float32) {
	rl, gl, bl := XYZ100ToSRGBLin(x, y, z)
	r, g, b = SRGBFromLinear(rl, gl, bl)
	return
}
