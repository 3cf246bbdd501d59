// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ledcolor converts colors between sRGB, CIE 1931 XYZ, CIE 1976
L*u*v* (CIELUV) and its cylindrical form HCL, and derives four channel
RGBW values for LED hardware with a dedicated white emitter.

All types are small float32 value types, and every conversion is a pure
method on the source value that returns a new value:

	luv := ledcolor.Red.CIELUV()
	rgbw := luv.Interpolate(ledcolor.Green.CIELUV(), 0.5).RGBW()

XYZ is the hub space, using the 0-100 scale of the D65 reference white,
and CIELUV is the space in which colors are interpolated. Conversions
that produce RGB or RGBW clamp every channel to [0, 1] after gamma
encoding; XYZ, CIELUV and HCL values are never clamped.

The white channel of an RGBW color is derived from the CIELUV saturation
of the color (see [CIELUV.RGBW]): saturated colors are rendered with the
RGB emitters only, and desaturated colors route their luminance into the
white emitter. [WhiteSplit] selects between this and a simpler luminance
based policy.
*/
package ledcolor
