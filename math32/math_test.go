// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"math"
	"testing"

	"cogentcore.org/ledcolor/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(2), Lerp(2, 7.3, 0))
	assert.Equal(t, float32(7.3), Lerp(2, 7.3, 1))
	assert.Equal(t, float32(0.1), Lerp(-0.7, 0.1, 1))
	tolassert.Equal(t, 4.5, Lerp(2, 7, 0.5))
	tolassert.Equal(t, 9.5, Lerp(2, 7, 1.5)) // extrapolates
	tolassert.Equal(t, -0.5, Lerp(2, 7, -0.5))

	// the endpoints are exact even when end-start overflows
	assert.Equal(t, float32(-3e38), Lerp(-3e38, 3e38, 0))
	assert.Equal(t, float32(3e38), Lerp(-3e38, 3e38, 1))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, float32(0), Clamp01(-3))
	assert.Equal(t, float32(0), Clamp01(float32(math.NaN())))
	assert.Equal(t, float32(1), Clamp01(float32(math.Inf(1))))
	assert.Equal(t, float32(0), Clamp01(float32(math.Inf(-1))))
	assert.Equal(t, float32(0.25), Clamp01(0.25))
	assert.Equal(t, float32(1), Clamp01(1.0001))
}

func TestAngles(t *testing.T) {
	tolassert.Equal(t, Pi, DegToRad(180))
	tolassert.Equal(t, 90, RadToDeg(Pi/2))
	tolassert.Equal(t, 0.33, Truncate2(0.3349))
	tolassert.Equal(t, 2, Cbrt(8))
	tolassert.Equal(t, 5, Sqrt(3*3+4*4))
	tolassert.Equal(t, 0.5, Mod(2.5, 2))
}
