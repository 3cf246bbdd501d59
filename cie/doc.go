// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the raw channel transforms between the sRGB,
// CIE 1931 XYZ and CIE 1976 L*u*v* (CIELUV) color spaces, relative
// to the single D65 reference white.
//
// XYZ values in this package use two scales: functions named with
// XYZ work on the 0-1 scale, and functions named with XYZ100 work on
// the 0-100 scale implied by [YRef]. The CIELUV transforms use the
// 0-100 scale.
package cie
