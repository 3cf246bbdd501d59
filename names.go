// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ledcolor

// Standard colors, usable as gradient end points.
var (
	Black   = RGB{0, 0, 0}
	Red     = RGB{1, 0, 0}
	Green   = RGB{0, 1, 0}
	Blue    = RGB{0, 0, 1}
	White   = RGB{1, 1, 1}
	Yellow  = RGB{1, 1, 0}
	Magenta = RGB{1, 0, 1}
	Cyan    = RGB{0, 1, 1}
)
