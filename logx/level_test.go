// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	tests := []struct {
		vv, v, q bool
		want     slog.Level
	}{
		{false, false, false, slog.LevelWarn},
		{true, false, false, slog.LevelDebug},
		{false, true, false, slog.LevelInfo},
		{false, false, true, slog.LevelError},
		{false, true, true, slog.LevelInfo},
		{true, false, true, slog.LevelDebug},
		{true, true, true, slog.LevelDebug},
	}
	for _, tt := range tests {
		name := fmt.Sprintf("vv=%v v=%v q=%v", tt.vv, tt.v, tt.q)
		assert.Equal(t, tt.want, LevelFromFlags(tt.vv, tt.v, tt.q), name)
	}
}
