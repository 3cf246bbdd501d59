// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}, termenv.WithProfile(termenv.Ascii)))

	l.Debug("this is debug", "steps", 10)
	l.Info("this is info", "name", "green to magenta")
	l.With("policy", "saturation").WithGroup("split").Warn("this is warn", "factor", 0.5)
	l.Error("this is error", slog.Group("color", "r", 1, "w", ""))

	expected := `DEBUG this is debug steps=10
INFO this is info name="green to magenta"
WARN this is warn policy=saturation split.factor=0.5
ERROR this is error color.r=1 color.w=""
`
	assert.Equal(t, expected, buf.String())
}

func TestHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	level := slog.LevelWarn
	l := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: &level}, termenv.WithProfile(termenv.Ascii)))

	l.Info("hidden")
	assert.Empty(t, buf.String())

	level = slog.LevelInfo
	l.Info("shown")
	assert.Equal(t, "INFO shown\n", buf.String())

	buf.Reset()
	l = slog.New(NewHandler(&buf, nil, termenv.WithProfile(termenv.Ascii)))
	l.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestHandlerColor(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, nil, termenv.WithProfile(termenv.ANSI)))
	l.Error("failed")
	assert.Contains(t, buf.String(), "\x1b[31mERROR")
	assert.Contains(t, buf.String(), "failed\n")
}

func TestDefaultLogger(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)
	defer func(l slog.Level) { UserLevel = l }(UserLevel)

	UserLevel = slog.LevelDebug
	SetDefaultLogger()
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	UserLevel = slog.LevelError
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
}
