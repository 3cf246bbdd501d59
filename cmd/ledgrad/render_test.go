// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/ledcolor"
	"cogentcore.org/ledcolor/config"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) *config.Config {
	cfg, err := config.Load(flag.NewFlagSet("ledgrad", flag.ContinueOnError), args)
	require.NoError(t, err)
	return cfg
}

func TestRows(t *testing.T) {
	cfg := load(t)
	g, err := cfg.Gradient()
	require.NoError(t, err)
	rows := Rows(g, cfg.Steps)
	require.Len(t, rows, 11)
	assert.Equal(t, float32(0), rows[0].T)
	assert.Equal(t, float32(1), rows[10].T)
	assert.Equal(t, ledcolor.Green.CIELUV().RGBW(), rows[0].RGBW)
	assert.Equal(t, "#00ff00", rows[0].Hex)
	assert.Equal(t, ledcolor.Magenta.CIELUV().Hue(), rows[10].Hue)
	assert.Less(t, rows[5].Saturation, float32(0.1))

	assert.Len(t, Rows(g, 0), 1)
}

func TestRunText(t *testing.T) {
	var buf bytes.Buffer
	cfg := load(t, "-from", "black", "-to", "white", "-steps", "4")
	require.NoError(t, run(cfg, termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"t", "L*", "sat", "chroma", "hue", "R", "G", "B", "W"}, strings.Fields(lines[0]))
	assert.Equal(t, "0.00", strings.Fields(lines[1])[0])
	assert.Equal(t, "1.000", strings.Fields(lines[5])[8])
}

func TestRunJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ramp.json")
	cfg := load(t, "-format", "json", "-o", file, "-policy", "luminance", "-steps", "2")
	require.NoError(t, run(cfg, termenv.NewOutput(os.Stdout)))

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	var rows []Row
	require.NoError(t, json.Unmarshal(b, &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, cfg.WhiteSplit().RGBW(ledcolor.Magenta.CIELUV()), rows[2].RGBW)
	assert.Equal(t, float32(0.5), rows[1].T)
}

func TestRunPNG(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ramp.png")
	cfg := load(t, "-format", "png", "-o", file, "-from", "red", "-to", "blue", "-steps", "3", "-width", "40", "-height", "4")
	require.NoError(t, run(cfg, nil))

	img, err := imgio.Open(file)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 4), img.Bounds())
	grad, err := cfg.Gradient()
	require.NoError(t, err)
	assertPixel(t, grad.RGBW(0).Preview().AsRGBA(), img.At(0, 0))
	assertPixel(t, grad.RGBW(1).Preview().AsRGBA(), img.At(39, 3))
	assertPixel(t, grad.RGBW(1.0/3).Preview().AsRGBA(), img.At(15, 0))
}

// assertPixel asserts that the given pixel matches the expected
// color to within one level per channel.
func assertPixel(t *testing.T, expected color.RGBA, actual color.Color) {
	a := color.RGBAModel.Convert(actual).(color.RGBA)
	assert.InDelta(t, expected.R, a.R, 1)
	assert.InDelta(t, expected.G, a.G, 1)
	assert.InDelta(t, expected.B, a.B, 1)
}

func TestRunBadColor(t *testing.T) {
	cfg := load(t, "-to", "notacolor")
	assert.Error(t, run(cfg, termenv.NewOutput(os.Stdout)))
}
