// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ledcolor

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// primaries are the names that resolve to the pure standard colors,
// taking precedence over the CSS names (in which green is #008000).
var primaries = map[string]RGB{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"white":   White,
	"yellow":  Yellow,
	"magenta": Magenta,
	"cyan":    Cyan,
}

// FromString returns a color from the given string. It returns any
// resulting error; see [MustFromString] and [LogFromString] for versions
// that do not return an error. FromString accepts the following formats:
//   - hex values: #rgb or #rrggbb
//   - rgb(r, g, b) with 0-255 components
//   - srgb(r, g, b) with 0-1 components
//   - xyz(x, y, z) on the 0-100 scale
//   - luv(l, u, v)
//   - hcl(h, c, l)
//   - the standard color names (black, red, green, blue, white, yellow,
//     magenta, cyan), and otherwise any CSS color name.
func FromString(str string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(str))
	if s == "" {
		return nil, errors.New("ledcolor.FromString: empty color string")
	}
	if s[0] == '#' {
		return FromHex(s)
	}
	if pidx := strings.IndexByte(s, '('); pidx > 0 {
		fn := s[:pidx]
		if !strings.HasSuffix(s, ")") {
			return nil, fmt.Errorf("ledcolor.FromString: missing closing parenthesis in %q", str)
		}
		vals, err := parseComps(s[pidx+1 : len(s)-1])
		if err != nil {
			return nil, fmt.Errorf("ledcolor.FromString: %q: %w", str, err)
		}
		switch fn {
		case "rgb":
			return RGB{vals[0] / 255, vals[1] / 255, vals[2] / 255}, nil
		case "srgb":
			return RGB{vals[0], vals[1], vals[2]}, nil
		case "xyz":
			return XYZ{vals[0], vals[1], vals[2]}, nil
		case "luv":
			return CIELUV{vals[0], vals[1], vals[2]}, nil
		case "hcl":
			return HCL{vals[0], vals[1], vals[2]}, nil
		}
		return nil, fmt.Errorf("ledcolor.FromString: unknown color function %q", fn)
	}
	if c, ok := primaries[s]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return FromColor(c), nil
	}
	return nil, errors.New("ledcolor.FromString: name not found: " + str)
}

// parseComps parses exactly three comma or space separated numbers.
func parseComps(s string) ([3]float32, error) {
	var vals [3]float32
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return vals, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return vals, err
		}
		vals[i] = float32(v)
	}
	return vals, nil
}

// MustFromString returns a color value from the given string.
// It panics on any resulting error; see [FromString] for
// more information and a version that returns an error.
func MustFromString(str string) Color {
	c, err := FromString(str)
	if err != nil {
		panic(err)
	}
	return c
}

// LogFromString returns a color value from the given string.
// It logs any resulting error and returns [Black]; see [FromString]
// for more information and a version that returns an error.
func LogFromString(str string) Color {
	c, err := FromString(str)
	if err != nil {
		slog.Error(err.Error())
		return Black
	}
	return c
}

// FromHex parses the given hex color string (#rgb or #rrggbb,
// with the # optional) and returns the resulting color.
func FromHex(hex string) (RGB, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b uint8
	switch len(hex) {
	case 3:
		if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); err != nil {
			return RGB{}, fmt.Errorf("ledcolor.FromHex: could not process %q: %w", hex, err)
		}
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return RGB{}, fmt.Errorf("ledcolor.FromHex: could not process %q: %w", hex, err)
		}
	default:
		return RGB{}, errors.New("ledcolor.FromHex: could not process: " + hex)
	}
	return RGB{float32(r) / 255, float32(g) / 255, float32(b) / 255}, nil
}

// AsHex returns the given color as a #rrggbb hex string,
// converting it to clamped sRGB first.
func AsHex(c Color) string {
	rgb, ok := c.(RGB)
	if !ok {
		rgb = c.XYZ().RGB()
	}
	a := rgb.AsRGBA()
	return fmt.Sprintf("#%02x%02x%02x", a.R, a.G, a.B)
}
