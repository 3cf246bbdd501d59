// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"flag"
	"strconv"
	"strings"
)

// AddFlags adds flags for all of the config fields to the given flag set,
// with the current field values as the defaults.
func (c *Config) AddFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.From, "from", c.From, "the color at the start of the gradient")
	fs.StringVar(&c.To, "to", c.To, "the color at the end of the gradient")
	fs.Var((*listValue)(&c.Via), "via", "comma separated colors between from and to")
	fs.IntVar(&c.Steps, "steps", c.Steps, "the number of steps of the gradient")
	fs.TextVar(&c.Policy, "policy", c.Policy, "the white policy (saturation or luminance)")
	fs.Var((*float32Value)(&c.WhiteFactor), "white-factor", "the luminance fraction of the white component for the luminance policy")
	fs.Var((*float32Value)(&c.WhiteScaling), "white-scaling", "the scaling of the white subtracted from rgb for the luminance policy")
	fs.TextVar(&c.Spread, "spread", c.Spread, "the spread method (pad, reflect or repeat)")
	fs.TextVar(&c.Format, "format", c.Format, "the output format (text, json or png)")
	fs.StringVar(&c.Output, "o", c.Output, "the output file")
	fs.IntVar(&c.Width, "width", c.Width, "the width of the png preview")
	fs.IntVar(&c.Height, "height", c.Height, "the height of the png preview")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "show info log messages")
	fs.BoolVar(&c.VeryVerbose, "vv", c.VeryVerbose, "show debug log messages")
	fs.BoolVar(&c.Quiet, "q", c.Quiet, "only show error log messages")
}

// Load returns the config resulting from the default values, then the
// config file given by the -config flag if any, and then the other
// command line flags in args, in that order of increasing precedence.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	if err := SetFromDefaults(cfg); err != nil {
		return nil, err
	}
	file := fs.String("config", "", "a TOML or YAML config file")
	cfg.AddFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *file != "" {
		if err := Open(cfg, *file); err != nil {
			return nil, err
		}
		// flags take precedence over the file
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	return cfg, cfg.Validate()
}

// listValue is a [flag.Value] for a comma separated list of strings.
type listValue []string

func (l *listValue) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set splits the given string on the commas that are not
// inside of parentheses, so that rgb(0, 255, 0) is one item.
func (l *listValue) Set(s string) error {
	*l = nil
	depth, start := 0, 0
	for i := 0; i <= len(s); i++ {
		switch {
		case i == len(s) || (s[i] == ',' && depth == 0):
			if p := strings.TrimSpace(s[start:i]); p != "" {
				*l = append(*l, p)
			}
			start = i + 1
		case s[i] == '(':
			depth++
		case s[i] == ')':
			depth--
		}
	}
	return nil
}

// float32Value is a [flag.Value] for a float32.
type float32Value float32

func (f *float32Value) String() string {
	if f == nil {
		return "0"
	}
	return strconv.FormatFloat(float64(*f), 'g', -1, 32)
}

func (f *float32Value) Set(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	*f = float32Value(v)
	return nil
}
