// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the ledgrad tool,
// with default values given by struct tags and optional TOML or
// YAML config files that command line flags override.
package config

import (
	"errors"
	"fmt"

	"cogentcore.org/ledcolor"
	"cogentcore.org/ledcolor/gradient"
)

// Config is the main config struct that contains all of the
// configuration options for the ledgrad tool.
type Config struct {

	// the color at the start of the gradient, in any format
	// accepted by [ledcolor.FromString]
	From string `default:"green"`

	// the color at the end of the gradient
	To string `default:"magenta"`

	// additional colors between From and To, evenly spaced
	Via []string

	// the number of steps of the gradient; it has Steps+1 colors
	Steps int `default:"10"`

	// the algorithm used to derive the white component
	Policy ledcolor.WhitePolicy `default:"saturation"`

	// the fraction of the luminance assigned to the white
	// component by the luminance policy
	WhiteFactor float32 `default:"0.5"`

	// the scaling of the white component subtracted from
	// the RGB components by the luminance policy
	WhiteScaling float32 `default:"1"`

	// the spread method used for positions outside of the gradient
	Spread gradient.Spreads `default:"pad"`

	// the output format
	Format Formats `default:"text"`

	// the output file; standard output if empty.
	// It is required for the png format.
	Output string

	// the width of the png preview
	Width int `default:"256"`

	// the height of the png preview
	Height int `default:"32"`

	// Verbose, VeryVerbose and Quiet set the user logging level
	// through logx.LevelFromFlags.
	Verbose     bool
	VeryVerbose bool
	Quiet       bool
}

// WhiteSplit returns the white split configured by the config.
func (c *Config) WhiteSplit() ledcolor.WhiteSplit {
	return ledcolor.WhiteSplit{Policy: c.Policy, WhiteFactor: c.WhiteFactor, WhiteScaling: c.WhiteScaling}
}

// Gradient parses the configured colors and returns the resulting
// gradient, with the Via colors evenly spaced between From and To.
func (c *Config) Gradient() (*gradient.Gradient, error) {
	names := append(append([]string{c.From}, c.Via...), c.To)
	g := &gradient.Gradient{Spread: c.Spread, White: c.WhiteSplit()}
	for i, nm := range names {
		clr, err := ledcolor.FromString(nm)
		if err != nil {
			return nil, fmt.Errorf("config.Gradient: %w", err)
		}
		g.AddStop(clr, float32(i)/float32(len(names)-1))
	}
	return g, nil
}

// Validate returns an error if the config has invalid values.
func (c *Config) Validate() error {
	var errs []error
	if c.Policy < 0 || c.Policy >= ledcolor.WhitePolicyN {
		errs = append(errs, fmt.Errorf("invalid white policy %v", c.Policy))
	}
	if c.Spread < 0 || c.Spread >= gradient.SpreadsN {
		errs = append(errs, fmt.Errorf("invalid spread %v", c.Spread))
	}
	if c.Format < 0 || c.Format >= FormatsN {
		errs = append(errs, fmt.Errorf("invalid format %v", c.Format))
	}
	if c.Format == PNG {
		if c.Output == "" {
			errs = append(errs, errors.New("an output file is required for the png format"))
		}
		if c.Width <= 0 || c.Height <= 0 {
			errs = append(errs, fmt.Errorf("invalid png size %dx%d", c.Width, c.Height))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config.Validate: %w", err)
	}
	return nil
}
