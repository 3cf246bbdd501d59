// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ledgrad prints and renders perceptual RGBW gradients
// for LED strips.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/ledcolor/config"
	"cogentcore.org/ledcolor/gradient"
	"cogentcore.org/ledcolor/logx"
	"github.com/muesli/termenv"
)

func main() {
	logx.SetDefaultLogger()
	fs := flag.NewFlagSet("ledgrad", flag.ExitOnError)
	fs.Usage = func() { usage(fs) }
	cfg, err := config.Load(fs, os.Args[1:])
	if cfg != nil {
		logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
	}
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	gradient.SetLogger(slog.Default())
	if err := run(cfg, termenv.NewOutput(os.Stdout)); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// usage is a replacement usage function for the flags package.
func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Ledgrad prints and renders RGBW color gradients interpolated in the CIELUV color space.\n")
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "\tledgrad [flags]\n")
	fmt.Fprintf(w, "Colors are hex values, rgb(), srgb(), xyz(), luv() or hcl() functions, or color names.\n")
	fmt.Fprintf(w, "Flags:\n")
	fs.PrintDefaults()
}
