// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"cogentcore.org/ledcolor"
	"cogentcore.org/ledcolor/config"
	"cogentcore.org/ledcolor/gradient"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/muesli/termenv"
)

// Row is one step of a rendered gradient.
type Row struct {
	T          float32       `json:"t"`
	L          float32       `json:"l"`
	U          float32       `json:"u"`
	V          float32       `json:"v"`
	Saturation float32       `json:"saturation"`
	Chroma     float32       `json:"chroma"`
	Hue        float32       `json:"hue"`
	RGBW       ledcolor.RGBW `json:"rgbw"`

	// Hex is the preview color of the RGBW value.
	Hex string `json:"hex"`
}

// Rows returns the rows of the given gradient with the given number of steps.
func Rows(g *gradient.Gradient, steps int) []Row {
	samples := g.Steps(steps)
	rows := make([]Row, len(samples))
	for i, c := range samples {
		t := float32(0)
		if steps > 0 {
			t = float32(i) / float32(steps)
		}
		rgbw := g.White.RGBW(c)
		rows[i] = Row{
			T: t, L: c.L, U: c.U, V: c.V,
			Saturation: c.Saturation(),
			Chroma:     c.Chroma(),
			Hue:        c.Hue(),
			RGBW:       rgbw,
			Hex:        ledcolor.AsHex(rgbw.Preview()),
		}
	}
	return rows
}

// run renders the gradient of the given config in its format. Text and
// JSON go to the output file of the config, or else to the given
// terminal output.
func run(cfg *config.Config, term *termenv.Output) error {
	g, err := cfg.Gradient()
	if err != nil {
		return err
	}
	if cfg.Format == config.PNG {
		return savePNG(g, cfg)
	}
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		term = termenv.NewOutput(f)
	}
	rows := Rows(g, cfg.Steps)
	slog.Info("rendering gradient", "from", cfg.From, "to", cfg.To, "steps", cfg.Steps, "format", cfg.Format)
	if cfg.Format == config.JSON {
		return writeJSON(term, rows)
	}
	return writeText(term, rows)
}

// writeText writes the rows as a table, followed by a color swatch
// of each step when the output supports colors.
func writeText(out *termenv.Output, rows []Row) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "t\tL*\tsat\tchroma\thue\tR\tG\tB\tW\t")
	for _, r := range rows {
		swatch := out.String("    ").Background(out.Color(r.Hex)).String()
		fmt.Fprintf(tw, "%.2f\t%.2f\t%.3f\t%.2f\t%.1f\t%.3f\t%.3f\t%.3f\t%.3f\t %s\n",
			r.T, r.L, r.Saturation, r.Chroma, r.Hue, r.RGBW.R, r.RGBW.G, r.RGBW.B, r.RGBW.W, swatch)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(rows)
}

// savePNG saves a preview of the gradient with one block per step,
// scaled to the size of the config.
func savePNG(g *gradient.Gradient, cfg *config.Config) error {
	steps := max(cfg.Steps, 0)
	img := transform.Resize(gradient.Image(g, steps+1, 1), cfg.Width, cfg.Height, transform.NearestNeighbor)
	if err := imgio.Save(cfg.Output, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("ledgrad: saving %s: %w", cfg.Output, err)
	}
	slog.Info("saved gradient preview", "file", cfg.Output, "width", cfg.Width, "height", cfg.Height)
	return nil
}
