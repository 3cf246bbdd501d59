// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record in the form
// "LEVEL message key=value ...", without a timestamp. The level name is
// colored when the output supports it.
type Handler struct {
	out   *termenv.Output
	mu    *sync.Mutex
	level slog.Leveler

	// pre is the formatted text of the attributes added through WithAttrs.
	pre string

	// group is the prefix of attribute keys added through WithGroup.
	group string
}

// NewHandler returns a new [Handler] writing to the given writer.
// The color profile is detected from the writer unless set through
// the given termenv options (for example [termenv.WithProfile]).
// A nil opts logs at [slog.LevelInfo] and above.
func NewHandler(w io.Writer, opts *slog.HandlerOptions, termOpts ...termenv.OutputOption) *Handler {
	h := &Handler{out: termenv.NewOutput(w, termOpts...), mu: &sync.Mutex{}, level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// SetDefaultLogger sets the default logger to a [Handler] writing to
// [os.Stderr] at [UserLevel]. Later changes to UserLevel take effect
// immediately.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &slog.HandlerOptions{Level: &UserLevel})))
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.levelString(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.pre)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	for _, a := range attrs {
		appendAttr(&b, h.group, a)
	}
	nh := *h
	nh.pre += b.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group += name + "."
	return &nh
}

// levelString returns the name of the given level, colored by severity.
func (h *Handler) levelString(l slog.Level) string {
	var c string
	switch {
	case l >= slog.LevelError:
		c = "1" // red
	case l >= slog.LevelWarn:
		c = "3" // yellow
	case l >= slog.LevelInfo:
		c = "6" // cyan
	default:
		c = "8" // gray
	}
	return h.out.String(l.String()).Foreground(h.out.Color(c)).String()
}

// appendAttr writes the given attribute as " key=value", with
// the keys of group attributes joined by dots.
func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, prefix, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	s := a.Value.String()
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		s = strconv.Quote(s)
	}
	b.WriteString(s)
}
