// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is an interface for standard decoder types.
type Decoder interface {
	// Decode decodes from the io.Reader specified at creation.
	Decode(v any) error
}

// Encoder is an interface for standard encoder types.
type Encoder interface {
	// Encode encodes to the io.Writer specified at creation.
	Encode(v any) error
}

// DecoderFunc is a function that creates a new Decoder for the given reader.
type DecoderFunc func(r io.Reader) Decoder

// EncoderFunc is a function that creates a new Encoder for the given writer.
type EncoderFunc func(w io.Writer) Encoder

// Codecs returns the decoder and encoder functions for the given
// config file name, based on its extension: .toml, or .yaml and .yml.
func Codecs(filename string) (DecoderFunc, EncoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return func(r io.Reader) Decoder { return toml.NewDecoder(r) },
			func(w io.Writer) Encoder { return toml.NewEncoder(w) }, nil
	case ".yaml", ".yml":
		return func(r io.Reader) Decoder { return yaml.NewDecoder(r) },
			func(w io.Writer) Encoder { return yamlEncoder{yaml.NewEncoder(w)} }, nil
	}
	return nil, nil, fmt.Errorf("config.Codecs: unsupported config file extension in %q", filename)
}

// Open reads the given config object from the given TOML or YAML file.
// Fields not present in the file keep their current values.
func Open(cfg any, filename string) error {
	dec, _, err := Codecs(filename)
	if err != nil {
		return err
	}
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("config.Open: %w", err)
	}
	defer f.Close()
	return Read(cfg, bufio.NewReader(f), dec)
}

// Read reads the given config object from the given reader,
// using the given [DecoderFunc].
func Read(cfg any, r io.Reader, f DecoderFunc) error {
	if err := f(r).Decode(cfg); err != nil && err != io.EOF {
		return fmt.Errorf("config.Read: %w", err)
	}
	return nil
}

// Save writes the given config object to the given TOML or YAML file.
func Save(cfg any, filename string) error {
	_, enc, err := Codecs(filename)
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if err := Write(cfg, bw, enc); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the given config object to the given writer,
// using the given [EncoderFunc].
func Write(cfg any, w io.Writer, f EncoderFunc) error {
	if err := f(w).Encode(cfg); err != nil {
		return fmt.Errorf("config.Write: %w", err)
	}
	return nil
}

// yamlEncoder closes the underlying encoder after each document
// so that all of it is written.
type yamlEncoder struct {
	*yaml.Encoder
}

func (e yamlEncoder) Encode(v any) error {
	if err := e.Encoder.Encode(v); err != nil {
		return err
	}
	return e.Close()
}
