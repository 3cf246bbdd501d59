// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
)

// SetFromDefaults sets the values of the fields of the given struct
// pointer from their `default:` struct field tag values, recursing
// into struct fields without a tag. Errors are logged in addition to
// being returned.
func SetFromDefaults(cfg any) error {
	err := setFromDefaultTags(cfg)
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

func setFromDefaultTags(obj any) error {
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() || ov.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config.SetFromDefaults: expected a non-nil struct pointer, got %T", obj)
	}
	val := ov.Elem()
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if f.Type.Kind() == reflect.Struct && !ok {
			if err := setFromDefaultTags(fv.Addr().Interface()); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if !ok {
			continue
		}
		if err := setFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("config.SetFromDefaults: field %s of %s from %q: %w", f.Name, typ.Name(), def, err))
		}
	}
	return errors.Join(errs...)
}

// setFromString sets the given addressable value from the given string.
// Types implementing [encoding.TextUnmarshaler] (such as enums) are
// set through it; slices are set from comma separated values.
func setFromString(v reflect.Value, s string) error {
	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		var parts []string
		if s != "" {
			parts = strings.Split(s, ",")
		}
		sl := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := setFromString(sl.Index(i), strings.TrimSpace(p)); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("unsupported type %v", v.Type())
	}
	return nil
}
