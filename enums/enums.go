// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides the shared string methods of the enum
// types, which keep their names in a value map and a name map.
package enums

import (
	"errors"
	"strconv"
	"strings"
)

// Enum is the set of integer types that enums are defined on.
type Enum interface {
	~int | ~int32 | ~int64
}

// String returns the name of the given enum value in the given
// map, or its number if it has no name.
func String[T Enum](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the given enum value to the value of the given
// name in the given map, and returns an error if there is none.
// The type name is used in the error.
func SetString[T Enum](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type " + typeName)
}

// SetStringLower is [SetString] for lowercase value maps: the name
// is trimmed and lowercased before the lookup.
func SetStringLower[T Enum](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type " + typeName)
}

// Values returns the values of an enum type, from 0 to n-1.
func Values[T Enum](n T) []T {
	vals := make([]T, n)
	for i := range vals {
		vals[i] = T(i)
	}
	return vals
}
