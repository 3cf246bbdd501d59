// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fruit int32

func TestString(t *testing.T) {
	m := map[fruit]string{5: "apple"}
	assert.Equal(t, "apple", String(5, m))
	assert.Equal(t, "3", String(3, m))
	assert.Equal(t, "-1", String(-1, m))
}

func TestSetString(t *testing.T) {
	valueMap := map[string]fruit{"apple": 5}

	i := fruit(0)
	assert.NoError(t, SetString(&i, "apple", valueMap, "Fruits"))
	assert.Equal(t, fruit(5), i)
	i = fruit(4)
	err := SetString(&i, "Apple", valueMap, "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Apple is not a valid value for type Fruits", err.Error())
	}
	assert.Equal(t, fruit(4), i)

	assert.NoError(t, SetStringLower(&i, " Apple", valueMap, "Fruits"))
	assert.Equal(t, fruit(5), i)
	i = fruit(4)
	err = SetStringLower(&i, "Orange", valueMap, "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Orange is not a valid value for type Fruits", err.Error())
	}
	assert.Equal(t, fruit(4), i)
}

func TestValues(t *testing.T) {
	assert.Equal(t, []fruit{0, 1, 2}, Values[fruit](3))
	assert.Empty(t, Values[fruit](0))
}
