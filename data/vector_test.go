/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	v := NewVector([]float64{0.5, 0.25, 0.25})

	assert.Equal(t, 3, len(v))
	assert.InDelta(t, 1.0, v.Sum(), 1e-12, "mass should sum correctly")
	assert.Equal(t, 0.25, v.Min(), "smallest coordinate should be found")

	c := v.Copy()
	c[0] = 0
	assert.Equal(t, 0.5, v[0], "copy should not share storage with the original")
}

func TestVector_Constant(t *testing.T) {
	v := NewConstantVector(4, 0.25)

	assert.Equal(t, 4, len(v))
	for _, x := range v {
		assert.Equal(t, 0.25, x)
	}
}

func TestVector_Empty(t *testing.T) {
	v := NewVector(nil)

	assert.Equal(t, 0.0, v.Sum())
	assert.True(t, math.IsInf(v.Min(), 1))
}
