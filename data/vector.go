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

// Package data holds the numeric containers shared by the
// distribution packages, primarily the probability mass vector.
package data

import "math"

// Vector wraps a slice of float64 mass values.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make(Vector, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Sum returns the sum of all elements of the vector.
func (v Vector) Sum() float64 {
	sum := 0.0
	for _, c := range v {
		sum += c
	}

	return sum
}

// Min returns the smallest element of the vector.
// It returns +Inf for an empty vector.
func (v Vector) Min() float64 {
	min := math.Inf(1)
	for _, c := range v {
		if c < min {
			min = c
		}
	}

	return min
}
