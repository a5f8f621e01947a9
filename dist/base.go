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

package dist

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Base declares how the stored mass values of a distribution are to
// be interpreted: as plain probabilities, or as logarithms in a
// stated base.
type Base struct {
	log   bool
	value float64
}

// Linear is the base of distributions storing plain probabilities.
var Linear = Base{}

// LogBase returns the base of distributions storing logarithmic
// mass values in base b. The base must be positive and different
// from one.
func LogBase(b float64) Base {
	return Base{log: true, value: b}
}

// IsLinear reports whether mass values are plain probabilities.
func (b Base) IsLinear() bool {
	return !b.log
}

// LogValue returns the logarithm base; ok is false for the linear
// base.
func (b Base) LogValue() (float64, bool) {
	return b.value, b.log
}

func (b Base) String() string {
	if !b.log {
		return "linear"
	}

	return strconv.FormatFloat(b.value, 'g', -1, 64)
}

// linear converts a stored mass value to a plain probability.
func (b Base) linear(p float64) float64 {
	if !b.log {
		return p
	}

	return math.Pow(b.value, p)
}

func (b Base) validate() error {
	if b.log && (b.value <= 0 || b.value == 1) {
		return errors.Wrapf(ErrBase, "base %v", b.value)
	}

	return nil
}
