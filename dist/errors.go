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

import "github.com/pkg/errors"

var ErrOutcomeCount = errors.New("number of outcomes must be positive")
var ErrLengthMismatch = errors.New("pmf and outcomes must have the same length")
var ErrDuplicateOutcome = errors.New("outcomes must be unique")
var ErrMass = errors.New("probability mass must sum to one")
var ErrNegativeMass = errors.New("probability mass must be non-negative")
var ErrBase = errors.New("log base must be positive and different from one")
var ErrShapeMismatch = errors.New("word length does not match the number of alphabets")
var ErrAlphabetForm = errors.New("alphabet must be given as a size or as a list of alphabets")
var ErrNotAWord = errors.New("joint outcomes must be words")
var ErrWordLength = errors.New("words must share a single length")
