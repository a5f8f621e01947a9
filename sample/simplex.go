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

package sample

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distmv"
)

// Simplex samples probability mass vectors uniformly from the
// dim-dimensional probability simplex, the set of non-negative
// vectors summing to 1. The draw is a Dirichlet sample with all
// concentration parameters equal to 1; this is a uniform choice
// of a distribution, not a uniform distribution over outcomes.
type Simplex struct {
	dim int
	src Source
}

// NewSimplex returns an instance of the Simplex sampler. It
// accepts the dimension of the sampled vectors and the source of
// randomness; a nil src selects the process-wide default, resolved
// at sampling time.
func NewSimplex(dim int, src Source) *Simplex {
	return &Simplex{
		dim: dim,
		src: src,
	}
}

// Sample draws a probability mass vector uniformly from the simplex.
func (s *Simplex) Sample() ([]float64, error) {
	if s.dim < 1 {
		return nil, errors.New("simplex dimension must be positive")
	}

	src := s.src
	if src == nil {
		src = Default()
	}

	alpha := make([]float64, s.dim)
	for i := range alpha {
		alpha[i] = 1
	}

	return distmv.NewDirichlet(alpha, src).Rand(nil), nil
}
