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
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/heleibin/dit/data"
)

// Support selects the outcome set of a distribution: either a count
// of integer outcomes or an explicit list. The zero value selects
// nothing and is rejected.
type Support struct {
	count    int
	outcomes []Outcome
}

// Count selects the integer outcomes 0..n-1.
func Count(n int) Support {
	return Support{count: n}
}

// Over selects the given outcomes, in order.
func Over(outcomes ...Outcome) Support {
	return Support{outcomes: outcomes}
}

func (s Support) resolve() ([]Outcome, error) {
	if s.outcomes != nil {
		if len(s.outcomes) == 0 {
			return nil, ErrOutcomeCount
		}

		return append([]Outcome(nil), s.outcomes...), nil
	}

	if s.count < 1 {
		return nil, errors.Wrapf(ErrOutcomeCount, "count %d", s.count)
	}

	outcomes := make([]Outcome, s.count)
	for i := range outcomes {
		outcomes[i] = i
	}

	return outcomes, nil
}

// AlphabetSpec selects the per-position alphabets of a joint
// distribution: either a shared size giving integer symbols, or an
// explicit list of alphabets. The zero value selects nothing and is
// rejected.
type AlphabetSpec struct {
	size      int
	alphabets []Alphabet
}

// AlphabetSize gives every position the integer symbols 0..k-1.
func AlphabetSize(k int) AlphabetSpec {
	return AlphabetSpec{size: k}
}

// Alphabets uses the given alphabets, one per position. A single
// alphabet is broadcast to every position.
func Alphabets(alphabets ...Alphabet) AlphabetSpec {
	return AlphabetSpec{alphabets: alphabets}
}

func (a AlphabetSpec) resolve(wordLength int) ([]Alphabet, error) {
	switch {
	case a.alphabets != nil:
		alphabets := a.alphabets
		if len(alphabets) == 1 {
			shared := alphabets[0]
			alphabets = make([]Alphabet, wordLength)
			for i := range alphabets {
				alphabets[i] = shared
			}
		} else if len(alphabets) != wordLength {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"%d alphabets for %d positions", len(alphabets), wordLength)
		}

		for i, alpha := range alphabets {
			if len(alpha) == 0 {
				return nil, errors.Wrapf(ErrAlphabetForm, "alphabet %d is empty", i)
			}
		}

		return alphabets, nil
	case a.size > 0:
		shared := make(Alphabet, a.size)
		for i := range shared {
			shared[i] = i
		}

		alphabets := make([]Alphabet, wordLength)
		for i := range alphabets {
			alphabets[i] = shared
		}

		return alphabets, nil
	default:
		return nil, errors.Wrapf(ErrAlphabetForm, "size %d and no alphabets", a.size)
	}
}

// Uniform returns a distribution assigning equal mass 1/n to each
// of the n outcomes of the support.
func Uniform(support Support) (*Distribution, error) {
	outcomes, err := support.resolve()
	if err != nil {
		return nil, err
	}

	n := len(outcomes)
	pmf := data.NewConstantVector(n, 1/float64(n))

	return New(pmf, outcomes, Linear)
}

// UniformJoint returns a joint distribution assigning equal mass to
// every word of the Cartesian product of the per-position
// alphabets, enumerated in lexicographic order with the last
// position varying fastest.
func UniformJoint(wordLength int, spec AlphabetSpec) (*JointDistribution, error) {
	if wordLength < 1 {
		return nil, errors.Errorf("word length must be positive, got %d", wordLength)
	}

	alphabets, err := spec.resolve(wordLength)
	if err != nil {
		return nil, err
	}

	lens := make([]int, wordLength)
	z := 1
	for i, alpha := range alphabets {
		lens[i] = len(alpha)
		z *= len(alpha)
	}

	words := make([]Word, 0, z)
	for _, row := range combin.Cartesian(lens) {
		w := make(Word, wordLength)
		for j, idx := range row {
			w[j] = alphabets[j][idx]
		}
		words = append(words, w)
	}

	pmf := data.NewConstantVector(z, 1/float64(z))

	return NewJoint(pmf, words, Linear)
}
