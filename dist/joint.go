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

// JointDistribution is a Distribution whose outcomes are words of a
// single shared length, one symbol per random variable position.
type JointDistribution struct {
	Distribution
	wordLength int
}

// NewJoint returns a JointDistribution pairing each word with the
// mass value at the same index. Beyond the Distribution validation
// rules, every word must have the same length.
func NewJoint(pmf []float64, words []Word, base Base) (*JointDistribution, error) {
	if len(words) == 0 {
		return nil, ErrOutcomeCount
	}

	wordLength := len(words[0])
	outcomes := make([]Outcome, len(words))
	for i, w := range words {
		if len(w) != wordLength {
			return nil, errors.Wrapf(ErrWordLength,
				"word %d has length %d, want %d", i, len(w), wordLength)
		}
		outcomes[i] = w
	}

	d, err := New(pmf, outcomes, base)
	if err != nil {
		return nil, err
	}

	return &JointDistribution{
		Distribution: *d,
		wordLength:   wordLength,
	}, nil
}

// WordLength returns the number of random variable positions.
func (d *JointDistribution) WordLength() int {
	return d.wordLength
}

// Alphabets returns the symbols observed at each word position, in
// first-seen order.
func (d *JointDistribution) Alphabets() []Alphabet {
	alphabets := make([]Alphabet, d.wordLength)
	seen := make([]map[string]struct{}, d.wordLength)
	for i := range seen {
		seen[i] = make(map[string]struct{})
	}

	for _, o := range d.outcomes {
		for j, s := range o.(Word) {
			k := outcomeKey(s)
			if _, ok := seen[j][k]; !ok {
				seen[j][k] = struct{}{}
				alphabets[j] = append(alphabets[j], s)
			}
		}
	}

	return alphabets
}

// WithOutcomes returns a new JointDistribution with the outcomes
// replaced and the mass vector and base kept. Every replacement
// outcome must be coercible to a word: a Word, a slice of outcomes,
// or a string taken as one symbol per rune.
func (d *JointDistribution) WithOutcomes(outcomes []Outcome) (Dist, error) {
	words := make([]Word, len(outcomes))
	for i, o := range outcomes {
		w, err := asWord(o)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}

	return NewJoint(d.pmf, words, d.base)
}

func asWord(o Outcome) (Word, error) {
	switch v := o.(type) {
	case Word:
		return v, nil
	case []Outcome:
		return Word(v), nil
	case string:
		w := make(Word, 0, len(v))
		for _, r := range v {
			w = append(w, string(r))
		}

		return w, nil
	default:
		return nil, errors.Wrapf(ErrNotAWord, "cannot use %T as a word", o)
	}
}
