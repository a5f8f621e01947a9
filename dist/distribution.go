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

	"github.com/pkg/errors"

	"github.com/heleibin/dit/data"
)

// massTol bounds how far the total mass may drift from 1 before a
// distribution is rejected.
const massTol = 1e-9

// Distribution is an ordered correspondence between a set of unique
// outcomes and a probability mass vector of equal length, together
// with the base interpreting the stored mass values.
type Distribution struct {
	outcomes []Outcome
	pmf      data.Vector
	base     Base
}

// New returns a Distribution pairing each outcome with the mass
// value at the same index. It returns an error when the lengths
// differ, an outcome repeats, the base is invalid, or the mass
// values are negative or do not sum to one.
func New(pmf []float64, outcomes []Outcome, base Base) (*Distribution, error) {
	if len(outcomes) == 0 {
		return nil, ErrOutcomeCount
	}
	if len(pmf) != len(outcomes) {
		return nil, errors.Wrapf(ErrLengthMismatch,
			"%d mass values for %d outcomes", len(pmf), len(outcomes))
	}
	if err := base.validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(outcomes))
	for _, o := range outcomes {
		k := outcomeKey(o)
		if _, ok := seen[k]; ok {
			return nil, errors.Wrapf(ErrDuplicateOutcome, "outcome %v repeats", o)
		}
		seen[k] = struct{}{}
	}

	v := data.NewVector(pmf).Copy()
	if err := checkMass(v, base); err != nil {
		return nil, err
	}

	return &Distribution{
		outcomes: append([]Outcome(nil), outcomes...),
		pmf:      v,
		base:     base,
	}, nil
}

func checkMass(v data.Vector, base Base) error {
	if base.IsLinear() {
		if v.Min() < 0 {
			return errors.Wrapf(ErrNegativeMass, "smallest mass is %v", v.Min())
		}
		if math.Abs(v.Sum()-1) > massTol {
			return errors.Wrapf(ErrMass, "mass sums to %v", v.Sum())
		}

		return nil
	}

	total := 0.0
	for _, p := range v {
		total += base.linear(p)
	}
	if math.Abs(total-1) > massTol {
		return errors.Wrapf(ErrMass, "mass sums to %v", total)
	}

	return nil
}

// Len returns the number of outcomes.
func (d *Distribution) Len() int {
	return len(d.outcomes)
}

// Outcomes returns the outcomes in their declared order.
func (d *Distribution) Outcomes() []Outcome {
	return append([]Outcome(nil), d.outcomes...)
}

// PMF returns a copy of the probability mass vector, index-aligned
// with Outcomes.
func (d *Distribution) PMF() data.Vector {
	return d.pmf.Copy()
}

// SetPMF replaces the probability mass vector. The replacement must
// have one value per outcome and carry valid total mass under the
// distribution's base.
func (d *Distribution) SetPMF(pmf []float64) error {
	if len(pmf) != len(d.outcomes) {
		return errors.Wrapf(ErrLengthMismatch,
			"%d mass values for %d outcomes", len(pmf), len(d.outcomes))
	}

	v := data.NewVector(pmf).Copy()
	if err := checkMass(v, d.base); err != nil {
		return err
	}

	d.pmf = v

	return nil
}

// Base returns the base interpreting the stored mass values.
func (d *Distribution) Base() Base {
	return d.base
}

// Prob returns the stored mass value of the given outcome. The
// second return value is false when the outcome is not part of the
// sample space.
func (d *Distribution) Prob(o Outcome) (float64, bool) {
	k := outcomeKey(o)
	for i, cand := range d.outcomes {
		if outcomeKey(cand) == k {
			return d.pmf[i], true
		}
	}

	return 0, false
}

// WithOutcomes returns a new Distribution with the outcomes
// replaced and the mass vector and base kept.
func (d *Distribution) WithOutcomes(outcomes []Outcome) (Dist, error) {
	return New(d.pmf, outcomes, d.base)
}
