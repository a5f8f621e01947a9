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

import "github.com/heleibin/dit/data"

// Dist is the interface shared by every distribution kind.
type Dist interface {
	// Len returns the number of outcomes.
	Len() int
	// Outcomes returns the outcomes in their declared order.
	Outcomes() []Outcome
	// PMF returns a copy of the probability mass vector.
	PMF() data.Vector
	// SetPMF replaces the probability mass vector.
	SetPMF(pmf []float64) error
	// Base returns the base interpreting the stored mass values.
	Base() Base
	// WithOutcomes returns a distribution of the same kind with the
	// outcomes replaced and the mass vector and base kept.
	WithOutcomes(outcomes []Outcome) (Dist, error)
}

// ModifyOutcomes returns d with every outcome passed through ctor,
// in order, keeping the mass values and the base. The result has
// the same concrete kind as d. A transform mapping two outcomes to
// the same value surfaces the kind's own duplicate-outcome error;
// no deduplication happens here.
func ModifyOutcomes(d Dist, ctor func(Outcome) Outcome) (Dist, error) {
	outcomes := make([]Outcome, 0, d.Len())
	for _, o := range d.Outcomes() {
		outcomes = append(outcomes, ctor(o))
	}

	return d.WithOutcomes(outcomes)
}
