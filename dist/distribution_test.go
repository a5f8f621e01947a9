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

package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heleibin/dit/dist"
)

func TestNew(t *testing.T) {
	d, err := dist.New([]float64{0.5, 0.25, 0.25}, []dist.Outcome{"a", "b", "c"}, dist.Linear)
	require.NoError(t, err)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []dist.Outcome{"a", "b", "c"}, d.Outcomes())
	assert.Equal(t, []float64{0.5, 0.25, 0.25}, []float64(d.PMF()))
	assert.True(t, d.Base().IsLinear())
	assert.Equal(t, "linear", d.Base().String())
}

func TestNew_Invalid(t *testing.T) {
	var tests = []struct {
		name     string
		pmf      []float64
		outcomes []dist.Outcome
		base     dist.Base
		expect   error
	}{
		{
			name:     "no outcomes",
			pmf:      []float64{},
			outcomes: []dist.Outcome{},
			base:     dist.Linear,
			expect:   dist.ErrOutcomeCount,
		},
		{
			name:     "length mismatch",
			pmf:      []float64{0.5, 0.5},
			outcomes: []dist.Outcome{"a"},
			base:     dist.Linear,
			expect:   dist.ErrLengthMismatch,
		},
		{
			name:     "duplicate outcome",
			pmf:      []float64{0.5, 0.5},
			outcomes: []dist.Outcome{"a", "a"},
			base:     dist.Linear,
			expect:   dist.ErrDuplicateOutcome,
		},
		{
			name:     "negative mass",
			pmf:      []float64{1.5, -0.5},
			outcomes: []dist.Outcome{"a", "b"},
			base:     dist.Linear,
			expect:   dist.ErrNegativeMass,
		},
		{
			name:     "mass not one",
			pmf:      []float64{0.3, 0.3},
			outcomes: []dist.Outcome{"a", "b"},
			base:     dist.Linear,
			expect:   dist.ErrMass,
		},
		{
			name:     "log base one",
			pmf:      []float64{-1, -1},
			outcomes: []dist.Outcome{"a", "b"},
			base:     dist.LogBase(1),
			expect:   dist.ErrBase,
		},
		{
			name:     "negative log base",
			pmf:      []float64{-1, -1},
			outcomes: []dist.Outcome{"a", "b"},
			base:     dist.LogBase(-2),
			expect:   dist.ErrBase,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := dist.New(test.pmf, test.outcomes, test.base)
			assert.ErrorIs(t, err, test.expect)
		})
	}
}

func TestNew_LogBase(t *testing.T) {
	// Mass values are log2 probabilities: 2^-1 + 2^-1 = 1.
	d, err := dist.New([]float64{-1, -1}, []dist.Outcome{"h", "t"}, dist.LogBase(2))
	require.NoError(t, err)

	assert.False(t, d.Base().IsLinear())
	b, ok := d.Base().LogValue()
	assert.True(t, ok)
	assert.Equal(t, 2.0, b)
	assert.Equal(t, "2", d.Base().String())

	p, ok := d.Prob("h")
	assert.True(t, ok)
	assert.Equal(t, -1.0, p)
}

func TestDistribution_Prob(t *testing.T) {
	d, err := dist.New([]float64{0.75, 0.25}, []dist.Outcome{"h", "t"}, dist.Linear)
	require.NoError(t, err)

	p, ok := d.Prob("h")
	assert.True(t, ok)
	assert.Equal(t, 0.75, p)

	_, ok = d.Prob("x")
	assert.False(t, ok)

	// Outcomes of a different type never match, even when they
	// print the same.
	_, ok = d.Prob(104)
	assert.False(t, ok)
}

func TestDistribution_SetPMF(t *testing.T) {
	d, err := dist.New([]float64{0.5, 0.5}, []dist.Outcome{"h", "t"}, dist.Linear)
	require.NoError(t, err)

	require.NoError(t, d.SetPMF([]float64{0.9, 0.1}))
	assert.Equal(t, []float64{0.9, 0.1}, []float64(d.PMF()))

	assert.ErrorIs(t, d.SetPMF([]float64{1}), dist.ErrLengthMismatch)
	assert.ErrorIs(t, d.SetPMF([]float64{0.9, 0.9}), dist.ErrMass)
	assert.Equal(t, []float64{0.9, 0.1}, []float64(d.PMF()), "a rejected pmf should leave the old one in place")
}

func TestDistribution_PMFIsACopy(t *testing.T) {
	d, err := dist.New([]float64{0.5, 0.5}, []dist.Outcome{"h", "t"}, dist.Linear)
	require.NoError(t, err)

	pmf := d.PMF()
	pmf[0] = 9

	assert.Equal(t, 0.5, d.PMF()[0], "mutating the returned pmf should not reach the distribution")
}

func TestDistribution_WithOutcomes(t *testing.T) {
	d, err := dist.New([]float64{0.5, 0.5}, []dist.Outcome{"h", "t"}, dist.Linear)
	require.NoError(t, err)

	renamed, err := d.WithOutcomes([]dist.Outcome{"heads", "tails"})
	require.NoError(t, err)

	assert.IsType(t, &dist.Distribution{}, renamed)
	assert.Equal(t, []dist.Outcome{"heads", "tails"}, renamed.Outcomes())
	assert.Equal(t, d.PMF(), renamed.PMF())
	assert.Equal(t, d.Base(), renamed.Base())

	_, err = d.WithOutcomes([]dist.Outcome{"same", "same"})
	assert.ErrorIs(t, err, dist.ErrDuplicateOutcome)
}
