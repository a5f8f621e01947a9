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

	"github.com/heleibin/dit/data"
	"github.com/heleibin/dit/sample"
)

// Random returns a distribution over the support whose mass vector
// is drawn uniformly from the probability simplex. The draw selects
// a random distribution, not a uniform one: every pmf of the given
// dimension is equally likely. A nil src selects the process-wide
// default source.
func Random(support Support, src sample.Source) (*Distribution, error) {
	d, err := Uniform(support)
	if err != nil {
		return nil, err
	}

	pmf, err := sample.NewSimplex(d.Len(), src).Sample()
	if err != nil {
		return nil, errors.Wrap(err, "cannot sample mass vector")
	}
	d.pmf = data.NewVector(pmf)

	return d, nil
}

// RandomJoint returns a joint distribution over the Cartesian
// product selected by wordLength and spec, with its mass vector
// drawn uniformly from the probability simplex. A nil src selects
// the process-wide default source.
func RandomJoint(wordLength int, spec AlphabetSpec, src sample.Source) (*JointDistribution, error) {
	d, err := UniformJoint(wordLength, spec)
	if err != nil {
		return nil, err
	}

	pmf, err := sample.NewSimplex(d.Len(), src).Sample()
	if err != nil {
		return nil, errors.Wrap(err, "cannot sample mass vector")
	}
	d.pmf = data.NewVector(pmf)

	return d, nil
}
