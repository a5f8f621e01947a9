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
	"fmt"
	"strings"
)

// Outcome is a single possible observed value of a distribution's
// sample space. Equality between outcomes is structural: two
// outcomes coincide when their type and printed value coincide,
// with words compared symbol by symbol.
type Outcome any

// Word is a joint outcome, holding one symbol per random variable
// position.
type Word []Outcome

// Alphabet is the set of symbols usable at one position of a word.
type Alphabet []Outcome

// outcomeKey gives the canonical form under which outcomes are
// compared for uniqueness and lookup.
func outcomeKey(o Outcome) string {
	switch v := o.(type) {
	case Word:
		parts := make([]string, len(v))
		for i, s := range v {
			parts[i] = outcomeKey(s)
		}

		return "(" + strings.Join(parts, ",") + ")"
	default:
		return fmt.Sprintf("%T(%v)", o, o)
	}
}
