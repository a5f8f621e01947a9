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

// Package dist implements discrete probability distributions and
// convenience constructors for them.
//
// A Distribution pairs an ordered set of unique outcomes with a
// parallel probability mass vector and a declared base. A
// JointDistribution restricts the outcomes to fixed-length words,
// one symbol per random variable position.
//
// The constructors build uniform distributions over explicit or
// counted outcome sets, uniform joint distributions over the
// Cartesian product of per-position alphabets, distributions whose
// mass vector is drawn uniformly from the probability simplex, and
// copies with relabeled outcomes.
package dist
