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

// Package sample includes samplers for sampling random
// probability mass vectors.
//
// Package sample provides the Sampler interface along with
// implementations of this interface, and the random sources
// that drive them. Sources are compatible with the gonum
// distribution generators, so any golang.org/x/exp/rand.Source
// can be plugged in; when none is given the samplers fall back
// to a process-wide seedable default.
package sample
