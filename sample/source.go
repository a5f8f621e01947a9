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
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

// Sampler is the interface implemented by samplers that
// produce probability mass vectors.
type Sampler interface {
	Sample() ([]float64, error)
}

// Source generates the raw randomness driving a sampler. It is
// the same contract the gonum distribution generators consume.
type Source = rand.Source

var (
	defaultMu  sync.Mutex
	defaultSrc *lockedSource
)

// Default returns the process-wide random source. It is created on
// first use, backed by a Mersenne Twister generator seeded from the
// clock. Samplers use it whenever no explicit Source is supplied.
func Default() Source {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultSrc == nil {
		defaultSrc = newLockedSource(uint64(time.Now().UnixNano()))
	}

	return defaultSrc
}

// Seed replaces the process-wide default source with a fresh
// generator seeded with s. Seeding before the first draw makes
// every subsequent default-source sample reproducible.
func Seed(s uint64) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultSrc = newLockedSource(s)
}

func newLockedSource(seed uint64) *lockedSource {
	src := prng.NewMT19937()
	src.Seed(seed)

	return &lockedSource{src: src}
}

// lockedSource guards a generator with a mutex so the shared
// default can be drawn from by multiple goroutines.
type lockedSource struct {
	mu  sync.Mutex
	src *prng.MT19937
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.src.Seed(seed)
}
