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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// Deterministic is a Source whose output is the salsa20 keystream
// under a caller-supplied key. Two instances with the same key
// produce the same stream, which makes any sampler driven by it
// reproducible.
type Deterministic struct {
	key [32]byte
	ctr uint64
}

// NewDeterministic returns an instance of the Deterministic source.
// It accepts the 32 byte key determining the stream.
func NewDeterministic(key *[32]byte) *Deterministic {
	return &Deterministic{key: *key}
}

// Uint64 returns the next 8 bytes of the keystream as an integer.
func (d *Deterministic) Uint64() uint64 {
	var in, out, nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], d.ctr)
	d.ctr++

	salsa20.XORKeyStream(out[:], in[:], nonce[:], &d.key)

	return binary.LittleEndian.Uint64(out[:])
}

// Seed positions the stream at the given block, so reseeding with
// the same value replays the same sequence under the same key.
func (d *Deterministic) Seed(seed uint64) {
	d.ctr = seed
}
