// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package grouping

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/dchest/siphash"
)

// Seed carries the keys of a randomly keyed siphash function for
// hashing byte-encoded grouping keys. Hashes from different Seeds are
// not comparable.
type Seed struct {
	k0, k1 uint64
}

// NewSeed returns a Seed with fresh random keys.
func NewSeed() Seed {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("grouping: cannot read hash seed: " + err.Error())
	}
	return Seed{
		k0: binary.LittleEndian.Uint64(buf[:8]),
		k1: binary.LittleEndian.Uint64(buf[8:]),
	}
}

// Hash hashes b under the seed keys.
func (s Seed) Hash(b []byte) uint64 {
	return siphash.Hash(s.k0, s.k1, b)
}

// ByHash partitions src like Project for key types that cannot serve
// as Go map keys. hash must be consistent with eq: keys equal under eq
// must hash identically. Collisions are resolved by chaining through
// eq, so an imperfect hash affects speed, never the outcome.
func ByHash[T any, K any, E any](src []T, key func(T) K, elem func(T) E, hash func(K) uint64, eq func(K, K) bool) []Group[K, E] {
	var groups []Group[K, E]
	buckets := make(map[uint64][]int, len(src))
	for i := range src {
		k := key(src[i])
		h := hash(k)
		at := -1
		for _, gi := range buckets[h] {
			if eq(groups[gi].Key, k) {
				at = gi
				break
			}
		}
		if at < 0 {
			at = len(groups)
			groups = append(groups, Group[K, E]{Key: k})
			buckets[h] = append(buckets[h], at)
		}
		groups[at].Items = append(groups[at].Items, elem(src[i]))
	}
	return groups
}

// JoinHash computes the same inner join as Join for key types that
// cannot serve as Go map keys, with hash and eq as in ByHash. A key
// recurring in inner overwrites its probe-table slot, so the later
// element wins.
func JoinHash[T any, U any, K any, R any](outer []T, inner []U, outerKey func(T) K, innerKey func(U) K, project func(T, U) R, hash func(K) uint64, eq func(K, K) bool) []R {
	type entry struct {
		key K
		val U
	}
	var entries []entry
	buckets := make(map[uint64][]int, len(inner))
	for i := range inner {
		k := innerKey(inner[i])
		h := hash(k)
		at := -1
		for _, ei := range buckets[h] {
			if eq(entries[ei].key, k) {
				at = ei
				break
			}
		}
		if at >= 0 {
			entries[at].val = inner[i]
			continue
		}
		buckets[h] = append(buckets[h], len(entries))
		entries = append(entries, entry{key: k, val: inner[i]})
	}
	var out []R
	for i := range outer {
		k := outerKey(outer[i])
		for _, ei := range buckets[hash(k)] {
			if eq(entries[ei].key, k) {
				out = append(out, project(outer[i], entries[ei].val))
				break
			}
		}
	}
	return out
}
