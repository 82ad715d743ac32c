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

// Package grouping partitions slices into key-addressed groups and
// joins slices on hashed keys.
//
// Grouping is a single linear pass: every source element lands in
// exactly one group, groups surface in the order their keys were first
// seen, and elements keep their source encounter order within a group.
// A Go map alone cannot provide the first two guarantees, since map
// iteration order is unspecified; the key order is tracked explicitly.
//
// Joining is probe-table based and inner-only: elements without a
// match on the other side are dropped.
package grouping

// Group is a key paired with the elements that produced it, in source
// encounter order.
type Group[K any, E any] struct {
	Key   K
	Items []E
}

// By partitions src into groups keyed by the projected key.
func By[T any, K comparable](src []T, key func(T) K) []Group[K, T] {
	return Project(src, key, func(v T) T { return v })
}

// Project partitions src like By and additionally maps every element
// through elem before appending it to its group.
func Project[T any, K comparable, E any](src []T, key func(T) K, elem func(T) E) []Group[K, E] {
	var groups []Group[K, E]
	index := make(map[K]int, len(src))
	for i := range src {
		k := key(src[i])
		at, ok := index[k]
		if !ok {
			// groups doubles as the first-seen key order
			at = len(groups)
			index[k] = at
			groups = append(groups, Group[K, E]{Key: k})
		}
		groups[at].Items = append(groups[at].Items, elem(src[i]))
	}
	return groups
}
