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

// Lookup is an immutable multi-map from key to Group. It is fully
// built by Index or IndexProject and never modified afterwards; point
// queries are O(1) amortized and full iteration runs in first-seen-key
// order.
type Lookup[K comparable, E any] struct {
	groups []Group[K, E]
	index  map[K]int
}

// Index builds a Lookup over src keyed by the projected key.
func Index[T any, K comparable](src []T, key func(T) K) *Lookup[K, T] {
	return IndexProject(src, key, func(v T) T { return v })
}

// IndexProject builds a Lookup like Index with every element mapped
// through elem.
func IndexProject[T any, K comparable, E any](src []T, key func(T) K, elem func(T) E) *Lookup[K, E] {
	groups := Project(src, key, elem)
	index := make(map[K]int, len(groups))
	for i := range groups {
		index[groups[i].Key] = i
	}
	return &Lookup[K, E]{groups: groups, index: index}
}

// Get returns the group stored under k. An absent key yields an empty
// group carrying k, never an error.
func (l *Lookup[K, E]) Get(k K) Group[K, E] {
	if i, ok := l.index[k]; ok {
		return l.groups[i]
	}
	return Group[K, E]{Key: k}
}

// Contains reports whether k has a group.
func (l *Lookup[K, E]) Contains(k K) bool {
	_, ok := l.index[k]
	return ok
}

// Len returns the number of groups.
func (l *Lookup[K, E]) Len() int {
	return len(l.groups)
}

// Groups returns all groups in first-seen-key order. The returned
// slice is owned by the Lookup; callers must not modify it.
func (l *Lookup[K, E]) Groups() []Group[K, E] {
	return l.groups
}
