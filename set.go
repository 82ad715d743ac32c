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

package seq

// Set algebra over comparable elements. Results keep first-occurrence
// order and hold every element at most once, so each operation is
// idempotent over its own output.

// Distinct returns the elements of src with duplicates removed.
func Distinct[T comparable](src []T) []T {
	seen := make(map[T]struct{}, len(src))
	var out []T
	for i := range src {
		if _, ok := seen[src[i]]; ok {
			continue
		}
		seen[src[i]] = struct{}{}
		out = append(out, src[i])
	}
	return out
}

// Union returns the distinct elements present in a or b, the elements
// of a first.
func Union[T comparable](a, b []T) []T {
	seen := make(map[T]struct{}, len(a)+len(b))
	var out []T
	for _, src := range [][]T{a, b} {
		for i := range src {
			if _, ok := seen[src[i]]; ok {
				continue
			}
			seen[src[i]] = struct{}{}
			out = append(out, src[i])
		}
	}
	return out
}

// Intersect returns the distinct elements of a also present in b.
func Intersect[T comparable](a, b []T) []T {
	other := make(map[T]struct{}, len(b))
	for i := range b {
		other[b[i]] = struct{}{}
	}
	emitted := make(map[T]struct{}, len(a))
	var out []T
	for i := range a {
		if _, ok := other[a[i]]; !ok {
			continue
		}
		if _, ok := emitted[a[i]]; ok {
			continue
		}
		emitted[a[i]] = struct{}{}
		out = append(out, a[i])
	}
	return out
}

// Except returns the distinct elements of a not present in b.
func Except[T comparable](a, b []T) []T {
	other := make(map[T]struct{}, len(b))
	for i := range b {
		other[b[i]] = struct{}{}
	}
	emitted := make(map[T]struct{}, len(a))
	var out []T
	for i := range a {
		if _, ok := other[a[i]]; ok {
			continue
		}
		if _, ok := emitted[a[i]]; ok {
			continue
		}
		emitted[a[i]] = struct{}{}
		out = append(out, a[i])
	}
	return out
}
