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

// Join computes the inner hash join of outer and inner: a probe table
// is built from inner, then outer is streamed through it and every
// matched pair is mapped through project into the result, in outer
// encounter order. Outer elements without a match are dropped. When a
// key recurs in inner, the later element wins the probe-table slot.
func Join[T any, U any, K comparable, R any](outer []T, inner []U, outerKey func(T) K, innerKey func(U) K, project func(T, U) R) []R {
	probe := make(map[K]U, len(inner))
	for i := range inner {
		probe[innerKey(inner[i])] = inner[i]
	}
	var out []R
	for i := range outer {
		if match, ok := probe[outerKey(outer[i])]; ok {
			out = append(out, project(outer[i], match))
		}
	}
	return out
}
