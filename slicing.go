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

// Skip returns a fresh slice holding the elements of src after the
// first n. Skipping more than len(src) yields an empty result, never
// an error; n <= 0 copies the whole source.
func Skip[T any](src []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(src) {
		n = len(src)
	}
	out := make([]T, len(src)-n)
	copy(out, src[n:])
	return out
}

// Take returns a fresh slice holding the first n elements of src.
// Taking more than len(src) yields a copy of the whole source, never
// an error; n <= 0 yields an empty result.
func Take[T any](src []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(src) {
		n = len(src)
	}
	out := make([]T, n)
	copy(out, src[:n])
	return out
}
