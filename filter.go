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

// Where returns the elements of src satisfying pred, in order, as a
// fresh slice.
func Where[T any](src []T, pred func(T) bool) []T {
	var out []T
	for i := range src {
		if pred(src[i]) {
			out = append(out, src[i])
		}
	}
	return out
}

// Map returns fn applied to every element of src, in order, as a
// fresh slice.
func Map[T any, R any](src []T, fn func(T) R) []R {
	out := make([]R, len(src))
	for i := range src {
		out[i] = fn(src[i])
	}
	return out
}

// Any reports whether src has at least one element.
func Any[T any](src []T) bool {
	return len(src) > 0
}

// AnyWhere reports whether any element of src satisfies pred.
func AnyWhere[T any](src []T, pred func(T) bool) bool {
	for i := range src {
		if pred(src[i]) {
			return true
		}
	}
	return false
}

// All reports whether every element of src satisfies pred. An empty
// src satisfies vacuously.
func All[T any](src []T, pred func(T) bool) bool {
	for i := range src {
		if !pred(src[i]) {
			return false
		}
	}
	return true
}

// Contains reports whether src holds v.
func Contains[T comparable](src []T, v T) bool {
	for i := range src {
		if src[i] == v {
			return true
		}
	}
	return false
}

// Count returns the number of elements in src.
func Count[T any](src []T) int {
	return len(src)
}

// CountWhere returns the number of elements of src satisfying pred.
func CountWhere[T any](src []T, pred func(T) bool) int {
	n := 0
	for i := range src {
		if pred(src[i]) {
			n++
		}
	}
	return n
}

// OfType returns the elements of src whose dynamic type is T, in
// order. Elements of any other type are skipped, not an error.
func OfType[T any](src []any) []T {
	var out []T
	for i := range src {
		if v, ok := src[i].(T); ok {
			out = append(out, v)
		}
	}
	return out
}
