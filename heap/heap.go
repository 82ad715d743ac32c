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

// Package heap implements min-heap operations over plain slices.
//
// The heap invariant is determined entirely by the comparison function
// passed to each call; callers must pass an equivalent comparison to
// every operation on the same slice. With less inverted, the same
// functions maintain a max-heap.
package heap

// PushSlice appends item to x and restores the heap invariant.
func PushSlice[T any](x *[]T, item T, less func(a, b T) bool) {
	*x = append(*x, item)
	up(*x, len(*x)-1, less)
}

// PopSlice removes and returns x[0], the least element under less.
// The slice must be non-empty.
func PopSlice[T any](x *[]T, less func(a, b T) bool) T {
	old := *x
	top := old[0]
	old[0] = old[len(old)-1]
	*x = old[:len(old)-1]
	if len(*x) > 1 {
		down(*x, 0, less)
	}
	return top
}

// FixSlice restores the heap invariant after x[i] changed value.
func FixSlice[T any](x []T, i int, less func(a, b T) bool) {
	down(x, i, less)
	up(x, i, less)
}

func up[T any](x []T, i int, less func(a, b T) bool) {
	for i > 0 {
		parent := (i - 1) / 2
		if !less(x[i], x[parent]) {
			return
		}
		x[i], x[parent] = x[parent], x[i]
		i = parent
	}
}

func down[T any](x []T, i int, less func(a, b T) bool) {
	for {
		kid := 2*i + 1
		if kid >= len(x) {
			return
		}
		if right := kid + 1; right < len(x) && less(x[right], x[kid]) {
			kid = right
		}
		if !less(x[kid], x[i]) {
			return
		}
		x[i], x[kid] = x[kid], x[i]
		i = kid
	}
}
