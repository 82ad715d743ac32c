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

import (
	"golang.org/x/exp/constraints"
)

// Number constrains the element types Sum accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of src; an empty src sums to zero.
func Sum[T Number](src []T) T {
	var total T
	for i := range src {
		total += src[i]
	}
	return total
}

// Min returns the least element of src, or ErrEmptySequence.
func Min[T constraints.Ordered](src []T) (T, error) {
	if len(src) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	least := src[0]
	for _, v := range src[1:] {
		if v < least {
			least = v
		}
	}
	return least, nil
}

// Max returns the greatest element of src, or ErrEmptySequence.
func Max[T constraints.Ordered](src []T) (T, error) {
	if len(src) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	greatest := src[0]
	for _, v := range src[1:] {
		if v > greatest {
			greatest = v
		}
	}
	return greatest, nil
}

// Aggregate folds src left to right starting from seed, visiting each
// element exactly once.
func Aggregate[T any, A any](src []T, seed A, fn func(A, T) A) A {
	acc := seed
	for i := range src {
		acc = fn(acc, src[i])
	}
	return acc
}
