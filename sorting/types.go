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

package sorting

import (
	"golang.org/x/exp/constraints"
)

// Direction encodes a sorting direction (SQL: ASC/DESC).
//
// The numeric values are chosen so that multiplying a three-way
// comparison result by the direction flips the comparison for
// descending sorts.
type Direction int

const (
	Ascending  Direction = 1  // sort ascending
	Descending Direction = -1 // sort descending
)

// Comparison is a three-way total-order comparison over keys:
// negative when a orders before b, zero when the keys are equal,
// positive when a orders after b.
//
// A Comparison must be a valid total order; the engine does not
// detect violations.
type Comparison[K any] func(a, b K) int

// Natural returns the Comparison realizing the natural order of K.
func Natural[K constraints.Ordered]() Comparison[K] {
	return func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}
