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

// span is an inclusive index range.
type span struct {
	start, end int
}

// eachRun invokes fn once per maximal run of adjacent elements of
// items[start:end+1] whose keys compare equal under same. The runs
// partition the range exactly: every index in it belongs to exactly
// one reported run.
//
// same must test equality of the keys that produced the current
// ordering of the range, never whole-element equality; otherwise runs
// are mis-detected whenever two distinct elements share a key.
func eachRun[T any](items []T, start, end int, same func(a, b T) bool, fn func(start, end int)) {
	lo := start
	for i := start + 1; i <= end; i++ {
		if !same(items[lo], items[i]) {
			fn(lo, i-1)
			lo = i
		}
	}
	if lo <= end {
		fn(lo, end)
	}
}
