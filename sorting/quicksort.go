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
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sort sorts items in place by the natural order of the projected key.
func Sort[T any, K constraints.Ordered](items []T, key func(T) K, dir Direction) {
	SortFunc(items, key, Natural[K](), dir)
}

// SortFunc sorts items in place by the projected key under cmp.
//
// The sort is not guaranteed to be stable.
func SortFunc[T any, K any](items []T, key func(T) K, cmp Comparison[K], dir Direction) {
	if len(items) > 1 {
		sortRange(items, key, cmp, dir, 0, len(items)-1)
	}
}

// SortRange sorts the inclusive index range items[start:end+1] in place
// by the natural order of the projected key. Elements outside the range
// are untouched.
func SortRange[T any, K constraints.Ordered](items []T, key func(T) K, dir Direction, start, end int) {
	SortRangeFunc(items, key, Natural[K](), dir, start, end)
}

// SortRangeFunc sorts the inclusive index range items[start:end+1] in
// place by the projected key under cmp. Elements outside the range are
// untouched. An empty range (start > end) is a no-op; a range that lies
// outside the slice bounds is a programming error and panics.
func SortRangeFunc[T any, K any](items []T, key func(T) K, cmp Comparison[K], dir Direction, start, end int) {
	if start > end {
		return
	}
	if start < 0 || end >= len(items) {
		panic(fmt.Sprintf("sorting: range [%d,%d] out of bounds for %d items", start, end, len(items)))
	}
	sortRange(items, key, cmp, dir, start, end)
}

// Ranges shorter than this are finished with an insertion sort
// instead of further partitioning.
const insertionCutoff = 12

// sortRange is the partition-exchange engine. It assumes the range
// has been validated by the caller.
func sortRange[T any, K any](items []T, key func(T) K, cmp Comparison[K], dir Direction, left, right int) {
	for right-left >= insertionCutoff {
		mid := medianOfThree(items, key, cmp, left, (left+right)/2, right)

		// Snapshot the pivot key: the pivot element itself may move
		// during partitioning.
		pivot := key(items[mid])

		i, j := partition(items, key, cmp, dir, pivot, left, right)

		// Recurse into the smaller side and iterate on the larger so
		// the stack stays logarithmic in the range length. Indices in
		// (j, i) already hold keys equal to the pivot and are settled.
		if j-left < right-i {
			if left < j {
				sortRange(items, key, cmp, dir, left, j)
			}
			left = i
		} else {
			if i < right {
				sortRange(items, key, cmp, dir, i, right)
			}
			right = j
		}
	}
	insertionSort(items, key, cmp, dir, left, right)
}

// partition splits items[left:right+1] around the pivot key using
// inward-running scans (Hoare). On return every index < i holds a key
// that does not order after the pivot and every index > j holds a key
// that does not order before it, with j < i.
func partition[T any, K any](items []T, key func(T) K, cmp Comparison[K], dir Direction, pivot K, left, right int) (int, int) {
	for left <= right {
		for int(dir)*cmp(key(items[left]), pivot) < 0 {
			left++
		}
		for int(dir)*cmp(key(items[right]), pivot) > 0 {
			right--
		}
		if left <= right {
			items[left], items[right] = items[right], items[left]
			left++
			right--
		}
	}
	return left, right
}

// medianOfThree returns whichever of the indices l, m, r projects to
// the median key. The direction is irrelevant here: the median of
// three keys is the same under a reversed order.
func medianOfThree[T any, K any](items []T, key func(T) K, cmp Comparison[K], l, m, r int) int {
	a, b, c := key(items[l]), key(items[m]), key(items[r])
	if cmp(a, b) < 0 {
		switch {
		case cmp(b, c) < 0:
			return m
		case cmp(a, c) < 0:
			return r
		default:
			return l
		}
	}
	switch {
	case cmp(a, c) < 0:
		return l
	case cmp(b, c) < 0:
		return r
	default:
		return m
	}
}

func insertionSort[T any, K any](items []T, key func(T) K, cmp Comparison[K], dir Direction, left, right int) {
	for i := left + 1; i <= right; i++ {
		for j := i; j > left && int(dir)*cmp(key(items[j]), key(items[j-1])) < 0; j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}
