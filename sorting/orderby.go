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

// stage is one key of a multi-key ordering with its key selector,
// comparator and direction baked into closures.
type stage[T any] struct {
	// compare is the direction-adjusted three-way comparison of two
	// elements by this stage's key.
	compare func(a, b T) int
	// sort runs the partition-exchange engine on items[start:end+1]
	// using this stage's key, comparator and direction.
	sort func(items []T, start, end int)
}

func newStage[T any, K any](key func(T) K, cmp Comparison[K], dir Direction) stage[T] {
	return stage[T]{
		compare: func(a, b T) int {
			return int(dir) * cmp(key(a), key(b))
		},
		sort: func(items []T, start, end int) {
			sortRange(items, key, cmp, dir, start, end)
		},
	}
}

// Ordering is a staged multi-key sort specification over a source
// slice. It is created with By, ByFunc, ByDescending or
// ByDescendingFunc, optionally extended with the ThenBy family, and
// realized with Materialize or Top. The source slice is never mutated.
type Ordering[T any] struct {
	src    []T
	stages []stage[T]
}

// By starts an ordering of src ascending by the natural order of the
// projected key.
func By[T any, K constraints.Ordered](src []T, key func(T) K) *Ordering[T] {
	return ByFunc(src, key, Natural[K]())
}

// ByFunc starts an ordering of src ascending by the projected key
// under cmp.
func ByFunc[T any, K any](src []T, key func(T) K, cmp Comparison[K]) *Ordering[T] {
	return &Ordering[T]{src: src, stages: []stage[T]{newStage(key, cmp, Ascending)}}
}

// ByDescending starts an ordering of src descending by the natural
// order of the projected key.
func ByDescending[T any, K constraints.Ordered](src []T, key func(T) K) *Ordering[T] {
	return ByDescendingFunc(src, key, Natural[K]())
}

// ByDescendingFunc starts an ordering of src descending by the
// projected key under cmp.
func ByDescendingFunc[T any, K any](src []T, key func(T) K, cmp Comparison[K]) *Ordering[T] {
	return &Ordering[T]{src: src, stages: []stage[T]{newStage(key, cmp, Descending)}}
}

// ThenBy appends an ascending natural-order tiebreaker key to o.
// It only ever reorders elements whose keys compare equal under all
// preceding stages.
func ThenBy[T any, K constraints.Ordered](o *Ordering[T], key func(T) K) *Ordering[T] {
	return ThenByFunc(o, key, Natural[K]())
}

// ThenByFunc appends an ascending tiebreaker key under cmp to o.
func ThenByFunc[T any, K any](o *Ordering[T], key func(T) K, cmp Comparison[K]) *Ordering[T] {
	o.stages = append(o.stages, newStage(key, cmp, Ascending))
	return o
}

// ThenByDescending appends a descending natural-order tiebreaker key
// to o.
func ThenByDescending[T any, K constraints.Ordered](o *Ordering[T], key func(T) K) *Ordering[T] {
	return ThenByDescendingFunc(o, key, Natural[K]())
}

// ThenByDescendingFunc appends a descending tiebreaker key under cmp
// to o.
func ThenByDescendingFunc[T any, K any](o *Ordering[T], key func(T) K, cmp Comparison[K]) *Ordering[T] {
	o.stages = append(o.stages, newStage(key, cmp, Descending))
	return o
}

// Materialize returns a freshly allocated copy of the source ordered
// by the staged keys. The result is always a permutation of the
// source.
func (o *Ordering[T]) Materialize() []T {
	out := make([]T, len(o.src))
	copy(out, o.src)
	o.Apply(out)
	return out
}

// Apply sorts items in place by the staged keys: the first stage
// orders the whole slice, and every later stage resorts, in
// confinement, each maximal run of elements left equal by the stage
// before it. Runs of length one need no work and are dropped from
// consideration; they can never be subdivided further.
func (o *Ordering[T]) Apply(items []T) {
	if len(items) < 2 {
		return
	}
	o.stages[0].sort(items, 0, len(items)-1)

	runs := []span{{start: 0, end: len(items) - 1}}
	for s := 1; s < len(o.stages); s++ {
		prev, cur := &o.stages[s-1], &o.stages[s]
		same := func(a, b T) bool {
			return prev.compare(a, b) == 0
		}
		var next []span
		for _, r := range runs {
			eachRun(items, r.start, r.end, same, func(lo, hi int) {
				if lo < hi {
					cur.sort(items, lo, hi)
					next = append(next, span{start: lo, end: hi})
				}
			})
		}
		runs = next
	}
}

// compareItems is the composed multi-key comparison: the first stage
// with a non-equal result decides.
func (o *Ordering[T]) compareItems(a, b T) int {
	for i := range o.stages {
		if r := o.stages[i].compare(a, b); r != 0 {
			return r
		}
	}
	return 0
}
