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
	"github.com/SnellerInc/seq/heap"
)

// Top returns the k elements of the source that order first under the
// staged keys, in order, without sorting the whole source. A k at or
// above the source length is equivalent to Materialize; a k of zero or
// less yields an empty slice. The source slice is never mutated.
//
// Ties at the cut-off are broken arbitrarily.
func (o *Ordering[T]) Top(k int) []T {
	if k <= 0 {
		return []T{}
	}
	if k >= len(o.src) {
		return o.Materialize()
	}

	// kept holds the k best candidates seen so far; indirect is their
	// heap ordering with the current worst candidate at the root, so
	// re-ordering the heap never swaps whole elements.
	kept := make([]T, 0, k)
	indirect := make([]int, 0, k)
	worse := func(a, b int) bool {
		return o.compareItems(kept[a], kept[b]) > 0
	}

	for i := range o.src {
		if len(kept) < k {
			kept = append(kept, o.src[i])
			heap.PushSlice(&indirect, len(kept)-1, worse)
			continue
		}
		// replace the worst candidate when beaten, then re-establish
		// the heap ordering
		if o.compareItems(kept[indirect[0]], o.src[i]) > 0 {
			kept[indirect[0]] = o.src[i]
			heap.FixSlice(indirect, 0, worse)
		}
	}

	out := make([]T, len(indirect))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = kept[heap.PopSlice(&indirect, worse)]
	}
	return out
}
