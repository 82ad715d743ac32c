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
	"math/rand"
	"testing"

	"golang.org/x/exp/slices"
)

type record struct {
	letter string
	number int
}

func TestOrderByThenBy(t *testing.T) {
	src := []record{{"A", 2}, {"B", 1}, {"A", 1}}
	got := ThenBy(By(src, func(r record) string { return r.letter }),
		func(r record) int { return r.number }).Materialize()

	expected := []record{{"A", 1}, {"A", 2}, {"B", 1}}
	if !slices.Equal(got, expected) {
		t.Errorf("got %v, expected %v", got, expected)
	}
	// the source is never mutated
	if !slices.Equal(src, []record{{"A", 2}, {"B", 1}, {"A", 1}}) {
		t.Errorf("source mutated: %v", src)
	}
}

func TestOrderByDirections(t *testing.T) {
	src := []record{{"A", 2}, {"B", 1}, {"A", 1}, {"B", 3}, {"A", 3}}

	got := ThenByDescending(ByDescending(src, func(r record) string { return r.letter }),
		func(r record) int { return r.number }).Materialize()
	expected := []record{{"B", 3}, {"B", 1}, {"A", 3}, {"A", 2}, {"A", 1}}
	if !slices.Equal(got, expected) {
		t.Errorf("desc/desc: got %v, expected %v", got, expected)
	}

	got = ThenByDescending(By(src, func(r record) string { return r.letter }),
		func(r record) int { return r.number }).Materialize()
	expected = []record{{"A", 3}, {"A", 2}, {"A", 1}, {"B", 3}, {"B", 1}}
	if !slices.Equal(got, expected) {
		t.Errorf("asc/desc: got %v, expected %v", got, expected)
	}
}

// Elements with unequal primary keys must keep their primary-sort
// relative order regardless of the secondary key, and equal-primary
// elements are ordered solely by the secondary key.
func TestComposedKeyLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	for iter := 0; iter < 100; iter++ {
		n := rng.Intn(200)
		src := make([]record, n)
		for i := range src {
			src[i] = record{
				letter: string(rune('a' + rng.Intn(5))),
				number: rng.Intn(10),
			}
		}
		got := ThenBy(By(src, func(r record) string { return r.letter }),
			func(r record) int { return r.number }).Materialize()

		if len(got) != len(src) {
			t.Fatalf("iter %d: length changed", iter)
		}
		for i := 1; i < len(got); i++ {
			a, b := got[i-1], got[i]
			if a.letter > b.letter {
				t.Fatalf("iter %d: primary keys out of order at %d: %v", iter, i, got)
			}
			if a.letter == b.letter && a.number > b.number {
				t.Fatalf("iter %d: secondary keys out of order at %d: %v", iter, i, got)
			}
		}
	}
}

func TestThirdKeyOnlyBreaksSecondTies(t *testing.T) {
	type triple struct{ a, b, c int }
	src := []triple{
		{1, 2, 9}, {1, 1, 8}, {1, 2, 7}, {0, 5, 6}, {1, 1, 5},
	}
	o := By(src, func(t triple) int { return t.a })
	o = ThenBy(o, func(t triple) int { return t.b })
	o = ThenBy(o, func(t triple) int { return t.c })
	got := o.Materialize()

	expected := []triple{
		{0, 5, 6}, {1, 1, 5}, {1, 1, 8}, {1, 2, 7}, {1, 2, 9},
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("got %v, expected %v", got, expected)
		}
	}
}

// Run detection uses the previous stage's key, so elements that are
// distinct values but share the primary key must land in one run and
// be reordered by the secondary key.
func TestRunDetectionUsesKeys(t *testing.T) {
	src := []record{{"A", 3}, {"A", 1}, {"A", 2}}
	got := ThenBy(By(src, func(r record) string { return r.letter }),
		func(r record) int { return r.number }).Materialize()
	expected := []record{{"A", 1}, {"A", 2}, {"A", 3}}
	if !slices.Equal(got, expected) {
		t.Errorf("got %v, expected %v", got, expected)
	}
}

func TestEachRunPartitionsExactly(t *testing.T) {
	testcases := []struct {
		input    []int
		expected []span
	}{
		{input: []int{}, expected: nil},
		{input: []int{1}, expected: []span{{0, 0}}},
		{input: []int{1, 1, 1}, expected: []span{{0, 2}}},
		{input: []int{1, 2, 3}, expected: []span{{0, 0}, {1, 1}, {2, 2}}},
		{input: []int{1, 1, 2, 3, 3, 3}, expected: []span{{0, 1}, {2, 2}, {3, 5}}},
	}
	same := func(a, b int) bool { return a == b }
	for i := range testcases {
		tc := &testcases[i]
		var got []span
		eachRun(tc.input, 0, len(tc.input)-1, same, func(lo, hi int) {
			got = append(got, span{lo, hi})
		})
		if !slices.Equal(got, tc.expected) {
			t.Errorf("case %d: got %v, expected %v", i, got, tc.expected)
		}
	}
}

func TestMaterializeEmpty(t *testing.T) {
	got := By([]int{}, ident).Materialize()
	if len(got) != 0 {
		t.Errorf("got %v", got)
	}
}
