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

func TestTopFixed(t *testing.T) {
	src := []int{5, 1, 4, 2, 3}

	got := By(src, ident).Top(3)
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v", got)
	}

	got = ByDescending(src, ident).Top(2)
	if !slices.Equal(got, []int{5, 4}) {
		t.Errorf("descending: got %v", got)
	}

	if got = By(src, ident).Top(0); len(got) != 0 {
		t.Errorf("k=0: got %v", got)
	}
	if got = By(src, ident).Top(100); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("k>len: got %v", got)
	}
}

func TestTopMatchesMaterialize(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for iter := 0; iter < 100; iter++ {
		n := rng.Intn(200)
		src := make([]int, n)
		for i := range src {
			// spread the keys out so ties cannot make the
			// comparison with Materialize ambiguous
			src[i] = rng.Intn(1 << 30)
		}
		k := rng.Intn(n + 1)

		top := By(src, ident).Top(k)
		full := By(src, ident).Materialize()
		if !slices.Equal(top, full[:k]) {
			t.Fatalf("iter %d: Top(%d) = %v, expected %v", iter, k, top, full[:k])
		}
	}
}

func TestTopMultiKey(t *testing.T) {
	src := []record{{"B", 1}, {"A", 2}, {"A", 1}, {"C", 0}}
	got := ThenBy(By(src, func(r record) string { return r.letter }),
		func(r record) int { return r.number }).Top(2)
	expected := []record{{"A", 1}, {"A", 2}}
	if !slices.Equal(got, expected) {
		t.Errorf("got %v, expected %v", got, expected)
	}
}
