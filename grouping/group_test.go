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

package grouping

import (
	"math/rand"
	"strconv"
	"testing"

	"golang.org/x/exp/slices"
)

func TestByFirstSeenOrder(t *testing.T) {
	got := By([]int{1, 2, 3, 4, 5, 6}, func(n int) int { return n % 2 })

	if len(got) != 2 {
		t.Fatalf("got %d groups", len(got))
	}
	if got[0].Key != 1 || !slices.Equal(got[0].Items, []int{1, 3, 5}) {
		t.Errorf("first group: %+v", got[0])
	}
	if got[1].Key != 0 || !slices.Equal(got[1].Items, []int{2, 4, 6}) {
		t.Errorf("second group: %+v", got[1])
	}
}

func TestByEmpty(t *testing.T) {
	got := By([]int{}, func(n int) int { return n })
	if len(got) != 0 {
		t.Errorf("got %v", got)
	}
}

// Every source element must land in exactly one group, groups must
// appear in first-seen-key order, and elements must keep their source
// encounter order within each group.
func TestByPartitionLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for iter := 0; iter < 100; iter++ {
		n := rng.Intn(300)
		src := make([]int, n)
		for i := range src {
			src[i] = rng.Intn(1000)
		}
		key := func(n int) int { return n % 7 }
		groups := By(src, key)

		total := 0
		firstSeen := make(map[int]int) // key -> source index of first occurrence
		for i, v := range src {
			if _, ok := firstSeen[key(v)]; !ok {
				firstSeen[key(v)] = i
			}
		}
		prev := -1
		for _, g := range groups {
			total += len(g.Items)
			for _, v := range g.Items {
				if key(v) != g.Key {
					t.Fatalf("iter %d: element %d in group %d", iter, v, g.Key)
				}
			}
			at, ok := firstSeen[g.Key]
			if !ok {
				t.Fatalf("iter %d: unknown key %d", iter, g.Key)
			}
			if at <= prev {
				t.Fatalf("iter %d: groups not in first-seen order", iter)
			}
			prev = at
		}
		if total != n {
			t.Fatalf("iter %d: %d elements grouped, expected %d", iter, total, n)
		}
	}
}

func TestProject(t *testing.T) {
	got := Project([]int{10, 21, 32}, func(n int) int { return n % 10 },
		func(n int) string { return strconv.Itoa(n) })
	if len(got) != 3 {
		t.Fatalf("got %d groups", len(got))
	}
	if got[1].Key != 1 || !slices.Equal(got[1].Items, []string{"21"}) {
		t.Errorf("got %+v", got[1])
	}
}

func TestLookup(t *testing.T) {
	l := Index([]string{"ant", "bee", "ape", "cow", "bat"},
		func(s string) byte { return s[0] })

	if l.Len() != 3 {
		t.Fatalf("got %d groups", l.Len())
	}
	if g := l.Get('a'); !slices.Equal(g.Items, []string{"ant", "ape"}) {
		t.Errorf("a: %+v", g)
	}
	// absent keys yield an empty group, never an error
	if g := l.Get('z'); g.Key != 'z' || len(g.Items) != 0 {
		t.Errorf("z: %+v", g)
	}
	if l.Contains('z') || !l.Contains('b') {
		t.Error("Contains is wrong")
	}

	var keys []byte
	for _, g := range l.Groups() {
		keys = append(keys, g.Key)
	}
	if !slices.Equal(keys, []byte{'a', 'b', 'c'}) {
		t.Errorf("iteration order: %q", keys)
	}
}
