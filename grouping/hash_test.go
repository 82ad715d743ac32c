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
	"strings"
	"testing"

	"golang.org/x/exp/slices"
)

// []byte keys cannot serve as Go map keys, so they exercise the
// hashed grouping path with a real non-comparable key type.

func TestByHash(t *testing.T) {
	seed := NewSeed()
	src := []string{"Ant", "bee", "ant", "Bee", "cow"}

	got := ByHash(src,
		func(s string) []byte { return []byte(strings.ToLower(s)) },
		func(s string) string { return s },
		func(k []byte) uint64 { return seed.Hash(k) },
		func(a, b []byte) bool { return string(a) == string(b) })

	if len(got) != 3 {
		t.Fatalf("got %d groups", len(got))
	}
	if string(got[0].Key) != "ant" || !slices.Equal(got[0].Items, []string{"Ant", "ant"}) {
		t.Errorf("first group: %+v", got[0])
	}
	if string(got[1].Key) != "bee" || !slices.Equal(got[1].Items, []string{"bee", "Bee"}) {
		t.Errorf("second group: %+v", got[1])
	}
	if string(got[2].Key) != "cow" {
		t.Errorf("third group: %+v", got[2])
	}
}

// A deliberately colliding hash must not change the outcome, only the
// bucket layout.
func TestByHashCollisions(t *testing.T) {
	src := []int{1, 2, 3, 1, 2, 1}
	got := ByHash(src,
		func(n int) int { return n },
		func(n int) int { return n },
		func(int) uint64 { return 0 },
		func(a, b int) bool { return a == b })

	if len(got) != 3 {
		t.Fatalf("got %d groups", len(got))
	}
	if !slices.Equal(got[0].Items, []int{1, 1, 1}) ||
		!slices.Equal(got[1].Items, []int{2, 2}) ||
		!slices.Equal(got[2].Items, []int{3}) {
		t.Errorf("got %+v", got)
	}
}

func TestJoinHash(t *testing.T) {
	seed := NewSeed()
	outer := []string{"a", "b"}
	inner := []string{"b", "c", "b"} // duplicate key: the later wins

	calls := 0
	got := JoinHash(outer, inner,
		func(s string) []byte { return []byte(s) },
		func(s string) []byte { return []byte(s) },
		func(a, b string) string { calls++; return a + b },
		func(k []byte) uint64 { return seed.Hash(k) },
		func(a, b []byte) bool { return string(a) == string(b) })

	if !slices.Equal(got, []string{"bb"}) {
		t.Errorf("got %v", got)
	}
	if calls != 1 {
		t.Errorf("project called %d times", calls)
	}
}

func TestSeedIsKeyed(t *testing.T) {
	a, b := NewSeed(), NewSeed()
	if a == b {
		t.Fatal("two fresh seeds compare equal")
	}
	if a.Hash([]byte("x")) == b.Hash([]byte("x")) {
		t.Error("hashes under distinct seeds should differ")
	}
	if a.Hash([]byte("x")) != a.Hash([]byte("x")) {
		t.Error("hash is not deterministic under one seed")
	}
}
