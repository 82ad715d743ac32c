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

// Package seq implements eager query operations over slices: element
// access, filtering, slicing, set algebra and aggregation.
//
// Ordering lives in the sorting sub-package and grouping/joining in
// the grouping sub-package; this package covers the thin linear scans
// around them. Every operation reads its input exactly once, never
// mutates it, and returns freshly allocated results.
//
// Operations that can fail come in two flavors: the plain form returns
// one of the sentinel errors below, and the OrDefault form degrades to
// the zero value of the element type instead. The two never mix; a
// plain form never substitutes a default and an OrDefault form never
// reports an error.
package seq

import (
	"errors"
)

var (
	// ErrEmptySequence is returned by element access on a sequence
	// with no elements.
	ErrEmptySequence = errors.New("empty sequence")

	// ErrNoMatch is returned when no element satisfies the predicate.
	ErrNoMatch = errors.New("no element matches")

	// ErrMultipleMatches is returned by Single-style access when more
	// than one element qualifies.
	ErrMultipleMatches = errors.New("more than one element matches")

	// ErrIndexOutOfRange is returned by positional access past the
	// sequence bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)
