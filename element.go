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

package seq

// First returns the first element of src, or ErrEmptySequence.
func First[T any](src []T) (T, error) {
	if len(src) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	return src[0], nil
}

// FirstOrDefault returns the first element of src, or the zero value
// if src is empty.
func FirstOrDefault[T any](src []T) T {
	v, _ := First(src)
	return v
}

// FirstWhere returns the first element satisfying pred, or ErrNoMatch.
func FirstWhere[T any](src []T, pred func(T) bool) (T, error) {
	for i := range src {
		if pred(src[i]) {
			return src[i], nil
		}
	}
	var zero T
	return zero, ErrNoMatch
}

// FirstWhereOrDefault returns the first element satisfying pred, or
// the zero value if none does.
func FirstWhereOrDefault[T any](src []T, pred func(T) bool) T {
	v, _ := FirstWhere(src, pred)
	return v
}

// Last returns the last element of src, or ErrEmptySequence.
func Last[T any](src []T) (T, error) {
	if len(src) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	return src[len(src)-1], nil
}

// LastOrDefault returns the last element of src, or the zero value if
// src is empty.
func LastOrDefault[T any](src []T) T {
	v, _ := Last(src)
	return v
}

// LastWhere returns the last element satisfying pred, or ErrNoMatch.
func LastWhere[T any](src []T, pred func(T) bool) (T, error) {
	for i := len(src) - 1; i >= 0; i-- {
		if pred(src[i]) {
			return src[i], nil
		}
	}
	var zero T
	return zero, ErrNoMatch
}

// LastWhereOrDefault returns the last element satisfying pred, or the
// zero value if none does.
func LastWhereOrDefault[T any](src []T, pred func(T) bool) T {
	v, _ := LastWhere(src, pred)
	return v
}

// Single returns the sole element of src. It returns ErrEmptySequence
// on an empty src and ErrMultipleMatches when src holds more than one
// element; the ambiguity is not recoverable and no partial result is
// produced.
func Single[T any](src []T) (T, error) {
	var zero T
	switch len(src) {
	case 0:
		return zero, ErrEmptySequence
	case 1:
		return src[0], nil
	default:
		return zero, ErrMultipleMatches
	}
}

// SingleOrDefault returns the sole element of src, or the zero value
// when src is empty or ambiguous.
func SingleOrDefault[T any](src []T) T {
	v, _ := Single(src)
	return v
}

// SingleWhere returns the only element satisfying pred. It returns
// ErrNoMatch when no element qualifies and ErrMultipleMatches when
// more than one does.
func SingleWhere[T any](src []T, pred func(T) bool) (T, error) {
	var found T
	n := 0
	for i := range src {
		if !pred(src[i]) {
			continue
		}
		if n++; n > 1 {
			var zero T
			return zero, ErrMultipleMatches
		}
		found = src[i]
	}
	if n == 0 {
		var zero T
		return zero, ErrNoMatch
	}
	return found, nil
}

// SingleWhereOrDefault returns the only element satisfying pred, or
// the zero value when none or several do.
func SingleWhereOrDefault[T any](src []T, pred func(T) bool) T {
	v, _ := SingleWhere(src, pred)
	return v
}

// ElementAt returns src[i], or ErrIndexOutOfRange when i is outside
// the sequence bounds.
func ElementAt[T any](src []T, i int) (T, error) {
	if i < 0 || i >= len(src) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return src[i], nil
}

// ElementAtOrDefault returns src[i], or the zero value when i is
// outside the sequence bounds.
func ElementAtOrDefault[T any](src []T, i int) T {
	v, _ := ElementAt(src, i)
	return v
}
