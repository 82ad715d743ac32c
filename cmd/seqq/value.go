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

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// row is one decoded NDJSON record.
type row map[string]any

// Scalar values order by type class first, then by value within the
// class: null < false < true < numbers < strings. Aggregates order
// after scalars by their canonical encoding. Missing fields decode as
// nil and therefore order first.
const (
	classNull = iota
	classBool
	classNumber
	classString
	classArray
	classObject
)

func class(v any) int {
	switch v.(type) {
	case nil:
		return classNull
	case bool:
		return classBool
	case float64:
		return classNumber
	case string:
		return classString
	case []any:
		return classArray
	default:
		return classObject
	}
}

func compareValues(a, b any) int {
	ca, cb := class(a), class(b)
	if ca != cb {
		return ca - cb
	}
	switch ca {
	case classNull:
		return 0
	case classBool:
		x, y := a.(bool), b.(bool)
		switch {
		case x == y:
			return 0
		case y:
			return -1
		default:
			return 1
		}
	case classNumber:
		x, y := a.(float64), b.(float64)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	case classString:
		return strings.Compare(a.(string), b.(string))
	default:
		return bytes.Compare(canon(a), canon(b))
	}
}

// canon returns a canonical byte encoding of v: values equal under
// compareValues encode identically. encoding/json emits object keys in
// sorted order, which makes its output canonical for decoded NDJSON
// values; negative zero is folded first since json.Marshal renders it
// as "-0".
func canon(v any) []byte {
	b, err := json.Marshal(normalize(v))
	if err != nil {
		// decoded JSON always re-encodes
		panic(fmt.Sprintf("seqq: cannot encode %T: %v", v, err))
	}
	return b
}

func normalize(v any) any {
	switch v := v.(type) {
	case float64:
		if v == 0 {
			return float64(0)
		}
	case []any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = normalize(v[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = normalize(e)
		}
		return out
	}
	return v
}
