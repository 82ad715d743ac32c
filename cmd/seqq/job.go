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
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/SnellerInc/seq/grouping"
	"github.com/SnellerInc/seq/sorting"
)

// job describes one pipeline over the input rows. Stages run in the
// fixed order join, distinct, order, group; absent stages are skipped.
type job struct {
	Join     *joinSpec  `json:"join,omitempty"`
	Distinct string     `json:"distinct,omitempty"`
	Order    []orderKey `json:"order,omitempty"`
	Group    string     `json:"group,omitempty"`
}

type orderKey struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc,omitempty"`
}

type joinSpec struct {
	// File is the NDJSON file providing the join's probe side.
	File string `json:"file"`
	// On is the equi-join condition, "leftfield=rightfield".
	On string `json:"on"`
}

// loadJob reads a YAML job description.
func loadJob(fname string) (*job, error) {
	buf, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	j := &job{}
	if err := yaml.UnmarshalStrict(buf, j); err != nil {
		return nil, fmt.Errorf("job %s: %w", fname, err)
	}
	return j, nil
}

// parseOrder parses the -order flag value "field[:asc|:desc],...".
func parseOrder(s string) ([]orderKey, error) {
	var keys []orderKey
	for _, part := range strings.Split(s, ",") {
		field, dir, ok := strings.Cut(part, ":")
		if field == "" {
			return nil, fmt.Errorf("-order %q: empty field", s)
		}
		key := orderKey{Field: field}
		if ok {
			switch dir {
			case "asc":
			case "desc":
				key.Desc = true
			default:
				return nil, fmt.Errorf("-order %q: bad direction %q", s, dir)
			}
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// result is what a pipeline produces: plain rows, or groups when the
// job ends in a group stage.
type result struct {
	rows   []row
	groups []grouping.Group[any, row]
}

// run applies the job stages to rows.
func (j *job) run(rows []row, seed grouping.Seed) (result, error) {
	if j.Join != nil {
		joined, err := j.runJoin(rows, seed)
		if err != nil {
			return result{}, err
		}
		rows = joined
	}
	if j.Distinct != "" {
		field := j.Distinct
		groups := grouping.ByHash(rows, func(r row) any { return r[field] },
			func(r row) row { return r },
			func(k any) uint64 { return seed.Hash(canon(k)) },
			func(a, b any) bool { return compareValues(a, b) == 0 })
		distinct := make([]row, len(groups))
		for i := range groups {
			distinct[i] = groups[i].Items[0]
		}
		rows = distinct
	}
	if len(j.Order) > 0 {
		ord := orderStage(rows, j.Order[0])
		for _, key := range j.Order[1:] {
			ord = thenStage(ord, key)
		}
		rows = ord.Materialize()
	}
	if j.Group != "" {
		field := j.Group
		groups := grouping.ByHash(rows, func(r row) any { return r[field] },
			func(r row) row { return r },
			func(k any) uint64 { return seed.Hash(canon(k)) },
			func(a, b any) bool { return compareValues(a, b) == 0 })
		return result{groups: groups}, nil
	}
	return result{rows: rows}, nil
}

func orderStage(rows []row, key orderKey) *sorting.Ordering[row] {
	sel := func(r row) any { return r[key.Field] }
	if key.Desc {
		return sorting.ByDescendingFunc(rows, sel, compareValues)
	}
	return sorting.ByFunc(rows, sel, compareValues)
}

func thenStage(ord *sorting.Ordering[row], key orderKey) *sorting.Ordering[row] {
	sel := func(r row) any { return r[key.Field] }
	if key.Desc {
		return sorting.ThenByDescendingFunc(ord, sel, compareValues)
	}
	return sorting.ThenByFunc(ord, sel, compareValues)
}

func (j *job) runJoin(rows []row, seed grouping.Seed) ([]row, error) {
	left, right, ok := strings.Cut(j.Join.On, "=")
	if !ok || left == "" || right == "" {
		return nil, fmt.Errorf("join condition %q: want leftfield=rightfield", j.Join.On)
	}
	inner, err := readRowsFile(j.Join.File)
	if err != nil {
		return nil, err
	}
	out := grouping.JoinHash(rows, inner,
		func(r row) any { return r[left] },
		func(r row) any { return r[right] },
		mergeRows,
		func(k any) uint64 { return seed.Hash(canon(k)) },
		func(a, b any) bool { return compareValues(a, b) == 0 })
	return out, nil
}

// mergeRows combines a matched pair into one output row; on a field
// name collision the streamed (left) side wins.
func mergeRows(outer, inner row) row {
	merged := make(row, len(outer)+len(inner))
	for k, v := range inner {
		merged[k] = v
	}
	for k, v := range outer {
		merged[k] = v
	}
	return merged
}
