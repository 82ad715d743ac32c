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

// Command seqq applies sequence-query operations to NDJSON row
// streams: inner joins, per-field deduplication, multi-key ordering
// and grouping. Stages always run in the order join, distinct, order,
// group. Files named *.zst are read and written zstd-compressed.
//
// Usage:
//
//	seqq -order name:asc,age:desc [-i in.ndjson] [-o out.ndjson]
//	seqq -join users.ndjson -on user_id=id -group city
//	seqq -q job.yaml -i in.ndjson.zst -o out.ndjson.zst
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/SnellerInc/seq/grouping"
)

var (
	dashi     string
	dasho     string
	dashq     string
	dashorder string
	dashgroup string
	dashdist  string
	dashjoin  string
	dashon    string
	printTime bool
	verbose   bool
)

func init() {
	flag.StringVar(&dashi, "i", "-", "input file (default is stdin)")
	flag.StringVar(&dasho, "o", "-", "output file (default is stdout)")
	flag.StringVar(&dashq, "q", "", "YAML job file (overrides the operation flags)")
	flag.StringVar(&dashorder, "order", "", "order keys, e.g. name:asc,age:desc")
	flag.StringVar(&dashgroup, "group", "", "group rows by this field")
	flag.StringVar(&dashdist, "distinct", "", "drop rows duplicating this field")
	flag.StringVar(&dashjoin, "join", "", "NDJSON file to inner-join against")
	flag.StringVar(&dashon, "on", "", "join condition, leftfield=rightfield")
	flag.BoolVar(&printTime, "t", false, "print execution time on stderr")
	flag.BoolVar(&verbose, "v", false, "print run diagnostics on stderr")
}

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "seqq: "+f+"\n", args...)
	os.Exit(1)
}

func jobFromFlags() (*job, error) {
	if dashq != "" {
		return loadJob(dashq)
	}
	j := &job{
		Distinct: dashdist,
		Group:    dashgroup,
	}
	if dashorder != "" {
		keys, err := parseOrder(dashorder)
		if err != nil {
			return nil, err
		}
		j.Order = keys
	}
	if dashjoin != "" {
		j.Join = &joinSpec{File: dashjoin, On: dashon}
	}
	return j, nil
}

func main() {
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}
	j, err := jobFromFlags()
	if err != nil {
		exitf("%v", err)
	}

	rows, err := readRows(dashi)
	if err != nil {
		exitf("reading %s: %v", dashi, err)
	}

	start := time.Now()
	res, err := j.run(rows, grouping.NewSeed())
	if err != nil {
		exitf("%v", err)
	}
	elapsed := time.Since(start)

	n, err := writeResult(dasho, res)
	if err != nil {
		exitf("writing %s: %v", dasho, err)
	}
	if printTime {
		fmt.Fprintf(os.Stderr, "%s\n", elapsed)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "run %s: %d rows in, %d lines out, %s\n",
			uuid.New(), len(rows), n, elapsed)
	}
}

func readRows(fname string) ([]row, error) {
	if fname == "-" {
		return decodeRows(os.Stdin)
	}
	return readRowsFile(fname)
}

func readRowsFile(fname string) ([]row, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var src io.Reader = f
	if strings.HasSuffix(fname, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		src = dec
	}
	return decodeRows(src)
}

func decodeRows(src io.Reader) ([]row, error) {
	var rows []row
	dec := json.NewDecoder(bufio.NewReader(src))
	for {
		var r row
		err := dec.Decode(&r)
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, r)
	}
}

func writeResult(fname string, res result) (lines int, err error) {
	var dst io.Writer = os.Stdout
	if fname != "-" {
		f, err := os.Create(fname)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		dst = f
	}
	if strings.HasSuffix(fname, ".zst") {
		enc, zerr := zstd.NewWriter(dst)
		if zerr != nil {
			return 0, zerr
		}
		defer func() {
			if cerr := enc.Close(); err == nil {
				err = cerr
			}
		}()
		dst = enc
	}
	w := bufio.NewWriter(dst)
	defer func() {
		if ferr := w.Flush(); err == nil {
			err = ferr
		}
	}()

	out := json.NewEncoder(w)
	if res.groups != nil {
		for i := range res.groups {
			line := map[string]any{
				"key":   res.groups[i].Key,
				"items": res.groups[i].Items,
			}
			if err := out.Encode(line); err != nil {
				return lines, err
			}
			lines++
		}
		return lines, nil
	}
	for i := range res.rows {
		if err := out.Encode(res.rows[i]); err != nil {
			return lines, err
		}
		lines++
	}
	return lines, nil
}
