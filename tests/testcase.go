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

// Package tests holds helpers shared by test code.
package tests

import (
	"bufio"
	"os"
	"strings"
)

// ParseTestcase reads parts of a text file separated by `---` lines.
//
// Each part is returned as its list of lines. Blank lines and lines
// starting with `#` are skipped.
func ParseTestcase(fname string) ([][]string, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parts := [][]string{nil}
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := scan.Text()
		if strings.HasPrefix(line, "---") {
			parts = append(parts, nil)
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts[len(parts)-1] = append(parts[len(parts)-1], line)
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return parts, nil
}
