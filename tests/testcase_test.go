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

package tests

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseTestcase(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "case.test")
	body := `# leading comment
first 1
first 2

---
second 1
--- trailing text is ignored
# another comment
third 1
`
	if err := os.WriteFile(fname, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	parts, err := ParseTestcase(fname)
	if err != nil {
		t.Fatal(err)
	}
	expected := [][]string{
		{"first 1", "first 2"},
		{"second 1"},
		{"third 1"},
	}
	if !reflect.DeepEqual(parts, expected) {
		t.Errorf("got %v", parts)
	}
}

func TestParseTestcaseMissing(t *testing.T) {
	if _, err := ParseTestcase("does-not-exist"); err == nil {
		t.Error("expected an error")
	}
}
