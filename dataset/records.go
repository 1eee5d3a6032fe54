// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FromRecords builds a Dataset from string records, such as those
// read from a CSV file. header names the columns and each row must
// have one field per column.
//
// A column whose non-empty fields all parse as numbers is Numeric,
// with empty fields as NaN. Any other column is Categorical, with
// empty fields as missing. A column with no non-empty fields is
// Categorical.
func FromRecords(header []string, rows [][]string) (*Dataset, error) {
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, want %d", i+1, len(row), len(header))
		}
	}

	var b Builder
	for c, name := range header {
		fs, ok := parseFloats(rows, c)
		if ok {
			b.AddNumeric(name, fs)
			continue
		}
		vals := make([]string, len(rows))
		missing := make([]bool, len(rows))
		for r, row := range rows {
			if isBlank(row[c]) {
				missing[r] = true
			} else {
				vals[r] = row[c]
			}
		}
		b.AddCategorical(name, vals, missing)
	}
	return b.Done()
}

// parseFloats parses column c of rows as numbers. It fails if any
// non-empty field is not a number or if every field is empty.
func parseFloats(rows [][]string, c int) ([]float64, bool) {
	fs := make([]float64, len(rows))
	seen := false
	for r, row := range rows {
		if isBlank(row[c]) {
			fs[r] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(row[c]), 64)
		if err != nil {
			return nil, false
		}
		fs[r] = f
		seen = true
	}
	return fs, seen
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
