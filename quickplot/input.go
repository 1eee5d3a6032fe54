// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/aclements/go-quickplot/dataset"
	"github.com/kballard/go-shellquote"
)

// readCSV parses a CSV stream whose first record is the header.
func readCSV(r io.Reader) (*dataset.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no header row")
	}
	return dataset.FromRecords(records[0], records[1:])
}

// parseColumns splits a shell-quoted list of column names. An empty
// list means all columns and returns nil.
func parseColumns(s string) ([]string, error) {
	cols, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("bad -cols list: %w", err)
	}
	if len(cols) == 0 {
		return nil, nil
	}
	return cols, nil
}
