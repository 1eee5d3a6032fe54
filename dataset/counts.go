// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"sort"
	"strconv"
)

// MissingLabel is the label of the category that collects missing
// values in ValueCounts.
const MissingLabel = "NaN"

// A Count is the number of rows holding one distinct value of a
// column.
type Count struct {
	Label   string
	Missing bool
	N       int
}

// ValueCounts returns the distinct values of column col and how often
// each occurs, in decreasing order of count. Values with equal counts
// stay in order of first appearance. Missing values are counted as a
// single category labeled MissingLabel.
//
// col must be Numeric or Categorical.
func (d *Dataset) ValueCounts(col string) ([]Count, error) {
	labels, missing, err := d.Labels(col)
	if err != nil {
		return nil, err
	}

	var counts []Count
	index := make(map[string]int)
	miss := -1
	for i, l := range labels {
		if missing[i] {
			if miss < 0 {
				miss = len(counts)
				counts = append(counts, Count{Label: MissingLabel, Missing: true})
			}
			counts[miss].N++
			continue
		}
		j, ok := index[l]
		if !ok {
			j = len(counts)
			index[l] = j
			counts = append(counts, Count{Label: l})
		}
		counts[j].N++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].N > counts[j].N
	})
	return counts, nil
}

// Cardinality returns the number of distinct values in column col,
// counting all missing values together as one more value.
func (d *Dataset) Cardinality(col string) (int, error) {
	labels, missing, err := d.Labels(col)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool)
	anyMissing := false
	for i, l := range labels {
		if missing[i] {
			anyMissing = true
		} else {
			seen[l] = true
		}
	}
	n := len(seen)
	if anyMissing {
		n++
	}
	return n, nil
}

// Labels returns the value of each row of column col as the label
// ValueCounts would give it, and a mask of rows whose value is
// missing. col must be Numeric or Categorical.
func (d *Dataset) Labels(col string) ([]string, []bool, error) {
	k, ok := d.kinds[col]
	if !ok {
		return nil, nil, &UnknownColumnError{col}
	}
	switch k {
	case Categorical:
		return d.Strings(col)
	case Numeric:
		fs, err := d.Floats(col)
		if err != nil {
			return nil, nil, err
		}
		labels := make([]string, len(fs))
		missing := make([]bool, len(fs))
		for i, f := range fs {
			if math.IsNaN(f) {
				missing[i] = true
				continue
			}
			labels[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return labels, missing, nil
	}
	return nil, nil, &KindError{Column: col, Kind: k, Want: Categorical}
}
