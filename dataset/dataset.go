// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides an in-memory table of named columns, each
// with a kind declared when the column is added.
//
// A Dataset is backed by a go-gg table. Numeric columns represent
// missing values as NaN. Categorical columns are string columns with
// a separate missing mask, so the empty string is an ordinary value.
package dataset

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// A Dataset is an immutable, ordered collection of equal-length
// named columns.
type Dataset struct {
	tab     *table.Table
	kinds   map[string]Kind
	types   map[string]string
	missing map[string][]bool
}

// Table returns the go-gg table backing d. The caller must not modify
// it.
func (d *Dataset) Table() *table.Table {
	return d.tab
}

// Columns returns the names of d's columns in order.
func (d *Dataset) Columns() []string {
	return d.tab.Columns()
}

// Len returns the number of rows in d.
func (d *Dataset) Len() int {
	return d.tab.Len()
}

// Has reports whether d has a column named col.
func (d *Dataset) Has(col string) bool {
	_, ok := d.kinds[col]
	return ok
}

// Kind returns the declared kind of column col. It panics if col does
// not exist.
func (d *Dataset) Kind(col string) Kind {
	k, ok := d.kinds[col]
	if !ok {
		panic(&UnknownColumnError{col})
	}
	return k
}

// TypeName returns the name of the element type of column col, such
// as "float64" or "time.Time".
func (d *Dataset) TypeName(col string) string {
	d.Kind(col)
	return d.types[col]
}

// Floats returns numeric column col as a []float64. Missing values
// are NaN. The result is a fresh slice.
func (d *Dataset) Floats(col string) ([]float64, error) {
	if err := d.check(col, Numeric); err != nil {
		return nil, err
	}
	seq := d.tab.MustColumn(col)
	if bs, ok := seq.([]bool); ok {
		fs := make([]float64, len(bs))
		for i, b := range bs {
			if b {
				fs[i] = 1
			}
		}
		return fs, nil
	}
	if fs, ok := seq.([]float64); ok {
		return append([]float64(nil), fs...), nil
	}
	var fs []float64
	slice.Convert(&fs, seq)
	return fs, nil
}

// Present returns the non-missing values of numeric column col.
func (d *Dataset) Present(col string) ([]float64, error) {
	fs, err := d.Floats(col)
	if err != nil {
		return nil, err
	}
	out := fs[:0]
	for _, f := range fs {
		if !math.IsNaN(f) {
			out = append(out, f)
		}
	}
	return out, nil
}

// Strings returns the values of categorical column col and its
// missing mask. missing[i] is true if row i has no value, in which
// case vals[i] is "". missing is never nil. Both slices are shared
// with d and must not be modified.
func (d *Dataset) Strings(col string) (vals []string, missing []bool, err error) {
	if err := d.check(col, Categorical); err != nil {
		return nil, nil, err
	}
	return d.tab.MustColumn(col).([]string), d.missing[col], nil
}

func (d *Dataset) check(col string, want Kind) error {
	k, ok := d.kinds[col]
	if !ok {
		return &UnknownColumnError{col}
	}
	if k != want {
		return &KindError{Column: col, Kind: k, Want: want}
	}
	return nil
}

// UnknownColumnError is returned when a column name does not exist
// in a Dataset.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Column)
}

// KindError is returned when a column does not have the kind an
// operation requires.
type KindError struct {
	Column string
	Kind   Kind
	Want   Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("column %q is %s, not %s", e.Column, e.Kind, e.Want)
}
