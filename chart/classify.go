// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"io"

	"github.com/aclements/go-quickplot/dataset"
)

// MaxGroups is the largest number of distinct values (counting
// missing as one) that a categorical column may have and still get a
// bar chart in an automatic grid.
const MaxGroups = 10

// PlotKind is the kind of chart drawn for a column in an automatic
// grid.
type PlotKind int

const (
	// Histogram bins the non-missing values of a numeric column.
	Histogram PlotKind = iota

	// Bar draws one bar per distinct value of a categorical
	// column.
	Bar
)

func (k PlotKind) String() string {
	switch k {
	case Histogram:
		return "hist"
	case Bar:
		return "bar"
	}
	return fmt.Sprintf("PlotKind(%d)", int(k))
}

// A Cell is a column that will be plotted, with its chart kind.
type Cell struct {
	Column string
	Kind   PlotKind
}

// SkipReason says why a column was left out of an automatic grid.
type SkipReason int

const (
	// TooManyGroups means a categorical column had more than
	// MaxGroups distinct values.
	TooManyGroups SkipReason = iota + 1

	// UnsupportedType means the column was neither numeric nor
	// categorical.
	UnsupportedType
)

// A Skip records a column that was left out of an automatic grid.
type Skip struct {
	Column string
	Reason SkipReason

	// Groups is the column's cardinality for TooManyGroups.
	Groups int

	// Type is the column's element type name for UnsupportedType.
	Type string
}

func (s Skip) String() string {
	switch s.Reason {
	case TooManyGroups:
		return fmt.Sprintf("Skipping column '%s': too many groups (%d)", s.Column, s.Groups)
	case UnsupportedType:
		return fmt.Sprintf("Skipping column '%s': unsupported data type (%s)", s.Column, s.Type)
	}
	return fmt.Sprintf("Skipping column '%s'", s.Column)
}

// NoColumnsMessage is printed when an automatic grid has nothing to
// plot.
const NoColumnsMessage = "No valid columns to plot."

// A Classification is the result of sorting columns into plotted
// cells and skipped columns.
type Classification struct {
	// Cells lists the plotted columns in input order.
	Cells []Cell

	// Skipped lists the skipped columns in input order.
	Skipped []Skip
}

// Fprint writes the skip messages of c to w, one per line, followed
// by NoColumnsMessage if nothing will be plotted.
func (c *Classification) Fprint(w io.Writer) error {
	for _, s := range c.Skipped {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	if len(c.Cells) == 0 {
		_, err := fmt.Fprintln(w, NoColumnsMessage)
		return err
	}
	return nil
}

// Classify decides how each of columns of ds would be plotted in an
// automatic grid. If columns is nil, all columns of ds are used in
// order.
//
// Numeric columns always get a histogram. Categorical columns with at
// most MaxGroups distinct values get a bar chart. Everything else is
// skipped. If any named column does not exist in ds, Classify returns
// a *dataset.UnknownColumnError and no classification.
func Classify(ds *dataset.Dataset, columns []string) (*Classification, error) {
	if columns == nil {
		columns = ds.Columns()
	}
	for _, col := range columns {
		if !ds.Has(col) {
			return nil, &dataset.UnknownColumnError{Column: col}
		}
	}

	c := new(Classification)
	for _, col := range columns {
		switch ds.Kind(col) {
		case dataset.Numeric:
			c.Cells = append(c.Cells, Cell{col, Histogram})

		case dataset.Categorical:
			n, err := ds.Cardinality(col)
			if err != nil {
				return nil, err
			}
			if n <= MaxGroups {
				c.Cells = append(c.Cells, Cell{col, Bar})
			} else {
				c.Skipped = append(c.Skipped, Skip{Column: col, Reason: TooManyGroups, Groups: n})
			}

		default:
			c.Skipped = append(c.Skipped, Skip{Column: col, Reason: UnsupportedType, Type: ds.TypeName(col)})
		}
	}
	return c, nil
}
