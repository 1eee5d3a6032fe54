// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "errors"

// GridCols is the number of cells in each row of an automatic grid.
const GridCols = 4

// ErrNoColumns is returned when a grid would have no cells.
var ErrNoColumns = errors.New("no valid columns to plot")

// A Layout places N cells row by row into a grid that is GridCols
// wide and just tall enough to hold them.
type Layout struct {
	Rows, Cols int
	N          int
}

// NewLayout returns the layout for n cells. n must be positive.
func NewLayout(n int) (Layout, error) {
	if n <= 0 {
		return Layout{}, ErrNoColumns
	}
	return Layout{
		Rows: (n + GridCols - 1) / GridCols,
		Cols: GridCols,
		N:    n,
	}, nil
}

// Cell returns the grid position of the i'th cell.
func (l Layout) Cell(i int) (row, col int) {
	return i / l.Cols, i % l.Cols
}

// Unused returns the number of trailing grid slots that hold no cell.
func (l Layout) Unused() int {
	return l.Rows*l.Cols - l.N
}
