// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"io"

	"github.com/aclements/go-quickplot/dataset"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// GridOptions controls AutoGrid.
type GridOptions struct {
	// Columns lists the columns to plot, in order. If nil, all
	// columns of the dataset are used.
	Columns []string

	// Bins is the number of histogram bins. If 0, it defaults to
	// 10.
	Bins int

	// KDE overlays a kernel density estimate on each histogram.
	KDE bool

	// Messages receives a line for each skipped column and a
	// final line if there is nothing to plot. If nil, messages
	// are discarded.
	Messages io.Writer

	// CellWidth and CellHeight are the size of each grid cell. If
	// 0, they default to 5 and 4 inches.
	CellWidth, CellHeight vg.Length
}

// DefaultGridOptions returns the options AutoGrid uses when given
// nil: 10 bins with a density overlay.
func DefaultGridOptions() *GridOptions {
	return &GridOptions{Bins: 10, KDE: true}
}

// AutoGrid plots each column of ds in a grid that is GridCols wide,
// choosing a histogram or a bar chart per column as described by
// Classify.
//
// The figure holds exactly one plot per plotted column, in column
// order; trailing cells of the last row are left out. If no column
// can be plotted, AutoGrid writes NoColumnsMessage to opts.Messages
// and returns a nil Figure along with the classification.
func AutoGrid(ds *dataset.Dataset, opts *GridOptions) (*Figure, *Classification, error) {
	if opts == nil {
		opts = DefaultGridOptions()
	}
	o := *opts
	if o.Bins <= 0 {
		o.Bins = 10
	}
	if o.CellWidth == 0 {
		o.CellWidth = 5 * vg.Inch
	}
	if o.CellHeight == 0 {
		o.CellHeight = 4 * vg.Inch
	}
	if o.Messages == nil {
		o.Messages = io.Discard
	}

	c, err := Classify(ds, o.Columns)
	if err != nil {
		return nil, nil, err
	}
	if err := c.Fprint(o.Messages); err != nil {
		return nil, c, err
	}
	layout, err := NewLayout(len(c.Cells))
	if err != nil {
		// Nothing to plot. Fprint has already said so.
		return nil, c, nil
	}

	fig := newFigure(layout.Rows, layout.Cols, o.CellWidth, o.CellHeight)
	ho := histOptions{bins: o.Bins, kde: o.KDE}
	for i, cell := range c.Cells {
		var p *plot.Plot
		switch cell.Kind {
		case Histogram:
			p, err = histCell(ds, cell.Column, ho)
		case Bar:
			p, err = barCell(ds, cell.Column)
		}
		if err != nil {
			return nil, c, err
		}
		row, col := layout.Cell(i)
		fig.set(row, col, p)
	}
	return fig, c, nil
}
