// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Figure is a grid of plots with a physical size. Each Figure is
// owned by its caller; rendering one never touches any other.
//
// Cells that hold no plot are not drawn at all.
type Figure struct {
	// Width and Height are the size of the whole figure.
	Width, Height vg.Length

	plots [][]*plot.Plot
	n     int
}

// newFigure returns an empty rows×cols figure in which each cell is
// cellW×cellH.
func newFigure(rows, cols int, cellW, cellH vg.Length) *Figure {
	plots := make([][]*plot.Plot, rows)
	for i := range plots {
		plots[i] = make([]*plot.Plot, cols)
	}
	return &Figure{
		Width:  vg.Length(cols) * cellW,
		Height: vg.Length(rows) * cellH,
		plots:  plots,
	}
}

// singleFigure returns a figure holding just p.
func singleFigure(p *plot.Plot, w, h vg.Length) *Figure {
	f := newFigure(1, 1, w, h)
	f.set(0, 0, p)
	return f
}

func (f *Figure) set(row, col int, p *plot.Plot) {
	if f.plots[row][col] == nil {
		f.n++
	}
	f.plots[row][col] = p
}

// Rows returns the number of rows in f's grid.
func (f *Figure) Rows() int {
	return len(f.plots)
}

// Cols returns the number of columns in f's grid.
func (f *Figure) Cols() int {
	if len(f.plots) == 0 {
		return 0
	}
	return len(f.plots[0])
}

// Len returns the number of cells of f that hold a plot.
func (f *Figure) Len() int {
	return f.n
}

// Plot returns the plot in the given cell, or nil if the cell is
// empty.
func (f *Figure) Plot(row, col int) *plot.Plot {
	return f.plots[row][col]
}

// Draw draws f onto dc.
func (f *Figure) Draw(dc draw.Canvas) {
	if f.Rows() == 1 && f.Cols() == 1 {
		if p := f.plots[0][0]; p != nil {
			p.Draw(dc)
		}
		return
	}

	tiles := draw.Tiles{
		Rows:      f.Rows(),
		Cols:      f.Cols(),
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(f.plots, tiles, dc)
	for j, row := range f.plots {
		for i, p := range row {
			if p != nil {
				p.Draw(canvases[j][i])
			}
		}
	}
}

// WriteTo renders f in the given format ("png", "svg", "pdf", "eps",
// "jpg", "tif") and writes it to w.
func (f *Figure) WriteTo(w io.Writer, format string) error {
	c, err := f.render(format)
	if err != nil {
		return err
	}
	_, err = c.WriteTo(w)
	return err
}

func (f *Figure) render(format string) (vg.CanvasWriterTo, error) {
	c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return nil, err
	}
	f.Draw(draw.New(c))
	return c, nil
}

// Save renders f to the named file, choosing the format from the
// file's extension. No file is created if the format is unknown.
func (f *Figure) Save(path string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		return fmt.Errorf("%s: no file extension to choose a format", path)
	}
	c, err := f.render(format)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = c.WriteTo(out)
	return err
}
