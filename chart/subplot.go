// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/aclements/go-quickplot/dataset"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

var (
	barColor     = color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff}
	histColor    = color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0x99}
	densityColor = color.RGBA{R: 0x2a, G: 0x4a, B: 0x80, A: 0xff}
)

// histOptions controls histogram drawing.
type histOptions struct {
	bins int
	kde  bool
}

// addHist adds a histogram of the non-missing values of numeric
// column col to p. If there are no such values, p is left with empty
// axes.
func addHist(p *plot.Plot, ds *dataset.Dataset, col string, o histOptions) error {
	xs, err := ds.Present(col)
	if err != nil {
		return err
	}
	if len(xs) == 0 {
		return nil
	}

	h, err := plotter.NewHist(plotter.Values(xs), o.bins)
	if err != nil {
		return fmt.Errorf("histogram of %q: %w", col, err)
	}
	h.FillColor = histColor
	p.Add(h)

	if o.kde {
		if pts := densityCurve(xs, h.Width); pts != nil {
			l, err := plotter.NewLine(pts)
			if err != nil {
				return fmt.Errorf("density of %q: %w", col, err)
			}
			l.LineStyle.Color = densityColor
			l.LineStyle.Width = vg.Points(1.5)
			p.Add(l)
		}
	}
	return nil
}

// histCell returns the grid plot for numeric column col.
func histCell(ds *dataset.Dataset, col string, o histOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Histogram of %s w %d bins", col, o.bins)
	p.X.Label.Text = fmt.Sprintf("%s bins tickers", col)
	p.Y.Label.Text = fmt.Sprintf("Count obs in %s each bin", col)
	if err := addHist(p, ds, col, o); err != nil {
		return nil, err
	}
	return p, nil
}

// barCell returns the grid plot for column col: one bar per distinct
// value in ValueCounts order, each labeled with its count.
func barCell(ds *dataset.Dataset, col string) (*plot.Plot, error) {
	counts, err := ds.ValueCounts(col)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Barchart of %s", col)
	p.X.Label.Text = fmt.Sprintf("Group of %s", col)
	p.Y.Label.Text = fmt.Sprintf("Count obs in %s", col)
	rotateXTicks(p)
	if len(counts) == 0 {
		return p, nil
	}

	names := make([]string, len(counts))
	vals := make(plotter.Values, len(counts))
	for i, c := range counts {
		names[i] = c.Label
		vals[i] = float64(c.N)
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("bar chart of %q: %w", col, err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)

	if err := annotateCounts(p, vals); err != nil {
		return nil, fmt.Errorf("bar chart of %q: %w", col, err)
	}
	return p, nil
}

// countLabels returns a label for the top of each bar in vals giving
// its height.
func countLabels(vals plotter.Values) plotter.XYLabels {
	var labels plotter.XYLabels
	for i, v := range vals {
		labels.XYs = append(labels.XYs, plotter.XY{X: float64(i), Y: v})
		labels.Labels = append(labels.Labels, formatCount(v))
	}
	return labels
}

// annotateCounts labels each bar in vals with its height.
func annotateCounts(p *plot.Plot, vals plotter.Values) error {
	l, err := plotter.NewLabels(countLabels(vals))
	if err != nil {
		return err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
		l.TextStyle[i].YAlign = text.YBottom
	}
	p.Add(l)
	return nil
}

func formatCount(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// rotateXTicks turns p's X tick labels 45° so long category names do
// not overlap.
func rotateXTicks(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
}
