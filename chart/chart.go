// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws quick exploratory charts of a dataset.
//
// Box, Scatter, CountBar, and Hist each draw a single chart. AutoGrid
// draws one chart per column in a grid, picking a histogram or a bar
// chart from each column's kind and cardinality.
//
// Every function returns a Figure owned by the caller. Nothing is
// drawn until the Figure is written out.
package chart

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-quickplot/dataset"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default size of single-chart figures.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Box draws a box plot of the non-missing values of numeric column
// col.
func Box(ds *dataset.Dataset, col string) (*Figure, error) {
	xs, err := ds.Present(col)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Box Plot of %s", col)
	p.X.Label.Text = col
	if len(xs) > 0 {
		b, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(xs))
		if err != nil {
			return nil, fmt.Errorf("box plot of %q: %w", col, err)
		}
		b.FillColor = histColor
		p.Add(b)
		p.NominalX("")
	}
	return singleFigure(p, DefaultWidth, DefaultHeight), nil
}

// Scatter draws numeric column y against numeric column x. If hue is
// not "", points are colored by the value of column hue, and the
// legend is titled hue. Legend entries are hue values in order of
// first appearance, or increasing order for a numeric hue.
//
// Rows where x, y, or hue is missing are not drawn.
func Scatter(ds *dataset.Dataset, x, y, hue string) (*Figure, error) {
	xs, err := ds.Floats(x)
	if err != nil {
		return nil, err
	}
	ys, err := ds.Floats(y)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.X.Label.Text = x
	p.Y.Label.Text = y
	if hue == "" {
		p.Title.Text = fmt.Sprintf("Scatter Plot of %s vs. %s", x, y)
		all := make([]int, len(xs))
		for i := range all {
			all[i] = i
		}
		if _, err := addScatter(p, xs, ys, all, 0); err != nil {
			return nil, err
		}
		return singleFigure(p, DefaultWidth, DefaultHeight), nil
	}

	p.Title.Text = fmt.Sprintf("Scatter Plot of %s vs. %s colored by %s", x, y, hue)
	levels, rows, err := groupRows(ds, hue)
	if err != nil {
		return nil, err
	}
	p.Legend.Top = true
	p.Legend.Add(hue)
	for i, level := range levels {
		s, err := addScatter(p, xs, ys, rows[i], i)
		if err != nil {
			return nil, err
		}
		if s != nil {
			p.Legend.Add(level, s)
		}
	}
	return singleFigure(p, DefaultWidth, DefaultHeight), nil
}

// addScatter adds the points at the given rows of xs and ys to p in
// the i'th palette style. It returns nil if none of the rows has both
// coordinates.
func addScatter(p *plot.Plot, xs, ys []float64, rows []int, i int) (*plotter.Scatter, error) {
	var pts plotter.XYs
	for _, r := range rows {
		if math.IsNaN(xs[r]) || math.IsNaN(ys[r]) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[r], Y: ys[r]})
	}
	if len(pts) == 0 {
		return nil, nil
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = plotutil.Color(i)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	return s, nil
}

// groupRows splits the rows of ds by the value of column col. It
// returns the distinct values and, for each, the rows that hold it.
// Categorical values are in order of first appearance and numeric
// values are in increasing order. Rows with a missing value belong to
// no group.
func groupRows(ds *dataset.Dataset, col string) ([]string, [][]int, error) {
	labels, missing, err := ds.Labels(col)
	if err != nil {
		return nil, nil, err
	}

	var levels []string
	var rows [][]int
	index := make(map[string]int)
	for r, l := range labels {
		if missing[r] {
			continue
		}
		i, ok := index[l]
		if !ok {
			i = len(levels)
			index[l] = i
			levels = append(levels, l)
			rows = append(rows, nil)
		}
		rows[i] = append(rows[i], r)
	}

	if ds.Kind(col) == dataset.Numeric {
		xs, err := ds.Floats(col)
		if err != nil {
			return nil, nil, err
		}
		order := make([]int, len(levels))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			return xs[rows[order[i]][0]] < xs[rows[order[j]][0]]
		})
		sl := make([]string, len(levels))
		sr := make([][]int, len(levels))
		for i, o := range order {
			sl[i], sr[i] = levels[o], rows[o]
		}
		levels, rows = sl, sr
	}
	return levels, rows, nil
}

// Stat selects what the bar heights of CountBar show.
type Stat string

const (
	Count      Stat = "count"
	Percent    Stat = "percent"
	Proportion Stat = "proportion"
	// Probability is the same as Proportion.
	Probability Stat = "probability"
)

// CountBar draws the number of rows holding each value of column
// col. Bars are in order of first appearance, or increasing order for
// a numeric column. If hue is not "", each value gets
// one bar per value of column hue. Rows missing col, or hue if it is
// set, are not counted. stat selects what bar heights show; "" means
// Count. Percent and Proportion are relative to the number of rows
// counted.
func CountBar(ds *dataset.Dataset, col, hue string, stat Stat) (*Figure, error) {
	if stat == "" {
		stat = Count
	}
	if _, err := statScale(stat, 1); err != nil {
		return nil, err
	}
	levels, rows, err := groupRows(ds, col)
	if err != nil {
		return nil, err
	}

	var hueLevels []string
	hueOf := make([]int, ds.Len())
	if hue != "" {
		var hueRows [][]int
		hueLevels, hueRows, err = groupRows(ds, hue)
		if err != nil {
			return nil, err
		}
		for r := range hueOf {
			hueOf[r] = -1
		}
		for h, rs := range hueRows {
			for _, r := range rs {
				hueOf[r] = h
			}
		}
		rows = hasHue(rows, hueOf)
	}
	total := 0
	for _, rs := range rows {
		total += len(rs)
	}
	norm, err := statScale(stat, total)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Bar Plot of %s", col)
	p.X.Label.Text = col
	p.Y.Label.Text = string(stat)
	if total == 0 {
		return singleFigure(p, DefaultWidth, DefaultHeight), nil
	}

	if hue == "" {
		bars, err := plotter.NewBarChart(groupSizes(rows, norm), vg.Points(20))
		if err != nil {
			return nil, err
		}
		bars.Color = barColor
		bars.LineStyle.Width = 0
		p.Add(bars)
		p.NominalX(levels...)
		return singleFigure(p, DefaultWidth, DefaultHeight), nil
	}

	const barWidth = 12
	p.Legend.Top = true
	p.Legend.Add(hue)
	for h, hl := range hueLevels {
		vals := make(plotter.Values, len(levels))
		for i := range levels {
			for _, r := range rows[i] {
				if hueOf[r] == h {
					vals[i]++
				}
			}
			vals[i] *= norm
		}
		bars, err := plotter.NewBarChart(vals, vg.Points(barWidth))
		if err != nil {
			return nil, err
		}
		bars.Color = plotutil.Color(h)
		bars.LineStyle.Width = 0
		bars.Offset = vg.Points(barWidth) * vg.Length(2*h-len(hueLevels)+1) / 2
		p.Add(bars)
		p.Legend.Add(hl, bars)
	}
	p.NominalX(levels...)
	return singleFigure(p, DefaultWidth, DefaultHeight), nil
}

// hasHue returns the rows of each group whose hue group is known.
func hasHue(rows [][]int, hueOf []int) [][]int {
	out := make([][]int, len(rows))
	for i, rs := range rows {
		for _, r := range rs {
			if hueOf[r] >= 0 {
				out[i] = append(out[i], r)
			}
		}
	}
	return out
}

// statScale returns the factor that converts a count of rows into
// the given stat for a dataset of n rows.
func statScale(stat Stat, n int) (float64, error) {
	switch stat {
	case Count:
		return 1, nil
	case Percent:
		if n == 0 {
			return 0, nil
		}
		return 100 / float64(n), nil
	case Proportion, Probability:
		if n == 0 {
			return 0, nil
		}
		return 1 / float64(n), nil
	}
	return 0, fmt.Errorf("unknown stat %q", stat)
}

// groupSizes returns the number of rows in each group times norm.
func groupSizes(rows [][]int, norm float64) plotter.Values {
	vals := make(plotter.Values, len(rows))
	for i, rs := range rows {
		vals[i] = float64(len(rs)) * norm
	}
	return vals
}

// Hist draws a histogram of the non-missing values of numeric column
// col with the given number of bins (10 if bins <= 0). If kde is
// true, a kernel density estimate is drawn over it.
func Hist(ds *dataset.Dataset, col string, bins int, kde bool) (*Figure, error) {
	if bins <= 0 {
		bins = 10
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Histogram of %s w %d bins", col, bins)
	p.X.Label.Text = col
	p.Y.Label.Text = "Count"
	if err := addHist(p, ds, col, histOptions{bins: bins, kde: kde}); err != nil {
		return nil, err
	}
	return singleFigure(p, DefaultWidth, DefaultHeight), nil
}
