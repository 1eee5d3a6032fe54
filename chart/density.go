// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot/plotter"
)

// densityPoints is the number of points the density curve is sampled
// at.
const densityPoints = 200

// densityCurve returns a Gaussian kernel density estimate of xs,
// scaled so that it is in the same units as a histogram of xs with
// bins of width binWidth. It returns nil if xs has too little spread
// to estimate a density.
func densityCurve(xs []float64, binWidth float64) plotter.XYs {
	if len(xs) < 2 || !(binWidth > 0) {
		return nil
	}
	sample := stats.Sample{Xs: xs}
	bw := stats.BandwidthScott(sample)
	if !(bw > 0) || math.IsInf(bw, 0) {
		return nil
	}
	kde := stats.KDE{
		Sample:    sample,
		Kernel:    stats.GaussianKernel,
		Bandwidth: bw,
	}

	// The curve covers only the range of the data.
	min, max := sample.Bounds()
	ss := vec.Linspace(min, max, densityPoints)
	ys := vec.Map(kde.PDF, ss)

	scale := float64(len(xs)) * binWidth
	pts := make(plotter.XYs, len(ss))
	for i := range ss {
		pts[i].X = ss[i]
		pts[i].Y = ys[i] * scale
	}
	return pts
}
