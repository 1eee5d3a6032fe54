// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quickplot draws exploratory charts of a CSV file.
//
// The first row of the CSV file names the columns. Columns whose
// non-empty fields are all numbers are numeric; all other columns are
// categorical. Empty fields are missing values.
//
// By default, quickplot draws an automatic grid with one chart per
// column: a histogram for each numeric column and a bar chart for
// each categorical column with at most 10 distinct values. Other
// columns are skipped with a message on stderr. The -kind flag selects
// a single chart instead.
//
// For example,
//
//	quickplot -o iris.png -cols "'sepal length' species" iris.csv
//	quickplot -kind scatter -x 'sepal length' -y 'petal length' -hue species -o s.svg iris.csv
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-quickplot/chart"
	"github.com/aclements/go-quickplot/dataset"
)

const statUsage = "bar height `stat` for -kind count: count, percent, proportion, or probability"

func main() {
	log.SetPrefix("quickplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagFormat     = flag.String("f", "", "output `format` (png, svg, pdf, eps, jpg, tif; default: from -o or png)")
		flagTable      = flag.Bool("table", false, "print the parsed table instead of a plot")
		flagKind       = flag.String("kind", "auto", "chart `kind`: auto, box, scatter, count, or hist")
		flagCols       = flag.String("cols", "", "shell-quoted `list` of columns for -kind auto (default: all)")
		flagBins       = flag.Int("bins", 10, "number of histogram `bins`")
		flagKDE        = flag.Bool("kde", true, "overlay a density estimate on histograms")
		flagX          = flag.String("x", "", "`column` to plot (all kinds but auto)")
		flagY          = flag.String("y", "", "Y `column` for -kind scatter")
		flagHue        = flag.String("hue", "", "`column` to color by for -kind scatter and count")
		flagStat       = flag.String("stat", "count", statUsage)
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	// Parse input.
	path := "-"
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}
	ds, err := loadCSV(path)
	if err != nil {
		log.Fatal(err)
	}

	// Output table.
	if *flagTable {
		f := openOutput(*flagOut)
		defer f.Close()
		table.Fprint(f, ds.Table())
		return
	}

	// Plot.
	var fig *chart.Figure
	switch *flagKind {
	case "auto":
		cols, err := parseColumns(*flagCols)
		if err != nil {
			log.Fatal(err)
		}
		fig, _, err = chart.AutoGrid(ds, &chart.GridOptions{
			Columns:  cols,
			Bins:     *flagBins,
			KDE:      *flagKDE,
			Messages: os.Stderr,
		})
		if err != nil {
			log.Fatal(err)
		}
		if fig == nil {
			// The reason has already been printed.
			return
		}
	case "box":
		fig, err = chart.Box(ds, need("x", *flagX))
	case "scatter":
		fig, err = chart.Scatter(ds, need("x", *flagX), need("y", *flagY), *flagHue)
	case "count":
		fig, err = chart.CountBar(ds, need("x", *flagX), *flagHue, chart.Stat(*flagStat))
	case "hist":
		fig, err = chart.Hist(ds, need("x", *flagX), *flagBins, *flagKDE)
	default:
		log.Fatalf("unknown chart kind %q", *flagKind)
	}
	if err != nil {
		log.Fatal(err)
	}

	// Render plot.
	f := openOutput(*flagOut)
	defer f.Close()
	if err := fig.WriteTo(f, outputFormat(*flagFormat, *flagOut)); err != nil {
		log.Fatal(err)
	}
}

// openOutput creates the named output file, or returns stdout if
// path is "".
func openOutput(path string) *os.File {
	if path == "" {
		return os.Stdout
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	return f
}

// need returns val, or exits if the flag it came from was not set.
func need(name, val string) string {
	if val == "" {
		log.Fatalf("-kind requires flag -%s", name)
	}
	return val
}

// outputFormat picks the image format from the -f flag, then the
// output file's extension, and falls back to png.
func outputFormat(format, out string) string {
	if format != "" {
		return format
	}
	if ext := strings.TrimPrefix(filepath.Ext(out), "."); ext != "" {
		return strings.ToLower(ext)
	}
	return "png"
}

// loadCSV reads a Dataset from the named CSV file, or from stdin if
// path is "-".
func loadCSV(path string) (*dataset.Dataset, error) {
	r := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	ds, err := readCSV(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}
