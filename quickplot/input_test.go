// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-quickplot/chart"
	"github.com/aclements/go-quickplot/dataset"
)

func TestParseColumns(t *testing.T) {
	for _, test := range []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"a b", []string{"a", "b"}},
		{`'sepal length' "petal width" species`, []string{"sepal length", "petal width", "species"}},
		{`a\ b`, []string{"a b"}},
	} {
		got, err := parseColumns(test.in)
		if err != nil {
			t.Errorf("parseColumns(%q): %v", test.in, err)
			continue
		}
		if !reflect.DeepEqual(test.want, got) {
			t.Errorf("parseColumns(%q) = %q; want %q", test.in, got, test.want)
		}
	}

	if _, err := parseColumns(`'unterminated`); err == nil {
		t.Errorf("parseColumns with an unterminated quote should fail")
	}
}

func TestReadCSV(t *testing.T) {
	const in = `sepal length,species,note
5.1, setosa,
4.9,setosa,x
7.0,,y
`
	ds, err := readCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"sepal length", "species", "note"}; !reflect.DeepEqual(want, ds.Columns()) {
		t.Fatalf("columns %q; want %q", ds.Columns(), want)
	}
	if ds.Kind("sepal length") != dataset.Numeric || ds.Kind("species") != dataset.Categorical {
		t.Errorf("wrong kinds: %v, %v", ds.Kind("sepal length"), ds.Kind("species"))
	}
	if n, _ := ds.Cardinality("species"); n != 2 {
		t.Errorf("species cardinality %d; want 2 (setosa and missing)", n)
	}

	if _, err := readCSV(strings.NewReader("")); err == nil {
		t.Errorf("empty input should fail")
	}
	if _, err := readCSV(strings.NewReader("a,b\n1\n")); err == nil {
		t.Errorf("ragged input should fail")
	}
}

func TestOutputFormat(t *testing.T) {
	for _, test := range []struct{ format, out, want string }{
		{"", "", "png"},
		{"", "x.SVG", "svg"},
		{"pdf", "x.svg", "pdf"},
		{"", "noext", "png"},
	} {
		if got := outputFormat(test.format, test.out); got != test.want {
			t.Errorf("outputFormat(%q, %q) = %q; want %q", test.format, test.out, got, test.want)
		}
	}
}

func TestStatUsage(t *testing.T) {
	for _, st := range []chart.Stat{chart.Count, chart.Percent, chart.Proportion, chart.Probability} {
		if !strings.Contains(statUsage, string(st)) {
			t.Errorf("-stat usage does not mention %q", st)
		}
	}
}
