// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"testing"
	"time"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func shouldError(t *testing.T, re string, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("want error matching %q; got nil", re)
	}
	if !regexp.MustCompile(re).MatchString(err.Error()) {
		t.Fatalf("error %q does not match %q", err, re)
	}
}

func TestBuilderKinds(t *testing.T) {
	type level string
	type flag bool
	d, err := new(Builder).
		Add("i", []int{1, 2}).
		Add("f", []float64{1.5, math.NaN()}).
		Add("b", []bool{true, false}).
		Add("nb", []flag{false, true}).
		Add("s", []string{"x", "y"}).
		Add("l", []level{"lo", "hi"}).
		Add("t", []time.Time{{}, {}}).
		Done()
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"i", "f", "b", "nb", "s", "l", "t"}; !de(want, d.Columns()) {
		t.Errorf("columns should be %v; got %v", want, d.Columns())
	}
	for col, want := range map[string]Kind{
		"i": Numeric, "f": Numeric, "b": Numeric, "nb": Numeric,
		"s": Categorical, "l": Categorical,
		"t": Other,
	} {
		if got := d.Kind(col); got != want {
			t.Errorf("Kind(%q) should be %v; got %v", col, want, got)
		}
	}
	if got := d.TypeName("t"); got != "time.Time" {
		t.Errorf("TypeName(t) should be time.Time; got %q", got)
	}
	if d.Len() != 2 {
		t.Errorf("Len should be 2; got %d", d.Len())
	}

	fs, err := d.Floats("b")
	if err != nil || !de(fs, []float64{1, 0}) {
		t.Errorf("Floats(b) should be [1 0]; got %v, %v", fs, err)
	}
	fs, err = d.Floats("nb")
	if err != nil || !de(fs, []float64{0, 1}) {
		t.Errorf("Floats(nb) should be [0 1]; got %v, %v", fs, err)
	}
	if cs, err := d.ValueCounts("nb"); err != nil || len(cs) != 2 {
		t.Errorf("ValueCounts(nb) got %v, %v", cs, err)
	}
	fs, err = d.Floats("i")
	if err != nil || !de(fs, []float64{1, 2}) {
		t.Errorf("Floats(i) should be [1 2]; got %v, %v", fs, err)
	}
	vals, missing, err := d.Strings("l")
	if err != nil || !de(vals, []string{"lo", "hi"}) || !de(missing, []bool{false, false}) {
		t.Errorf("Strings(l) got %v, %v, %v", vals, missing, err)
	}
	ps, err := d.Present("f")
	if err != nil || !de(ps, []float64{1.5}) {
		t.Errorf("Present(f) should be [1.5]; got %v, %v", ps, err)
	}
}

func TestFloatsCopies(t *testing.T) {
	src := []float64{1, 2}
	d := new(Builder).AddNumeric("x", src).MustDone()
	fs, _ := d.Floats("x")
	fs[0] = 42
	if src[0] != 1 {
		t.Fatalf("Floats aliased the column")
	}
}

func TestBuilderErrors(t *testing.T) {
	_, err := new(Builder).Add("x", []int{1}).Add("y", []int{1, 2}).Done()
	shouldError(t, `column "y" has 2 rows, but dataset has 1`, err)

	_, err = new(Builder).Add("x", []int{1}).Add("x", []int{2}).Done()
	shouldError(t, `duplicate column "x"`, err)

	_, err = new(Builder).Add("x", 1).Done()
	shouldError(t, `is not a slice`, err)

	_, err = new(Builder).AddCategorical("x", []string{"a"}, []bool{}).Done()
	shouldError(t, `1 values but 0 missing flags`, err)
}

func TestEmptyDataset(t *testing.T) {
	d, err := new(Builder).Done()
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Columns()) != 0 || d.Len() != 0 {
		t.Fatalf("empty dataset has columns %v, len %d", d.Columns(), d.Len())
	}
	if d.Has("x") {
		t.Fatalf("empty dataset has column x")
	}
}

func TestAccessErrors(t *testing.T) {
	d := new(Builder).
		AddNumeric("n", []float64{1}).
		AddCategorical("c", []string{"a"}, nil).
		MustDone()

	_, err := d.Floats("c")
	var ke *KindError
	if !errors.As(err, &ke) || ke.Want != Numeric {
		t.Errorf("Floats(c) should fail with KindError; got %v", err)
	}
	_, _, err = d.Strings("n")
	shouldError(t, `column "n" is numeric, not categorical`, err)

	_, err = d.Floats("zzz")
	var ue *UnknownColumnError
	if !errors.As(err, &ue) || ue.Column != "zzz" {
		t.Errorf("Floats(zzz) should fail with UnknownColumnError; got %v", err)
	}
}

func TestValueCounts(t *testing.T) {
	d := new(Builder).
		AddCategorical("c",
			[]string{"b", "a", "", "a", "c", "b", "", "a"},
			[]bool{false, false, true, false, false, false, true, false}).
		AddNumeric("n", []float64{2, 1, math.NaN(), 2, 2, 1, 3, math.NaN()}).
		MustDone()

	got, err := d.ValueCounts("c")
	if err != nil {
		t.Fatal(err)
	}
	want := []Count{
		{"a", false, 3},
		{"b", false, 2},
		{MissingLabel, true, 2},
		{"c", false, 1},
	}
	if !de(want, got) {
		t.Errorf("ValueCounts(c) should be %v; got %v", want, got)
	}

	got, err = d.ValueCounts("n")
	if err != nil {
		t.Fatal(err)
	}
	want = []Count{
		{"2", false, 3},
		{"1", false, 2},
		{MissingLabel, true, 2},
		{"3", false, 1},
	}
	if !de(want, got) {
		t.Errorf("ValueCounts(n) should be %v; got %v", want, got)
	}
}

func TestCardinality(t *testing.T) {
	d := new(Builder).
		AddCategorical("c", []string{"a", "", "a", ""}, []bool{false, true, false, false}).
		Add("t", make([]time.Time, 4)).
		MustDone()
	empty := new(Builder).AddCategorical("empty", []string{}, nil).MustDone()

	// "" is a real value distinct from missing.
	if n, err := d.Cardinality("c"); err != nil || n != 3 {
		t.Errorf("Cardinality(c) should be 3; got %d, %v", n, err)
	}
	if n, err := empty.Cardinality("empty"); err != nil || n != 0 {
		t.Errorf("Cardinality(empty) should be 0; got %d, %v", n, err)
	}
	if _, err := d.Cardinality("t"); err == nil {
		t.Errorf("Cardinality(t) should fail for an Other column")
	}
}

func TestFromRecords(t *testing.T) {
	header := []string{"name", "age", "city", "blank"}
	rows := [][]string{
		{"ann", "31", "Oslo", ""},
		{"bob", "", "", ""},
		{"cy", "2.5", "Rome", " "},
	}
	d, err := FromRecords(header, rows)
	if err != nil {
		t.Fatal(err)
	}
	for col, want := range map[string]Kind{
		"name": Categorical, "age": Numeric, "city": Categorical, "blank": Categorical,
	} {
		if got := d.Kind(col); got != want {
			t.Errorf("Kind(%q) should be %v; got %v", col, want, got)
		}
	}
	fs, _ := d.Floats("age")
	if fs[0] != 31 || !math.IsNaN(fs[1]) || fs[2] != 2.5 {
		t.Errorf("age should be [31 NaN 2.5]; got %v", fs)
	}
	_, missing, _ := d.Strings("city")
	if !de(missing, []bool{false, true, false}) {
		t.Errorf("city missing mask should be [false true false]; got %v", missing)
	}

	_, err = FromRecords(header, [][]string{{"x"}})
	shouldError(t, `row 1 has 1 fields, want 4`, err)
}
