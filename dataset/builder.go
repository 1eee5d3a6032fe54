// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/table"
)

// A Builder constructs a Dataset column by column.
//
// The first error encountered is retained and reported by Done;
// later Add calls are ignored once an error has occurred. A Builder
// must not be used after Done.
type Builder struct {
	b       table.Builder
	names   []string
	kinds   map[string]Kind
	types   map[string]string
	missing map[string][]bool
	len     int
	err     error
}

// Add adds a column whose kind is determined by its element type:
// integer, float and bool slices are Numeric, string slices are
// Categorical with no missing values, and anything else is Other.
func (b *Builder) Add(name string, seq interface{}) *Builder {
	rv := reflect.ValueOf(seq)
	if rv.Kind() != reflect.Slice {
		b.fail(fmt.Errorf("column %q: %T is not a slice", name, seq))
		return b
	}
	elt := rv.Type().Elem()
	kind := kindOf(elt)
	if kind == Categorical {
		if _, ok := seq.([]string); !ok {
			// Named string types are stored as plain strings.
			ss := make([]string, rv.Len())
			for i := range ss {
				ss[i] = rv.Index(i).String()
			}
			seq = ss
		}
		return b.add(name, seq, Categorical, elt.String(), make([]bool, rv.Len()))
	}
	if elt.Kind() == reflect.Bool {
		if _, ok := seq.([]bool); !ok {
			// Named bool types are stored as plain bools.
			bs := make([]bool, rv.Len())
			for i := range bs {
				bs[i] = rv.Index(i).Bool()
			}
			seq = bs
		}
	}
	return b.add(name, seq, kind, elt.String(), nil)
}

// AddNumeric adds a Numeric column. NaN values are missing.
func (b *Builder) AddNumeric(name string, vals []float64) *Builder {
	return b.add(name, vals, Numeric, "float64", nil)
}

// AddCategorical adds a Categorical column. If missing is non-nil, it
// must have the same length as vals and missing[i] marks row i as
// having no value.
func (b *Builder) AddCategorical(name string, vals []string, missing []bool) *Builder {
	if missing == nil {
		missing = make([]bool, len(vals))
	} else if len(missing) != len(vals) {
		b.fail(fmt.Errorf("column %q: %d values but %d missing flags", name, len(vals), len(missing)))
		return b
	}
	vs := make([]string, len(vals))
	for i, v := range vals {
		if !missing[i] {
			vs[i] = v
		}
	}
	return b.add(name, vs, Categorical, "string", append([]bool(nil), missing...))
}

func (b *Builder) add(name string, seq interface{}, kind Kind, typ string, missing []bool) *Builder {
	if b.err != nil {
		return b
	}
	if b.kinds == nil {
		b.kinds = make(map[string]Kind)
		b.types = make(map[string]string)
		b.missing = make(map[string][]bool)
	}
	if _, ok := b.kinds[name]; ok {
		b.fail(fmt.Errorf("duplicate column %q", name))
		return b
	}
	n := reflect.ValueOf(seq).Len()
	if len(b.names) == 0 {
		b.len = n
	} else if n != b.len {
		b.fail(fmt.Errorf("column %q has %d rows, but dataset has %d", name, n, b.len))
		return b
	}

	b.b.Add(name, seq)
	b.names = append(b.names, name)
	b.kinds[name] = kind
	b.types[name] = typ
	if missing != nil {
		b.missing[name] = missing
	}
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Done returns the constructed Dataset, or the first error
// encountered while adding columns.
func (b *Builder) Done() (*Dataset, error) {
	if b.err != nil {
		return nil, b.err
	}
	d := &Dataset{
		tab:     b.b.Done(),
		kinds:   b.kinds,
		types:   b.types,
		missing: b.missing,
	}
	if d.kinds == nil {
		d.kinds = map[string]Kind{}
		d.types = map[string]string{}
		d.missing = map[string][]bool{}
	}
	return d, nil
}

// MustDone is like Done, but panics on error.
func (b *Builder) MustDone() *Dataset {
	d, err := b.Done()
	if err != nil {
		panic(err)
	}
	return d
}
