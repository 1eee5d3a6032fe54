// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"reflect"
)

// Kind is the declared kind of a column. It is fixed when the column
// is added to a Dataset.
type Kind int

const (
	// Other is any column that is neither numeric nor categorical.
	// Such columns can be stored but most charts reject them.
	Other Kind = iota

	// Numeric columns hold integers, floats, or bools. Missing
	// values are NaN.
	Numeric

	// Categorical columns hold strings. Missing values are
	// tracked separately from the values themselves.
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "other"
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// kindOf returns the Kind for a column whose element type is elt.
func kindOf(elt reflect.Type) Kind {
	switch elt.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Numeric
	case reflect.String:
		return Categorical
	}
	return Other
}
