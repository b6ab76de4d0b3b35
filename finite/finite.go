// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package finite counts and replaces non-finite values (NaN, +Inf, -Inf).
//
// For floating-point element types a value is finite when it is neither NaN
// nor infinite. Integer values are always finite, so the counts and fills
// below are trivial for integer arrays.
//
// Example:
//
//	a, _ := array.FromSlice([]float64{1, 2, math.NaN(), 3}, array.Shape{4})
//	finite.CountFinite(a)    // 3
//	finite.FillNonFinite(a, 0)
//	finite.CountNonFinite(a) // 0
package finite

import (
	"github.com/born-ml/ndrank/array"
	"github.com/born-ml/ndrank/internal/finite"
	"github.com/born-ml/ndrank/parallel"
)

// Option configures the axis variants.
type Option = finite.Option

// WithParallel runs per-slice work with the given parallel configuration.
func WithParallel(cfg parallel.Config) Option {
	return finite.WithParallel(cfg)
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite[T array.Element](v T) bool {
	return finite.IsFinite(v)
}

// CountFinite returns the number of finite values.
func CountFinite[T array.Element](a *array.Array[T]) uint {
	return finite.CountFinite(a)
}

// CountNonFinite returns the number of non-finite values.
// CountFinite(a) + CountNonFinite(a) always equals a.NumElements().
func CountNonFinite[T array.Element](a *array.Array[T]) uint {
	return finite.CountNonFinite(a)
}

// FillNonFinite replaces non-finite values in a with the given value.
func FillNonFinite[T array.Element](a *array.Array[T], with T) {
	finite.FillNonFinite(a, with)
}

// FillNonFiniteCopy returns a copy of a with non-finite values replaced.
func FillNonFiniteCopy[T array.Element](a *array.Array[T], with T) *array.Array[T] {
	return finite.FillNonFiniteCopy(a, with)
}

// CountFiniteAxis returns the number of finite values for each index along
// the given axis. For a matrix, axis 0 gives the number of finite values per
// row.
func CountFiniteAxis[T array.Element](a *array.Array[T], axis int, opts ...Option) *array.Array[uint] {
	return finite.CountFiniteAxis(a, axis, opts...)
}

// CountNonFiniteAxis returns the number of non-finite values for each index
// along the given axis.
func CountNonFiniteAxis[T array.Element](a *array.Array[T], axis int, opts ...Option) *array.Array[uint] {
	return finite.CountNonFiniteAxis(a, axis, opts...)
}
