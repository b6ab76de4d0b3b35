// Package finite counts and replaces non-finite values (NaN, ±Inf) in arrays.
package finite

import (
	"math"

	"github.com/born-ml/ndrank/internal/array"
	"github.com/born-ml/ndrank/internal/parallel"
)

// IsFinite reports whether v is neither NaN nor an infinity.
// Integer values are always finite.
func IsFinite[T array.Element](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
	case float64:
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	}
	// Named float types fall through the switch; NaN fails v == v and
	// ±Inf yields NaN for v - v. Both are false for every integer.
	d := v - v
	return v == v && d == d
}

// CountFinite returns the number of finite values.
func CountFinite[T array.Element](a *array.Array[T]) uint {
	var n uint
	for _, v := range a.Data() {
		if IsFinite(v) {
			n++
		}
	}
	return n
}

// CountNonFinite returns the number of non-finite values.
func CountNonFinite[T array.Element](a *array.Array[T]) uint {
	return uint(a.NumElements()) - CountFinite(a)
}

// FillNonFinite replaces every non-finite value in a with the given value.
// Finite values are left untouched.
func FillNonFinite[T array.Element](a *array.Array[T], with T) {
	data := a.Data()
	for i, v := range data {
		if !IsFinite(v) {
			data[i] = with
		}
	}
}

// FillNonFiniteCopy returns a copy of a with non-finite values replaced.
func FillNonFiniteCopy[T array.Element](a *array.Array[T], with T) *array.Array[T] {
	out := a.Clone()
	FillNonFinite(out, with)
	return out
}

// Option configures the axis variants.
type Option func(*options)

type options struct {
	parallel parallel.Config
}

// WithParallel runs per-slice work with the given parallel configuration.
func WithParallel(cfg parallel.Config) Option {
	return func(o *options) {
		o.parallel = cfg
	}
}

func buildOptions(opts []Option) options {
	o := options{parallel: parallel.Sequential()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// CountFiniteAxis returns the number of finite values in each slice along
// axis, as a 1-D array with one count per slice. For a matrix, axis 0 gives
// the count per row.
func CountFiniteAxis[T array.Element](a *array.Array[T], axis int, opts ...Option) *array.Array[uint] {
	o := buildOptions(opts)
	return array.ReduceAxis(a, axis, CountFinite[T], o.parallel)
}

// CountNonFiniteAxis returns the number of non-finite values in each slice
// along axis. For a matrix, axis 0 gives the count per row.
func CountNonFiniteAxis[T array.Element](a *array.Array[T], axis int, opts ...Option) *array.Array[uint] {
	o := buildOptions(opts)
	return array.ReduceAxis(a, axis, CountNonFinite[T], o.parallel)
}
