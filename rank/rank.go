// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package rank

import (
	"github.com/born-ml/ndrank/array"
	"github.com/born-ml/ndrank/internal/rank"
	"github.com/born-ml/ndrank/parallel"
)

// Method selects how tied elements are ranked.
type Method = rank.Method

// Tie-breaking methods.
const (
	Minimum Method = rank.Minimum
	Maximum Method = rank.Maximum
	Average Method = rank.Average
)

// ErrUnknownMethod is returned by ParseMethod for unrecognized names.
var ErrUnknownMethod = rank.ErrUnknownMethod

// ParseMethod parses "minimum", "maximum" or "average" (or "min", "max",
// "avg"), case-insensitively.
func ParseMethod(s string) (Method, error) {
	return rank.ParseMethod(s)
}

// Option configures the axis variants.
type Option = rank.Option

// WithParallel runs per-slice work with the given parallel configuration.
func WithParallel(cfg parallel.Config) Option {
	return rank.WithParallel(cfg)
}

// Rank returns an array of the same shape as a, where each value is replaced
// with its rank. Zero is reserved for elements whose rank cannot be computed
// (NaN values in floating-point arrays). The lowest rank is one.
func Rank[T array.Ordered](a *array.Array[T], method Method) *array.Array[uint] {
	return rank.Rank(a, method)
}

// RankAxis ranks every slice along axis independently. For a matrix, axis 0
// ranks elements within rows.
func RankAxis[T array.Ordered](a *array.Array[T], axis int, method Method, opts ...Option) *array.Array[uint] {
	return rank.RankAxis(a, axis, method, opts...)
}

// Discretize returns an array of the same shape as a, where each value is
// replaced with a bucket identifier in [1, buckets]. Zero is reserved for
// elements whose bucket cannot be computed.
//
// Panics if buckets < 1.
func Discretize[T array.Ordered](a *array.Array[T], method Method, buckets int) *array.Array[uint] {
	return rank.Discretize(a, method, buckets)
}

// DiscretizeAxis discretizes every slice along axis independently. For a
// matrix, axis 0 buckets elements within rows.
func DiscretizeAxis[T array.Ordered](a *array.Array[T], axis int, method Method, buckets int, opts ...Option) *array.Array[uint] {
	return rank.DiscretizeAxis(a, axis, method, buckets, opts...)
}

// CutPoints returns the lowest rank of every bucket used by Discretize when
// ranks 1..maxRank are split into buckets.
func CutPoints(maxRank uint, buckets int) []uint {
	return rank.CutPoints(maxRank, buckets)
}
