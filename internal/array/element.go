// Package array provides the dense N-dimensional container that the ranking,
// discretization and finite-value operations are layered on.
package array

import "golang.org/x/exp/constraints"

// Element is a constraint for numeric element types.
// Integer types are always finite; float types may carry NaN and ±Inf.
type Element interface {
	constraints.Integer | constraints.Float
}

// Ordered is a constraint for element types that can be ranked.
// It admits strings in addition to the numeric types.
type Ordered interface {
	constraints.Ordered
}
