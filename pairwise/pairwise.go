// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pairwise provides element-wise minimum and maximum between two
// arrays of the same shape.
//
// A NaN in the receiver is kept; a NaN in the other array never replaces a
// value. Mismatched shapes panic.
package pairwise

import (
	"github.com/born-ml/ndrank/array"
	"github.com/born-ml/ndrank/internal/pairwise"
)

// MaximumWith returns the element-wise maximum with another array.
//
// Example:
//
//	c := pairwise.MaximumWith(a, b) // [1 2 3], [-1 2 5] -> [1 2 5]
func MaximumWith[T array.Ordered](a, b *array.Array[T]) *array.Array[T] {
	return pairwise.MaximumWith(a, b)
}

// MinimumWith returns the element-wise minimum with another array.
func MinimumWith[T array.Ordered](a, b *array.Array[T]) *array.Array[T] {
	return pairwise.MinimumWith(a, b)
}

// MaximumWithInplace takes the element-wise maximum with another array,
// storing the result in a.
func MaximumWithInplace[T array.Ordered](a, b *array.Array[T]) {
	pairwise.MaximumWithInplace(a, b)
}

// MinimumWithInplace takes the element-wise minimum with another array,
// storing the result in a.
func MinimumWithInplace[T array.Ordered](a, b *array.Array[T]) {
	pairwise.MinimumWithInplace(a, b)
}
