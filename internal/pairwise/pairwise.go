// Package pairwise implements element-wise minimum and maximum between two
// arrays of identical shape.
//
// Comparisons use the element type's partial order directly: the maximum form
// takes b[i] only when a[i] < b[i], the minimum form only when a[i] > b[i].
// Consequently a NaN in a is kept, and a NaN in b never replaces a[i].
package pairwise

import (
	"fmt"

	"github.com/born-ml/ndrank/internal/array"
)

func checkShapes[T array.Ordered](op string, a, b *array.Array[T]) {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, a.Shape(), b.Shape()))
	}
}

// MaximumWithInplace takes the element-wise maximum of a and b, storing it in a.
// Panics if the shapes differ.
func MaximumWithInplace[T array.Ordered](a, b *array.Array[T]) {
	checkShapes("maximumwith", a, b)
	dst, src := a.Data(), b.Data()
	for i, o := range src {
		if dst[i] < o {
			dst[i] = o
		}
	}
}

// MinimumWithInplace takes the element-wise minimum of a and b, storing it in a.
// Panics if the shapes differ.
func MinimumWithInplace[T array.Ordered](a, b *array.Array[T]) {
	checkShapes("minimumwith", a, b)
	dst, src := a.Data(), b.Data()
	for i, o := range src {
		if dst[i] > o {
			dst[i] = o
		}
	}
}

// MaximumWith returns the element-wise maximum of a and b as a new array.
//
// Example:
//
//	c := pairwise.MaximumWith(a, b) // [1 2 3] vs [-1 2 5] -> [1 2 5]
func MaximumWith[T array.Ordered](a, b *array.Array[T]) *array.Array[T] {
	out := a.Clone()
	MaximumWithInplace(out, b)
	return out
}

// MinimumWith returns the element-wise minimum of a and b as a new array.
func MinimumWith[T array.Ordered](a, b *array.Array[T]) *array.Array[T] {
	out := a.Clone()
	MinimumWithInplace(out, b)
	return out
}
