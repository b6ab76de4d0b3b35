// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/x448/float16"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndrank/internal/array"
	"github.com/born-ml/ndrank/parallel"
)

// Element is a constraint for numeric element types.
type Element = array.Element

// Ordered is a constraint for element types that can be ranked.
type Ordered = array.Ordered

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = array.Shape

// Array is a dense, row-major N-dimensional array.
type Array[T any] = array.Array[T]

// Errors returned by FromSlice and FromFloat16.
var (
	ErrInvalidShape  = array.ErrInvalidShape
	ErrShapeMismatch = array.ErrShapeMismatch
)

// New creates a zero-initialized array with the given dimensions.
//
// Example:
//
//	a := array.New[float64](2, 3)
func New[T any](shape ...int) *Array[T] {
	return array.New[T](shape...)
}

// Zeros creates an array filled with the zero value of T.
func Zeros[T any](shape Shape) *Array[T] {
	return array.Zeros[T](shape)
}

// Full creates an array filled with a specific value.
func Full[T any](shape Shape, value T) *Array[T] {
	return array.Full(shape, value)
}

// FromSlice creates an array from a row-major Go slice.
//
// Example:
//
//	a, err := array.FromSlice([]int{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	return array.FromSlice(data, shape)
}

// FromFloat16 widens half-precision data into a float32 array.
func FromFloat16(data []float16.Float16, shape Shape) (*Array[float32], error) {
	return array.FromFloat16(data, shape)
}

// FromMatrix copies a gonum matrix into a 2-D array.
func FromMatrix(m mat.Matrix) *Array[float64] {
	return array.FromMatrix(m)
}

// ToDense copies a 2-D array into a new gonum dense matrix.
func ToDense(a *Array[float64]) *mat.Dense {
	return array.ToDense(a)
}

// AxisLen returns the number of slices along axis.
func AxisLen[T any](a *Array[T], axis int) int {
	return array.AxisLen(a, axis)
}

// IndexAxis returns a copy of the slice at coordinate i along axis.
func IndexAxis[T any](a *Array[T], axis, i int) *Array[T] {
	return array.IndexAxis(a, axis, i)
}

// AssignAxis writes src into the slice of dst at coordinate i along axis.
func AssignAxis[T any](dst *Array[T], axis, i int, src *Array[T]) {
	array.AssignAxis(dst, axis, i, src)
}

// MapAxis applies fn to every slice along axis and reassembles the results
// into an array of src's shape.
func MapAxis[T, U any](src *Array[T], axis int, fn func(*Array[T]) *Array[U], cfg parallel.Config) *Array[U] {
	return array.MapAxis(src, axis, fn, cfg)
}

// ReduceAxis applies fn to every slice along axis and returns one result per
// slice as a 1-D array.
func ReduceAxis[T, U any](src *Array[T], axis int, fn func(*Array[T]) U, cfg parallel.Config) *Array[U] {
	return array.ReduceAxis(src, axis, fn, cfg)
}
