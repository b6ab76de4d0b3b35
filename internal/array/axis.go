package array

import (
	"fmt"

	"github.com/born-ml/ndrank/internal/parallel"
)

// axisLayout splits a shape around axis into outer (dims before), n (the axis
// extent) and inner (dims after) so that element (o, i, k) lives at flat
// offset (o*n+i)*inner + k.
func axisLayout(shape Shape, axis int) (outer, n, inner int) {
	outer, inner = 1, 1
	for d := 0; d < axis; d++ {
		outer *= shape[d]
	}
	for d := axis + 1; d < len(shape); d++ {
		inner *= shape[d]
	}
	return outer, shape[axis], inner
}

// AxisLen returns the number of slices along axis.
// Panics if axis is out of range.
func AxisLen[T any](a *Array[T], axis int) int {
	checkAxis("axislen", axis, a.NDim())
	return a.shape[axis]
}

// IndexAxis returns a copy of the (N-1)-dimensional slice obtained by fixing
// coordinate i along axis.
//
// Example:
//
//	a, _ := array.FromSlice([]int{6, 5, 4, 3, 2, 1}, Shape{2, 3})
//	row := array.IndexAxis(a, 0, 1) // [3 2 1], shape (3)
//	col := array.IndexAxis(a, 1, 0) // [6 3], shape (2)
func IndexAxis[T any](a *Array[T], axis, i int) *Array[T] {
	checkAxis("indexaxis", axis, a.NDim())
	outer, n, inner := axisLayout(a.shape, axis)
	if i < 0 || i >= n {
		panic(fmt.Sprintf("indexaxis: index %d out of bounds for axis %d (size %d)", i, axis, n))
	}

	out := Zeros[T](a.shape.RemoveAxis(axis))
	for o := 0; o < outer; o++ {
		copy(out.data[o*inner:(o+1)*inner], a.data[(o*n+i)*inner:(o*n+i+1)*inner])
	}
	return out
}

// AssignAxis writes src into the slice of dst at coordinate i along axis.
// src must have dst's shape with axis removed.
func AssignAxis[T any](dst *Array[T], axis, i int, src *Array[T]) {
	checkAxis("assignaxis", axis, dst.NDim())
	outer, n, inner := axisLayout(dst.shape, axis)
	if i < 0 || i >= n {
		panic(fmt.Sprintf("assignaxis: index %d out of bounds for axis %d (size %d)", i, axis, n))
	}
	if want := dst.shape.RemoveAxis(axis); !want.Equal(src.shape) {
		panic(fmt.Sprintf("assignaxis: slice shape %v does not match %v", src.shape, want))
	}

	for o := 0; o < outer; o++ {
		copy(dst.data[(o*n+i)*inner:(o*n+i+1)*inner], src.data[o*inner:(o+1)*inner])
	}
}

// MapAxis applies fn independently to every slice along axis and reassembles
// the results into an array of src's shape. fn must return an array of the
// slice's shape.
//
// Slices never share output regions, so cfg may enable parallel execution
// without changing the result.
func MapAxis[T, U any](src *Array[T], axis int, fn func(*Array[T]) *Array[U], cfg parallel.Config) *Array[U] {
	checkAxis("mapaxis", axis, src.NDim())
	out := Zeros[U](src.shape)
	parallel.For(src.shape[axis], func(i int) {
		AssignAxis(out, axis, i, fn(IndexAxis(src, axis, i)))
	}, cfg)
	return out
}

// ReduceAxis applies fn to every slice along axis and returns a 1-D array
// holding one result per slice, in axis order.
func ReduceAxis[T, U any](src *Array[T], axis int, fn func(*Array[T]) U, cfg parallel.Config) *Array[U] {
	checkAxis("reduceaxis", axis, src.NDim())
	n := src.shape[axis]
	out := Zeros[U](Shape{n})
	parallel.For(n, func(i int) {
		out.data[i] = fn(IndexAxis(src, axis, i))
	}, cfg)
	return out
}
