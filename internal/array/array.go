package array

import "fmt"

// Array is a dense, row-major N-dimensional array of elements of type T.
//
// Row-major iteration order is the canonical enumeration order: it is the
// order used for tie resolution in ranking and for every element-wise loop.
//
// Example:
//
//	a := array.Zeros[float64](Shape{2, 3})
//	a.Set(1.5, 1, 2)
//	v := a.At(1, 2) // 1.5
type Array[T any] struct {
	data   []T
	shape  Shape
	stride []int
}

// New creates a zero-initialized array with the given dimensions.
// Panics if any dimension is negative.
func New[T any](shape ...int) *Array[T] {
	return Zeros[T](Shape(shape))
}

// Zeros creates an array filled with the zero value of T.
// Panics if any dimension is negative.
func Zeros[T any](shape Shape) *Array[T] {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return &Array[T]{
		data:   make([]T, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	a := array.Full(Shape{3, 3}, 3.14)
func Full[T any](shape Shape, value T) *Array[T] {
	a := Zeros[T](shape)
	for i := range a.data {
		a.data[i] = value
	}
	return a
}

// FromSlice creates an array from a Go slice laid out in row-major order.
// The slice is copied into the array's memory.
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	a := Zeros[T](shape)
	copy(a.data, data)
	return a, nil
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Strides returns the array's row-major strides.
func (a *Array[T]) Strides() []int {
	return a.stride
}

// NDim returns the number of dimensions.
func (a *Array[T]) NDim() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *Array[T]) NumElements() int {
	return len(a.data)
}

// Data returns the underlying row-major storage (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the array.
func (a *Array[T]) Data() []T {
	return a.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array[T]) At(indices ...int) T {
	return a.data[a.offset("at", indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (a *Array[T]) Set(value T, indices ...int) {
	a.data[a.offset("set", indices)] = value
}

func (a *Array[T]) offset(op string, indices []int) int {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("%s: expected %d indices, got %d", op, len(a.shape), len(indices)))
	}
	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("%s: index %d out of bounds for dimension %d (size %d)", op, idx, i, a.shape[i]))
		}
		off += idx * a.stride[i]
	}
	return off
}

// Clone creates a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		data:   append([]T(nil), a.data...),
		shape:  a.shape.Clone(),
		stride: append([]int(nil), a.stride...),
	}
}

// ForEachIndexed calls fn with the multi-index and value of every element in
// canonical (row-major) order. The index slice is reused between calls.
func (a *Array[T]) ForEachIndexed(fn func(idx []int, v T)) {
	idx := make([]int, len(a.shape))
	for flat, v := range a.data {
		Unravel(flat, a.shape, idx)
		fn(idx, v)
	}
}

// String returns a short description of the array.
func (a *Array[T]) String() string {
	var zero T
	return fmt.Sprintf("Array[%T]%v", zero, a.shape)
}
