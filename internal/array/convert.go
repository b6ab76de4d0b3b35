package array

import (
	"fmt"

	"github.com/x448/float16"
	"gonum.org/v1/gonum/mat"
)

// FromFloat16 widens half-precision data into a float32 array.
// The conversion is exact; NaN and ±Inf are preserved, so finite counts and
// NaN rank sentinels see the same values as the half-precision source.
func FromFloat16(data []float16.Float16, shape Shape) (*Array[float32], error) {
	widened := make([]float32, len(data))
	for i, h := range data {
		widened[i] = h.Float32()
	}
	return FromSlice(widened, shape)
}

// FromMatrix copies a gonum matrix into a 2-D array of shape (rows, cols).
func FromMatrix(m mat.Matrix) *Array[float64] {
	r, c := m.Dims()
	a := Zeros[float64](Shape{r, c})
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a.data[i*c+j] = m.At(i, j)
		}
	}
	return a
}

// ToDense copies a 2-D array into a new gonum dense matrix.
// Panics if a is not 2-D or has a zero-length dimension, which gonum cannot
// represent.
func ToDense(a *Array[float64]) *mat.Dense {
	if a.NDim() != 2 {
		panic(fmt.Sprintf("todense: expected 2D array, got %dD", a.NDim()))
	}
	r, c := a.shape[0], a.shape[1]
	if r == 0 || c == 0 {
		panic(fmt.Sprintf("todense: zero-length dimension in shape %v", a.shape))
	}
	return mat.NewDense(r, c, append([]float64(nil), a.data...))
}
