package array

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndrank/internal/parallel"
)

func mustFromSlice[T any](t *testing.T, data []T, shape Shape) *Array[T] {
	t.Helper()
	a, err := FromSlice(data, shape)
	require.NoError(t, err)
	return a
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{4}, 4},
		{Shape{2, 3}, 6},
		{Shape{2, 0, 3}, 0},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{2, 0}.Validate())
	err := Shape{2, -1}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{}, Shape{}.ComputeStrides())
}

func TestShapeRemoveAxis(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, Shape{3, 4}, s.RemoveAxis(0))
	assert.Equal(t, Shape{2, 4}, s.RemoveAxis(1))
	assert.Equal(t, Shape{2, 3}, s.RemoveAxis(2))
	assert.Equal(t, Shape{2, 3, 4}, s, "RemoveAxis must not modify the receiver")
	assert.Panics(t, func() { s.RemoveAxis(3) })
	assert.Panics(t, func() { s.RemoveAxis(-1) })
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "(2, 3)", Shape{2, 3}.String())
	assert.Equal(t, "()", Shape{}.String())
}

func TestFromSlice(t *testing.T) {
	a := mustFromSlice(t, []int{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	assert.Equal(t, 2, a.NDim())
	assert.Equal(t, 6, a.NumElements())
	assert.Equal(t, 6, a.At(1, 2))
	assert.Equal(t, 2, a.At(0, 1))

	_, err := FromSlice([]int{1, 2, 3}, Shape{2, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	_, err = FromSlice([]int{}, Shape{-1})
	assert.True(t, errors.Is(err, ErrInvalidShape))
}

func TestFromSliceCopies(t *testing.T) {
	src := []float64{1, 2}
	a := mustFromSlice(t, src, Shape{2})
	src[0] = 99
	assert.Equal(t, 1.0, a.At(0))
}

func TestAtSetBounds(t *testing.T) {
	a := Zeros[float32](Shape{2, 2})
	a.Set(3, 1, 0)
	assert.Equal(t, float32(3), a.Data()[2])

	assert.Panics(t, func() { a.At(2, 0) })
	assert.Panics(t, func() { a.At(0) })
	assert.Panics(t, func() { a.Set(1, 0, -1) })
}

func TestFullAndClone(t *testing.T) {
	a := Full(Shape{2, 2}, 7)
	assert.Equal(t, []int{7, 7, 7, 7}, a.Data())

	b := a.Clone()
	b.Set(1, 0, 0)
	assert.Equal(t, 7, a.At(0, 0), "clone must not share storage")
	assert.True(t, a.Shape().Equal(b.Shape()))
}

func TestForEachIndexed(t *testing.T) {
	a := mustFromSlice(t, []int{0, 1, 2, 3, 4, 5}, Shape{2, 3})

	var got [][]int
	a.ForEachIndexed(func(idx []int, v int) {
		got = append(got, append([]int(nil), idx...))
		assert.Equal(t, v, Ravel(idx, a.Strides()))
	})
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, got)
}

func TestArrayString(t *testing.T) {
	assert.Equal(t, "Array[float64](2, 3)", Zeros[float64](Shape{2, 3}).String())
}

func TestIndexAxis(t *testing.T) {
	a := mustFromSlice(t, []int{6, 5, 4, 3, 2, 1}, Shape{2, 3})

	row := IndexAxis(a, 0, 1)
	assert.Equal(t, Shape{3}, row.Shape())
	assert.Equal(t, []int{3, 2, 1}, row.Data())

	col := IndexAxis(a, 1, 0)
	assert.Equal(t, Shape{2}, col.Shape())
	assert.Equal(t, []int{6, 3}, col.Data())

	assert.Panics(t, func() { IndexAxis(a, 2, 0) })
	assert.Panics(t, func() { IndexAxis(a, 0, 2) })
}

func TestIndexAxis3D(t *testing.T) {
	data := make([]int, 24)
	for i := range data {
		data[i] = i
	}
	a := mustFromSlice(t, data, Shape{2, 3, 4})

	s := IndexAxis(a, 1, 2)
	assert.Equal(t, Shape{2, 4}, s.Shape())
	assert.Equal(t, []int{8, 9, 10, 11, 20, 21, 22, 23}, s.Data())

	for i := 0; i < 2; i++ {
		for k := 0; k < 4; k++ {
			assert.Equal(t, a.At(i, 2, k), s.At(i, k))
		}
	}
}

func TestAssignAxis(t *testing.T) {
	dst := Zeros[int](Shape{2, 3})
	AssignAxis(dst, 1, 2, mustFromSlice(t, []int{7, 8}, Shape{2}))
	assert.Equal(t, []int{0, 0, 7, 0, 0, 8}, dst.Data())

	assert.Panics(t, func() {
		AssignAxis(dst, 1, 0, mustFromSlice(t, []int{1, 2, 3}, Shape{3}))
	})
}

func TestMapAxisRoundTrip(t *testing.T) {
	data := make([]int, 60)
	for i := range data {
		data[i] = i * 3
	}
	a := mustFromSlice(t, data, Shape{3, 4, 5})

	identity := func(s *Array[int]) *Array[int] { return s }
	for axis := 0; axis < 3; axis++ {
		got := MapAxis(a, axis, identity, parallel.Sequential())
		assert.Equal(t, a.Data(), got.Data(), "axis %d", axis)
	}
}

func TestMapAxisParallelMatchesSequential(t *testing.T) {
	data := make([]float64, 64*8)
	for i := range data {
		data[i] = float64((i * 7919) % 13)
	}
	a := mustFromSlice(t, data, Shape{64, 8})

	double := func(s *Array[float64]) *Array[float64] {
		out := s.Clone()
		for i := range out.Data() {
			out.Data()[i] *= 2
		}
		return out
	}
	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}
	seq := MapAxis(a, 0, double, parallel.Sequential())
	par := MapAxis(a, 0, double, cfg)
	assert.Equal(t, seq.Data(), par.Data())
}

func TestReduceAxis(t *testing.T) {
	a := mustFromSlice(t, []int{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	sum := func(s *Array[int]) int {
		total := 0
		for _, v := range s.Data() {
			total += v
		}
		return total
	}

	rows := ReduceAxis(a, 0, sum, parallel.Sequential())
	assert.Equal(t, Shape{2}, rows.Shape())
	assert.Equal(t, []int{6, 15}, rows.Data())

	cols := ReduceAxis(a, 1, sum, parallel.Sequential())
	assert.Equal(t, []int{5, 7, 9}, cols.Data())

	assert.Panics(t, func() { ReduceAxis(a, 2, sum, parallel.Sequential()) })
}

func TestZeroLengthAxis(t *testing.T) {
	a := Zeros[float64](Shape{0, 3})
	assert.Equal(t, 0, a.NumElements())
	assert.Equal(t, 0, AxisLen(a, 0))

	out := ReduceAxis(a, 1, func(s *Array[float64]) int { return s.NumElements() }, parallel.Sequential())
	assert.Equal(t, []int{0, 0, 0}, out.Data())
}

func TestFromFloat16(t *testing.T) {
	src := []float16.Float16{
		float16.Fromfloat32(1.5),
		float16.Fromfloat32(-2),
		float16.NaN(),
		float16.Inf(1),
	}
	a, err := FromFloat16(src, Shape{2, 2})
	require.NoError(t, err)

	assert.Equal(t, float32(1.5), a.At(0, 0))
	assert.Equal(t, float32(-2), a.At(0, 1))
	assert.True(t, math.IsNaN(float64(a.At(1, 0))))
	assert.True(t, math.IsInf(float64(a.At(1, 1)), 1))

	_, err = FromFloat16(src, Shape{3})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestMatrixInterop(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	a := FromMatrix(m)
	assert.Equal(t, Shape{2, 3}, a.Shape())
	assert.Equal(t, 6.0, a.At(1, 2))

	d := ToDense(a)
	assert.True(t, mat.Equal(m, d))

	a.Set(0, 0, 0)
	assert.Equal(t, 1.0, d.At(0, 0), "ToDense must copy")

	assert.Panics(t, func() { ToDense(Zeros[float64](Shape{3})) })
	assert.Panics(t, func() { ToDense(Zeros[float64](Shape{0, 2})) })
}
