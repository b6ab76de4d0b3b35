package rank

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/born-ml/ndrank/internal/array"
)

type indexed[T array.Ordered] struct {
	flat  int
	value T
}

// inOrder reports whether v takes part in the total order, i.e. at least
// one ordering comparison against the zero value succeeds. This excludes
// exactly NaN for floating-point types.
func inOrder[T array.Ordered](v T) bool {
	var zero T
	return v < zero || v > zero || v == zero
}

func (m Method) validate() {
	if m < Minimum || m > Average {
		panic(fmt.Sprintf("rank: invalid method %d", int(m)))
	}
}

// Rank returns an array of a's shape in which every element is replaced with
// its rank. Zero is reserved for elements whose rank cannot be computed (NaN
// values in floating-point arrays). The lowest rank is one.
//
// Ties are broken with method; equal elements always receive equal ranks.
//
// Example:
//
//	a, _ := array.FromSlice([]float64{4, 3, math.NaN(), 1}, array.Shape{4})
//	r := rank.Rank(a, rank.Minimum) // [3 2 0 1]
func Rank[T array.Ordered](a *array.Array[T], method Method) *array.Array[uint] {
	method.validate()

	data := a.Data()
	pairs := make([]indexed[T], 0, len(data))
	for i, v := range data {
		if !inOrder(v) {
			continue
		}
		pairs = append(pairs, indexed[T]{flat: i, value: v})
	}
	slices.SortStableFunc(pairs, func(x, y indexed[T]) int {
		return cmp.Compare(x.value, y.value)
	})

	ranks := array.Zeros[uint](a.Shape())
	out := ranks.Data()

	var r uint = 1
	for start := 0; start < len(pairs); {
		end := start + 1
		for end < len(pairs) && pairs[end].value == pairs[start].value {
			end++
		}

		g := uint(end - start)
		assigned := method.assign(r, g)
		for _, p := range pairs[start:end] {
			out[p.flat] = assigned
		}

		r += g
		start = end
	}
	return ranks
}

// RankAxis ranks every slice along axis independently and returns an array
// of a's shape. Ties and rank assignment never cross slices. For a matrix,
// axis 0 ranks the elements within each row.
//
// Example:
//
//	// [[6 5 4] [3 2 1]]
//	rank.RankAxis(a, 0, rank.Minimum) // [[3 2 1] [3 2 1]]
//	rank.RankAxis(a, 1, rank.Minimum) // [[2 2 2] [1 1 1]]
func RankAxis[T array.Ordered](a *array.Array[T], axis int, method Method, opts ...Option) *array.Array[uint] {
	method.validate()
	o := buildOptions(opts)
	return array.MapAxis(a, axis, func(s *array.Array[T]) *array.Array[uint] {
		return Rank(s, method)
	}, o.parallel)
}
