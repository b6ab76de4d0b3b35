package rank

import (
	"fmt"
	"slices"

	"github.com/born-ml/ndrank/internal/array"
)

func checkBuckets(buckets int) {
	if buckets < 1 {
		panic(fmt.Sprintf("discretize: buckets must be >= 1, got %d", buckets))
	}
}

// CutPoints returns the lowest rank of every bucket when ranks 1..maxRank are
// split into the requested number of buckets.
//
// Each bucket spans maxRank/buckets ranks and the first maxRank%buckets
// buckets take one extra rank. When there are fewer ranks than buckets the
// bucket count shrinks to maxRank so that no bucket is empty. The first cut
// point is always 1. A maxRank of 0 yields no cut points.
//
// Example:
//
//	rank.CutPoints(7, 3) // [1 4 6]: widths 3, 2, 2
//	rank.CutPoints(2, 5) // [1 2]: only two buckets are used
func CutPoints(maxRank uint, buckets int) []uint {
	checkBuckets(buckets)
	if maxRank == 0 {
		return nil
	}

	n := uint(buckets)
	perBucket := maxRank / n
	if perBucket == 0 {
		// Not enough ranks to cover all the buckets.
		n, perBucket = maxRank, 1
	}
	remainder := maxRank % n

	cuts := make([]uint, 0, n)
	low := uint(1)
	for b := uint(0); b < n; b++ {
		cuts = append(cuts, low)
		width := perBucket
		if b < remainder {
			width++
		}
		low += width
	}
	return cuts
}

// bucketOf returns the number of cut points <= r, which is r's 1-based bucket.
func bucketOf(cuts []uint, r uint) uint {
	i, found := slices.BinarySearch(cuts, r)
	if found {
		i++
	}
	return uint(i)
}

// Discretize returns an array of a's shape in which every element is
// replaced with a bucket identifier in [1, buckets]. Zero is reserved for
// elements whose rank cannot be computed (NaN values in floating-point
// arrays). Buckets hold near-equal numbers of consecutive ranks, with the
// leftover ranks going to the lowest buckets.
//
// Panics if buckets < 1.
//
// Example:
//
//	// [[6 5 4] [3 2 1]]
//	rank.Discretize(a, rank.Minimum, 3) // [[3 3 2] [2 1 1]]
func Discretize[T array.Ordered](a *array.Array[T], method Method, buckets int) *array.Array[uint] {
	checkBuckets(buckets)
	ranks := Rank(a, method)
	data := ranks.Data()
	if len(data) == 0 {
		return ranks
	}

	maxRank := slices.Max(data)
	if maxRank == 0 {
		return ranks
	}

	cuts := CutPoints(maxRank, buckets)
	for i, r := range data {
		if r == 0 {
			continue
		}
		data[i] = bucketOf(cuts, r)
	}
	return ranks
}

// DiscretizeAxis discretizes every slice along axis independently. Bucket
// boundaries are computed per slice and never aligned across slices.
//
// Panics if buckets < 1 or axis is out of range.
func DiscretizeAxis[T array.Ordered](a *array.Array[T], axis int, method Method, buckets int, opts ...Option) *array.Array[uint] {
	checkBuckets(buckets)
	method.validate()
	o := buildOptions(opts)
	return array.MapAxis(a, axis, func(s *array.Array[T]) *array.Array[uint] {
		return Discretize(s, method, buckets)
	}, o.parallel)
}
