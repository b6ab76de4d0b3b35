// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rank computes ranks and equal-count buckets over N-dimensional
// arrays.
//
// # Ranks
//
// Rank replaces every element with its 1-based position in ascending order.
// Elements outside the total order (NaN) receive the sentinel rank 0 and are
// excluded from ranking, so the remaining values are ranked densely among
// themselves. Tied elements share a rank chosen by Method:
//
//	input            [4 2 2 1]   [4 1 1 1]
//	rank.Minimum     [4 2 2 1]   [4 1 1 1]
//	rank.Maximum     [4 3 3 1]   [4 3 3 3]
//	rank.Average     [4 2 2 1]   [4 2 2 2]
//
// Average uses the floor of the mean rank of the tie-group.
//
// # Buckets
//
// Discretize maps ranks onto buckets 1..n of near-equal rank width, giving
// leftover ranks to the lowest buckets. When there are fewer ranks than
// buckets, only as many buckets as ranks are used, so no bucket is empty.
// Rank 0 stays bucket 0.
//
// # Axes
//
// RankAxis and DiscretizeAxis apply the whole-array operation independently
// to every slice along an axis. For a matrix, axis 0 ranks within rows.
// WithParallel spreads slices across goroutines.
package rank
