// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the dense N-dimensional container used by the
// rank, finite and pairwise packages.
//
// # Overview
//
// An Array[T] stores its elements in row-major order. Row-major order is the
// canonical enumeration order: ranking resolves ties and assigns ranks in
// this order, and every element-wise operation walks it.
//
// # Basic Usage
//
//	import "github.com/born-ml/ndrank/array"
//
//	func main() {
//	    a, err := array.FromSlice([]float64{6, 5, 4, 3, 2, 1}, array.Shape{2, 3})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    row := array.IndexAxis(a, 0, 1) // [3 2 1]
//	}
//
// # Axis Slicing
//
// IndexAxis, AssignAxis and MapAxis decompose an array into the ordered
// sequence of (N-1)-dimensional slices obtained by fixing one coordinate
// along an axis. Every *Axis operation in this module is built on MapAxis or
// ReduceAxis, which can fan slices out across goroutines (see package
// parallel) without changing results.
//
// # Interop
//
// FromFloat16 widens half-precision buffers (github.com/x448/float16) to
// float32. FromMatrix and ToDense convert between 2-D arrays and gonum
// matrices.
package array
