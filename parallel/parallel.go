// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package parallel configures how per-slice axis work is spread across
// goroutines.
//
// Axis operations are sequential unless given a Config with Enabled set.
// Each slice writes a disjoint region of the result, so parallel runs
// produce exactly the sequential result.
package parallel

import "github.com/born-ml/ndrank/internal/parallel"

// Config controls parallel execution behavior.
type Config = parallel.Config

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Sequential returns a configuration that never spawns goroutines.
func Sequential() Config {
	return parallel.Sequential()
}

// For executes f(i) for i in [0, n), in parallel when cfg allows it.
func For(n int, f func(i int), cfg Config) {
	parallel.For(n, f, cfg)
}
