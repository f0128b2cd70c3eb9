// Package testutil provides testing utilities for stackpool.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic seeded random number generator for driving
// reproducible operation sequences against a pool.
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Ints(1000, 100) // 1000 values in [0, 100)
//	op := rng.Intn(3)             // pick the next operation
package testutil
