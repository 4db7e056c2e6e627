// Package testutil provides testing utilities for kmeans2d.
//
// This package is intended for use in tests and benchmarks only.
// It offers a seedable, thread-safe RNG, point-set generators
// (uniform and Gaussian blobs), and an exact partition-coverage check.
package testutil
