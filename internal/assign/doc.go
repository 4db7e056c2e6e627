// Package assign implements the parallel nearest-centroid assignment
// phase of the clustering loop.
//
// Each phase is a scoped fan-out/fan-in: the point slice is split into
// contiguous chunks, one worker goroutine per chunk emits an
// (index, cluster) pair for every point, and a single consumer counts
// pairs against the known total. All workers are joined before the
// phase returns, so the caller may mutate cluster state afterwards
// without synchronization.
package assign
