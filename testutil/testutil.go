package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/kmeans2d/geom"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// NormFloat64 returns a standard-normally distributed float64.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// UniformPoints generates num points drawn uniformly within bounds.
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) UniformPoints(num int, bounds geom.Bounds) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geom.Point, num)
	for i := range points {
		points[i] = geom.RandomWithin(bounds, r.rand)
	}
	return points
}

// BlobPoints generates points clustered in Gaussian blobs around the
// given centers, stddev controlling the spread of each blob. Points are
// emitted round-robin across blobs, so any contiguous chunk of the
// result mixes all blobs.
//
// Useful for convergence tests on well-separated input.
func (r *RNG) BlobPoints(num int, centers []geom.Point, stddev float64) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geom.Point, num)
	for i := range points {
		center := centers[i%len(centers)]
		points[i] = geom.Point{
			X: center.X + r.rand.NormFloat64()*stddev,
			Y: center.Y + r.rand.NormFloat64()*stddev,
		}
	}
	return points
}

// CheckPartition verifies that membership covers every element of
// points exactly once: no omissions, no duplicates, no references to
// foreign points. Members must be pointers into the points slice.
//
// Coverage is tracked in a roaring bitmap over point indices, so both
// duplicates and omissions are detected exactly.
func CheckPartition(points []geom.Point, membership [][]*geom.Point) error {
	index := make(map[*geom.Point]uint32, len(points))
	for i := range points {
		index[&points[i]] = uint32(i)
	}

	covered := roaring.New()
	for ci, members := range membership {
		for _, p := range members {
			i, ok := index[p]
			if !ok {
				return fmt.Errorf("cluster %d references a point outside the input slice: %v", ci, *p)
			}
			if covered.Contains(i) {
				return fmt.Errorf("point %d (%v) assigned to more than one cluster", i, *p)
			}
			covered.Add(i)
		}
	}

	if n := uint64(len(points)); covered.GetCardinality() != n {
		missing := roaring.Flip(covered, 0, n)
		return fmt.Errorf("%d of %d points unassigned (first missing: %d)",
			missing.GetCardinality(), n, missing.Minimum())
	}

	return nil
}
