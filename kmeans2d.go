package kmeans2d

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/kmeans2d/geom"
	"github.com/hupe1980/kmeans2d/internal/assign"
)

// progressLogInterval throttles the info-level progress line on long
// runs. Per-iteration detail is always emitted at debug level.
const progressLogInterval = time.Second

// Result is the outcome of a clustering run.
type Result struct {
	// Clusters holds the K clusters with final centroids and
	// memberships, indexed 0..K-1. Slot identity is stable: the cluster
	// at index i is the same object across all iterations of the run.
	Clusters []*Cluster

	// Iterations is the number of assign/recompute passes performed.
	Iterations int

	// Change is the summed squared centroid displacement of the final
	// iteration.
	Change float64

	// Converged reports whether Change dropped to the threshold, as
	// opposed to the run being stopped by an iteration cap.
	Converged bool
}

// ClusterSummary is the per-cluster data a reporting layer typically
// prints: slot index, final centroid, and member count.
type ClusterSummary struct {
	Index    int
	Centroid Point
	Size     int
}

// Summaries returns one summary per cluster, in slot order.
func (r *Result) Summaries() []ClusterSummary {
	summaries := make([]ClusterSummary, len(r.Clusters))
	for i, c := range r.Clusters {
		summaries[i] = ClusterSummary{
			Index:    i,
			Centroid: c.Centroid(),
			Size:     c.Size(),
		}
	}
	return summaries
}

// Run partitions points into k clusters using Lloyd's algorithm
// with a parallel assignment phase.
//
// Centroids are seeded uniformly at random within bounds. Each
// iteration clears every cluster's membership, assigns every point to
// its nearest centroid (in parallel, against a read-only centroid
// snapshot), recomputes all centroids, and sums the squared centroid
// displacements. The loop stops when that sum drops to the epsilon
// threshold or below.
//
// After any iteration every input point belongs to exactly one
// cluster. Memberships reference the caller's point slice; the slice
// must not be mutated while Run executes.
//
// Run returns ErrInvalidK, ErrInvalidParallelism, or ErrInvalidBounds
// before any computation starts. Hitting a configured iteration cap
// returns the partial Result together with *ErrNotConverged. Context
// cancellation is honored between iterations and inside the assignment
// phase.
func Run(ctx context.Context, points []Point, k int, bounds Bounds, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)

	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	if o.parallelism < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidParallelism, o.parallelism)
	}
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBounds, err)
	}

	logger := o.logger.WithK(k).WithParallelism(o.parallelism)
	start := time.Now()

	clusters := make([]*Cluster, k)
	for i := range clusters {
		clusters[i] = NewRandomCluster(bounds, o.rng)
	}

	logger.InfoContext(ctx, "clustering started", "points", len(points))

	progress := rate.NewLimiter(rate.Every(progressLogInterval), 1)
	progress.Allow() // the start log covers the first interval

	centroids := make([]geom.Point, k)
	change := math.Inf(1)
	iterations := 0

	for change > o.epsilon {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if o.maxIterations > 0 && iterations >= o.maxIterations {
			o.metricsCollector.RecordRun(iterations, false, time.Since(start))
			logger.LogNotConverged(ctx, iterations, change)
			result := &Result{Clusters: clusters, Iterations: iterations, Change: change}
			return result, &ErrNotConverged{Iterations: iterations, Change: change}
		}

		iterStart := time.Now()

		// Snapshot the centroids: workers share this slice read-only
		// for the whole phase while memberships are being rebuilt.
		for i, c := range clusters {
			c.ClearMembers()
			centroids[i] = c.Centroid()
		}

		assignments, err := assign.Run(ctx, points, centroids, o.parallelism)
		o.metricsCollector.RecordAssignment(len(points), time.Since(iterStart), err)
		if err != nil {
			return nil, err
		}

		// Membership is filled in input order from the index-keyed
		// assignment vector, so the final partition does not depend on
		// result arrival order or the parallelism degree.
		for i, idx := range assignments {
			if idx < 0 || idx >= k {
				panic(fmt.Sprintf("kmeans2d: assignment for point %d references cluster %d of %d", i, idx, k))
			}
			clusters[idx].Add(&points[i])
		}

		change = 0
		for _, c := range clusters {
			change += c.RecomputeCentroid()
		}

		iterations++
		o.metricsCollector.RecordIteration(change, time.Since(iterStart))
		logger.LogIteration(ctx, iterations, change)
		if progress.Allow() {
			logger.InfoContext(ctx, "clustering in progress",
				"iteration", iterations,
				"change", change,
			)
		}
	}

	o.metricsCollector.RecordRun(iterations, true, time.Since(start))
	logger.LogConverged(ctx, iterations, change)

	return &Result{
		Clusters:   clusters,
		Iterations: iterations,
		Change:     change,
		Converged:  true,
	}, nil
}
