// Package kmeans2d provides parallel k-means clustering for 2-D points.
//
// Kmeans2d implements Lloyd's algorithm with a data-parallel assignment
// phase: points are split into contiguous chunks, each chunk is assigned
// to its nearest centroid by a separate worker goroutine, and a single
// consumer collects the results before centroids are recomputed.
//
// # Quick Start
//
//	ctx := context.Background()
//	bounds := kmeans2d.Bounds{Left: -5, Right: 5, Bottom: -5, Top: 5}
//
//	result, err := kmeans2d.Run(ctx, points, 3, bounds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range result.Summaries() {
//	    fmt.Printf("cluster %d: centroid=%v size=%d\n", s.Index, s.Centroid, s.Size)
//	}
//
// # Tuning
//
// The convergence loop and the assignment phase are configurable via
// functional options:
//
//	result, err := kmeans2d.Run(ctx, points, 3, bounds,
//	    kmeans2d.WithParallelism(8),
//	    kmeans2d.WithEpsilon(0.01),
//	    kmeans2d.WithMaxIterations(500),
//	    kmeans2d.WithSeed(42),
//	)
//
// # Determinism
//
// Centroid initialization draws from an explicitly seedable generator
// (WithSeed / WithRNG); there is no package-level random state. For a
// fixed seed the final partition is identical regardless of the chosen
// parallelism degree.
//
// # Convergence
//
// The loop stops when the SUM of per-cluster squared centroid
// displacements drops to Epsilon or below. A single cluster moving a
// lot can mask several clusters moving a little; this is a property of
// the metric, not a bug. WithMaxIterations bounds pathological inputs
// that oscillate near the threshold: hitting the cap returns the
// partial result together with *ErrNotConverged.
//
// # Key Features
//
//   - Scoped fan-out/fan-in assignment phase (no long-lived pool)
//   - Stable cluster slot identity across iterations
//   - Seedable, reproducible centroid initialization
//   - Structured logging (log/slog) and pluggable metrics
//   - Context cancellation between and inside iterations
package kmeans2d
