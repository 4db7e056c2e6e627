package assign

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/kmeans2d/geom"
)

// pair is one assignment decision: points[Index] belongs to
// centroids[Cluster].
type pair struct {
	Index   int
	Cluster int
}

// span is a half-open chunk [Start, End) of the point slice.
type span struct {
	Start int
	End   int
}

// chunks splits n items into at most parallelism contiguous spans.
// The split is static and order-preserving; the last span may be
// smaller. Fewer spans than parallelism are returned when n is small.
func chunks(n, parallelism int) []span {
	if n == 0 {
		return nil
	}

	size := (n + parallelism - 1) / parallelism

	spans := make([]span, 0, parallelism)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		spans = append(spans, span{Start: start, End: end})
	}
	return spans
}

// Run assigns every point to its nearest centroid using up to
// parallelism concurrent workers and returns the assignment vector:
// result[i] is the centroid index for points[i].
//
// The centroid slice is shared read-only across workers; Run never
// mutates points or centroids. Workers for a phase are always joined
// before Run returns.
func Run(ctx context.Context, points []geom.Point, centroids []geom.Point, parallelism int) ([]int, error) {
	if parallelism < 1 {
		return nil, fmt.Errorf("assign: parallelism must be at least 1, got %d", parallelism)
	}
	if len(centroids) == 0 {
		return nil, fmt.Errorf("assign: no centroids")
	}

	n := len(points)
	if n == 0 {
		return nil, nil
	}

	// Full capacity so no producer ever blocks on the channel; the
	// consumer's count is the sole termination signal.
	results := make(chan pair, n)

	g, ctx := errgroup.WithContext(ctx)

	for _, c := range chunks(n, parallelism) {
		c := c
		g.Go(func() error {
			for i := c.Start; i < c.End; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case results <- pair{Index: i, Cluster: geom.NearestIndex(points[i], centroids)}:
				}
			}
			return nil
		})
	}

	// Consume exactly n results; arrival order is unspecified, so
	// decisions are keyed by point index rather than appended.
	assignments := make([]int, n)
	for received := 0; received < n; received++ {
		select {
		case <-ctx.Done():
			// Workers unwind via the same ctx; join them before
			// reporting so no goroutine outlives the phase.
			_ = g.Wait()
			return nil, ctx.Err()
		case p := <-results:
			assignments[p.Index] = p.Cluster
		}
	}

	// Barrier: the phase ends only once every worker has finished.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return assignments, nil
}
