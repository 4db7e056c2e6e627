package kmeans2d_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmeans2d"
	"github.com/hupe1980/kmeans2d/geom"
	"github.com/hupe1980/kmeans2d/testutil"
)

var testBounds = kmeans2d.Bounds{Left: -5, Right: 5, Bottom: -5, Top: 5}

func blobCenters() []geom.Point {
	return []geom.Point{
		{X: -4, Y: -4},
		{X: 0, Y: 4},
		{X: 4, Y: -4},
	}
}

func TestRun_PartitionCompleteness(t *testing.T) {
	ctx := context.Background()
	points := testutil.NewRNG(1).BlobPoints(300, blobCenters(), 0.3)

	result, err := kmeans2d.Run(ctx, points, 3, testBounds, kmeans2d.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, result.Clusters, 3)

	membership := make([][]*geom.Point, len(result.Clusters))
	for i, c := range result.Clusters {
		membership[i] = c.Members()
	}

	assert.NoError(t, testutil.CheckPartition(points, membership))
}

func TestRun_ConvergesOnSeparableBlobs(t *testing.T) {
	ctx := context.Background()
	points := testutil.NewRNG(2).BlobPoints(600, blobCenters(), 0.25)

	result, err := kmeans2d.Run(ctx, points, 3, testBounds,
		kmeans2d.WithSeed(2),
		kmeans2d.WithMaxIterations(500),
	)
	require.NoError(t, err)

	assert.True(t, result.Converged)
	assert.LessOrEqual(t, result.Change, kmeans2d.DefaultEpsilon)
	assert.Greater(t, result.Iterations, 0)

	total := 0
	for _, s := range result.Summaries() {
		total += s.Size
	}
	assert.Equal(t, len(points), total)
}

func TestRun_ParallelismInvariance(t *testing.T) {
	ctx := context.Background()
	points := testutil.NewRNG(3).BlobPoints(500, blobCenters(), 0.3)

	run := func(parallelism int) *kmeans2d.Result {
		result, err := kmeans2d.Run(ctx, points, 3, testBounds,
			kmeans2d.WithSeed(42),
			kmeans2d.WithParallelism(parallelism),
			kmeans2d.WithMaxIterations(500),
		)
		require.NoError(t, err)
		return result
	}

	want := run(1)

	for _, parallelism := range []int{4, 16} {
		got := run(parallelism)

		assert.Equal(t, want.Iterations, got.Iterations, "parallelism=%d", parallelism)
		assert.Equal(t, want.Summaries(), got.Summaries(), "parallelism=%d", parallelism)
		for i := range want.Clusters {
			assert.Equal(t, want.Clusters[i].Members(), got.Clusters[i].Members(),
				"parallelism=%d cluster=%d", parallelism, i)
		}
	}
}

func TestRun_SeedDeterminism(t *testing.T) {
	ctx := context.Background()
	points := testutil.NewRNG(4).BlobPoints(200, blobCenters(), 0.3)

	a, err := kmeans2d.Run(ctx, points, 3, testBounds, kmeans2d.WithSeed(7))
	require.NoError(t, err)

	b, err := kmeans2d.Run(ctx, points, 3, testBounds, kmeans2d.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, a.Summaries(), b.Summaries())
	assert.Equal(t, a.Iterations, b.Iterations)
}

func TestRun_SingleCluster(t *testing.T) {
	ctx := context.Background()
	points := []kmeans2d.Point{
		{X: 1, Y: 1},
		{X: 3, Y: 1},
		{X: 2, Y: 4},
	}

	result, err := kmeans2d.Run(ctx, points, 1, testBounds, kmeans2d.WithSeed(5))
	require.NoError(t, err)

	require.Len(t, result.Clusters, 1)
	assert.Equal(t, 3, result.Clusters[0].Size())
	assert.Equal(t, kmeans2d.Point{X: 2, Y: 2}, result.Clusters[0].Centroid())
	assert.True(t, result.Converged)
}

func TestRun_EmptyPoints(t *testing.T) {
	ctx := context.Background()

	result, err := kmeans2d.Run(ctx, nil, 2, testBounds, kmeans2d.WithSeed(6))
	require.NoError(t, err)

	assert.True(t, result.Converged)
	require.Len(t, result.Clusters, 2)
	for _, c := range result.Clusters {
		assert.Equal(t, 0, c.Size())
		assert.True(t, testBounds.Contains(c.Centroid()))
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	ctx := context.Background()
	points := []kmeans2d.Point{{X: 0, Y: 0}}

	t.Run("k zero", func(t *testing.T) {
		_, err := kmeans2d.Run(ctx, points, 0, testBounds)
		assert.ErrorIs(t, err, kmeans2d.ErrInvalidK)
	})

	t.Run("negative k", func(t *testing.T) {
		_, err := kmeans2d.Run(ctx, points, -3, testBounds)
		assert.ErrorIs(t, err, kmeans2d.ErrInvalidK)
	})

	t.Run("parallelism zero", func(t *testing.T) {
		_, err := kmeans2d.Run(ctx, points, 1, testBounds, kmeans2d.WithParallelism(0))
		assert.ErrorIs(t, err, kmeans2d.ErrInvalidParallelism)
	})

	t.Run("inverted bounds", func(t *testing.T) {
		bad := kmeans2d.Bounds{Left: 5, Right: -5, Bottom: -5, Top: 5}
		_, err := kmeans2d.Run(ctx, points, 1, bad)
		assert.ErrorIs(t, err, kmeans2d.ErrInvalidBounds)
	})
}

func TestRun_MaxIterations(t *testing.T) {
	ctx := context.Background()
	points := testutil.NewRNG(8).BlobPoints(100, blobCenters(), 0.3)

	// A negative threshold can never be reached: change is always >= 0.
	result, err := kmeans2d.Run(ctx, points, 3, testBounds,
		kmeans2d.WithSeed(8),
		kmeans2d.WithEpsilon(-1),
		kmeans2d.WithMaxIterations(3),
	)
	require.Error(t, err)

	var nc *kmeans2d.ErrNotConverged
	require.ErrorAs(t, err, &nc)
	assert.Equal(t, 3, nc.Iterations)

	require.NotNil(t, result)
	assert.False(t, result.Converged)
	assert.Equal(t, 3, result.Iterations)

	// The partial result is still a complete partition.
	membership := make([][]*geom.Point, len(result.Clusters))
	for i, c := range result.Clusters {
		membership[i] = c.Members()
	}
	assert.NoError(t, testutil.CheckPartition(points, membership))
}

func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	points := testutil.NewRNG(9).BlobPoints(1000, blobCenters(), 0.3)

	_, err := kmeans2d.Run(ctx, points, 3, testBounds, kmeans2d.WithSeed(9))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Metrics(t *testing.T) {
	ctx := context.Background()
	points := testutil.NewRNG(10).BlobPoints(200, blobCenters(), 0.3)

	metrics := &kmeans2d.BasicMetricsCollector{}
	result, err := kmeans2d.Run(ctx, points, 3, testBounds,
		kmeans2d.WithSeed(10),
		kmeans2d.WithMetricsCollector(metrics),
	)
	require.NoError(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.RunCount)
	assert.Equal(t, int64(1), stats.RunConverged)
	assert.Equal(t, int64(result.Iterations), stats.IterationCount)
	assert.Equal(t, int64(result.Iterations), stats.AssignmentCount)
	assert.Equal(t, int64(result.Iterations*len(points)), stats.AssignmentPoints)
	assert.Zero(t, stats.AssignmentErrors)
}

func TestRun_Summaries(t *testing.T) {
	ctx := context.Background()
	points := testutil.NewRNG(11).BlobPoints(90, blobCenters(), 0.3)

	result, err := kmeans2d.Run(ctx, points, 3, testBounds, kmeans2d.WithSeed(11))
	require.NoError(t, err)

	summaries := result.Summaries()
	require.Len(t, summaries, 3)
	for i, s := range summaries {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, result.Clusters[i].Centroid(), s.Centroid)
		assert.Equal(t, result.Clusters[i].Size(), s.Size)
	}
}

func TestErrNotConverged_Message(t *testing.T) {
	err := error(&kmeans2d.ErrNotConverged{Iterations: 5, Change: 1.5})
	assert.Equal(t, "did not converge within 5 iterations (change=1.5)", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
