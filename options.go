package kmeans2d

import (
	"log/slog"
	"math/rand"
	"time"
)

const (
	// DefaultEpsilon is the convergence threshold on the summed squared
	// centroid displacement per iteration.
	DefaultEpsilon = 0.05

	// DefaultParallelism is the number of assignment workers used when
	// none is configured.
	DefaultParallelism = 4
)

type options struct {
	epsilon          float64
	maxIterations    int
	parallelism      int
	rng              *rand.Rand
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures the clustering run.
type Option func(*options)

// WithEpsilon configures the convergence threshold. The loop stops when
// the SUM of per-cluster squared centroid displacements of an iteration
// drops to epsilon or below. Smaller values mean tighter convergence
// and more iterations.
func WithEpsilon(epsilon float64) Option {
	return func(o *options) {
		o.epsilon = epsilon
	}
}

// WithMaxIterations bounds the convergence loop. When the cap is hit
// while the change metric is still above the threshold, Run returns
// the partial result together with *ErrNotConverged instead of looping
// forever on inputs that oscillate near the threshold.
//
// If n <= 0, the loop is unbounded (the default).
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithParallelism configures the number of concurrent assignment
// workers. Each iteration splits the point slice into that many
// contiguous chunks and assigns them in parallel.
//
// Must be at least 1; Run rejects other values with
// ErrInvalidParallelism.
func WithParallelism(parallelism int) Option {
	return func(o *options) {
		o.parallelism = parallelism
	}
}

// WithRNG configures the random generator used for centroid seeding.
// Passing the same generator state reproduces the same initial
// centroids and therefore, at fixed input, the same final partition.
//
// If nil is passed, a time-seeded generator is used.
func WithRNG(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed configures a deterministic random generator with the given
// seed. Convenience wrapper for WithRNG(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// assignment phases, iterations, and whole runs.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kmeans2d.BasicMetricsCollector{}
//	result, _ := kmeans2d.Run(ctx, points, k, bounds, kmeans2d.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("iterations: %d, avg pass: %dns\n", stats.IterationCount, stats.IterationAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for the run.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		epsilon:          DefaultEpsilon,
		parallelism:      DefaultParallelism,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
