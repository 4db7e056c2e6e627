package kmeans2d

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAssignment is called after each parallel assignment phase.
	// points is the number of points assigned, duration the phase time,
	// err is nil if the phase completed.
	RecordAssignment(points int, duration time.Duration, err error)

	// RecordIteration is called after each full loop pass.
	// change is the summed squared centroid displacement of the pass.
	RecordIteration(change float64, duration time.Duration)

	// RecordRun is called once per Run call.
	// iterations is the total pass count, converged reports whether the
	// loop stopped below the threshold.
	RecordRun(iterations int, converged bool, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAssignment(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordIteration(float64, time.Duration)     {}
func (NoopMetricsCollector) RecordRun(int, bool, time.Duration)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AssignmentCount      atomic.Int64
	AssignmentErrors     atomic.Int64
	AssignmentPoints     atomic.Int64
	AssignmentTotalNanos atomic.Int64
	IterationCount       atomic.Int64
	IterationTotalNanos  atomic.Int64
	RunCount             atomic.Int64
	RunConverged         atomic.Int64
	RunIterations        atomic.Int64
	RunTotalNanos        atomic.Int64
}

// RecordAssignment implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAssignment(points int, duration time.Duration, err error) {
	b.AssignmentCount.Add(1)
	b.AssignmentPoints.Add(int64(points))
	b.AssignmentTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AssignmentErrors.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(change float64, duration time.Duration) {
	b.IterationCount.Add(1)
	b.IterationTotalNanos.Add(duration.Nanoseconds())
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(iterations int, converged bool, duration time.Duration) {
	b.RunCount.Add(1)
	b.RunIterations.Add(int64(iterations))
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if converged {
		b.RunConverged.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AssignmentCount:    b.AssignmentCount.Load(),
		AssignmentErrors:   b.AssignmentErrors.Load(),
		AssignmentPoints:   b.AssignmentPoints.Load(),
		AssignmentAvgNanos: b.getAvgAssignmentNanos(),
		IterationCount:     b.IterationCount.Load(),
		IterationAvgNanos:  b.getAvgIterationNanos(),
		RunCount:           b.RunCount.Load(),
		RunConverged:       b.RunConverged.Load(),
		RunTotalIterations: b.RunIterations.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAssignmentNanos() int64 {
	count := b.AssignmentCount.Load()
	if count == 0 {
		return 0
	}
	return b.AssignmentTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgIterationNanos() int64 {
	count := b.IterationCount.Load()
	if count == 0 {
		return 0
	}
	return b.IterationTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AssignmentCount    int64
	AssignmentErrors   int64
	AssignmentPoints   int64
	AssignmentAvgNanos int64
	IterationCount     int64
	IterationAvgNanos  int64
	RunCount           int64
	RunConverged       int64
	RunTotalIterations int64
}
