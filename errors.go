package kmeans2d

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when the cluster count is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidParallelism is returned when the configured degree of
	// parallelism is not positive.
	ErrInvalidParallelism = errors.New("parallelism must be positive")

	// ErrInvalidBounds is returned when the bounding region is
	// degenerate or inverted.
	ErrInvalidBounds = errors.New("invalid bounds")
)

// ErrNotConverged indicates the loop hit its iteration cap while the
// total centroid movement was still above the threshold. The partial
// result returned alongside it is valid and fully assigned.
type ErrNotConverged struct {
	Iterations int
	Change     float64
}

func (e *ErrNotConverged) Error() string {
	return fmt.Sprintf("did not converge within %d iterations (change=%g)", e.Iterations, e.Change)
}
