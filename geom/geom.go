package geom

import (
	"fmt"
	"math"
	"math/rand"
)

// Point is an immutable 2-D coordinate value.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// SquaredDistance returns the squared Euclidean distance between a and b.
// It is non-negative, symmetric, and zero iff a == b.
func SquaredDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Bounds is an axis-aligned bounding region.
type Bounds struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

// Validate reports whether the bounds describe a non-degenerate region.
func (b Bounds) Validate() error {
	if math.IsNaN(b.Left) || math.IsNaN(b.Right) || math.IsNaN(b.Bottom) || math.IsNaN(b.Top) {
		return fmt.Errorf("bounds contain NaN: %+v", b)
	}
	if b.Left >= b.Right {
		return fmt.Errorf("bounds left (%g) must be less than right (%g)", b.Left, b.Right)
	}
	if b.Bottom >= b.Top {
		return fmt.Errorf("bounds bottom (%g) must be less than top (%g)", b.Bottom, b.Top)
	}
	return nil
}

// Contains reports whether p lies within the bounds (inclusive).
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Bottom && p.Y <= b.Top
}

// RandomWithin draws a point uniformly within bounds, each axis
// sampled independently from rng. The right and top edges are
// exclusive, following the rng.Float64 half-open convention.
func RandomWithin(bounds Bounds, rng *rand.Rand) Point {
	return Point{
		X: bounds.Left + rng.Float64()*(bounds.Right-bounds.Left),
		Y: bounds.Bottom + rng.Float64()*(bounds.Top-bounds.Bottom),
	}
}

// NearestIndex returns the index of the centroid closest to p by
// squared distance. Ties resolve to the lowest index (strict less-than
// scan, left to right).
//
// The centroid slice must be non-empty; calling NearestIndex with no
// centroids is a programming error and panics.
func NearestIndex(p Point, centroids []Point) int {
	if len(centroids) == 0 {
		panic("geom: NearestIndex called with no centroids")
	}

	best := 0
	bestDist := math.Inf(1)
	for i, c := range centroids {
		if d := SquaredDistance(p, c); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
