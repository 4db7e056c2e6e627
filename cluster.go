package kmeans2d

import (
	"math/rand"

	"github.com/hupe1980/kmeans2d/geom"
)

// Point is a 2-D coordinate value. See the geom package for the
// primitive operations (squared distance, nearest-centroid lookup).
type Point = geom.Point

// Bounds is the axis-aligned region used for random centroid seeding.
type Bounds = geom.Bounds

// Cluster owns a centroid and the transient membership of the current
// iteration. Membership holds references into the caller's point
// slice; it is rebuilt from scratch every iteration, never diffed.
//
// A Cluster is not safe for concurrent mutation. During an assignment
// phase only its centroid is read (by many workers); all mutation
// happens on the driver goroutine between phases.
type Cluster struct {
	centroid Point
	members  []*Point
}

// NewCluster creates a cluster with the given centroid and no members.
func NewCluster(centroid Point) *Cluster {
	return &Cluster{centroid: centroid}
}

// NewRandomCluster creates a cluster whose centroid is drawn uniformly
// within bounds.
func NewRandomCluster(bounds Bounds, rng *rand.Rand) *Cluster {
	return NewCluster(geom.RandomWithin(bounds, rng))
}

// Centroid returns the current centroid.
func (c *Cluster) Centroid() Point {
	return c.centroid
}

// Members returns the current membership. The returned slice is the
// cluster's backing store; callers must not mutate it.
func (c *Cluster) Members() []*Point {
	return c.members
}

// Size returns the number of members.
func (c *Cluster) Size() int {
	return len(c.members)
}

// ClearMembers empties the membership, keeping the backing capacity
// for the next iteration. The centroid is untouched.
func (c *Cluster) ClearMembers() {
	c.members = c.members[:0]
}

// Add appends a point reference to the membership.
func (c *Cluster) Add(p *Point) {
	c.members = append(c.members, p)
}

// RecomputeCentroid sets the centroid to the arithmetic mean of the
// current members and returns the squared distance the centroid moved.
//
// An empty cluster neither moves nor contributes to the convergence
// metric: the centroid is left unchanged and 0 is returned.
func (c *Cluster) RecomputeCentroid() float64 {
	if len(c.members) == 0 {
		return 0
	}

	var sumX, sumY float64
	for _, p := range c.members {
		sumX += p.X
		sumY += p.Y
	}

	n := float64(len(c.members))
	next := Point{X: sumX / n, Y: sumY / n}

	change := geom.SquaredDistance(c.centroid, next)
	c.centroid = next
	return change
}
