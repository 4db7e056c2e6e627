// Package geom provides the 2-D primitives used by kmeans2d.
//
// Point is an immutable coordinate value; distances are squared
// Euclidean, which preserves nearest-centroid ordering without paying
// for a square root per comparison.
package geom
