package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Point represents a location in three-dimensional space.
type Point struct {
	X float64
	Y float64
	Z float64
}

// NewPoint creates a new Point from its three coordinates.
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// EqWithTolerance reports whether every coordinate of p lies within tolerance
// of the corresponding coordinate of other. It compares coordinates, not the
// distance between the points.
func (p Point) EqWithTolerance(other Point, tolerance float64) bool {
	return scalar.EqualWithinAbs(p.X, other.X, tolerance) &&
		scalar.EqualWithinAbs(p.Y, other.Y, tolerance) &&
		scalar.EqualWithinAbs(p.Z, other.Z, tolerance)
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point) DistanceTo(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	dz := other.Z - p.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// MiddleTo returns the midpoint of the segment between p and other.
func (p Point) MiddleTo(other Point) Point {
	return Point{
		X: (p.X + other.X) / 2,
		Y: (p.Y + other.Y) / 2,
		Z: (p.Z + other.Z) / 2,
	}
}
