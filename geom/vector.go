package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Vector represents a direction with magnitude in three-dimensional space.
type Vector struct {
	X float64
	Y float64
	Z float64
}

// NewVector creates a new Vector from its three components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// VectorFromTwoPoints creates the Vector pointing from start to end.
func VectorFromTwoPoints(start, end Point) Vector {
	return Vector{X: end.X - start.X, Y: end.Y - start.Y, Z: end.Z - start.Z}
}

// EqWithTolerance reports whether every component of v lies within tolerance
// of the corresponding component of other.
func (v Vector) EqWithTolerance(other Vector, tolerance float64) bool {
	return scalar.EqualWithinAbs(v.X, other.X, tolerance) &&
		scalar.EqualWithinAbs(v.Y, other.Y, tolerance) &&
		scalar.EqualWithinAbs(v.Z, other.Z, tolerance)
}

// Length returns the magnitude of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Reversed returns v with all components negated.
func (v Vector) Reversed() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Unitized returns v scaled to unit length.
func (v Vector) Unitized() Vector {
	length := v.Length()

	return Vector{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Cross returns the cross product v × other.
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Dot returns the dot product v ⋅ other.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Angle returns the unsigned angle between v and other in radians,
// in the range [0, π]. The cosine is clamped to [-1, 1] so rounding in the
// normalization cannot push Acos out of its domain.
func (v Vector) Angle(other Vector) float64 {
	cos := v.Dot(other) / (v.Length() * other.Length())

	return math.Acos(math.Max(-1, math.Min(1, cos)))
}
