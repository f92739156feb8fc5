package geom

// Triangle represents a single triangular face in three-dimensional space.
//
// The orientation of the face follows the right-hand rule over the vertex
// order First → Second → Third.
type Triangle struct {
	First  Point
	Second Point
	Third  Point
}

// NewTriangle creates a new Triangle from its three corner points.
func NewTriangle(first, second, third Point) Triangle {
	return Triangle{First: first, Second: second, Third: third}
}

// FirstSide returns the vector from the first to the second corner.
func (t Triangle) FirstSide() Vector {
	return VectorFromTwoPoints(t.First, t.Second)
}

// SecondSide returns the vector from the second to the third corner.
func (t Triangle) SecondSide() Vector {
	return VectorFromTwoPoints(t.Second, t.Third)
}

// ThirdSide returns the vector from the third back to the first corner.
func (t Triangle) ThirdSide() Vector {
	return VectorFromTwoPoints(t.Third, t.First)
}

// Area returns the surface area of t.
func (t Triangle) Area() float64 {
	return t.FirstSide().Cross(t.SecondSide()).Length() / 2
}

// Centroid returns the barycenter of t.
func (t Triangle) Centroid() Point {
	return Point{
		X: (t.First.X + t.Second.X + t.Third.X) / 3,
		Y: (t.First.Y + t.Second.Y + t.Third.Y) / 3,
		Z: (t.First.Z + t.Second.Z + t.Third.Z) / 3,
	}
}

// NormalUnitized returns the unit normal of t, oriented by the winding of
// its corners.
func (t Triangle) NormalUnitized() Vector {
	return t.FirstSide().Cross(t.SecondSide()).Unitized()
}

// NormalsAngle returns the angle between the unit normals of t and other in
// radians. For two faces sharing an edge this is the dihedral value used to
// filter face adjacency by angle.
func (t Triangle) NormalsAngle(other Triangle) float64 {
	return t.NormalUnitized().Angle(other.NormalUnitized())
}
