package geom

// Point2D represents a location on a plane.
type Point2D struct {
	X float64
	Y float64
}

// NewPoint2D creates a new Point2D from its two coordinates.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Polygon2D represents a planar polygon as an ordered closed loop of
// vertices: the last vertex connects back to the first one implicitly.
type Polygon2D struct {
	Vertices []Point2D
}

// NewPolygon2D creates a new Polygon2D from an ordered vertex loop.
func NewPolygon2D(vertices []Point2D) Polygon2D {
	return Polygon2D{Vertices: vertices}
}

// IsClockwise reports whether the vertex loop winds clockwise, using the
// shoelace sum over every segment including the closing one. Degenerate
// polygons with collinear vertices report clockwise.
func (p Polygon2D) IsClockwise() bool {
	n := len(p.Vertices)
	sum := 0.0
	for i := 0; i < n; i++ {
		current := p.Vertices[i]
		next := p.Vertices[(i+1)%n]
		sum += (next.X - current.X) * (next.Y + current.Y)
	}

	return sum >= 0
}
