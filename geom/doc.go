// Package geom provides the geometric primitives the mesh core is built on:
// points, vectors and triangles in 3D, points and polygons in 2D, and the
// tolerance-based duplicate scanner consumed by vertex welding.
//
// What:
//
//   - Point / Vector: coordinate containers with tolerance equality,
//     distance, dot/cross products, unitization and angles.
//   - Triangle: per-face geometry — area, centroid, unitized normal, and the
//     normals angle between two faces (the dihedral value used when filtering
//     face adjacency by angle).
//   - Point2D / Polygon2D: an ordered closed vertex loop with orientation
//     testing, consumed by graph.FromClosedPolygon.
//   - ScanForDuplicates: for every point of a sequence, reports whether an
//     earlier point lies within tolerance of it and which one.
//
// Tolerance comparison is per-coordinate absolute difference, not distance:
// two points are equal within tolerance t when |Δx| ≤ t, |Δy| ≤ t and
// |Δz| ≤ t.
//
// All types are plain value types; every function is pure.
package geom
