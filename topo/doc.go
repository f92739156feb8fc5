// Package topo provides the edge-level topology of a triangle mesh: directed
// edges, the per-face groups of three boundary edges, and the derived
// face-neighbour table.
//
// What:
//
//   - Edge: an ordered pair of vertex indices with direction-agnostic
//     equality and a deterministic ordering for iteration.
//   - ThreeEdgeGroup: the three boundary edges of one face in winding order,
//     plus the edge→owning-faces map builder used for neighbour discovery.
//   - FaceNeighbours: per face, the neighbour face index across each of its
//     three edge slots, or NoNeighbour at a mesh boundary.
//   - FaceNeighboursAngle: per face, the angle between a face's normal and
//     each neighbour's normal, slot-aligned with FaceNeighbours.
//
// Neighbour discovery is map-based: the edge→faces map merges every directed
// edge with its reverse under whichever direction was seen first, so the
// whole table costs O(F) in faces instead of the naive O(F²) all-pairs edge
// comparison.
//
// Complexity:
//
//   - EdgeFaceMap: O(F) expected, Memory: O(F).
//   - FaceNeighboursFromThreeEdgeGroups: O(F) expected, Memory: O(F).
//
// Errors:
//
//   - ErrMalformedAdjacency: the edge→faces map produced an edge without an
//     owning face; the input groups are malformed.
//   - ErrNonManifoldEdge: an edge is shared by more than two faces. The
//     table cannot represent more than one neighbour per edge slot, so the
//     condition is reported, never resolved arbitrarily.
//   - ErrLengthMismatch: paired per-face inputs differ in length.
//
// All failures are eager and fatal for the running call; nothing is clamped
// or repaired.
package topo
