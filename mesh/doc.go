// Package mesh provides the triangle-mesh container the topology and
// consolidation engines operate on: a flat vertex-coordinate buffer plus a
// flat triangle-index buffer.
//
// What:
//
//   - Mesh: coordinates laid out [x0,y0,z0, x1,y1,z1, ...] and indices laid
//     out [f0v0,f0v1,f0v2, f1v0, ...], three indices per triangular face.
//   - Conversions into the shapes the other packages consume: Points,
//     Triangles, Edges and ThreeEdgeGroups (winding v0→v1, v1→v2, v2→v0),
//     plus FromTriangles for the opposite direction.
//   - Topology reports: connectivity over the face dual graph, edges with a
//     missing neighbour (naked boundary), and non-manifold edges. Defects
//     are reported, never repaired.
//   - A JSON document mirroring the flat buffers, with Read/Write helpers.
//
// Faces are triangles only; the face orientation follows the right-hand
// rule over its winding.
package mesh
