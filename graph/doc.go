// Package graph provides a general adjacency graph over integer vertex ids,
// with breadth-first connectivity and component queries. It is the query
// layer above the mesh topology: the dual graph over faces, the undirected
// closure of a mesh's edges, and polygon loops all build into the same
// concrete Graph.
//
// What:
//
//   - Graph: a directed edge list plus two adjacency indexes kept in
//     lock-step — per start vertex, the end vertices and the edge ids of
//     every outgoing edge, in insertion order.
//   - Constructors: New (raw directed edges), NewUndirected (canonicalized
//     both-direction closure), FromFaceNeighbours (face dual graph),
//     FromFaceNeighboursWithMaxAngle (dual graph filtered by dihedral
//     angle), FromClosedPolygon (one directed loop).
//   - Queries: IsConnected, SplitDisconnectedComponents,
//     SplitDisconnectedLoops.
//
// Traversal is iterative breadth-first search with a FIFO queue; neighbours
// are visited in edge-insertion order and ties are not otherwise broken, so
// callers control determinism through the order in which they add edges.
// IsConnected is meaningful only on a symmetric edge set — the traversal
// does not symmetrize on its own.
//
// Complexity:
//
//   - AddEdge: O(1) amortized.
//   - IsConnected / SplitDisconnectedComponents / SplitDisconnectedLoops:
//     O(V + E), Memory: O(V).
//
// Errors:
//
//   - ErrLengthMismatch: neighbour table and angle table differ in length.
//
// A Graph is not safe for concurrent mutation; callers needing parallel
// construction must partition work and merge externally.
package graph
