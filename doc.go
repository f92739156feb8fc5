// Package meshmeshmesh is a toolkit for triangle-mesh topology and
// consolidation: edge-level adjacency, face-neighbour tables, graph
// queries over the face dual, and tolerance-based vertex welding.
//
// Everything is organized under five subpackages plus a small CLI:
//
//	geom/  — points, vectors, triangles, 2D polygons and the duplicate scan
//	topo/  — directed edges, per-face edge groups, face-neighbour tables
//	mesh/  — the flat-buffer triangle mesh, conversions, analysis and JSON I/O
//	graph/ — adjacency graph with BFS connectivity, components and loops
//	weld/  — vertex welding and the index-compaction primitive
//	cmd/meshtool — inspect and weld mesh files from the command line
//
// The packages layer strictly: geom knows nothing of meshes, topo knows
// nothing of the mesh container, mesh and graph build on topo, and weld
// ties mesh and geom together. Start with mesh.Read or mesh.NewMesh and
// work upward.
package meshmeshmesh
