// Package weld consolidates a mesh's vertex buffer: vertices that coincide
// within a tolerance are merged into a single surviving vertex, every face
// index is rewritten to the survivor's new number, and the freed coordinate
// slots are removed.
//
// What:
//
//   - Weld: the whole pipeline — scan for duplicates, remap face indices,
//     drop duplicate coordinate triples, return a fresh mesh.
//   - CompactionMap: the reusable index-compaction primitive. Given the
//     duplicate scan it produces a full old→new index table over the
//     original numbering, so references can be rewritten before any removal
//     shifts the indices.
//   - ReplaceIndices: pure substitution over the face-index buffer.
//   - RemoveVertices: descending-order removal from the coordinate buffer
//     only; callers must remap indices first.
//
// The order of the pipeline is the correctness point: the compaction table
// is computed once over the original index domain, applied to the face
// indices, and only then are coordinate triples removed, highest index
// first, so no pending removal ever invalidates a lower index.
//
// Complexity:
//
//   - CompactionMap / ReplaceIndices: O(V + F), Memory: O(V).
//   - Weld: O(V² + F) — dominated by the pairwise duplicate scan.
//
// Errors:
//
//   - ErrIndexOutOfRange: a removal index references a vertex beyond the
//     mesh's vertex count. Detected before any mutation, so the input mesh
//     is left untouched.
package weld
