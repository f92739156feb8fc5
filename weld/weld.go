package weld

import (
	"errors"
	"fmt"
	"sort"

	"github.com/paireks/meshmeshmesh-sub000/geom"
	"github.com/paireks/meshmeshmesh-sub000/mesh"
)

// Sentinel errors for vertex removal.
var (
	// ErrIndexOutOfRange indicates a removal index beyond the mesh's vertex
	// count.
	ErrIndexOutOfRange = errors.New("weld: vertex index out of range")
)

// Weld merges vertices of m that coincide within tolerance. The first
// occurrence in vertex order survives as the canonical vertex; every face
// index is remapped to the survivors' compacted numbering and the duplicate
// coordinate triples are removed. The result is always a fresh mesh, even
// when nothing welds.
func Weld(m *mesh.Mesh, tolerance float64) (*mesh.Mesh, error) {
	info := geom.ScanForDuplicates(m.ToPoints(), tolerance)

	duplicates := make([]int, 0)
	for i, d := range info {
		if d.IsDuplicate {
			duplicates = append(duplicates, i)
		}
	}
	if len(duplicates) == 0 {
		return m.Copy(), nil
	}

	remapped := ReplaceIndices(m, CompactionMap(info))

	return RemoveVertices(remapped, duplicates)
}

// CompactionMap turns a duplicate scan into a full old→new index table over
// the original index domain. For every index the table counts the
// duplicates strictly before it; a survivor at i maps to i minus that
// count, and a duplicate maps to wherever its canonical vertex maps. The
// table must be applied before any vertex is removed — it is expressed
// entirely in the original numbering.
func CompactionMap(info []geom.DuplicateInfo) map[int]int {
	offsetAbove := make([]int, len(info))
	offset := 0
	for i, d := range info {
		offsetAbove[i] = offset
		if d.IsDuplicate {
			offset++
		}
	}

	remap := make(map[int]int, len(info))
	for i, d := range info {
		if d.IsDuplicate {
			remap[i] = d.OriginalIndex - offsetAbove[d.OriginalIndex]
		} else {
			remap[i] = i - offsetAbove[i]
		}
	}

	return remap
}

// ReplaceIndices substitutes face indices of m according to instructions,
// returning a fresh mesh. Indices without an instruction are kept as they
// are; coordinates are copied untouched.
func ReplaceIndices(m *mesh.Mesh, instructions map[int]int) *mesh.Mesh {
	out := m.Copy()
	for i, idx := range out.Indices {
		if replacement, ok := instructions[idx]; ok {
			out.Indices[i] = replacement
		}
	}

	return out
}

// RemoveVertices removes the coordinate triples of the given vertex indices
// from m, returning a fresh mesh. The face-index buffer is not touched;
// callers are expected to have remapped it first, e.g. via ReplaceIndices
// with a CompactionMap. Every index is validated against the vertex count
// before anything is removed, so on ErrIndexOutOfRange the input is
// unchanged. Duplicate indices in the set are tolerated and removed once.
func RemoveVertices(m *mesh.Mesh, indices []int) (*mesh.Mesh, error) {
	vertices := m.NumberOfVertices()
	for _, idx := range indices {
		if idx < 0 || idx >= vertices {
			return nil, fmt.Errorf("%w: %d with %d vertices", ErrIndexOutOfRange, idx, vertices)
		}
	}

	unique := make([]int, 0, len(indices))
	seen := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		unique = append(unique, idx)
	}
	// Highest index first, so pending removals never shift a lower one.
	sort.Sort(sort.Reverse(sort.IntSlice(unique)))

	out := m.Copy()
	for _, idx := range unique {
		out.Coordinates = append(out.Coordinates[:idx*3], out.Coordinates[idx*3+3:]...)
	}

	return out, nil
}
