package geom

// DuplicateInfo describes one point of a scanned sequence.
//
// OriginalIndex is the index of the first point in scan order that lies
// within tolerance of this one; it is the point's own index when the point
// is not a duplicate.
type DuplicateInfo struct {
	OriginalIndex int
	IsDuplicate   bool
}

// ScanForDuplicates scans points in order and reports, index-aligned with
// the input, which of them duplicate an earlier point within tolerance.
//
// The first occurrence of a cluster of nearby points is its canonical
// representative: it is never marked as a duplicate itself, and points
// already marked as duplicates are not used as representatives for points
// after them.
//
// Time: O(n²) pairwise comparisons in the worst case; points marked as
// duplicates are skipped as scan origins.
func ScanForDuplicates(points []Point, tolerance float64) []DuplicateInfo {
	info := make([]DuplicateInfo, len(points))
	for i := range info {
		info[i] = DuplicateInfo{OriginalIndex: i}
	}

	for i := range points {
		if info[i].IsDuplicate {
			continue
		}
		for j := i + 1; j < len(points); j++ {
			if info[j].IsDuplicate {
				continue
			}
			if points[i].EqWithTolerance(points[j], tolerance) {
				info[j] = DuplicateInfo{OriginalIndex: i, IsDuplicate: true}
			}
		}
	}

	return info
}
