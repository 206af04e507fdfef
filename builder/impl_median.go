package builder

import (
	"sort"

	"github.com/katalvlaran/bvh3/bvhtree"
)

// medianPartition sorts items by centroid on the widest centroid axis and
// splits at the middle index (spec.md §4.5's Median strategy).
// Complexity: O(n log n).
func medianPartition(items []bvhtree.BuildItem) (left, right []bvhtree.BuildItem, ok bool) {
	axis := widestCentroidAxis(items)

	sorted := make([]bvhtree.BuildItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return centroidOnAxis(sorted[i], axis) < centroidOnAxis(sorted[j], axis)
	})

	mid := len(sorted) / 2

	return sorted[:mid], sorted[mid:], true
}
