package builder

import "github.com/katalvlaran/bvh3/bvhtree"

// equalPartition splits items at the middle index along the widest
// centroid axis via quickselect (Lomuto partition), without a full sort
// (spec.md §4.5's Equal strategy). The pivot is deterministically the
// range's current middle element, so Build stays deterministic for a
// given input order.
// Complexity: O(n) expected, O(n^2) worst case on adversarial input.
func equalPartition(items []bvhtree.BuildItem) (left, right []bvhtree.BuildItem, ok bool) {
	axis := widestCentroidAxis(items)

	working := make([]bvhtree.BuildItem, len(items))
	copy(working, items)

	k := len(working) / 2
	quickselect(working, 0, len(working)-1, k, axis)

	return working[:k], working[k:], true
}

// quickselect partitions working[lo:hi+1] in place so the k-th smallest
// element (by centroid on axis) lands at index k, with every smaller
// element to its left and every larger element to its right — the
// classic quickselect selection algorithm, over a Lomuto partition.
func quickselect(working []bvhtree.BuildItem, lo, hi, k, axis int) {
	for lo < hi {
		pivotIdx := partition(working, lo, hi, axis)
		switch {
		case k == pivotIdx:
			return
		case k < pivotIdx:
			hi = pivotIdx - 1
		default:
			lo = pivotIdx + 1
		}
	}
}

// partition runs a Lomuto partition of working[lo:hi+1] around the
// current middle element's centroid value, returning the pivot's final
// index.
func partition(working []bvhtree.BuildItem, lo, hi, axis int) int {
	mid := lo + (hi-lo)/2
	working[mid], working[hi] = working[hi], working[mid]

	pivot := centroidOnAxis(working[hi], axis)
	store := lo
	for i := lo; i < hi; i++ {
		if centroidOnAxis(working[i], axis) < pivot {
			working[store], working[i] = working[i], working[store]
			store++
		}
	}
	working[store], working[hi] = working[hi], working[store]

	return store
}
