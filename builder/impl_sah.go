package builder

import (
	"math"

	"github.com/katalvlaran/bvh3/bvhtree"
)

// sahPartition returns a PartitionFunc that evaluates bins candidate split
// positions along the widest centroid axis and picks the one minimizing
// SA(L)*|L| + SA(R)*|R|. If the best candidate's cost does not improve on
// leaving the whole range as one cluster, it reports ok=false so the
// caller emits a leaf cluster instead (spec.md §4.5's SAH strategy).
// Complexity: O(n * bins).
func sahPartition(bins int) func(items []bvhtree.BuildItem) (left, right []bvhtree.BuildItem, ok bool) {
	return func(items []bvhtree.BuildItem) (left, right []bvhtree.BuildItem, ok bool) {
		axis := widestCentroidAxis(items)

		minC, maxC := math.Inf(1), math.Inf(-1)
		for _, it := range items {
			c := centroidOnAxis(it, axis)
			if c < minC {
				minC = c
			}
			if c > maxC {
				maxC = c
			}
		}
		if maxC-minC < 1e-12 {
			// All centroids coincide on this axis: no split can separate
			// them; fall back to a leaf cluster.
			return nil, nil, false
		}

		whole := unionBounds(items)
		wholeCost := whole.SurfaceArea() * float64(len(items))

		bestCost := math.Inf(1)
		var bestLeft, bestRight []bvhtree.BuildItem

		for i := 1; i < bins; i++ {
			frac := float64(i) / float64(bins)
			splitPos := minC + frac*(maxC-minC)

			var l, r []bvhtree.BuildItem
			for _, it := range items {
				if centroidOnAxis(it, axis) < splitPos {
					l = append(l, it)
				} else {
					r = append(r, it)
				}
			}
			if len(l) == 0 || len(r) == 0 {
				continue
			}

			lBox := unionBounds(l)
			rBox := unionBounds(r)
			cost := lBox.SurfaceArea()*float64(len(l)) + rBox.SurfaceArea()*float64(len(r))
			if cost < bestCost {
				bestCost = cost
				bestLeft, bestRight = l, r
			}
		}

		if bestLeft == nil || bestCost >= wholeCost {
			return nil, nil, false
		}

		return bestLeft, bestRight, true
	}
}
