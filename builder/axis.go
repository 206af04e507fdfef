package builder

import (
	"github.com/katalvlaran/bvh3/bvhtree"
	"github.com/katalvlaran/bvh3/geometry"
	"github.com/katalvlaran/bvh3/xform"
)

// widestCentroidAxis picks the axis (0=X, 1=Y, 2=Z) along which items'
// centroid AABB is widest, per spec.md §4.5's shared axis-selection rule.
func widestCentroidAxis(items []bvhtree.BuildItem) int {
	var centroidBox geometry.AABB
	centroidBox.Reset()
	for _, it := range items {
		c := it.Bounds.Center()
		centroidBox.Min = xform.MinComponents(centroidBox.Min, c)
		centroidBox.Max = xform.MaxComponents(centroidBox.Max, c)
	}

	size := centroidBox.Size()
	axis := 0
	widest := size.X
	if size.Y > widest {
		axis = 1
		widest = size.Y
	}
	if size.Z > widest {
		axis = 2
	}

	return axis
}

// centroidOnAxis returns the centroid coordinate of it's bounds along axis.
func centroidOnAxis(it bvhtree.BuildItem, axis int) float64 {
	return it.Bounds.Center().Component(axis)
}

// unionBounds returns the union of every item's bounds.
func unionBounds(items []bvhtree.BuildItem) geometry.AABB {
	var box geometry.AABB
	box.Reset()
	for _, it := range items {
		box = box.MergeAABB(it.Bounds)
	}

	return box
}
