package bvhtree

import (
	"math"

	"github.com/katalvlaran/bvh3/geometry"
	"github.com/katalvlaran/bvh3/xform"
)

// axisSeparatedDistance is d(p, box) = ‖max(box.min-p, 0, p-box.max)‖₁, the
// sum of the per-axis separations between p and box, the metric
// spec.md §4.1 uses for both QueryRange and FindNearest.
func axisSeparatedDistance(p xform.Vec3, box geometry.AABB) float64 {
	dx := math.Max(box.Min.X-p.X, math.Max(0, p.X-box.Max.X))
	dy := math.Max(box.Min.Y-p.Y, math.Max(0, p.Y-box.Max.Y))
	dz := math.Max(box.Min.Z-p.Z, math.Max(0, p.Z-box.Max.Z))

	return dx + dy + dz
}

// QueryRange returns the payloads of leaves within radius of point under
// the axis-separated distance metric. It descends pruning children whose
// bounds do not overlap the [point-r, point+r] query box, then filters
// candidates by the tight metric (spec.md §4.1). Complexity: O(log n +
// k) expected, where k is the number of results.
func (t *Tree) QueryRange(point xform.Vec3, radius float64) []any {
	if t.root == nil {
		return nil
	}

	r := xform.NewVec3(radius, radius, radius)
	queryBox := geometry.NewAABB(point.Sub(r), point.Add(r))

	var results []any
	var walk func(n *node)
	walk = func(n *node) {
		if !n.bounds.Intersects(queryBox) {
			return
		}
		if n.isLeaf() {
			if axisSeparatedDistance(point, n.bounds) <= radius {
				results = append(results, n.payload)
			}

			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)

	return results
}
