package bvhtree

import "github.com/katalvlaran/bvh3/geometry"

// IntersectBounds returns the payloads of every leaf whose AABB overlaps
// bounds, duplicates suppressed by payload identity (spec.md §4.1, §9).
// Complexity: O(log n + k) expected.
func (t *Tree) IntersectBounds(bounds geometry.AABB) []any {
	if t.root == nil {
		return nil
	}

	var results []any
	seen := make(map[any]bool)

	var walk func(n *node)
	walk = func(n *node) {
		if !n.bounds.Intersects(bounds) {
			return
		}
		if n.isLeaf() {
			if seen[n.payload] {
				return
			}
			seen[n.payload] = true
			results = append(results, n.payload)

			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)

	return results
}
