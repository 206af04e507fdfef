package bvhtree

import (
	"sort"

	"github.com/katalvlaran/bvh3/ray"
)

// Raycast returns every leaf whose AABB the ray enters within
// [0, maxDistance], sorted ascending by entry distance. Duplicate payload
// values are suppressed: one result per distinct payload encountered
// (spec.md §4.1, §9 "payload-identity, not deep equal" — payload is used
// directly as a map key, so caller payloads must be comparable).
// Complexity: O(log n) expected via pruning, O(n) worst case.
func (t *Tree) Raycast(r ray.Ray, maxDistance float64) []CollisionResult {
	if t.root == nil {
		return nil
	}

	var results []CollisionResult
	seen := make(map[any]bool)

	var walk func(n *node)
	walk = func(n *node) {
		tHit, hit := r.IntersectBox(n.bounds.Min, n.bounds.Max)
		if !hit || tHit > maxDistance {
			return
		}
		if n.isLeaf() {
			if seen[n.payload] {
				return
			}
			seen[n.payload] = true
			results = append(results, CollisionResult{
				Payload:  n.payload,
				Distance: tHit,
				Point:    r.GetPoint(tHit),
				Node:     &NodeHandle{n: n},
			})

			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)

	sort.Slice(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	return results
}
