package bvhtree

import "github.com/katalvlaran/bvh3/geometry"

// Update moves the object holding id to newBounds. If newBounds still fits
// within the leaf's current node bounds, the leaf is overwritten in place
// (the fast path of spec.md §4.1, no ancestor refit needed). Otherwise the
// leaf is removed and reinserted with the same id preserved. Reports false
// if id is not live (T3).
func (t *Tree) Update(id uint64, newBounds geometry.AABB) bool {
	leaf, ok := t.byID[id]
	if !ok {
		return false
	}

	if containsAABB(leaf.bounds, newBounds) {
		leaf.bounds = newBounds

		return true
	}

	payload := leaf.payload
	t.Remove(id)

	// Reinsert under the same id: Update never churns the caller-visible
	// handle, unlike a plain Remove+Insert pair.
	newLeaf := &node{id: id, bounds: newBounds, payload: payload, subtreeSize: 1}
	t.byID[id] = newLeaf

	if t.root == nil {
		t.root = newLeaf
	} else {
		sibling := t.findBestSibling(newBounds)
		t.spliceSibling(sibling, newLeaf)
	}

	return true
}

// containsAABB reports whether inner fits entirely within outer.
func containsAABB(outer, inner geometry.AABB) bool {
	return inner.Min.X >= outer.Min.X && inner.Max.X <= outer.Max.X &&
		inner.Min.Y >= outer.Min.Y && inner.Max.Y <= outer.Max.Y &&
		inner.Min.Z >= outer.Min.Z && inner.Max.Z <= outer.Max.Z
}
