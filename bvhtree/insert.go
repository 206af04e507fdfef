package bvhtree

import "github.com/katalvlaran/bvh3/geometry"

// Insert adds a new leaf holding bounds and payload, returning the object's
// id (T1). Complexity: O(log n) expected, O(n) worst case on a degenerate
// tree, per spec.md §4.1.
func (t *Tree) Insert(bounds geometry.AABB, payload any) uint64 {
	id := t.nextID
	t.nextID++

	leaf := &node{id: id, bounds: bounds, payload: payload, subtreeSize: 1}
	t.byID[id] = leaf

	if t.root == nil {
		t.root = leaf

		return id
	}

	sibling := t.findBestSibling(bounds)
	t.spliceSibling(sibling, leaf)

	return id
}

// findBestSibling descends from the root choosing, at each internal node,
// the child whose bounds grow least in surface area when bounds is merged
// in (the SAH-guided insertion cost of spec.md §4.1). Ties favor the left
// child. Descent stops at maxDepth even if it lands on an internal node;
// spliceSibling then pairs that whole subtree with the new leaf under a
// fresh parent, pushing the subtree one level deeper — maxDepth bounds
// descent cost, not tree shape.
func (t *Tree) findBestSibling(bounds geometry.AABB) *node {
	cur := t.root
	for !cur.isLeaf() && cur.depth < t.maxDepth {
		leftCost := sahCost(cur.left.bounds, bounds)
		rightCost := sahCost(cur.right.bounds, bounds)
		if rightCost < leftCost {
			cur = cur.right
		} else {
			cur = cur.left
		}
	}

	return cur
}

// sahCost is the surface-area increase of merging add into existing.
func sahCost(existing, add geometry.AABB) float64 {
	merged := existing.MergeAABB(add)

	return merged.SurfaceArea() - existing.SurfaceArea()
}

// spliceSibling replaces sibling with a new internal node whose two
// children are sibling and leaf, then refits bounds upward (§4.1/§4.2).
func (t *Tree) spliceSibling(sibling, leaf *node) {
	oldParent := sibling.parent
	newInternal := &node{bounds: sibling.bounds.MergeAABB(leaf.bounds), depth: sibling.depth}

	if oldParent == nil {
		t.root = newInternal
	} else if oldParent.left == sibling {
		oldParent.left = newInternal
		newInternal.parent = oldParent
	} else {
		oldParent.right = newInternal
		newInternal.parent = oldParent
	}

	newInternal.setLeft(sibling)
	newInternal.setRight(leaf)

	if oldParent != nil {
		oldParent.updateBoundsUpward()
	} else {
		newInternal.updateBoundsUpward()
	}
}
