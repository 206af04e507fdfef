package bvhtree

import "github.com/katalvlaran/bvh3/geometry"

// BuildItem is one bulk-construction input: a payload paired with its
// bounds, the unit builder.Item converts to before handing work to
// BuildFromItems (spec.md §4.5).
type BuildItem struct {
	Bounds  geometry.AABB
	Payload any
}

// PartitionFunc splits items into two non-empty groups along a
// strategy-chosen axis and split index. Returning ok=false tells
// BuildFromItems to stop recursing and emit items as a single leaf
// cluster instead — the base case of spec.md §4.5.
type PartitionFunc func(items []BuildItem) (left, right []BuildItem, ok bool)

// BuildFromItems constructs a fresh Tree from items by recursively
// splitting ranges wider than maxLeafSize (and shallower than maxDepth)
// via partition. This is the shared recursion driver behind every
// builder.Strategy: the strategies differ only in how partition chooses
// a split; the node wiring itself stays here because node's fields are
// unexported outside this package (spec.md §4.5, §9 "arena-allocated
// cells"). Complexity: O(n log n) expected.
func BuildFromItems(items []BuildItem, maxLeafSize, maxDepth int, partition PartitionFunc) *Tree {
	t := NewTree(WithMaxLeafSize(maxLeafSize), WithMaxDepth(maxDepth))
	if len(items) == 0 {
		return t
	}

	t.root = t.buildRange(items, 0, maxLeafSize, maxDepth, partition)

	var leaves []*node
	t.root.getLeaves(&leaves)
	for _, l := range leaves {
		t.byID[l.id] = l
	}

	return t
}

// buildRange recursively partitions items, producing either a leaf
// cluster (base case) or an internal node over two recursively-built
// halves.
func (t *Tree) buildRange(items []BuildItem, depth, maxLeafSize, maxDepth int, partition PartitionFunc) *node {
	if len(items) <= 1 || len(items) <= maxLeafSize || depth >= maxDepth {
		return t.buildLeafCluster(items, depth)
	}

	left, right, ok := partition(items)
	if !ok || len(left) == 0 || len(right) == 0 {
		return t.buildLeafCluster(items, depth)
	}

	leftNode := t.buildRange(left, depth+1, maxLeafSize, maxDepth, partition)
	rightNode := t.buildRange(right, depth+1, maxLeafSize, maxDepth, partition)

	internal := &node{depth: depth}
	internal.setLeft(leftNode)
	internal.setRight(rightNode)
	internal.bounds = leftNode.bounds.MergeAABB(rightNode.bounds)

	return internal
}

// buildLeafCluster handles the base case of spec.md §4.5: a range of
// ≤maxLeafSize items (or a single item) becomes one leaf per item,
// parented under a degenerate internal chain when there is more than one.
func (t *Tree) buildLeafCluster(items []BuildItem, depth int) *node {
	leaves := make([]*node, len(items))
	for i, it := range items {
		id := t.nextID
		t.nextID++
		leaves[i] = &node{id: id, bounds: it.Bounds, payload: it.Payload, subtreeSize: 1}
	}
	if len(leaves) == 1 {
		leaves[0].depth = depth

		return leaves[0]
	}

	cur := leaves[0]
	for i := 1; i < len(leaves); i++ {
		internal := &node{}
		internal.setLeft(cur)
		internal.setRight(leaves[i])
		internal.bounds = cur.bounds.MergeAABB(leaves[i].bounds)
		cur = internal
	}
	rebaseDepth(cur, depth)

	return cur
}
