package bvhtree

import (
	"github.com/katalvlaran/bvh3/geometry"
	"github.com/katalvlaran/bvh3/xform"
)

// Tree is the incremental BVH of spec.md §3. The zero value is not usable;
// construct one with NewTree. A Tree is owned exclusively by its caller —
// concurrent use from multiple goroutines is undefined, per spec.md §5.
type Tree struct {
	root *node

	// byID maps a live object-id to the leaf node storing its payload (T1).
	byID map[uint64]*node

	// nextID is this tree's own monotonic id counter (DESIGN NOTES:
	// "Global state" — scoped per instance, not process-wide).
	nextID uint64

	maxLeafSize int
	maxDepth    int
	enableSAH   bool
}

// NewTree constructs an empty Tree with (maxLeafSize=8, maxDepth=32,
// enableSAH=true) per spec.md §6, then applies opts in order.
// Complexity: O(len(opts)).
func NewTree(opts ...TreeOption) *Tree {
	t := &Tree{
		byID:        make(map[uint64]*node),
		maxLeafSize: DefaultMaxLeafSize,
		maxDepth:    DefaultMaxDepth,
		enableSAH:   true,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// NodeHandle is an opaque reference to the leaf a query visited, returned
// in CollisionResult (SPEC_FULL.md §6). It carries no exported fields or
// methods, and no Tree method accepts one as an argument.
type NodeHandle struct {
	n *node
}

// CollisionResult is a single hit returned by Raycast. Normal and UV are
// left nil: the BVH tests only AABB envelopes, never the caller's actual
// primitive, per spec.md §4.1.
type CollisionResult struct {
	Payload  any
	Distance float64
	Point    xform.Vec3
	Normal   *xform.Vec3
	UV       *[2]float64
	Node     *NodeHandle
}

// Count returns the number of live objects in the tree (T5).
// Complexity: O(1).
func (t *Tree) Count() int {
	return len(t.byID)
}

// Len is an alias for Count, mirroring core.Graph's VertexCount/EdgeCount
// naming alongside the richer GetStats view (SPEC_FULL.md §8).
// Complexity: O(1).
func (t *Tree) Len() int {
	return t.Count()
}

// Bounds returns the root's bounding box, or an empty AABB if the tree has
// no root.
// Complexity: O(1).
func (t *Tree) Bounds() geometry.AABB {
	if t.root == nil {
		var empty geometry.AABB
		empty.Reset()

		return empty
	}

	return t.root.bounds
}

// Clear drops the root and the id map, and resets the id counter.
// Complexity: O(1) (the arena is released to the garbage collector).
func (t *Tree) Clear() {
	t.root = nil
	t.byID = make(map[uint64]*node)
	t.nextID = 0
}

// Clone returns a deep, independent copy of t: every node is duplicated,
// and the returned tree's byID map points into its own copies, never the
// original's (SPEC_FULL.md §8 supplements spec.md with this operation, in
// the register of core.Graph's Clone method). Complexity: O(n).
func (t *Tree) Clone() *Tree {
	cp := &Tree{
		byID:        make(map[uint64]*node, len(t.byID)),
		nextID:      t.nextID,
		maxLeafSize: t.maxLeafSize,
		maxDepth:    t.maxDepth,
		enableSAH:   t.enableSAH,
	}
	if t.root == nil {
		return cp
	}

	cp.root = t.root.clone()
	var leaves []*node
	cp.root.getLeaves(&leaves)
	for _, l := range leaves {
		cp.byID[l.id] = l
	}

	return cp
}
