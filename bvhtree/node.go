package bvhtree

import "github.com/katalvlaran/bvh3/geometry"

// node is the tree's arena cell: an internal node (both left and right set)
// or a leaf (neither set, payload populated) — invariant N1 of spec.md §3.
// Fields are unexported; external callers only ever hold a *NodeHandle.
type node struct {
	id     uint64
	bounds geometry.AABB

	parent, left, right *node

	depth int

	// payload is populated only for leaves; nil on internal nodes.
	payload any

	subtreeSize      int
	subtreeSizeDirty bool
}

// isLeaf reports invariant N1: a node is a leaf iff both children are absent.
func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// setLeft attaches child as n's left subtree, detaching any previous left
// child, refreshing depths through the attached subtree (N3), and
// invalidating subtree-size caches up the parent chain (N4).
func (n *node) setLeft(child *node) {
	if n.left != nil {
		n.left.parent = nil
	}
	n.left = child
	n.attachChild(child)
}

// setRight is setLeft's mirror for the right child.
func (n *node) setRight(child *node) {
	if n.right != nil {
		n.right.parent = nil
	}
	n.right = child
	n.attachChild(child)
}

// attachChild wires child's parent link, refreshes its depth and the depth
// of its whole subtree by breadth-first walk (§4.2: "propagate depth
// updates through the replaced child's subtree by breadth-first walk"),
// and marks the subtree-size cache dirty up the ancestor chain.
func (n *node) attachChild(child *node) {
	if child == nil {
		n.markSubtreeSizeDirty()

		return
	}
	child.parent = n
	child.depth = n.depth + 1

	queue := []*node{child}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.left != nil {
			cur.left.depth = cur.depth + 1
			queue = append(queue, cur.left)
		}
		if cur.right != nil {
			cur.right.depth = cur.depth + 1
			queue = append(queue, cur.right)
		}
	}

	n.markSubtreeSizeDirty()
}

// updateBoundsUpward recomputes n.bounds as the union of its present
// children's bounds, then recurses upward through parent, per spec.md
// §4.2's updateBounds contract.
func (n *node) updateBoundsUpward() {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.isLeaf() {
			continue
		}
		cur.bounds = cur.left.bounds.MergeAABB(cur.right.bounds)
	}
}

// markSubtreeSizeDirty walks upward invalidating the subtreeSize cache.
func (n *node) markSubtreeSizeDirty() {
	for cur := n; cur != nil; cur = cur.parent {
		cur.subtreeSizeDirty = true
	}
}

// getSubtreeSize lazily recomputes subtreeSize on read (N4).
func (n *node) getSubtreeSize() int {
	if !n.subtreeSizeDirty {
		return n.subtreeSize
	}
	if n.isLeaf() {
		n.subtreeSize = 1
	} else {
		n.subtreeSize = n.left.getSubtreeSize() + n.right.getSubtreeSize()
	}
	n.subtreeSizeDirty = false

	return n.subtreeSize
}

// getLeaves appends every leaf reachable from n, in left-to-right order.
func (n *node) getLeaves(out *[]*node) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		*out = append(*out, n)

		return
	}
	n.left.getLeaves(out)
	n.right.getLeaves(out)
}

// getMaxDepth returns the deepest leaf depth reachable from n (root's own
// depth if n is itself a leaf).
func (n *node) getMaxDepth() int {
	if n == nil {
		return -1
	}
	if n.isLeaf() {
		return n.depth
	}
	l := n.left.getMaxDepth()
	r := n.right.getMaxDepth()
	if l > r {
		return l
	}

	return r
}

// getSubtreeHeight returns the height of n (0 for a leaf, -1 for nil).
func (n *node) getSubtreeHeight() int {
	if n == nil {
		return -1
	}
	if n.isLeaf() {
		return 0
	}
	l := n.left.getSubtreeHeight()
	r := n.right.getSubtreeHeight()
	if l > r {
		return l + 1
	}

	return r + 1
}

// isBalanced reports whether every internal node in n's subtree has
// children whose heights differ by at most 1 (spec.md §4.1's balance test).
func (n *node) isBalanced() bool {
	if n == nil || n.isLeaf() {
		return true
	}
	lh, rh := n.left.getSubtreeHeight(), n.right.getSubtreeHeight()
	diff := lh - rh
	if diff < 0 {
		diff = -diff
	}

	return diff <= 1 && n.left.isBalanced() && n.right.isBalanced()
}

// clone returns a deep, parent-less copy of n's subtree (parent is wired by
// the caller once the copy is spliced into a destination tree).
func (n *node) clone() *node {
	if n == nil {
		return nil
	}
	cp := &node{
		id:      n.id,
		bounds:  n.bounds,
		depth:   n.depth,
		payload: n.payload,
	}
	if !n.isLeaf() {
		cp.left = n.left.clone()
		cp.left.parent = cp
		cp.right = n.right.clone()
		cp.right.parent = cp
	}
	cp.subtreeSizeDirty = true

	return cp
}
