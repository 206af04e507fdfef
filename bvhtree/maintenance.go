package bvhtree

import "github.com/katalvlaran/bvh3/geometry"

// Stats is the derived-by-single-walk view returned by GetStats.
type Stats struct {
	NodeCount     int
	LeafCount     int
	MaxDepth      int
	AverageDepth  float64
	BalanceFactor float64
}

// entry pairs a leaf's bounds and payload, the unit Rebuild collects and
// reinserts.
type entry struct {
	bounds  geometry.AABB
	payload any
}

// Rebuild collects every (bounds, payload) pair, clears the tree, and
// reinserts them from scratch via the ordinary SAH-guided Insert path.
// Ids are re-issued: spec.md §4.1 does not guarantee id preservation across
// Rebuild. Complexity: O(n log n).
func (t *Tree) Rebuild() {
	entries := t.collectEntries()
	t.Clear()
	for _, e := range entries {
		t.Insert(e.bounds, e.payload)
	}
}

// collectEntries walks every leaf left-to-right, in insertion-independent
// tree order.
func (t *Tree) collectEntries() []entry {
	if t.root == nil {
		return nil
	}
	var leaves []*node
	t.root.getLeaves(&leaves)

	entries := make([]entry, len(leaves))
	for i, l := range leaves {
		entries[i] = entry{bounds: l.bounds, payload: l.payload}
	}

	return entries
}

// Optimize rebuilds the tree if enableSAH is set and the root is
// structurally unbalanced, reporting whether a rebuild occurred.
// Complexity: O(n·h) to test balance (each internal node recomputes its
// children's heights); O(n log n) more when it rebuilds.
func (t *Tree) Optimize() bool {
	if !t.enableSAH || t.root == nil || t.root.isBalanced() {
		return false
	}
	t.Rebuild()

	return true
}

// GetStats derives node/leaf counts and depth statistics by a single
// subtree walk, then the balance factor by a second pass that recomputes
// subtree heights at every internal node. Complexity: O(n·h).
func (t *Tree) GetStats() Stats {
	var s Stats
	if t.root == nil {
		return s
	}

	var depthSum int
	var walk func(n *node)
	walk = func(n *node) {
		s.NodeCount++
		if n.isLeaf() {
			s.LeafCount++
			depthSum += n.depth
			if n.depth > s.MaxDepth {
				s.MaxDepth = n.depth
			}

			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)

	if s.LeafCount > 0 {
		s.AverageDepth = float64(depthSum) / float64(s.LeafCount)
	}
	s.BalanceFactor = balanceFactor(t.root)

	return s
}

// balanceFactor returns the maximum left/right height difference found
// anywhere in the subtree rooted at n (0 for a perfectly balanced tree).
func balanceFactor(n *node) float64 {
	if n == nil || n.isLeaf() {
		return 0
	}
	lh, rh := n.left.getSubtreeHeight(), n.right.getSubtreeHeight()
	diff := lh - rh
	if diff < 0 {
		diff = -diff
	}

	lf := balanceFactor(n.left)
	rf := balanceFactor(n.right)
	worst := float64(diff)
	if lf > worst {
		worst = lf
	}
	if rf > worst {
		worst = rf
	}

	return worst
}

// Validate walks the whole tree checking parent/child pointer consistency,
// a nil root parent, depth correctness, leaf/internal shape, bounds
// containment (every node's bounds contain both of its children's bounds),
// and that the reachable leaf count equals the id map's size. It does not
// check that each id-map entry points at a reachable leaf carrying that id,
// nor the cached subtree sizes. Complexity: O(n).
func (t *Tree) Validate() bool {
	if t.root == nil {
		return len(t.byID) == 0
	}
	if t.root.parent != nil {
		return false
	}

	leafCount := 0
	ok := validateNode(t.root, 0, &leafCount)
	if !ok {
		return false
	}

	return leafCount == len(t.byID)
}

func validateNode(n *node, expectedDepth int, leafCount *int) bool {
	if n.depth != expectedDepth {
		return false
	}
	if n.isLeaf() {
		*leafCount++

		return true
	}
	if n.left == nil || n.right == nil {
		return false
	}
	if n.left.parent != n || n.right.parent != n {
		return false
	}
	if !containsAABB(n.bounds, n.left.bounds) || !containsAABB(n.bounds, n.right.bounds) {
		return false
	}

	return validateNode(n.left, expectedDepth+1, leafCount) && validateNode(n.right, expectedDepth+1, leafCount)
}
