package bvhtree

import (
	"container/heap"

	"github.com/katalvlaran/bvh3/xform"
)

// frontierItem is one entry in FindNearest's best-first priority queue,
// grounded on dijkstra/dijkstra.go's container/heap-based frontier.
type frontierItem struct {
	n    *node
	dist float64
}

// frontier is a min-heap of frontierItem ordered by dist, implementing
// heap.Interface exactly as dijkstra's own priority queue does.
type frontier []frontierItem

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

// FindNearest returns the payload of the leaf minimizing the
// axis-separated distance to point among leaves within maxDistance,
// or nil if none qualify. Best-first descent: at each internal node the
// child with the smaller d(point, child.bounds) is visited first, and a
// frontier entry is pruned once its distance exceeds the current best
// (spec.md §4.1). Complexity: O(log n) expected.
func (t *Tree) FindNearest(point xform.Vec3, maxDistance float64) any {
	if t.root == nil {
		return nil
	}

	bestDistance := maxDistance
	var best any
	found := false

	pq := &frontier{{n: t.root, dist: axisSeparatedDistance(point, t.root.bounds)}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)
		if item.dist > bestDistance {
			// Every remaining frontier entry is >= item.dist (heap
			// invariant), so nothing left can beat the current best.
			break
		}
		n := item.n
		if n.isLeaf() {
			// A child's bounds-distance is never less than its parent's
			// (child.bounds is contained in parent.bounds, N2), so the
			// first leaf popped is globally nearest: best-first descent
			// is optimal here.
			best = n.payload
			bestDistance = item.dist
			found = true

			break
		}

		ld := axisSeparatedDistance(point, n.left.bounds)
		rd := axisSeparatedDistance(point, n.right.bounds)
		if ld <= bestDistance {
			heap.Push(pq, frontierItem{n: n.left, dist: ld})
		}
		if rd <= bestDistance {
			heap.Push(pq, frontierItem{n: n.right, dist: rd})
		}
	}

	if !found {
		return nil
	}

	return best
}
