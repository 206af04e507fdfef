// Package bvhtree implements the incremental Bounding Volume Hierarchy of
// spec.md §3-§4.1: a binary tree over geometry.AABB leaves that answers
// raycast, range, nearest-neighbor, and bounds-overlap queries in roughly
// logarithmic time, and stays structurally valid (§3's invariants N1-N5,
// T1-T6) across arbitrary Insert/Remove/Update sequences.
//
// The public surface is a single Tree type, constructed with NewTree and
// functional TreeOption values — the same register as the teacher's
// core.NewGraph(opts ...GraphOption): defaults are resolved first, then
// overridden in option order.
//
// Grounded on:
//   - core/types.go, core/methods.go — the Graph-as-owner-of-an-arena shape
//     (a single struct holding every node plus an id->node lookup map),
//     translated from vertices/edges onto BVH nodes.
//   - algorithms/bfs.go — the walker-struct pattern used here for breadth
//     -first depth propagation (node.go) and for the best-first nearest
//     -neighbor frontier (query_nearest.go), in place of a recursive
//     closure.
//   - dijkstra/dijkstra.go — container/heap-based priority frontier, reused
//     verbatim in shape for FindNearest's best-first descent.
//
// Errors: operations never panic on caller data; failures are reported via
// the documented sentinel return values of spec.md §7 (false/nil/empty).
package bvhtree
