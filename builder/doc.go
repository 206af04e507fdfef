// Package builder performs bulk BVH construction from a fully-known set of
// (bounds, payload) pairs (spec.md §4.5), trading the incremental tree's
// per-insert cost for a single up-front pass that produces a
// higher-quality hierarchy.
//
// The public entry point is Build(items, strategy, opts...), mirroring the
// teacher's single-orchestrator shape (builder.BuildGraph resolves options
// once and drives a pluggable algorithm; here the pluggable part is one of
// three Strategy values instead of a list of Constructor closures).
//
// Strategies:
//   - SAH: evaluates a constant number of binned candidate splits along the
//     widest centroid axis and picks the one minimizing
//     SA(L)*|L| + SA(R)*|R|, per impl_sah.go.
//   - Median: sorts the range by centroid on the widest axis and splits at
//     the middle index, per impl_median.go.
//   - Equal: partitions the range at the middle index by quickselect
//     (Lomuto partition), without a full sort, per impl_equal.go.
//
// All three strategies share the recursion driver in
// bvhtree.BuildFromItems: this package only ever decides how to split a
// range in two, never how nodes are wired.
package builder
