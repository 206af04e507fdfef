// SPDX-License-Identifier: MIT
// Package: bvh3/builder
//
// api.go - thin public entry-point for bulk BVH construction.
//
// Design contract (strict), carried from the teacher's builder/api.go:
//   - One orchestrator: Build(items, strategy, opts...). Resolves cfg,
//     dispatches to the chosen Strategy's partition function, and drives
//     bvhtree.BuildFromItems.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same items/strategy/opts ⇒ identical tree shape.
//   - Safety: never panic; report failure via a returned error.
package builder

import (
	"fmt"

	"github.com/katalvlaran/bvh3/bvhtree"
	"github.com/katalvlaran/bvh3/geometry"
)

// Item is one bulk-construction input.
type Item struct {
	Bounds  geometry.AABB
	Payload any
}

// Strategy selects how Build partitions a range of items at each level.
type Strategy int

const (
	// SAH picks the split minimizing SA(L)*|L| + SA(R)*|R| among a fixed
	// number of binned candidates.
	SAH Strategy = iota
	// Median splits at the middle index after sorting by centroid.
	Median
	// Equal splits at the middle index by quickselect, without sorting.
	Equal
)

// String names the strategy for log/error messages.
func (s Strategy) String() string {
	switch s {
	case SAH:
		return MethodSAH
	case Median:
		return MethodMedian
	case Equal:
		return MethodEqual
	default:
		return "unknown"
	}
}

// ItemsFromSlice converts an arbitrary slice into a []Item, given a
// function that extracts each element's bounds. The element itself
// becomes the Item's Payload.
func ItemsFromSlice[T any](values []T, boundsOf func(T) geometry.AABB) []Item {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Item{Bounds: boundsOf(v), Payload: v}
	}

	return items
}

// Build constructs a fresh *bvhtree.Tree from items under the chosen
// strategy. An empty items slice yields a valid empty tree, not an error.
// Complexity: the partition runs once per recursion level, so O(n log n)
// expected for Equal, O(n log² n) for Median (a sort per level), and
// O(bins · n log n) for SAH.
func Build(items []Item, strategy Strategy, opts ...BuilderOption) (*bvhtree.Tree, error) {
	cfg := newBuilderConfig(opts...)

	var partition bvhtree.PartitionFunc
	switch strategy {
	case SAH:
		partition = sahPartition(cfg.sahBins)
	case Median:
		partition = medianPartition
	case Equal:
		partition = equalPartition
	default:
		return nil, fmt.Errorf("Build: strategy %d: %w", int(strategy), ErrInvalidStrategy)
	}

	buildItems := make([]bvhtree.BuildItem, len(items))
	for i, it := range items {
		buildItems[i] = bvhtree.BuildItem{Bounds: it.Bounds, Payload: it.Payload}
	}

	return bvhtree.BuildFromItems(buildItems, cfg.maxLeafSize, cfg.maxDepth, partition), nil
}
