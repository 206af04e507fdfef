// Package bvh3 is a Bounding Volume Hierarchy: a binary-tree spatial index
// over three-dimensional axis-aligned bounding boxes that accelerates ray
// casting, range queries, nearest-neighbor search, and bounds-overlap
// queries from linear to roughly logarithmic cost.
//
// Under the hood, everything is organized under five subpackages:
//
//	xform/    — Vec3/Mat4 math collaborator the rest of the module builds on
//	geometry/ — AABB and Sphere bounding-volume primitives
//	ray/      — Ray and its box/sphere/OBB/capsule intersection tests
//	bvhtree/  — Node + Tree: the incremental BVH itself
//	builder/  — bulk construction from a known item set (SAH/Median/Equal)
//
// This package declares no symbols of its own; it exists to document the
// module as a whole. See bvhtree.Tree for the primary entry point.
//
//	go get github.com/katalvlaran/bvh3
package bvh3
