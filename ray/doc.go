// Package ray implements the extended 3D ray type spec.md §4.4 asks for:
// beyond the basic box/sphere intersection tests bvhtree needs for
// traversal, it exposes closest-point queries, OBB and capsule
// intersection, a multi-point slab test, and an affine transform.
//
// Grounded on the teacher corpus's raycast-flavored reference file
// (mirstar13-3d-graphics/raycast.go) for the Ray/GetPoint shape, and on the
// retrieval pack's spatial-index BVH files (other_examples' viamrobotics-rdk
// spatialmath-bvh.go.go, drone115b-gobvh__gobvh.go.go) for the slab-method
// box test this package's IntersectBox is the worked example of.
//
// Numerical policy: Epsilon (1e-6) is the "parallel axis" tolerance used by
// the slab method and the capsule fallback, per spec.md §4.4.
package ray

// Epsilon is the tolerance below which an axis is treated as parallel to a
// slab, or a capsule axis is treated as degenerate (zero length).
const Epsilon = 1e-6

// Miss is the distinguished "no hit" distance sentinel: any real intersection
// distance returned by this package is >= 0.
const Miss = -1.0
