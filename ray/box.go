package ray

import (
	"math"

	"github.com/katalvlaran/bvh3/xform"
)

// IntersectBox performs the slab-method ray/AABB test against box [min,max].
// Returns the near-hit distance and true on hit, or Miss and false.
// Grounded on the teacher pack's BVH reference files' slab tests
// (other_examples' viamrobotics-rdk spatialmath-bvh.go.go and
// drone115b-gobvh__gobvh.go.go both walk the three axes the same way).
// Complexity: O(1).
func (r Ray) IntersectBox(min, max xform.Vec3) (float64, bool) {
	tNear, tFar, hit := r.slabInterval(min, max)
	if !hit {
		return Miss, false
	}
	entry := tNear
	if entry < 0 {
		entry = 0
	}
	if tFar <= entry {
		// The forward half-line's overlap with the box has zero length:
		// either entirely behind the origin, or only touching a single
		// boundary point (e.g. the ray starts exactly on a corner and
		// points away). Neither counts as the ray entering the box.
		return Miss, false
	}

	return entry, true
}

// IntersectBoxPoints is the multi-point variant: it returns both the entry
// and exit distances along the slab interval, clamping entry to
// max(0, tNear) per spec.md §4.4 so that a ray starting inside the box
// reports tNear=0.
// Complexity: O(1).
func (r Ray) IntersectBoxPoints(min, max xform.Vec3) (entry, exit float64, hit bool) {
	tNear, tFar, ok := r.slabInterval(min, max)
	if !ok {
		return Miss, Miss, false
	}
	entry = tNear
	if entry < 0 {
		entry = 0
	}
	if tFar <= entry {
		return Miss, Miss, false
	}

	return entry, tFar, true
}

// slabInterval computes the [tNear,tFar] parametric interval where the ray
// lies within every axis slab of [min,max]. A ray parallel to an axis
// (|direction.axis| < Epsilon) misses unless its origin already lies within
// that axis's slab, per spec.md §4.4's pass-through/miss policy.
func (r Ray) slabInterval(min, max xform.Vec3) (tNear, tFar float64, hit bool) {
	tNear = math.Inf(-1)
	tFar = math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o := r.Origin.Component(axis)
		d := r.Direction.Component(axis)
		lo := min.Component(axis)
		hi := max.Component(axis)

		if d > -Epsilon && d < Epsilon {
			// Parallel: pass-through if inside the slab, miss otherwise.
			if o < lo || o > hi {
				return 0, 0, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear = t1
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar {
			return 0, 0, false
		}
	}

	return tNear, tFar, true
}
