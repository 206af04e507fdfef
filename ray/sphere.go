package ray

import (
	"math"

	"github.com/katalvlaran/bvh3/xform"
)

// IntersectSphere returns the near-hit distance of r against the sphere
// (center, radius), or Miss if the ray does not enter it.
// Complexity: O(1).
func (r Ray) IntersectSphere(center xform.Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.LengthSquared() - radius*radius
	disc := b*b - c
	if disc < 0 {
		return Miss, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return Miss, false
	}

	return t, true
}

// IntersectOBB transforms the ray into the OBB's local frame (center +
// rotation) and runs the AABB slab test against [-halfExtents, halfExtents],
// per spec.md §4.4.
// Complexity: O(1).
func (r Ray) IntersectOBB(center, halfExtents xform.Vec3, rotation xform.Mat4) (float64, bool) {
	inv, err := rotation.Invert()
	if err != nil {
		// A non-invertible orientation matrix is degenerate input; report a
		// miss rather than propagate an error from a query-shaped method.
		return Miss, false
	}
	local := Ray{
		Origin:    inv.TransformPoint(r.Origin.Sub(center)),
		Direction: inv.TransformNormal(r.Direction).Normalized(),
	}

	return local.IntersectBox(halfExtents.Scale(-1), halfExtents)
}
