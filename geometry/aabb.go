package geometry

import (
	"math"

	"github.com/katalvlaran/bvh3/ray"
	"github.com/katalvlaran/bvh3/xform"
)

// AABB is an axis-aligned bounding box (Min, Max) in R3. A degenerate AABB
// has Min.i >= Max.i on some axis and is treated as empty (spec.md §3).
type AABB struct {
	Min, Max xform.Vec3
}

// NewAABB builds an AABB from min/max corners (caller-supplied order is not
// validated; a caller that passes min>max gets the degenerate/empty
// semantics of spec.md §3, not a panic).
// Complexity: O(1).
func NewAABB(min, max xform.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// FromPoints returns the tightest AABB enclosing pts. An empty pts slice is
// the Empty-input case of spec.md §7: the result is Reset (inverted/empty).
// Complexity: O(len(pts)).
func FromPoints(pts []xform.Vec3) AABB {
	var box AABB
	box.Reset()
	for _, p := range pts {
		box.Min = xform.MinComponents(box.Min, p)
		box.Max = xform.MaxComponents(box.Max, p)
	}

	return box
}

// Reset sets a to the "inverted" box (Min=+Inf, Max=-Inf) so that Merge
// acts as an identity element, per spec.md §4.3.
// Complexity: O(1).
func (a *AABB) Reset() {
	inf := math.Inf(1)
	a.Min = xform.NewVec3(inf, inf, inf)
	a.Max = xform.NewVec3(-inf, -inf, -inf)
}

// IsEmpty reports whether a is degenerate on any axis.
// Complexity: O(1).
func (a AABB) IsEmpty() bool {
	return a.Min.X >= a.Max.X || a.Min.Y >= a.Max.Y || a.Min.Z >= a.Max.Z
}

// Center returns (Min+Max)/2.
// Complexity: O(1).
func (a AABB) Center() xform.Vec3 {
	return a.Min.Add(a.Max).Scale(0.5)
}

// Extent returns (Max-Min)/2.
// Complexity: O(1).
func (a AABB) Extent() xform.Vec3 {
	return a.Max.Sub(a.Min).Scale(0.5)
}

// Size returns Max-Min.
// Complexity: O(1).
func (a AABB) Size() xform.Vec3 {
	return a.Max.Sub(a.Min)
}

// SurfaceArea returns 2(dx*dy + dx*dz + dy*dz).
// Complexity: O(1).
func (a AABB) SurfaceArea() float64 {
	d := a.Size()
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 0
	}

	return 2 * (d.X*d.Y + d.X*d.Z + d.Y*d.Z)
}

// Volume returns dx*dy*dz.
// Complexity: O(1).
func (a AABB) Volume() float64 {
	d := a.Size()
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 0
	}

	return d.X * d.Y * d.Z
}

// Bounds returns a itself (an AABB is its own envelope).
// Complexity: O(1).
func (a AABB) Bounds() AABB {
	return a
}

// ContainsPoint reports whether p lies within [Min,Max] inclusive.
// Complexity: O(1).
func (a AABB) ContainsPoint(p xform.Vec3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// overlapsAABB is the six-plane separating-axis test of spec.md §4.3.
// Complexity: O(1).
func (a AABB) overlapsAABB(o AABB) bool {
	return a.Min.X <= o.Max.X && a.Max.X >= o.Min.X &&
		a.Min.Y <= o.Max.Y && a.Max.Y >= o.Min.Y &&
		a.Min.Z <= o.Max.Z && a.Max.Z >= o.Min.Z
}

// Intersects dispatches to the overlap test matching other's concrete type.
// Complexity: O(1).
func (a AABB) Intersects(other Volume) bool {
	switch o := other.(type) {
	case AABB:
		return a.overlapsAABB(o)
	case Sphere:
		return o.overlapsAABB(a)
	default:
		return false
	}
}

// IntersectsRay delegates to r.IntersectBox.
// Complexity: O(1).
func (a AABB) IntersectsRay(r ray.Ray) (bool, float64) {
	t, hit := r.IntersectBox(a.Min, a.Max)

	return hit, t
}

// Merge returns the componentwise union of a with other's envelope,
// matching other's concrete type only when other is itself an AABB;
// merging with a Sphere unions against the sphere's AABB envelope, since
// the Tree always merges homogeneous leaf bounds (AABB) in practice but
// Merge must still honor the shared Volume contract for any caller.
// Complexity: O(1).
func (a AABB) Merge(other Volume) Volume {
	b := other.Bounds()

	return AABB{Min: xform.MinComponents(a.Min, b.Min), Max: xform.MaxComponents(a.Max, b.Max)}
}

// MergeAABB is the concrete, allocation-free merge used internally by
// bvhtree's node bounds refit (Merge boxes values, not interfaces).
// Complexity: O(1).
func (a AABB) MergeAABB(o AABB) AABB {
	return AABB{Min: xform.MinComponents(a.Min, o.Min), Max: xform.MaxComponents(a.Max, o.Max)}
}

// Transform transforms a's eight corners by m and returns the FromPoints
// envelope of the result, per spec.md §4.3.
// Complexity: O(1) (fixed 8 corners).
func (a AABB) Transform(m xform.Mat4) Volume {
	return a.TransformAABB(m)
}

// TransformAABB is the concrete-return-type sibling of Transform.
// Complexity: O(1).
func (a AABB) TransformAABB(m xform.Mat4) AABB {
	corners := [8]xform.Vec3{
		xform.NewVec3(a.Min.X, a.Min.Y, a.Min.Z),
		xform.NewVec3(a.Max.X, a.Min.Y, a.Min.Z),
		xform.NewVec3(a.Min.X, a.Max.Y, a.Min.Z),
		xform.NewVec3(a.Max.X, a.Max.Y, a.Min.Z),
		xform.NewVec3(a.Min.X, a.Min.Y, a.Max.Z),
		xform.NewVec3(a.Max.X, a.Min.Y, a.Max.Z),
		xform.NewVec3(a.Min.X, a.Max.Y, a.Max.Z),
		xform.NewVec3(a.Max.X, a.Max.Y, a.Max.Z),
	}
	pts := make([]xform.Vec3, 8)
	for i, c := range corners {
		pts[i] = m.TransformPoint(c)
	}

	return FromPoints(pts)
}

// Clone returns a itself (AABB is a plain value type; Clone exists to
// satisfy the shared Volume contract uniformly with Sphere).
// Complexity: O(1).
func (a AABB) Clone() Volume {
	return a
}
