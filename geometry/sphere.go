package geometry

import (
	"math"

	"github.com/katalvlaran/bvh3/ray"
	"github.com/katalvlaran/bvh3/xform"
)

// Sphere is a bounding sphere: a center and a non-negative radius.
type Sphere struct {
	Center xform.Vec3
	Radius float64
}

// NewSphere builds a Sphere.
// Complexity: O(1).
func NewSphere(center xform.Vec3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// SphereFromPoints returns the sphere centered at the centroid of pts with
// radius equal to the farthest point's distance from that centroid. An
// empty pts slice yields the zero Sphere (center origin, radius 0).
// Complexity: O(len(pts)).
func SphereFromPoints(pts []xform.Vec3) Sphere {
	if len(pts) == 0 {
		return Sphere{}
	}
	var centroid xform.Vec3
	for _, p := range pts {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float64(len(pts)))

	var maxDist float64
	for _, p := range pts {
		if d := centroid.Distance(p); d > maxDist {
			maxDist = d
		}
	}

	return Sphere{Center: centroid, Radius: maxDist}
}

// Reset sets s to a zero-radius sphere at the origin — Sphere's analogue of
// AABB.Reset. Unlike a Reset AABB it is not an identity for Merge: merging
// it with a sphere that does not contain the origin yields a sphere that
// also encloses the origin.
// Complexity: O(1).
func (s *Sphere) Reset() {
	*s = Sphere{}
}

// IsEmpty reports whether s has zero (or negative) radius.
// Complexity: O(1).
func (s Sphere) IsEmpty() bool {
	return s.Radius <= 0
}

// Bounds returns the AABB envelope [center-r*1, center+r*1] of s.
// Complexity: O(1).
func (s Sphere) Bounds() AABB {
	r := xform.NewVec3(s.Radius, s.Radius, s.Radius)

	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

// SurfaceArea returns 4*pi*r^2.
// Complexity: O(1).
func (s Sphere) SurfaceArea() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}

// Volume returns (4/3)*pi*r^3.
// Complexity: O(1).
func (s Sphere) Volume() float64 {
	return (4.0 / 3.0) * math.Pi * s.Radius * s.Radius * s.Radius
}

// ContainsPoint reports whether p lies within s.
// Complexity: O(1).
func (s Sphere) ContainsPoint(p xform.Vec3) bool {
	return s.Center.DistanceSquared(p) <= s.Radius*s.Radius
}

// overlapsSphere tests two spheres for overlap.
// Complexity: O(1).
func (s Sphere) overlapsSphere(o Sphere) bool {
	rr := s.Radius + o.Radius

	return s.Center.DistanceSquared(o.Center) <= rr*rr
}

// overlapsAABB is the "closest point on box to center" test of spec.md §4.3.
// Complexity: O(1).
func (s Sphere) overlapsAABB(box AABB) bool {
	closest := xform.MaxComponents(box.Min, xform.MinComponents(box.Max, s.Center))

	return closest.DistanceSquared(s.Center) <= s.Radius*s.Radius
}

// Intersects dispatches to the overlap test matching other's concrete type.
// Complexity: O(1).
func (s Sphere) Intersects(other Volume) bool {
	switch o := other.(type) {
	case Sphere:
		return s.overlapsSphere(o)
	case AABB:
		return s.overlapsAABB(o)
	default:
		return false
	}
}

// IntersectsRay delegates to r.IntersectSphere.
// Complexity: O(1).
func (s Sphere) IntersectsRay(r ray.Ray) (bool, float64) {
	t, hit := r.IntersectSphere(s.Center, s.Radius)

	return hit, t
}

// Merge returns the smallest sphere enclosing both s and other's bounds.
// Complexity: O(1).
func (s Sphere) Merge(other Volume) Volume {
	o := sphereOf(other)
	d := s.Center.Distance(o.Center)
	if d+o.Radius <= s.Radius {
		return s
	}
	if d+s.Radius <= o.Radius {
		return o
	}
	newRadius := (s.Radius + o.Radius + d) / 2
	var newCenter xform.Vec3
	if d < 1e-12 {
		newCenter = s.Center
	} else {
		t := (newRadius - s.Radius) / d
		newCenter = s.Center.Add(o.Center.Sub(s.Center).Scale(t))
	}

	return Sphere{Center: newCenter, Radius: newRadius}
}

// sphereOf coerces any Volume into a bounding Sphere (exact if it already is
// one, else the minimal sphere enclosing its AABB envelope).
func sphereOf(v Volume) Sphere {
	if s, ok := v.(Sphere); ok {
		return s
	}
	box := v.Bounds()

	return Sphere{Center: box.Center(), Radius: box.Center().Distance(box.Max)}
}

// Transform transforms the center as a point and scales Radius by the
// maximum row-scale of m's linear part, per spec.md §4.3.
// Complexity: O(1).
func (s Sphere) Transform(m xform.Mat4) Volume {
	return Sphere{Center: m.TransformPoint(s.Center), Radius: s.Radius * m.MaxRowScale()}
}

// Clone returns an independent copy of s (Sphere is a plain value type).
// Complexity: O(1).
func (s Sphere) Clone() Volume {
	return s
}
