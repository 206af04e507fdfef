package ray

import "github.com/katalvlaran/bvh3/xform"

// Ray is a 3D half-line: Origin plus a unit-length Direction.
type Ray struct {
	Origin    xform.Vec3
	Direction xform.Vec3
}

// New builds a Ray, normalizing direction. A zero-length direction is a
// degenerate-geometry input (spec.md §7): it is stored as the zero vector
// rather than panicking. The intersection tests then report a miss for any
// volume that does not contain the origin; a volume that does contain it
// still reports a hit.
// Complexity: O(1).
func New(origin, direction xform.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalized()}
}

// GetPoint returns the point at distance t along the ray.
// Complexity: O(1).
func (r Ray) GetPoint(t float64) xform.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Clone returns an independent copy of r (Ray has no reference fields, so
// this is a value copy — kept as a method for parity with geometry.Volume's
// Clone and to make call sites read the same way the teacher's
// core.Graph.Clone()/CloneEmpty() pair does).
// Complexity: O(1).
func (r Ray) Clone() Ray {
	return r
}

// Transform applies m to the ray: Origin as a point, Direction as a normal,
// then renormalizes the resulting direction (spec.md §4.4).
// Complexity: O(1).
func (r Ray) Transform(m xform.Mat4) Ray {
	return Ray{
		Origin:    m.TransformPoint(r.Origin),
		Direction: m.TransformNormal(r.Direction).Normalized(),
	}
}

// GetClosestPoint returns the point on the ray closest to p.
// Complexity: O(1).
func (r Ray) GetClosestPoint(p xform.Vec3) xform.Vec3 {
	t := p.Sub(r.Origin).Dot(r.Direction)
	if t < 0 {
		t = 0
	}

	return r.GetPoint(t)
}

// DistanceSquaredToPoint returns the squared distance from the ray to p.
// Complexity: O(1).
func (r Ray) DistanceSquaredToPoint(p xform.Vec3) float64 {
	return r.GetClosestPoint(p).DistanceSquared(p)
}

// DistanceToPoint returns the distance from the ray to p.
// Complexity: O(1).
func (r Ray) DistanceToPoint(p xform.Vec3) float64 {
	return r.GetClosestPoint(p).Distance(p)
}
