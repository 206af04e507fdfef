package geometry

import (
	"github.com/katalvlaran/bvh3/ray"
	"github.com/katalvlaran/bvh3/xform"
)

// Volume is the shared capability set of AABB and Sphere (spec.md §4.3).
// It is a closed, two-variant tag: AABB and Sphere are the only
// implementations bvh3 ships, dispatched on concrete type rather than
// through a registered-plugin style interface.
type Volume interface {
	// Bounds returns the AABB envelope of the volume.
	Bounds() AABB
	// Intersects reports whether the volume overlaps other.
	Intersects(other Volume) bool
	// IntersectsRay reports whether r enters the volume, and at what distance.
	IntersectsRay(r ray.Ray) (bool, float64)
	// ContainsPoint reports whether p lies within the volume.
	ContainsPoint(p xform.Vec3) bool
	// SurfaceArea returns the volume's boundary surface area.
	SurfaceArea() float64
	// Volume returns the volume's enclosed volume.
	Volume() float64
	// Merge returns the smallest volume of the same kind enclosing both.
	Merge(other Volume) Volume
	// Transform applies an affine matrix to the volume.
	Transform(m xform.Mat4) Volume
	// Clone returns an independent copy of the volume.
	Clone() Volume
	// IsEmpty reports whether the volume is degenerate/empty.
	IsEmpty() bool
}

var (
	_ Volume = AABB{}
	_ Volume = Sphere{}
)
