// Package geometry defines the two bounding-volume primitives bvh3 clients
// use to describe objects: AABB (an axis-aligned box) and Sphere (a bounding
// sphere). Both share the capability set of spec.md §4.3 — Bounds,
// Intersects, IntersectsRay, ContainsPoint, SurfaceArea, Volume, Merge,
// Transform, Clone, IsEmpty, Reset — modeled as a tagged Volume interface
// rather than a class hierarchy, per spec.md §9's "tagged variant" design
// note.
//
// Grounded on the teacher's core/types.go (value-type-with-sentinel-errors
// register) and on the retrieval pack's mirstar13-3d-graphics
// bounding_volumes.go (the AABB/Sphere method set itself, translated from a
// rendering-engine's Point type onto xform.Vec3).
//
// Errors: the package defines no sentinel errors. FromPoints called with
// zero points returns a Reset (inverted, empty) AABB instead of failing.
package geometry
