package xform

import "math"

// Vec3 is a point or direction in R3.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 builds a Vec3 from three components.
// Complexity: O(1).
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v+o componentwise.
// Complexity: O(1).
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v-o componentwise.
// Complexity: O(1).
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v scaled by s.
// Complexity: O(1).
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of v and o.
// Complexity: O(1).
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
// Complexity: O(1).
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns ‖v‖².
// Complexity: O(1).
func (v Vec3) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns ‖v‖.
// Complexity: O(1).
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// DistanceSquared returns ‖v-o‖².
// Complexity: O(1).
func (v Vec3) DistanceSquared(o Vec3) float64 {
	return v.Sub(o).LengthSquared()
}

// Distance returns ‖v-o‖.
// Complexity: O(1).
func (v Vec3) Distance(o Vec3) float64 {
	return math.Sqrt(v.DistanceSquared(o))
}

// Normalized returns v scaled to unit length, or the zero vector if v is
// itself (near) zero-length — a degenerate-direction caller never panics,
// per spec.md §7's degenerate-geometry policy.
// Complexity: O(1).
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l < 1e-12 {
		return Vec3{}
	}

	return v.Scale(1 / l)
}

// MinComponents returns the componentwise minimum of v and o.
// Complexity: O(1).
func MinComponents(v, o Vec3) Vec3 {
	return Vec3{X: math.Min(v.X, o.X), Y: math.Min(v.Y, o.Y), Z: math.Min(v.Z, o.Z)}
}

// MaxComponents returns the componentwise maximum of v and o.
// Complexity: O(1).
func MaxComponents(v, o Vec3) Vec3 {
	return Vec3{X: math.Max(v.X, o.X), Y: math.Max(v.Y, o.Y), Z: math.Max(v.Z, o.Z)}
}

// Abs returns the componentwise absolute value of v.
// Complexity: O(1).
func (v Vec3) Abs() Vec3 {
	return Vec3{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}
}

// Component returns the axis-th component (0=X, 1=Y, 2=Z).
// Complexity: O(1).
func (v Vec3) Component(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// WithComponent returns a copy of v with the axis-th component set to val.
// Complexity: O(1).
func (v Vec3) WithComponent(axis int, val float64) Vec3 {
	switch axis {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}

	return v
}
