package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bvh3/geometry"
	"github.com/katalvlaran/bvh3/ray"
	"github.com/katalvlaran/bvh3/xform"
)

func TestAABB_ResetThenMergeIsIdentity(t *testing.T) {
	var a geometry.AABB
	a.Reset()
	box := geometry.NewAABB(xform.NewVec3(1, 2, 3), xform.NewVec3(4, 5, 6))
	merged := a.Merge(box)
	assert.Equal(t, geometry.Volume(box), merged)
}

func TestAABB_FromPointsEmpty(t *testing.T) {
	box := geometry.FromPoints(nil)
	assert.True(t, box.IsEmpty())
}

func TestAABB_SurfaceAreaAndVolume(t *testing.T) {
	box := geometry.NewAABB(xform.NewVec3(0, 0, 0), xform.NewVec3(2, 3, 4))
	assert.InDelta(t, 2*(2*3+2*4+3*4), box.SurfaceArea(), 1e-9)
	assert.InDelta(t, 24.0, box.Volume(), 1e-9)
}

func TestAABB_Overlaps(t *testing.T) {
	a := geometry.NewAABB(xform.NewVec3(0, 0, 0), xform.NewVec3(2, 2, 2))
	b := geometry.NewAABB(xform.NewVec3(1, 1, 1), xform.NewVec3(3, 3, 3))
	c := geometry.NewAABB(xform.NewVec3(5, 5, 5), xform.NewVec3(6, 6, 6))
	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
}

func TestAABB_TransformThenFromPointsMatchesDirectTransform(t *testing.T) {
	box := geometry.NewAABB(xform.NewVec3(-1, -1, -1), xform.NewVec3(1, 1, 1))
	m := xform.Translation(xform.NewVec3(5, 0, 0)).Mul(xform.Scaling(xform.NewVec3(2, 2, 2)))

	transformed := box.TransformAABB(m)

	corners := []xform.Vec3{
		xform.NewVec3(-1, -1, -1), xform.NewVec3(1, -1, -1),
		xform.NewVec3(-1, 1, -1), xform.NewVec3(1, 1, -1),
		xform.NewVec3(-1, -1, 1), xform.NewVec3(1, -1, 1),
		xform.NewVec3(-1, 1, 1), xform.NewVec3(1, 1, 1),
	}
	transformedCorners := make([]xform.Vec3, len(corners))
	for i, c := range corners {
		transformedCorners[i] = m.TransformPoint(c)
	}
	want := geometry.FromPoints(transformedCorners)

	assert.InDelta(t, want.Min.X, transformed.Min.X, 1e-9)
	assert.InDelta(t, want.Max.X, transformed.Max.X, 1e-9)
}

func TestAABB_IntersectsRay(t *testing.T) {
	box := geometry.NewAABB(xform.NewVec3(-1, -1, -1), xform.NewVec3(1, 1, 1))
	r := ray.New(xform.NewVec3(-5, 0, 0), xform.NewVec3(1, 0, 0))
	hit, dist := box.IntersectsRay(r)
	assert.True(t, hit)
	assert.InDelta(t, 4.0, dist, 1e-9)
}

func TestSphere_OverlapsAABB(t *testing.T) {
	box := geometry.NewAABB(xform.NewVec3(0, 0, 0), xform.NewVec3(2, 2, 2))
	s := geometry.NewSphere(xform.NewVec3(3, 1, 1), 1.5)
	assert.True(t, s.Intersects(box))

	far := geometry.NewSphere(xform.NewVec3(10, 10, 10), 1)
	assert.False(t, far.Intersects(box))
}

func TestSphere_Transform(t *testing.T) {
	s := geometry.NewSphere(xform.NewVec3(0, 0, 0), 2)
	m := xform.Scaling(xform.NewVec3(3, 1, 1))
	got := s.Transform(m).(geometry.Sphere)
	assert.InDelta(t, 6.0, got.Radius, 1e-9)
}
