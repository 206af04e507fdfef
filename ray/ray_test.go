package ray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bvh3/ray"
	"github.com/katalvlaran/bvh3/xform"
)

func TestIntersectBox_Hit(t *testing.T) {
	r := ray.New(xform.NewVec3(-5, 0, 0), xform.NewVec3(1, 0, 0))
	got, hit := r.IntersectBox(xform.NewVec3(-1, -1, -1), xform.NewVec3(1, 1, 1))
	assert.True(t, hit)
	assert.InDelta(t, 4.0, got, 1e-9)
}

func TestIntersectBox_Miss(t *testing.T) {
	r := ray.New(xform.NewVec3(-5, 5, 0), xform.NewVec3(1, 0, 0))
	_, hit := r.IntersectBox(xform.NewVec3(-1, -1, -1), xform.NewVec3(1, 1, 1))
	assert.False(t, hit)
}

func TestIntersectBoxPoints_OriginInsideBox(t *testing.T) {
	r := ray.New(xform.NewVec3(0, 0, 0), xform.NewVec3(1, 0, 0))
	entry, exit, hit := r.IntersectBoxPoints(xform.NewVec3(-1, -1, -1), xform.NewVec3(1, 1, 1))
	assert.True(t, hit)
	assert.Equal(t, 0.0, entry)
	assert.InDelta(t, 1.0, exit, 1e-9)
}

func TestIntersectBoxPoints_ParallelOutsideSlab(t *testing.T) {
	r := ray.New(xform.NewVec3(5, 5, 0), xform.NewVec3(0, 0, 1))
	_, _, hit := r.IntersectBoxPoints(xform.NewVec3(-1, -1, -1), xform.NewVec3(1, 1, 1))
	assert.False(t, hit)
}

func TestIntersectSphere_Hit(t *testing.T) {
	r := ray.New(xform.NewVec3(-5, 0, 0), xform.NewVec3(1, 0, 0))
	got, hit := r.IntersectSphere(xform.NewVec3(0, 0, 0), 1.0)
	assert.True(t, hit)
	assert.InDelta(t, 4.0, got, 1e-9)
}

func TestIntersectCapsule_DegenerateFallsBackToSphere(t *testing.T) {
	r := ray.New(xform.NewVec3(-5, 0, 0), xform.NewVec3(1, 0, 0))
	same := xform.NewVec3(0, 0, 0)
	got, hit := r.IntersectCapsule(same, same, 1.0)
	assert.True(t, hit)
	assert.InDelta(t, 4.0, got, 1e-9)
}

func TestIntersectCapsule_AxisParallelRayHitsEndCap(t *testing.T) {
	r := ray.New(xform.NewVec3(0, -5, 0.5), xform.NewVec3(0, 1, 0))
	got, hit := r.IntersectCapsule(xform.NewVec3(0, -1, 0), xform.NewVec3(0, 1, 0), 1.0)
	assert.True(t, hit)
	assert.Greater(t, got, 0.0)
}

func TestGetClosestPoint(t *testing.T) {
	r := ray.New(xform.NewVec3(0, 0, 0), xform.NewVec3(1, 0, 0))
	p := r.GetClosestPoint(xform.NewVec3(5, 3, 0))
	assert.Equal(t, xform.NewVec3(5, 0, 0), p)
	assert.InDelta(t, 3.0, r.DistanceToPoint(xform.NewVec3(5, 3, 0)), 1e-9)
}

func TestTransform(t *testing.T) {
	r := ray.New(xform.NewVec3(0, 0, 0), xform.NewVec3(1, 0, 0))
	m := xform.Translation(xform.NewVec3(10, 0, 0))
	moved := r.Transform(m)
	assert.Equal(t, xform.NewVec3(10, 0, 0), moved.Origin)
	assert.Equal(t, xform.NewVec3(1, 0, 0), moved.Direction)
}
