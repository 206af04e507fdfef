package xform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bvh3/xform"
)

func TestMat4_IdentityTransformPoint(t *testing.T) {
	p := xform.NewVec3(1, 2, 3)
	got := xform.Identity().TransformPoint(p)
	assert.Equal(t, p, got)
}

func TestMat4_TranslationTransformPoint(t *testing.T) {
	m := xform.Translation(xform.NewVec3(10, 0, -5))
	got := m.TransformPoint(xform.NewVec3(1, 1, 1))
	assert.Equal(t, xform.NewVec3(11, 1, -4), got)
}

func TestMat4_TranslationTransformNormalIgnoresOffset(t *testing.T) {
	m := xform.Translation(xform.NewVec3(10, 0, -5))
	got := m.TransformNormal(xform.NewVec3(1, 0, 0))
	assert.Equal(t, xform.NewVec3(1, 0, 0), got)
}

func TestMat4_ScalingMaxRowScale(t *testing.T) {
	m := xform.Scaling(xform.NewVec3(2, 3, 4))
	assert.InDelta(t, 4.0, m.MaxRowScale(), 1e-9)
}

func TestMat4_InvertRoundTrip(t *testing.T) {
	m := xform.Translation(xform.NewVec3(3, -2, 7)).Mul(xform.Scaling(xform.NewVec3(2, 2, 2)))
	inv, err := m.Invert()
	assert.NoError(t, err)

	p := xform.NewVec3(5, 5, 5)
	roundTripped := inv.TransformPoint(m.TransformPoint(p))
	assert.InDelta(t, p.X, roundTripped.X, 1e-9)
	assert.InDelta(t, p.Y, roundTripped.Y, 1e-9)
	assert.InDelta(t, p.Z, roundTripped.Z, 1e-9)
}

func TestMat4_InvertSingular(t *testing.T) {
	var zero xform.Mat4
	_, err := zero.Invert()
	assert.ErrorIs(t, err, xform.ErrSingularMatrix)
}
