package bvhtree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bvh3/bvhtree"
	"github.com/katalvlaran/bvh3/geometry"
	"github.com/katalvlaran/bvh3/ray"
	"github.com/katalvlaran/bvh3/xform"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float64) geometry.AABB {
	return geometry.NewAABB(xform.NewVec3(minX, minY, minZ), xform.NewVec3(maxX, maxY, maxZ))
}

func TestTree_ThreeBoxesThreeRays(t *testing.T) {
	tr := bvhtree.NewTree()
	idA := tr.Insert(box(-2, -2, -2, 0, 0, 0), "A")
	idB := tr.Insert(box(1, 1, 1, 3, 3, 3), "B")
	idC := tr.Insert(box(-1, -1, 5, 1, 1, 7), "C")
	require.NotEqual(t, idA, idB)
	require.NotEqual(t, idB, idC)

	r1 := ray.New(xform.NewVec3(-5, 0, 0), xform.NewVec3(1, 0, 0))
	res1 := tr.Raycast(r1, math.Inf(1))
	require.Len(t, res1, 1)
	assert.Equal(t, "A", res1[0].Payload)
	assert.InDelta(t, 3, res1[0].Distance, 1e-6)

	r2 := ray.New(xform.NewVec3(0, 0, 0), xform.NewVec3(1, 1, 1))
	res2 := tr.Raycast(r2, math.Inf(1))
	require.NotEmpty(t, res2)
	assert.Equal(t, "B", res2[0].Payload)

	r3 := ray.New(xform.NewVec3(0, 0, 4), xform.NewVec3(0, 0, 1))
	res3 := tr.Raycast(r3, math.Inf(1))
	require.Len(t, res3, 1)
	assert.Equal(t, "C", res3[0].Payload)
	assert.InDelta(t, 1, res3[0].Distance, 1e-6)
}

func TestTree_GridRange(t *testing.T) {
	tr := bvhtree.NewTree()
	coords := []float64{-2, -1, 0, 1, 2}
	for _, x := range coords {
		for _, z := range coords {
			tr.Insert(box(x-0.4, -0.5, z-0.4, x+0.4, 0.5, z+0.4), [2]float64{x, z})
		}
	}
	assert.Equal(t, 25, tr.Len())

	results := tr.QueryRange(xform.NewVec3(0, 0, 0), 2.0)
	assert.Len(t, results, 13)
	for _, p := range results {
		cell := p.([2]float64)
		assert.LessOrEqual(t, math.Abs(cell[0])+math.Abs(cell[1]), 2.0)
	}

	nearest := tr.FindNearest(xform.NewVec3(1.2, 0, 1.2), math.Inf(1))
	require.NotNil(t, nearest)
	assert.Equal(t, [2]float64{1, 1}, nearest)
}

func TestTree_UpdateFastPathVsReinsert(t *testing.T) {
	tr := bvhtree.NewTree()
	id := tr.Insert(box(0, 0, 0, 1, 1, 1), "B0")

	ok := tr.Update(id, box(0.1, 0.1, 0.1, 0.9, 0.9, 0.9))
	require.True(t, ok)
	assert.True(t, tr.Validate())
	assert.Equal(t, 1, tr.Len())

	ok = tr.Update(id, box(10, 10, 10, 11, 11, 11))
	require.True(t, ok)
	assert.True(t, tr.Validate())
	assert.Equal(t, 1, tr.Len())

	results := tr.IntersectBounds(box(9, 9, 9, 12, 12, 12))
	require.Len(t, results, 1)
	assert.Equal(t, "B0", results[0])
}

func TestTree_RemoveUntilEmpty(t *testing.T) {
	tr := bvhtree.NewTree()
	ids := make([]uint64, 0, 20)
	for i := 0; i < 20; i++ {
		f := float64(i)
		ids = append(ids, tr.Insert(box(f, f, f, f+1, f+1, f+1), i))
	}
	assert.Equal(t, 20, tr.Len())

	for _, id := range ids {
		ok := tr.Remove(id)
		require.True(t, ok)
	}
	assert.Equal(t, 0, tr.Len())
	assert.True(t, tr.Bounds().IsEmpty())
}

func TestTree_RemoveUnknownID(t *testing.T) {
	tr := bvhtree.NewTree()
	id := tr.Insert(box(0, 0, 0, 1, 1, 1), "x")
	ok := tr.Remove(id + 999)
	assert.False(t, ok)
	assert.Equal(t, 1, tr.Len())
}

func TestTree_InsertionClosureAndValidate(t *testing.T) {
	tr := bvhtree.NewTree()
	for i := 0; i < 50; i++ {
		f := float64(i % 7)
		tr.Insert(box(f, f, f, f+1, f+1, f+1), i)
	}
	assert.True(t, tr.Validate())

	root := tr.Bounds()
	for i := 0; i < 7; i++ {
		f := float64(i)
		assert.True(t, root.ContainsPoint(xform.NewVec3(f+0.5, f+0.5, f+0.5)))
	}
}

func TestTree_RebuildIdempotent(t *testing.T) {
	tr := bvhtree.NewTree()
	for i := 0; i < 30; i++ {
		f := float64(i)
		tr.Insert(box(f, 0, 0, f+1, 1, 1), i)
	}
	tr.Rebuild()
	s1 := tr.GetStats()
	tr.Rebuild()
	s2 := tr.GetStats()
	assert.Equal(t, s1.NodeCount, s2.NodeCount)
	assert.Equal(t, s1.LeafCount, s2.LeafCount)
	assert.Equal(t, s1.MaxDepth, s2.MaxDepth)
}

func TestTree_EmptyTreeQueries(t *testing.T) {
	tr := bvhtree.NewTree()
	assert.Nil(t, tr.Raycast(ray.New(xform.NewVec3(0, 0, 0), xform.NewVec3(1, 0, 0)), math.Inf(1)))
	assert.Nil(t, tr.QueryRange(xform.NewVec3(0, 0, 0), 10))
	assert.Nil(t, tr.FindNearest(xform.NewVec3(0, 0, 0), math.Inf(1)))
	assert.Nil(t, tr.IntersectBounds(box(0, 0, 0, 1, 1, 1)))
	assert.True(t, tr.Validate())
	assert.False(t, tr.Optimize())
}

func TestTree_CloneIsIndependent(t *testing.T) {
	tr := bvhtree.NewTree()
	id := tr.Insert(box(0, 0, 0, 1, 1, 1), "a")

	cp := tr.Clone()
	cp.Insert(box(5, 5, 5, 6, 6, 6), "b")

	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, 2, cp.Len())

	ok := tr.Remove(id)
	require.True(t, ok)
	assert.Equal(t, 2, cp.Len())
}
