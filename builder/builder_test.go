package builder_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bvh3/builder"
	"github.com/katalvlaran/bvh3/geometry"
	"github.com/katalvlaran/bvh3/ray"
	"github.com/katalvlaran/bvh3/xform"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float64) geometry.AABB {
	return geometry.NewAABB(xform.NewVec3(minX, minY, minZ), xform.NewVec3(maxX, maxY, maxZ))
}

func gridItems() []builder.Item {
	var items []builder.Item
	for x := -2; x <= 2; x++ {
		for z := -2; z <= 2; z++ {
			fx, fz := float64(x), float64(z)
			items = append(items, builder.Item{
				Bounds:  box(fx-0.4, -0.5, fz-0.4, fx+0.4, 0.5, fz+0.4),
				Payload: [2]int{x, z},
			})
		}
	}

	return items
}

func TestBuild_EmptyItems(t *testing.T) {
	tr, err := builder.Build(nil, builder.SAH)
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Len())
	assert.True(t, tr.Validate())
}

func TestBuild_InvalidStrategy(t *testing.T) {
	_, err := builder.Build(gridItems(), builder.Strategy(99))
	assert.Error(t, err)
}

func TestBuild_AllStrategiesProduceValidTrees(t *testing.T) {
	items := gridItems()
	for _, strategy := range []builder.Strategy{builder.SAH, builder.Median, builder.Equal} {
		tr, err := builder.Build(items, strategy)
		require.NoError(t, err)
		assert.True(t, tr.Validate(), "strategy %s produced an invalid tree", strategy)
		assert.Equal(t, len(items), tr.Len())
	}
}

func TestBuild_StrategyComparisonRaycastAgreement(t *testing.T) {
	items := gridItems()

	r := ray.New(xform.NewVec3(0, 10, 0), xform.NewVec3(0, -1, 0))

	var payloadSets [][]any
	for _, strategy := range []builder.Strategy{builder.SAH, builder.Median, builder.Equal} {
		tr, err := builder.Build(items, strategy)
		require.NoError(t, err)

		results := tr.Raycast(r, 100)
		payloads := make([]any, len(results))
		for i, res := range results {
			payloads[i] = res.Payload
		}
		sort.Slice(payloads, func(i, j int) bool {
			a := payloads[i].([2]int)
			b := payloads[j].([2]int)
			if a[0] != b[0] {
				return a[0] < b[0]
			}

			return a[1] < b[1]
		})
		payloadSets = append(payloadSets, payloads)
	}

	for i := 1; i < len(payloadSets); i++ {
		assert.Equal(t, payloadSets[0], payloadSets[i])
	}
}

func TestBuild_SingleItem(t *testing.T) {
	items := []builder.Item{{Bounds: box(0, 0, 0, 1, 1, 1), Payload: "solo"}}
	tr, err := builder.Build(items, builder.Median)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len())
	assert.True(t, tr.Validate())
}
