package osm2lcc

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoadDijkstraTraverse(t *testing.T) {
	// 1 - 2 - 3 - 4 chain plus 1 - 4 shortcut on a fast road, and detached 10 - 11
	nodes := mergePoints(pointsOnMeridian(1, 2, 3, 4), pointsOnMeridian(10, 11))
	network := NewRoadNetwork(nodes, []Way{
		mustWay(t, 100, "residential", 1, 2, 3, 4),
		mustWay(t, 101, "motorway", 1, 4),
		mustWay(t, 102, "residential", 10, 11),
	})
	// 333.687 m at 30.55 m/s
	shortcut, ok := network.Edge(1, 4)
	require.True(t, ok)
	require.Equal(t, uint64(10), shortcut.Cost)

	search := NewRoadDijkstra(network)
	reached := search.Traverse(1, NoTarget, nil, false)
	assert.Equal(t, map[int64]uint64{1: 0, 2: 13, 3: 23, 4: 10}, reached)
	assert.Equal(t, reached, search.(*RoadDijkstra).VisitedNodes())

	reached = search.Traverse(11, NoTarget, nil, false)
	assert.Equal(t, map[int64]uint64{10: 13, 11: 0}, reached, "state must be reset between calls")
}

func TestRoadDijkstraTarget(t *testing.T) {
	network := NewRoadNetwork(pointsOnMeridian(1, 2, 3, 4, 5, 6, 7), []Way{
		mustWay(t, 100, "residential", 1, 2, 3, 4, 5, 6, 7),
	})
	reached := NewRoadDijkstra(network).Traverse(1, 3, nil, false)
	assert.Equal(t, map[int64]uint64{1: 0, 2: 13, 3: 26}, reached)
}

func TestRoadDijkstraRegionAndFlags(t *testing.T) {
	network := NewRoadNetwork(pointsOnMeridian(1, 2, 3, 4, 5), []Way{
		mustWay(t, 100, "residential", 1, 2, 3, 4, 5),
	})
	// Latitudes of points 1..3 are 0.001..0.003
	region := orb.Bound{Min: orb.Point{-1, 0}, Max: orb.Point{1, 0.0035}}
	reached := NewRoadDijkstra(network).Traverse(1, NoTarget, &region, false)
	assert.Len(t, reached, 3)
	assert.NotContains(t, reached, int64(4))

	// Flags are never set by construction
	reached = NewRoadDijkstra(network).Traverse(1, NoTarget, nil, true)
	assert.Equal(t, map[int64]uint64{1: 0}, reached)

	reached = NewRoadDijkstra(network).Traverse(42, NoTarget, nil, false)
	assert.Empty(t, reached)
}

func TestRoadDijkstraPickUnvisited(t *testing.T) {
	network := NewRoadNetwork(pointsOnMeridian(1, 2, 3), []Way{
		mustWay(t, 100, "residential", 3, 2, 1),
	})
	search := NewRoadDijkstra(network)
	id, ok := search.PickUnvisited(map[int64]int{})
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)

	id, ok = search.PickUnvisited(map[int64]int{1: 1, 2: 1})
	assert.True(t, ok)
	assert.Equal(t, int64(3), id)

	_, ok = search.PickUnvisited(map[int64]int{1: 1, 2: 1, 3: 2})
	assert.False(t, ok)
}
