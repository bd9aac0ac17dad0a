package osm2lcc

import (
	"time"

	"go.uber.org/zap"
)

// ReduceToLargestConnectedComponent Returns new network containing only the largest connected component.
//
// Components are discovered by full traversals from unvisited nodes. Each traversal uses fresh state
// created by newTraversal (RoadDijkstra when nil). Discovery stops as soon as more than half of nodes
// have been assigned to some component. Note: if that threshold is passed by several small components,
// a larger component which has not been discovered yet is lost.
//
// Ties between components of equal size are resolved in favor of the one discovered first.
// Edges of result are rebuilt from raw ways and the component's points.
func (network *RoadNetwork) ReduceToLargestConnectedComponent(newTraversal TraversalFactory, logger *zap.Logger) *RoadNetwork {
	if newTraversal == nil {
		newTraversal = NewRoadDijkstra
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	st := time.Now()

	counter := 0
	visited := make(map[int64]int)
	for {
		traversal := newTraversal(network)
		sourceID, ok := traversal.PickUnvisited(visited)
		if !ok {
			break
		}
		counter++
		reached := traversal.Traverse(sourceID, NoTarget, nil, false)
		for id := range reached {
			visited[id] = counter
		}
		logger.Debug("Component discovered",
			zap.Int("iteration", counter),
			zap.Int64("source", sourceID),
			zap.Int("reached", len(reached)),
			zap.Int("visited", len(visited)),
		)
		if len(visited) > network.NodesNum()/2 {
			break
		}
	}

	sizes := make([]int, counter+1)
	for _, iteration := range visited {
		sizes[iteration]++
	}
	largest := 0
	largestSize := 0
	for iteration := 1; iteration <= counter; iteration++ {
		if sizes[iteration] > largestSize {
			largest = iteration
			largestSize = sizes[iteration]
		}
	}

	componentNodes := make(map[int64]Point, largestSize)
	for id, iteration := range visited {
		if iteration != largest {
			continue
		}
		if node, ok := network.nodes[id]; ok {
			componentNodes[id] = node
		}
	}
	reduced := NewRoadNetwork(componentNodes, network.rawWays)

	logger.Info("Reduced to largest connected component",
		zap.Int("iterations", counter),
		zap.Int("nodes_before", network.NodesNum()),
		zap.Int("nodes_after", reduced.NodesNum()),
		zap.Int("edges_after", reduced.EdgesNum()),
		zap.Duration("elapsed", time.Since(st)),
	)
	return reduced
}
