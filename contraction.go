package osm2lcc

import (
	"time"

	"github.com/LdDl/ch"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ToContractionHierarchies Converts network into ch.Graph. Costs (seconds) become edge weights.
//
// Degenerate edges (tail == head) are skipped. When contract is true contraction hierarchies
// are prepared, so graph is ready for ShortestPath queries.
func (network *RoadNetwork) ToContractionHierarchies(contract bool, logger *zap.Logger) (*ch.Graph, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if network.NodesNum() == 0 {
		return nil, errors.Wrap(ErrEmptyNetwork, "Can't prepare contraction hierarchies")
	}
	graph := ch.Graph{}
	for _, id := range network.rawNodeIDs {
		err := graph.CreateVertex(id)
		if err != nil {
			return nil, errors.Wrapf(err, "Can not create vertex %d", id)
		}
	}
	loops := 0
	var err error
	network.ForEachEdge(func(tailID, headID int64, edge Edge) {
		if err != nil {
			return
		}
		if tailID == headID {
			loops++
			return
		}
		err = graph.AddEdge(tailID, headID, float64(edge.Cost))
		if err != nil {
			err = errors.Wrapf(err, "Can not wrap vertices %d and %d as edge", tailID, headID)
		}
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Contraction hierarchies graph has been prepared",
		zap.Int("vertices", len(graph.Vertices)),
		zap.Int("skipped_loops", loops),
	)
	if contract {
		st := time.Now()
		graph.PrepareContractionHierarchies()
		logger.Info("Done contraction process", zap.Duration("elapsed", time.Since(st)))
	}
	return &graph, nil
}
