package osm2lcc

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CreateNetwork Reads OSM file and builds road network. When reduce is true network is
// reduced to its largest connected component.
func (parser *Parser) CreateNetwork(reduce bool) (*RoadNetwork, error) {
	nodes, ways, err := parser.ReadOSM()
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse OSM data")
	}
	network := NewRoadNetwork(nodes, ways)
	parser.logger.Info("Road network has been built",
		zap.Int("nodes", network.NodesNum()),
		zap.Int("edges", network.EdgesNum()),
	)
	if !reduce {
		return network, nil
	}
	if network.NodesNum() == 0 {
		return nil, errors.Wrap(ErrEmptyNetwork, "Can't reduce road network")
	}
	return network.ReduceToLargestConnectedComponent(NewRoadDijkstra, parser.logger), nil
}
