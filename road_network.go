package osm2lcc

import (
	"sort"
)

// RoadNetwork Bidirectional weighted graph built from points and ways.
//
// RoadNetwork is never mutated after construction: reductions produce a new network.
type RoadNetwork struct {
	// Points having at least one incident edge
	nodes map[int64]Point
	// map[tailID]map[headID]Edge
	edges map[int64]map[int64]Edge
	// Every way passed to constructor, including those which produced no segments
	rawWays []Way
	// Keys of nodes at construction time (ascending)
	rawNodeIDs []int64
}

// NewRoadNetwork Builds network from points and ways.
//
// Each pair of consecutive references of a way becomes an edge in both directions.
// Segments referencing absent points are skipped. When several ways produce the same
// (tail, head) pair the latest computed cost wins. Points without edges are not included in result.
// Neither argument is modified.
func NewRoadNetwork(nodes map[int64]Point, ways []Way) *RoadNetwork {
	edges := make(map[int64]map[int64]Edge)
	for _, way := range ways {
		if way.Speed == 0 {
			continue
		}
		// Head of previous segment is likely to be tail of the current one
		var previousHead Point
		previousHeadIdx := -1
		for i := 0; i+1 < len(way.Refs); i++ {
			tailID := way.Refs[i]
			var tail Point
			var tailFound bool
			if previousHeadIdx == i {
				tail, tailFound = previousHead, true
			} else {
				tail, tailFound = nodes[tailID]
			}
			headID := way.Refs[i+1]
			head, headFound := nodes[headID]
			if !tailFound || !headFound {
				continue
			}
			cost := segmentCost(tail, head, way.Speed)
			edge := Edge{Cost: cost, Flag: false}
			addHalfEdge(edges, tailID, headID, edge)
			addHalfEdge(edges, headID, tailID, edge)
			previousHead = head
			previousHeadIdx = i + 1
		}
	}

	connected := make(map[int64]Point, len(edges))
	for id, node := range nodes {
		if _, ok := edges[id]; ok {
			connected[id] = node
		}
	}

	rawNodeIDs := make([]int64, 0, len(connected))
	for id := range connected {
		rawNodeIDs = append(rawNodeIDs, id)
	}
	sort.Slice(rawNodeIDs, func(i, j int) bool {
		return rawNodeIDs[i] < rawNodeIDs[j]
	})

	return &RoadNetwork{
		nodes:      connected,
		edges:      edges,
		rawWays:    ways,
		rawNodeIDs: rawNodeIDs,
	}
}

func addHalfEdge(edges map[int64]map[int64]Edge, tailID, headID int64, edge Edge) {
	if _, ok := edges[tailID]; !ok {
		edges[tailID] = make(map[int64]Edge)
	}
	edges[tailID][headID] = edge
}

// Node returns point by its identifier
func (network *RoadNetwork) Node(id int64) (Point, bool) {
	node, ok := network.nodes[id]
	return node, ok
}

// Neighbours returns outgoing edges of the given node: map[headID]Edge.
//
// Returned map is shared with network and must not be modified.
func (network *RoadNetwork) Neighbours(id int64) map[int64]Edge {
	return network.edges[id]
}

// Edge returns edge tail -> head
func (network *RoadNetwork) Edge(tailID, headID int64) (Edge, bool) {
	edge, ok := network.edges[tailID][headID]
	return edge, ok
}

// NodesNum returns number of nodes
func (network *RoadNetwork) NodesNum() int {
	return len(network.nodes)
}

// EdgesNum returns number of directed edges (each road segment is counted twice)
func (network *RoadNetwork) EdgesNum() int {
	n := 0
	for _, heads := range network.edges {
		n += len(heads)
	}
	return n
}

// RawNodeIDs returns node identifiers in ascending order
func (network *RoadNetwork) RawNodeIDs() []int64 {
	return network.rawNodeIDs
}

// RawWays returns ways network has been built from
func (network *RoadNetwork) RawWays() []Way {
	return network.rawWays
}

// ForEachEdge calls fn for every directed edge. Tails and heads are visited in ascending order.
func (network *RoadNetwork) ForEachEdge(fn func(tailID, headID int64, edge Edge)) {
	for _, tailID := range network.rawNodeIDs {
		heads := network.edges[tailID]
		headIDs := make([]int64, 0, len(heads))
		for headID := range heads {
			headIDs = append(headIDs, headID)
		}
		sort.Slice(headIDs, func(i, j int) bool {
			return headIDs[i] < headIDs[j]
		})
		for _, headID := range headIDs {
			fn(tailID, headID, heads[headID])
		}
	}
}
