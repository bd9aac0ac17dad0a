package osm2lcc

import (
	"container/heap"

	"github.com/paulmach/orb"
)

// NoTarget Means that traversal should explore every reachable node
const NoTarget = int64(-1)

// Traversal Single-source search over road network.
type Traversal interface {
	// PickUnvisited returns some node of the network which is not a key of visited.
	// Second value is false when every node has been visited already.
	PickUnvisited(visited map[int64]int) (int64, bool)
	// Traverse explores network from source and returns settled nodes with their costs (source included).
	// Exploration stops once target is settled; NoTarget means full exploration.
	// Non-nil region restricts exploration to nodes inside it.
	// When respectFlags is true only flagged edges are relaxed.
	Traverse(source, target int64, region *orb.Bound, respectFlags bool) map[int64]uint64
}

// TraversalFactory Creates fresh traversal state for the given network
type TraversalFactory func(network *RoadNetwork) Traversal

// RoadDijkstra Dijkstra's algorithm over RoadNetwork with lazy decrease-key
type RoadDijkstra struct {
	network *RoadNetwork
	visited map[int64]uint64
	dist    map[int64]uint64
	pq      costPQ
}

// NewRoadDijkstra Creates fresh search state. It is TraversalFactory.
func NewRoadDijkstra(network *RoadNetwork) Traversal {
	return &RoadDijkstra{
		network: network,
		visited: make(map[int64]uint64),
		dist:    make(map[int64]uint64),
		pq:      make(costPQ, 0),
	}
}

// PickUnvisited returns smallest node identifier absent in visited
func (search *RoadDijkstra) PickUnvisited(visited map[int64]int) (int64, bool) {
	for _, id := range search.network.RawNodeIDs() {
		if _, ok := visited[id]; !ok {
			return id, true
		}
	}
	return 0, false
}

// Traverse implements Traversal. Search state is reset on each call.
func (search *RoadDijkstra) Traverse(source, target int64, region *orb.Bound, respectFlags bool) map[int64]uint64 {
	search.visited = make(map[int64]uint64)
	search.dist = make(map[int64]uint64)
	search.pq = search.pq[:0]

	if _, ok := search.network.Node(source); !ok {
		return search.visited
	}
	search.dist[source] = 0
	heap.Push(&search.pq, &costItem{id: source, cost: 0})
	for search.pq.Len() > 0 {
		item := heap.Pop(&search.pq).(*costItem)
		if _, settled := search.visited[item.id]; settled {
			// Stale entry
			continue
		}
		search.visited[item.id] = item.cost
		if item.id == target {
			break
		}
		for headID, edge := range search.network.Neighbours(item.id) {
			if respectFlags && !edge.Flag {
				continue
			}
			if _, settled := search.visited[headID]; settled {
				continue
			}
			if region != nil {
				head, _ := search.network.Node(headID)
				if !region.Contains(head.Orb()) {
					continue
				}
			}
			newCost := item.cost + edge.Cost
			if current, ok := search.dist[headID]; ok && current <= newCost {
				continue
			}
			search.dist[headID] = newCost
			heap.Push(&search.pq, &costItem{id: headID, cost: newCost})
		}
	}
	return search.visited
}

// VisitedNodes returns nodes settled by the latest Traverse call
func (search *RoadDijkstra) VisitedNodes() map[int64]uint64 {
	return search.visited
}

type costItem struct {
	id   int64
	cost uint64
}

// costPQ min-heap of costItem
type costPQ []*costItem

func (pq costPQ) Len() int { return len(pq) }

func (pq costPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].id < pq[j].id
}

func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *costPQ) Push(x interface{}) {
	*pq = append(*pq, x.(*costItem))
}

func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
