// Package dijkstra implements Dijkstra's shortest-path algorithm on a core.Network.
//
// Dijkstra computes the minimum travel time from a single source station to
// every other station. Connection times are non-negative by construction, so
// no upfront weight scan is needed. Stations are settled in order of
// increasing distance using a min-heap with lazy decrease-key.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold one entry per relaxation.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

// Dijkstra computes shortest travel times from source to all stations of net.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (ErrNilNetwork).
//  2. source must be registered (core.ErrUnknownStation, wrapped).
//
// Returns ctx.Err() if the context is cancelled mid-run.
func Dijkstra(net *core.Network, source core.Station, opts ...Option) (*Result, error) {
	// 1) Validate inputs
	if net == nil {
		return nil, ErrNilNetwork
	}
	from, ok := net.Index(source)
	if !ok {
		return nil, fmt.Errorf("dijkstra: source %q: %w", source.Name, core.ErrUnknownStation)
	}

	// 2) Apply options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Prepare state: every distance starts Unreachable.
	n := net.Len()
	r := &runner{
		net:     net,
		options: cfg,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = Unreachable
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
		for i := range r.prev {
			r.prev[i] = -1
		}
	}

	// 4) Seed with the source and run the main loop.
	r.dist[from] = 0
	heap.Push(&r.pq, &nodeItem{idx: from, dist: 0})
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{net: net, source: from, Dist: r.dist, prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	net     *core.Network
	options Options
	dist    []int64 // arena index → best known distance
	prev    []int   // arena index → predecessor, nil unless ReturnPath
	visited []bool  // arena index → distance is final
	pq      nodePQ
}

// process settles stations in increasing distance until the heap is empty
// or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.idx] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.idx] = true
		r.relax(item.idx)
	}

	return nil
}

// relax tries to improve the distance of every neighbour of u.
// Duplicate connections are harmless: only the cheapest one can win.
func (r *runner) relax(u int) {
	for _, nb := range r.net.NeighborsOf(u) {
		w := nb.Time.Minutes
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[nb.Index] {
			continue
		}

		r.dist[nb.Index] = newDist
		if r.prev != nil {
			r.prev[nb.Index] = u
		}
		heap.Push(&r.pq, &nodeItem{idx: nb.Index, dist: newDist})
	}
}

// nodeItem is a station and its tentative distance from the source.
type nodeItem struct {
	idx  int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
