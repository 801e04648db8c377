// Package dfs implements exhaustive depth-first enumeration of simple paths
// between two stations of a core.Network.
//
// Key features:
//   - Enumerate(net, start, end, collector, opts...): every simple start→end path
//     that is not pruned is offered to the collector, in discovery order
//   - Discovery order follows adjacency insertion order (file order)
//   - A branch stops as soon as it reaches end; paths are never extended past it
//   - Weight-based pruning through Collector.Dominated, optionally sharpened
//     by a lower bound on the time left (WithLowerBound)
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   exponential in the worst case (all simple paths), bounded in practice by pruning.
//   - Memory: O(V) for the recursion stack, the on-path flags and the current path.
//
// Errors:
//
//   - ErrNilNetwork, ErrNilCollector  for nil inputs.
//   - ErrBadLowerBound                if the lower bound does not fit the network.
//   - core.ErrUnknownStation          if start or end is not in the network.
//   - context.Canceled                if ctx is done.
package dfs

import (
	"fmt"
	"math"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/pathfinder/core"
)

// pathWalker encapsulates state during one enumeration.
type pathWalker struct {
	net  *core.Network
	opts DFSOptions
	coll Collector
	end  int

	onPath   []bool         // arena index → currently on the path
	path     []int          // current path as arena indices
	buf      []core.Station // reused buffer for materialised paths
	explored *sparsesets.Set
	stats    *Stats
}

// Enumerate walks every simple path from start to end, offering complete paths
// to c and consulting c.Dominated before each expansion when pruning is enabled.
// Returns diagnostics, or an error if inputs are invalid or the context is cancelled.
func Enumerate(net *core.Network, start, end core.Station, c Collector, opts ...Option) (*Stats, error) {
	// 1. Validate inputs
	if net == nil {
		return nil, ErrNilNetwork
	}
	if c == nil {
		return nil, ErrNilCollector
	}
	from, ok := net.Index(start)
	if !ok {
		return nil, fmt.Errorf("dfs: start %q: %w", start.Name, core.ErrUnknownStation)
	}
	to, ok := net.Index(end)
	if !ok {
		return nil, fmt.Errorf("dfs: end %q: %w", end.Name, core.ErrUnknownStation)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.LowerBound != nil && len(dopts.LowerBound) != net.Len() {
		return nil, fmt.Errorf("%w: %d entries for %d stations", ErrBadLowerBound, len(dopts.LowerBound), net.Len())
	}

	// 3. Prepare walker state
	n := net.Len()
	w := &pathWalker{
		net:      net,
		opts:     dopts,
		coll:     c,
		end:      to,
		onPath:   make([]bool, n),
		path:     make([]int, 0, n),
		buf:      make([]core.Station, 0, n),
		explored: sparsesets.New(n),
		stats:    &Stats{},
	}

	// 4. Seed with (0, [start]) and walk
	w.onPath[from] = true
	w.path = append(w.path, from)
	err := w.traverse(from, 0)
	w.stats.Explored = len(w.explored.Content())

	return w.stats, err
}

// traverse handles the node at the top of the current path.
func (w *pathWalker) traverse(cur int, weight int64) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Reached the destination: offer and stop this branch
	if cur == w.end {
		w.offer(weight)
		return nil
	}

	// 3. Prune branches that cannot improve the collected set
	if w.opts.Pruning && w.dominated(cur, weight) {
		w.stats.Pruned++
		return nil
	}

	w.stats.Expanded++
	if !w.explored.Contains(cur) {
		w.explored.Insert(cur)
	}

	// 4. Expand neighbours not already on the path
	for _, nb := range w.net.NeighborsOf(cur) {
		if w.onPath[nb.Index] {
			continue
		}
		w.onPath[nb.Index] = true
		w.path = append(w.path, nb.Index)

		err := w.traverse(nb.Index, weight+nb.Time.Minutes)

		w.path = w.path[:len(w.path)-1]
		w.onPath[nb.Index] = false
		if err != nil {
			return err
		}
	}

	return nil
}

// dominated reports whether no completion of the current path can enter the
// collected set.
func (w *pathWalker) dominated(cur int, weight int64) bool {
	h := w.opts.LowerBound
	if h == nil {
		return w.coll.Dominated(weight)
	}
	if h[cur] == math.MaxInt64 {
		return true
	}

	return w.coll.Dominated(weight + h[cur])
}

// offer materialises the current path into the shared buffer and hands it over.
func (w *pathWalker) offer(weight int64) {
	w.buf = w.buf[:0]
	for _, i := range w.path {
		w.buf = append(w.buf, w.net.StationAt(i))
	}
	p := core.Path{Stations: w.buf, Weight: weight}

	w.coll.Offer(p)
	w.stats.Offered++
	if w.opts.OnOffer != nil {
		w.opts.OnOffer(p)
	}
}
