// Package bfs provides breadth-first search over a core.Network,
// returning hop distances, parent links, and visit order.
//
// Travel times are ignored: BFS answers "which stations can be reached and in
// how many hops", which the route search uses as a cheap pre-check before an
// exhaustive enumeration.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

// queueItem pairs an arena index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	net     *core.Network
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	target  int // arena index that ends the walk early, -1 for none
	found   bool
	res     *BFSResult
}

// BFS runs breadth-first search on net starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit hook error.
func BFS(net *core.Network, start core.Station, opts ...Option) (*BFSResult, error) {
	w, err := newWalker(net, start, -1, opts...)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// Reachable reports whether to can be reached from from.
// The walk stops as soon as to is dequeued.
// Errors are those of BFS; an absent to yields a wrapped core.ErrUnknownStation.
func Reachable(net *core.Network, from, to core.Station, opts ...Option) (bool, error) {
	if net == nil {
		return false, ErrGraphNil
	}
	target, ok := net.Index(to)
	if !ok {
		return false, fmt.Errorf("bfs: target %q: %w", to.Name, core.ErrUnknownStation)
	}
	w, err := newWalker(net, from, target, opts...)
	if err != nil {
		return false, err
	}
	if err = w.loop(); err != nil {
		return false, err
	}

	return w.found, nil
}

// newWalker validates inputs and seeds the queue with start.
func newWalker(net *core.Network, start core.Station, target int, opts ...Option) (*walker, error) {
	if net == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	from, ok := net.Index(start)
	if !ok {
		return nil, ErrStartVertexNotFound
	}

	n := net.Len()
	w := &walker{
		net:     net,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		target:  target,
		res: &BFSResult{
			Order:  make([]core.Station, 0, n),
			Depth:  make(map[core.Station]int, n),
			Parent: make(map[core.Station]core.Station, n),
		},
	}
	w.enqueue(from, 0, -1)

	return w, nil
}

// enqueue marks idx visited at depth d and records its parent.
func (w *walker) enqueue(idx, d, parent int) {
	w.visited[idx] = true
	s := w.net.StationAt(idx)
	w.res.Depth[s] = d
	if parent >= 0 {
		w.res.Parent[s] = w.net.StationAt(parent)
	}
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, target found, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if item.idx == w.target {
			w.found = true
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the station in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	s := w.net.StationAt(item.idx)
	w.res.Order = append(w.res.Order, s)
	if err := w.opts.OnVisit(s, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", s.Name, err)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbour within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.net.NeighborsOf(item.idx) {
		if !w.visited[nb.Index] {
			w.enqueue(nb.Index, next, item.idx)
		}
	}
}
