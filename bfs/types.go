// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Network.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start station is absent.
	ErrStartVertexNotFound = errors.New("bfs: start station not found")

	// ErrGraphNil is returned if a nil network pointer is passed.
	ErrGraphNil = errors.New("bfs: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a station. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(s core.Station, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth (in hops).
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		OnVisit:  func(core.Station, int) error { return nil },
		MaxDepth: 0,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(s core.Station, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: stations visited, in visit sequence.
//   - Depth: hops from the start to each reached station.
//   - Parent: predecessor of each reached station in the BFS tree.
type BFSResult struct {
	Order  []core.Station
	Depth  map[core.Station]int
	Parent map[core.Station]core.Station
}

// Reached reports whether s was visited.
func (r *BFSResult) Reached(s core.Station) bool {
	_, ok := r.Depth[s]

	return ok
}

// PathTo reconstructs the fewest-hop path from the start station to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest core.Station) ([]core.Station, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %q", dest.Name)
	}
	path := []core.Station{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
