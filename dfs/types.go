// Package dfs defines types and options for simple-path enumeration,
// including cancellation, pruning control, offer hooks and diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/pathfinder/core"
)

var (
	// ErrNilNetwork is returned when a nil *core.Network is passed to Enumerate.
	ErrNilNetwork = errors.New("dfs: network is nil")

	// ErrNilCollector is returned when no Collector is supplied.
	ErrNilCollector = errors.New("dfs: collector is nil")

	// ErrBadLowerBound is returned when the lower-bound table does not cover
	// every station of the network.
	ErrBadLowerBound = errors.New("dfs: lower bound size does not match network")
)

// Collector receives complete paths and answers pruning queries for one enumeration.
// *topk.Selector satisfies it.
type Collector interface {
	// Offer is called with every complete start→end path, in discovery order.
	// The station slice is only valid during the call.
	Offer(p core.Path)

	// Dominated reports whether a partial path of the given accumulated weight
	// can be abandoned because no extension could improve the collected set.
	Dominated(weight int64) bool
}

// Option configures optional behavior of Enumerate.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for the enumeration.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	// Cancelling aborts the enumeration with ctx.Err().
	Ctx context.Context

	// Pruning enables Collector.Dominated checks before expanding a node.
	// Disabling it never changes the collected result, only the work done.
	Pruning bool

	// OnOffer, if non-nil, is invoked after each complete path is offered.
	OnOffer func(p core.Path)

	// LowerBound, if non-nil, holds for every arena index a lower bound on the
	// remaining time to the end station (math.MaxInt64 when it cannot be
	// reached). Pruning then asks the collector about weight+LowerBound[cur].
	LowerBound []int64
}

// DefaultOptions returns DFSOptions with:
//   - Background context
//   - Pruning enabled
//   - No offer hook
//   - No lower bound
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:        context.Background(),
		Pruning:    true,
		OnOffer:    nil,
		LowerBound: nil,
	}
}

// WithContext sets the Context used for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPruning toggles weight-based pruning.
func WithPruning(enabled bool) Option {
	return func(o *DFSOptions) {
		o.Pruning = enabled
	}
}

// WithOnOffer installs fn as a hook called after every offered path.
func WithOnOffer(fn func(p core.Path)) Option {
	return func(o *DFSOptions) {
		o.OnOffer = fn
	}
}

// WithLowerBound installs a per-station lower bound on the time left to the
// end station, such as shortest distances to it. It only takes effect with
// pruning enabled.
func WithLowerBound(h []int64) Option {
	return func(o *DFSOptions) {
		o.LowerBound = h
	}
}

// Stats reports how much of the search space one enumeration touched.
type Stats struct {
	// Offered counts complete paths handed to the Collector.
	Offered int

	// Pruned counts partial paths abandoned because they were dominated.
	Pruned int

	// Expanded counts non-terminal nodes whose neighbours were explored.
	Expanded int

	// Explored counts distinct stations that were expanded at least once.
	Explored int
}
