// Package dijkstra defines core types and configuration options
// for single-source shortest travel times over a core.Network.
//
// Options:
//
//	– ReturnPath:       keep predecessors so Result.PathTo can rebuild routes.
//	– MaxDistance:      cap on distances to explore; stations beyond it stay Unreachable.
//	– InfEdgeThreshold: connections with time >= this threshold are impassable.
//	– Ctx:              cancellation, checked once per settled station.
//
// Errors (sentinel):
//
//	– ErrNilNetwork      if the provided network pointer is nil.
//	– ErrNoPath          if PathTo is asked for an unreachable station.
//	– ErrNoPredecessors  if PathTo is used without WithReturnPath.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathfinder/core"
)

// Unreachable is the distance reported for stations the source cannot reach.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilNetwork indicates that a nil *core.Network was passed to Dijkstra.
	ErrNilNetwork = errors.New("dijkstra: network is nil")

	// ErrNoPath indicates that the requested station cannot be reached from the source.
	ErrNoPath = errors.New("dijkstra: station is unreachable")

	// ErrNoPredecessors indicates that PathTo was called on a result computed
	// without WithReturnPath.
	ErrNoPredecessors = errors.New("dijkstra: predecessors were not recorded")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would make every connection impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of Dijkstra.
type Options struct {
	Ctx              context.Context // cancellation; defaults to Background
	ReturnPath       bool            // record predecessors for PathTo
	MaxDistance      int64           // maximum distance to explore
	InfEdgeThreshold int64           // time at or above which a connection is skipped
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets the Context used for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath enables predecessor tracking so routes can be rebuilt.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Stations whose shortest distance would exceed max are left Unreachable.
// Panics on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats connections with time >= threshold as impassable.
// Panics on a non-positive value.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with:
//   - Background context
//   - no predecessors
//   - no distance cap
//   - no impassable connections
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result holds the shortest travel times from one source station.
type Result struct {
	net    *core.Network
	source int

	// Dist[i] is the shortest time from the source to arena index i,
	// or Unreachable.
	Dist []int64

	// prev[i] is the predecessor of i on a shortest route, -1 for none.
	// nil unless WithReturnPath was given.
	prev []int
}

// Distance returns the shortest time from the source to s, or Unreachable
// when s cannot be reached or is not part of the network.
func (r *Result) Distance(s core.Station) int64 {
	i, ok := r.net.Index(s)
	if !ok {
		return Unreachable
	}

	return r.Dist[i]
}

// PathTo rebuilds one shortest route from the source to dest.
//
// Errors:
//   - ErrNoPredecessors without WithReturnPath.
//   - core.ErrUnknownStation (wrapped) if dest is not in the network.
//   - ErrNoPath if dest is unreachable.
func (r *Result) PathTo(dest core.Station) (core.Path, error) {
	if r.prev == nil {
		return core.Path{}, ErrNoPredecessors
	}
	to, ok := r.net.Index(dest)
	if !ok {
		return core.Path{}, fmt.Errorf("dijkstra: %q: %w", dest.Name, core.ErrUnknownStation)
	}
	if r.Dist[to] == Unreachable {
		return core.Path{}, fmt.Errorf("%w: %s", ErrNoPath, dest.Name)
	}

	var rev []core.Station
	for cur := to; cur != -1; cur = r.prev[cur] {
		rev = append(rev, r.net.StationAt(cur))
	}
	stations := make([]core.Station, len(rev))
	for i, s := range rev {
		stations[len(rev)-1-i] = s
	}

	return core.Path{Stations: stations, Weight: r.Dist[to]}, nil
}
