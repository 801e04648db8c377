// Package search defines the query and outcome types of the route search,
// together with its functional options.
package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/internal/logger"
	"github.com/katalvlaran/pathfinder/topk"
)

// Sentinel errors for the Runner.
var (
	// ErrNilNetwork is returned by New for a nil network.
	ErrNilNetwork = errors.New("search: network is nil")

	// ErrOptionViolation is returned by New when an Option is invalid.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Query is one requested station pair, by display name.
type Query struct {
	Source      string
	Destination string
}

// String renders the request line form "Source - Destination".
func (q Query) String() string {
	return q.Source + " - " + q.Destination
}

// Status classifies the answer to a Query.
type Status int

const (
	// Found means at least one route exists; Outcome.Paths is non-empty.
	Found Status = iota
	// SourceOutOfNetwork means the source name matches no station.
	SourceOutOfNetwork
	// DestinationOutOfNetwork means the destination name matches no station.
	DestinationOutOfNetwork
	// BothOutOfNetwork means neither name matches a station.
	BothOutOfNetwork
	// NoCommunication means both stations exist but no route joins them.
	NoCommunication
)

// String returns a short lower-case label.
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case SourceOutOfNetwork:
		return "source out of network"
	case DestinationOutOfNetwork:
		return "destination out of network"
	case BothOutOfNetwork:
		return "both out of network"
	case NoCommunication:
		return "no communication"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome is the answer to one Query.
// Source and Destination are placeholders (empty ID) when out of the network.
// Paths is ranked by core.ComparePaths and holds at most K entries.
type Outcome struct {
	Query       Query
	Source      core.Station
	Destination core.Station
	Status      Status
	Paths       []core.Path
}

// Option configures a Runner.
type Option func(*Options)

// Options holds the Runner settings.
type Options struct {
	// K is the number of fastest routes kept per query.
	K int

	// Workers is the number of queries solved concurrently by Run.
	Workers int

	// CacheTTL, if > 0, memoises outcomes of identical queries for that long.
	CacheTTL time.Duration

	// Reachability runs a breadth-first connectivity check before enumerating,
	// answering NoCommunication without an exhaustive search. It is skipped
	// when LowerBound is in effect, which detects the same pairs.
	Reachability bool

	// Pruning is forwarded to the enumerator; disabling it never changes outcomes.
	Pruning bool

	// LowerBound computes shortest times to the destination first and lets the
	// enumerator prune with them. It has no effect without Pruning.
	LowerBound bool

	// Logger receives per-query debug statistics and per-run summaries.
	Logger logger.Logger

	err error
}

// DefaultOptions returns Options with:
//   - K = topk.DefaultK (3)
//   - one worker
//   - no cache
//   - reachability pre-check, pruning and lower bounds enabled
//   - a no-op logger
func DefaultOptions() Options {
	return Options{
		K:            topk.DefaultK,
		Workers:      1,
		CacheTTL:     0,
		Reachability: true,
		Pruning:      true,
		LowerBound:   true,
		Logger:       logger.Nop(),
	}
}

// WithK sets the number of routes kept per query. k < 1 → ErrOptionViolation.
func WithK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: K must be ≥ 1, got %d", ErrOptionViolation, k)
			return
		}
		o.K = k
	}
}

// WithWorkers sets the worker-pool size used by Run. n < 1 → ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithCache memoises outcomes for ttl. ttl == 0 disables the cache;
// ttl < 0 → ErrOptionViolation.
func WithCache(ttl time.Duration) Option {
	return func(o *Options) {
		if ttl < 0 {
			o.err = fmt.Errorf("%w: cache ttl must be ≥ 0, got %s", ErrOptionViolation, ttl)
			return
		}
		o.CacheTTL = ttl
	}
}

// WithReachabilityCheck toggles the breadth-first pre-check.
func WithReachabilityCheck(enabled bool) Option {
	return func(o *Options) {
		o.Reachability = enabled
	}
}

// WithPruning toggles enumerator pruning.
func WithPruning(enabled bool) Option {
	return func(o *Options) {
		o.Pruning = enabled
	}
}

// WithLowerBound toggles shortest-time lower bounds for pruning.
func WithLowerBound(enabled bool) Option {
	return func(o *Options) {
		o.LowerBound = enabled
	}
}

// WithLogger installs l; nil keeps the no-op logger.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
