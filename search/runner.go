// SPDX-License-Identifier: MIT
//
// File: runner.go
// Role: Query classification and orchestration of bfs, dijkstra, dfs and topk.
//
// Concurrency:
//   - A Runner only reads its network; one Runner may serve many goroutines.
//   - Every query owns its selector. The outcome cache is internally synchronised.

package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/katalvlaran/pathfinder/bfs"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dfs"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/topk"
)

// Runner answers route queries against one immutable network.
type Runner struct {
	net  *core.Network
	opts Options
	memo *cache.Cache // nil when caching is disabled
}

// New validates opts and returns a Runner over net.
// net must not be mutated afterwards.
func New(net *core.Network, opts ...Option) (*Runner, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &Runner{net: net, opts: o}
	if o.CacheTTL > 0 {
		r.memo = cache.New(o.CacheTTL, 2*o.CacheTTL)
	}

	return r, nil
}

// Run answers every query and returns the outcomes in request order.
// With more than one worker, queries fan out over a fixed pool.
// The first error (cancellation in practice) aborts the run.
func (r *Runner) Run(ctx context.Context, queries []Query) ([]Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	started := time.Now()
	workers := min(r.opts.Workers, len(queries))

	var (
		out []Outcome
		err error
	)
	if workers <= 1 {
		out, err = r.runSequential(ctx, queries)
	} else {
		out, err = r.runPool(ctx, queries, workers)
	}
	if err != nil {
		r.opts.Logger.Error("route search aborted", "error", err)
		return nil, err
	}

	r.opts.Logger.Info("route search finished",
		"queries", len(queries),
		"workers", max(workers, 1),
		"elapsed", time.Since(started).String(),
	)

	return out, nil
}

func (r *Runner) runSequential(ctx context.Context, queries []Query) ([]Outcome, error) {
	out := make([]Outcome, len(queries))
	for i, q := range queries {
		o, err := r.Solve(ctx, q)
		if err != nil {
			return nil, err
		}
		out[i] = o
	}

	return out, nil
}

func (r *Runner) runPool(parent context.Context, queries []Query, workers int) ([]Outcome, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	out := make([]Outcome, len(queries))
	jobs := make(chan int)

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				o, err := r.Solve(ctx, queries[i])
				if err != nil {
					once.Do(func() {
						firstErr = err
						cancel()
					})
					continue
				}
				out[i] = o
			}
		}()
	}

feed:
	for i := range queries {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Solve answers a single query.
func (r *Runner) Solve(ctx context.Context, q Query) (Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	key := cacheKey(q)
	if r.memo != nil {
		if v, ok := r.memo.Get(key); ok {
			o := v.(Outcome).clone()
			r.opts.Logger.Debug("route cache hit", "query", q.String())
			return o, nil
		}
	}

	o, err := r.solve(ctx, q)
	if err != nil {
		return Outcome{}, err
	}
	if r.memo != nil {
		r.memo.Set(key, o.clone(), cache.DefaultExpiration)
	}

	return o, nil
}

// solve classifies the endpoints and runs the enumeration when both exist.
func (r *Runner) solve(ctx context.Context, q Query) (Outcome, error) {
	src, srcIn := r.net.LookupName(q.Source)
	if !srcIn {
		src = core.Placeholder(q.Source)
	}
	dst, dstIn := r.net.LookupName(q.Destination)
	if !dstIn {
		dst = core.Placeholder(q.Destination)
	}
	o := Outcome{Query: q, Source: src, Destination: dst}

	switch {
	case !srcIn && !dstIn:
		o.Status = BothOutOfNetwork
		return o, nil
	case !srcIn:
		o.Status = SourceOutOfNetwork
		return o, nil
	case !dstIn:
		o.Status = DestinationOutOfNetwork
		return o, nil
	case src == dst:
		o.Status = Found
		o.Paths = []core.Path{{Stations: []core.Station{src}, Weight: 0}}
		return o, nil
	}

	// Lower bounds already mark unreachable sources, so the BFS pass only
	// runs when they are off.
	bounded := r.opts.Pruning && r.opts.LowerBound
	if r.opts.Reachability && !bounded {
		ok, err := bfs.Reachable(r.net, src, dst, bfs.WithContext(ctx))
		if err != nil {
			return Outcome{}, fmt.Errorf("search: %s: %w", q, err)
		}
		if !ok {
			o.Status = NoCommunication
			r.opts.Logger.Debug("route unreachable", "query", q.String(), "check", "bfs")
			return o, nil
		}
	}

	dopts := []dfs.Option{dfs.WithContext(ctx), dfs.WithPruning(r.opts.Pruning)}
	if bounded {
		dist, err := dijkstra.Dijkstra(r.net, dst, dijkstra.WithContext(ctx))
		if err != nil {
			return Outcome{}, fmt.Errorf("search: %s: %w", q, err)
		}
		if dist.Distance(src) == dijkstra.Unreachable {
			o.Status = NoCommunication
			r.opts.Logger.Debug("route unreachable", "query", q.String(), "check", "dijkstra")
			return o, nil
		}
		dopts = append(dopts, dfs.WithLowerBound(dist.Dist))
	}

	sel := topk.New(r.opts.K)
	stats, err := dfs.Enumerate(r.net, src, dst, sel, dopts...)
	if err != nil {
		return Outcome{}, fmt.Errorf("search: %s: %w", q, err)
	}

	o.Status = NoCommunication
	if paths := sel.Finalize(); len(paths) > 0 {
		o.Status = Found
		o.Paths = paths
	}
	r.opts.Logger.Debug("route enumerated",
		"query", q.String(),
		"status", o.Status.String(),
		"routes", len(o.Paths),
		"offered", stats.Offered,
		"pruned", stats.Pruned,
		"explored", stats.Explored,
	)

	return o, nil
}

// clone deep-copies the paths so cached and returned outcomes share no slice.
func (o Outcome) clone() Outcome {
	if o.Paths == nil {
		return o
	}
	paths := make([]core.Path, len(o.Paths))
	for i, p := range o.Paths {
		st := make([]core.Station, len(p.Stations))
		copy(st, p.Stations)
		paths[i] = core.Path{Stations: st, Weight: p.Weight}
	}
	o.Paths = paths

	return o
}

// cacheKey quotes both names so separators inside names cannot collide.
func cacheKey(q Query) string {
	return fmt.Sprintf("route:%q:%q", q.Source, q.Destination)
}
