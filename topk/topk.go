// SPDX-License-Identifier: MIT
//
// Package topk retains the K best complete paths seen during one query's
// enumeration and orders them by core.ComparePaths.
//
// Policy:
//
//   - Paths with the same station sequence are one route: a repeated route
//     (reached over a duplicate connection) only replaces the held copy when
//     it is strictly lighter.
//   - Offer adds unconditionally while fewer than K paths are held.
//   - Once full, a path is admitted only if its weight is strictly below the
//     heaviest held weight; the evicted path is the maximum under ComparePaths
//     (heaviest, then shortest, then lexicographically last).
//   - Dominated(w) is true iff K paths are held and w >= heaviest held weight,
//     which is exactly when no extension of a partial path of weight w can be
//     admitted (weights are non-negative).
//
// Complexity: Offer and Dominated are O(K·L) with L the path length; K is 3 by default.
package topk

import (
	"sort"

	"github.com/katalvlaran/pathfinder/core"
)

// DefaultK is the number of routes reported per query.
const DefaultK = 3

// Selector holds up to k candidate paths for a single query.
// It is not safe for concurrent use; give each worker its own Selector.
type Selector struct {
	k    int
	held []core.Path
}

// New returns an empty selector keeping at most k paths.
// k <= 0 selects DefaultK.
func New(k int) *Selector {
	if k <= 0 {
		k = DefaultK
	}

	return &Selector{k: k, held: make([]core.Path, 0, k)}
}

// K returns the capacity of the selector.
func (s *Selector) K() int { return s.k }

// Len returns the number of paths currently held.
func (s *Selector) Len() int { return len(s.held) }

// Reset drops every held path so the selector can serve another query.
func (s *Selector) Reset() { s.held = s.held[:0] }

// Offer submits a complete path. The station slice is copied, so callers may
// reuse their buffers.
func (s *Selector) Offer(p core.Path) {
	if i := s.indexOf(p.Stations); i >= 0 {
		if p.Weight < s.held[i].Weight {
			s.held[i].Weight = p.Weight
		}
		return
	}
	if len(s.held) < s.k {
		s.held = append(s.held, clone(p))
		return
	}
	if p.Weight >= s.maxWeight() {
		return
	}
	s.held[s.worst()] = clone(p)
}

// Dominated reports whether a partial path of the given weight can no longer
// improve the held set.
func (s *Selector) Dominated(weight int64) bool {
	return len(s.held) == s.k && weight >= s.maxWeight()
}

// Finalize returns the held paths sorted ascending by core.ComparePaths.
// The returned slice is owned by the caller.
func (s *Selector) Finalize() []core.Path {
	out := make([]core.Path, len(s.held))
	copy(out, s.held)
	sort.SliceStable(out, func(i, j int) bool {
		return core.ComparePaths(out[i], out[j]) < 0
	})

	return out
}

// maxWeight returns the heaviest held weight; callers guarantee len(held) > 0.
func (s *Selector) maxWeight() int64 {
	m := s.held[0].Weight
	for _, p := range s.held[1:] {
		if p.Weight > m {
			m = p.Weight
		}
	}

	return m
}

// worst returns the index of the maximum held path under core.ComparePaths.
func (s *Selector) worst() int {
	w := 0
	for i := 1; i < len(s.held); i++ {
		if core.ComparePaths(s.held[i], s.held[w]) > 0 {
			w = i
		}
	}

	return w
}

// indexOf returns the index of the held path visiting exactly seq, or -1.
func (s *Selector) indexOf(seq []core.Station) int {
	for i, h := range s.held {
		if sameStations(h.Stations, seq) {
			return i
		}
	}

	return -1
}

func sameStations(a, b []core.Station) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func clone(p core.Path) core.Path {
	st := make([]core.Station, len(p.Stations))
	copy(st, p.Stations)

	return core.Path{Stations: st, Weight: p.Weight}
}
