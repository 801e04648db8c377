// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator over unordered pairs {i,j}, i<j: each pair is
//     connected independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trial order is i asc, then j asc, so a fixed seed yields a fixed network.
//
// Complexity:
//   - Time: O(n) stations + O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random network over n
// stations with independent connection probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		st, err := addSequentialStations(methodRandomSparse, net, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var take bool
				switch {
				case p == probMin:
					take = false
				case p == probMax:
					take = true
				default:
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err = connect(methodRandomSparse, net, cfg, st[i], st[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
