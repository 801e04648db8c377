// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds stations via cfg.idFn in ascending index order (0..n-1).
//   - Emits connections (i-1)-i for i=1..n-1 in increasing order.
//   - Travel time per connection: cfg.weightFn(cfg.rng).
//
// Complexity:
//   - Time: O(n) stations + O(n-1) connections.
//   - Space: O(n) for the station slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path of n stations.
func Path(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		st, err := addSequentialStations(methodPath, net, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(methodPath, net, cfg, st[i-1], st[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
