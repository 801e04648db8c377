// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Same stations and connections as Path(n), then a closing (n-1)-0.
//
// Complexity:
//   - Time: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a ring of n stations.
func Cycle(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		st, err := addSequentialStations(methodCycle, net, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(methodCycle, net, cfg, st[i-1], st[i]); err != nil {
				return err
			}
		}

		// close the ring
		return connect(methodCycle, net, cfg, st[n-1], st[0])
	}
}
