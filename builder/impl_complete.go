// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Connects every unordered pair {i,j}, i<j, once; order is i asc then j asc.
//
// Complexity:
//   - Time: O(n²) connections. The number of simple paths between two stations
//     grows factorially with n, which makes Complete the worst case for
//     exhaustive route enumeration.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete network on n stations.
func Complete(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		st, err := addSequentialStations(methodComplete, net, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(methodComplete, net, cfg, st[i], st[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
