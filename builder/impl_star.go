// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices): one hub plus n-1 leaves.
//   - The hub has the fixed ID "Center" and is added first.
//   - Leaves take IDs cfg.idFn(0..n-2) and are each connected to the hub.
//
// Complexity:
//   - Time: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodStar     = "Star"
	minStarNodes   = 2
	centerVertexID = "Center"
)

// Star returns a Constructor that builds a hub-and-spoke network.
func Star(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := station(cfg, centerVertexID)
		if err := addStation(methodStar, net, hub); err != nil {
			return err
		}
		leaves, err := addSequentialStations(methodStar, net, cfg, n-1)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = connect(methodStar, net, cfg, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
