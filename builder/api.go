// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// api.go - public entry points.
//
// Contract:
//   • Constructor is a pure factory closure: it only touches the network it
//     receives and the resolved builderConfig.
//   • BuildNetwork resolves options once and applies constructors in order.
//     The first failure aborts and returns a nil network.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

// Constructor adds a topology to n using cfg.
type Constructor func(n *core.Network, cfg builderConfig) error

// BuildNetwork creates an empty network and applies every constructor to it.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped with "BuildNetwork: ".
//
// Complexity: sum of the constructor costs.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*core.Network, error) {
	net := core.NewNetwork()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(net, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return net, nil
}
