// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// helpers.go - shared station and connection emitters.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

// station resolves the station with the given ID, reusing an existing one.
func station(cfg builderConfig, id string) core.Station {
	return core.Station{ID: id, Name: cfg.name(id)}
}

// addStation registers s unless the network already holds it.
func addStation(method string, n *core.Network, s core.Station) error {
	if n.Contains(s) {
		return nil
	}
	if err := n.AddStation(s); err != nil {
		return fmt.Errorf("%s: AddStation(%s): %w: %w", method, s.ID, ErrConstructFailed, err)
	}

	return nil
}

// addSequentialStations registers stations cfg.idFn(0..count-1) in index order.
func addSequentialStations(method string, n *core.Network, cfg builderConfig, count int) ([]core.Station, error) {
	out := make([]core.Station, count)
	for i := 0; i < count; i++ {
		out[i] = station(cfg, cfg.idFn(i))
		if err := addStation(method, n, out[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// connect adds one connection a-b with the next weight from cfg.
func connect(method string, n *core.Network, cfg builderConfig, a, b core.Station) error {
	w := cfg.weight()
	c := core.Connection{Source: a, Destination: b, Time: core.Minutes(w)}
	if err := n.AddConnection(c); err != nil {
		return fmt.Errorf("%s: AddConnection(%s-%s, t=%d): %w: %w", method, a.ID, b.ID, w, ErrConstructFailed, err)
	}

	return nil
}
