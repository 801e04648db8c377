// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Model:
//   • 2D orthogonal grid with 4-neighbourhood (right & bottom neighbour per cell).
//   • Station IDs use the fixed scheme "r,c" (row-major order) instead of cfg.idFn
//     so coordinates stay readable. Names still go through cfg.nameFn.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) emit Right then Bottom when present.
//
// Complexity:
//   • Time: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		cell := func(r, c int) core.Station {
			return station(cfg, fmt.Sprintf(gridIDFmt, r, c))
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addStation(methodGrid, net, cell(r, c)); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cell(r, c)
				if c+1 < cols {
					if err := connect(methodGrid, net, cfg, u, cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(methodGrid, net, cfg, u, cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
