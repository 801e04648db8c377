// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// config.go - resolved configuration shared by all constructors.
//
// Defaults:
//   • idFn     = DefaultIDFn ("0","1",...)
//   • nameFn   = nil (station name equals its ID)
//   • rng      = nil (stochastic constructors demand WithSeed/WithRand)
//   • weightFn = DefaultWeightFn (constant DefaultEdgeWeight minutes)

package builder

import "math/rand"

// builderConfig carries the knobs a Constructor may consult.
type builderConfig struct {
	// idFn maps a zero-based station index to its ID.
	idFn IDFn

	// nameFn maps a station ID to its display name; nil means name == ID.
	nameFn func(id string) string

	// rng drives stochastic constructors and random weights.
	rng *rand.Rand

	// weightFn returns the travel time in minutes for the next connection.
	weightFn WeightFn
}

// newBuilderConfig applies opts over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		nameFn:   nil,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// name resolves the display name for id.
func (c builderConfig) name(id string) string {
	if c.nameFn == nil {
		return id
	}

	return c.nameFn(id)
}

// weight draws the next travel time.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}
