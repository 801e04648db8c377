// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w: "<Method>: <detail>: <sentinel>".
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller
// than the minimum accepted by the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (set one with WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the network rejected a station or
// connection, or that BuildNetwork received a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
