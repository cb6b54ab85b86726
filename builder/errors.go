// SPDX-License-Identifier: MIT
// Package: deepening/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`, e.g.
//     "RandomSparse: rng is required: builder: rng is required".
//   • Validation order when several checks fail: size, then probability,
//     then RNG presence.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, depth, chain
// length) is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed, e.g.
// a nil Constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
