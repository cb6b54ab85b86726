// SPDX-License-Identifier: MIT
// Package: deepening/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: directed Erdős–Rényi. Every ordered pair (i,j) is an independent
// Bernoulli trial with probability p; self-loops are trialled only when
// g.Looped() is true.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//
// Determinism:
//   - Stable trial order: i asc, then j asc. Identical seeds give identical
//     edge sets and identical successor orders.
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deepening/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed random graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		// 1) Validate parameters (fail fast, zero side-effects on invalid input).
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Add all vertices deterministically.
		if err := addVertices(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		// 3) Sample edges over ordered pairs.
		loops := g.Looped()
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !trial(cfg, p) {
					continue
				}
				if err := addEdge(methodRandomSparse, g, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// trial reports whether one Bernoulli(p) draw succeeds. The degenerate
// probabilities never consume randomness.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
