// SPDX-License-Identifier: MIT
// Package: deepening/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i → (i+1)%n for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deepening/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex directed ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}
		// For i == n-1 the edge closes the ring back to 0.
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}
		return nil
	}
}
