// SPDX-License-Identifier: MIT
// Package: deepening/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID CenterVertexID.
//   - Adds leaves via cfg.idFn in ascending index order for i = 1..n-1.
//   - Emits spokes Center → leaf[i] in stable order, so the hub's
//     successors are the leaves in index order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deepening/core"
)

// CenterVertexID is the fixed hub ID used by Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}
		return nil
	}
}
