// SPDX-License-Identifier: MIT
// Package: deepening/builder
//
// impl_binary_tree.go - implementation of BinaryTree(depth) constructor.
//
// Contract:
//   - depth ≥ 0 (else ErrTooFewVertices); depth 0 is the lone root.
//   - Vertices are heap-indexed: index i has children 2i+1 and 2i+2, so the
//     root is cfg.idFn(0) and the tree holds 2^(depth+1)-1 vertices.
//   - Edges parent → child are emitted in breadth-first index order,
//     left child before right.
//
// Complexity: O(2^depth) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deepening/core"
)

const (
	methodBinaryTree = "BinaryTree"
	minTreeDepth     = 0
	maxTreeDepth     = 30
)

// BinaryTree returns a Constructor that builds a complete binary tree
// of the given depth with all edges pointing away from the root.
func BinaryTree(depth int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if depth < minTreeDepth {
			return fmt.Errorf("%s: depth=%d < min=%d: %w", methodBinaryTree, depth, minTreeDepth, ErrTooFewVertices)
		}
		if depth > maxTreeDepth {
			return fmt.Errorf("%s: depth=%d > max=%d: %w", methodBinaryTree, depth, maxTreeDepth, ErrConstructFailed)
		}

		n := 1<<(depth+1) - 1
		if err := addVertices(methodBinaryTree, g, cfg, n); err != nil {
			return err
		}
		// Internal vertices are exactly indices 0..n/2-1.
		for i := 0; i < n/2; i++ {
			parent := cfg.idFn(i)
			if err := addEdge(methodBinaryTree, g, parent, cfg.idFn(2*i+1)); err != nil {
				return err
			}
			if err := addEdge(methodBinaryTree, g, parent, cfg.idFn(2*i+2)); err != nil {
				return err
			}
		}
		return nil
	}
}
