// SPDX-License-Identifier: MIT
// Package: deepening/builder
//
// impl_uneven.go - implementation of UnevenBranches(chainLen) constructor.
//
// The graph is the canonical picture of why depth-first search can return
// a long path while a shallow one exists:
//
//	A → X1 → X2 → … → X<chainLen>
//	A → B → C → D
//	    B → E
//
// A's successors are [X1, B] and B's are [C, E], in that order, so DFS
// commits to the chain first while E sits two edges from A.
//
// Contract:
//   - chainLen ≥ 1 (else ErrTooFewVertices).
//   - Fixed IDs: "A".."E" and "X1".."X<chainLen>"; cfg.idFn is not used.
//
// Complexity: O(chainLen) time, O(1) extra space.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/deepening/core"
)

// Fixed vertex IDs of the UnevenBranches graph.
const (
	UnevenRoot       = "A"
	UnevenGoal       = "E"
	UnevenChainLabel = "X"
)

const (
	methodUneven   = "UnevenBranches"
	minUnevenChain = 1
)

// UnevenBranches returns a Constructor that builds the two-branch
// demonstration graph with a chain of chainLen vertices under A.
func UnevenBranches(chainLen int) Constructor {
	return func(g *core.Graph[string], _ builderConfig) error {
		if chainLen < minUnevenChain {
			return fmt.Errorf("%s: chainLen=%d < min=%d: %w", methodUneven, chainLen, minUnevenChain, ErrTooFewVertices)
		}

		chain := func(i int) string { return UnevenChainLabel + strconv.Itoa(i) }

		edges := [][2]string{
			{UnevenRoot, chain(1)},
			{UnevenRoot, "B"},
			{"B", "C"},
			{"B", UnevenGoal},
			{"C", "D"},
		}
		for _, e := range edges {
			if err := addEdge(methodUneven, g, e[0], e[1]); err != nil {
				return err
			}
		}
		for i := 1; i < chainLen; i++ {
			if err := addEdge(methodUneven, g, chain(i), chain(i+1)); err != nil {
				return err
			}
		}
		return nil
	}
}
