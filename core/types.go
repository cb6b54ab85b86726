// Package core defines the ordered adjacency model every search in this
// module runs on: the read-only Adjacency interface, the literal Map
// form, and the mutex-guarded, insertion-ordered Graph builder.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - duplicate successor when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a repeated successor was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Adjacency is the read-only view searches consume.
//
// Successors returns the successors of id in their declared order. An id
// the graph does not know has no successors; implementations return nil
// rather than an error. Callers must not modify the returned slice.
type Adjacency[N comparable] interface {
	Successors(id N) []N
}

// Map is a plain adjacency mapping: node → ordered successors.
// Keys need not cover every successor; a missing key is a sink.
type Map[N comparable] map[N][]N

// Successors implements Adjacency. A missing key yields nil.
// Complexity: O(1).
func (m Map[N]) Successors(id N) []N {
	return m[id]
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(cfg *graphConfig)

// graphConfig holds the mode flags shared by every Graph instantiation.
type graphConfig struct {
	allowLoops bool // allow self-loops
	allowMulti bool // allow repeated successors
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(cfg *graphConfig) { cfg.allowLoops = true }
}

// WithMultiEdges permits the same successor to appear more than once.
func WithMultiEdges() GraphOption {
	return func(cfg *graphConfig) { cfg.allowMulti = true }
}

// Graph is an insertion-ordered directed graph.
//
// Vertices() reports vertices in first-insertion order and Successors()
// reports edges in the order they were added; both orders are part of
// the contract because they fix the visitation order of every search.
// mu guards every field below it.
type Graph[N comparable] struct {
	mu sync.RWMutex

	cfg graphConfig

	order []N       // vertices in insertion order
	succ  map[N][]N // vertex → successors in insertion order
	edges int       // total number of edges
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph rejects self-loops and repeated successors.
// Complexity: O(1)
func NewGraph[N comparable](opts ...GraphOption) *Graph[N] {
	g := &Graph[N]{
		succ: make(map[N][]N),
	}
	// Apply options
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}

// Looped reports whether self-loops are allowed.
func (g *Graph[N]) Looped() bool { return g.cfg.allowLoops }

// Multigraph reports whether repeated successors are allowed.
func (g *Graph[N]) Multigraph() bool { return g.cfg.allowMulti }
