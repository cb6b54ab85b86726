// Package builder provides deterministic fixture constructors for the
// searches in this module. Every constructor emits vertices and edges in a
// documented order, and that order becomes the successor order DFS, DLS,
// IDS and BFS follow, so a fixture built twice is searched identically.
//
// Components:
//
//   - BuildGraph: the single entry point; creates a core.Graph[string],
//     resolves BuilderOption values and applies Constructor closures in order.
//   - Topologies:
//     – Path(n):            chain "0"→"1"→…→"n-1".
//     – Cycle(n):           ring i→(i+1)%n.
//     – Star(n):            hub "Center" with n-1 leaves.
//     – BinaryTree(depth):  heap-indexed complete binary tree, root "0".
//     – RandomSparse(n,p):  directed Erdős–Rényi sample; needs WithSeed or WithRand for 0<p<1.
//     – UnevenBranches(k):  A→[X1,B], B→[C,E], C→D plus the chain X1→…→Xk.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn,
//     SymbolNumberIDFn(prefix).
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with
//     the constructor name (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed).
//   - Same inputs, options and seed give identical graphs.
package builder
