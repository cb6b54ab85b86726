// Package converters reads and writes search scenarios: a start vertex, a
// goal, a depth budget and an ordered adjacency, stored as YAML or JSON.
//
// Successor order is significant for every search in this module, so the
// graph mapping is decoded through yaml.Node and never through a Go map.
// Vertices enter the resulting core.Graph in first-appearance order and
// each vertex keeps its successors exactly as listed.
//
//	start: A
//	goal: E
//	max_depth: 10
//	graph:
//	  A: [X1, B]
//	  B: [C, E]
//	queries:
//	  - {start: A, goal: D}
//
// JSON documents are parsed by the same decoder (JSON is valid YAML), so
// key order is kept there too.
//
// Errors:
//
//   - ErrEmptyDocument  if the input holds no YAML document.
//   - ErrBadGraph       if graph is missing or not a mapping of scalar sequences.
//   - ErrBadScenario    if start/goal are empty or a depth is negative.
//   - Wrapped I/O and YAML syntax errors otherwise.
package converters
