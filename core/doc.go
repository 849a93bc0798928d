// Package core is the in-memory store behind a compiled junction graph: a
// directed, weighted graph keyed by string vertex IDs, safe for concurrent
// readers.
//
// What:
//
//   - Vertices are plain string IDs. AddVertex is idempotent.
//   - Edges are directed and carry a positive int64 weight. At most one edge
//     exists per ordered pair; a second AddEdge for the same pair either
//     fails with ErrMultiEdgeNotAllowed or, when the graph was built
//     WithMerge, folds the two weights with the merge function.
//   - Self-loops are rejected.
//
// Determinism:
//
//   - Vertices, NeighborIDs and Edges return results sorted by ID, so
//     callers that walk the store in order behave the same run to run.
//
// Concurrency:
//
//   - A single sync.RWMutex guards all catalogs. Queries take the read lock,
//     mutations the write lock.
//
// Complexity:
//
//   - AddEdge, RemoveEdge, HasEdge, Weight: O(1) average.
//   - Vertices, NeighborIDs: O(k log k) for k results.
//   - Edges: O(E log E). Clone: O(V + E).
package core
