// Package longest finds the longest simple path through a compiled
// junction.Graph by exhaustive backtracking.
//
// What:
//
//   - Search(g, start, opts...): maximum total corridor length over every
//     simple path from start to a terminal node (by default, any node on the
//     exit row).
//   - Branches that cannot reach a terminal node are dropped from the fold;
//     when nothing reaches one, Result.Found is false and Longest is 0.
//   - The first ParallelDepth levels of the search tree fan out: each viable
//     branch runs in its own goroutine with its own copy of the visited set,
//     and the parent joins them and keeps the maximum. Deeper levels recurse
//     sequentially and backtrack on the set they own.
//
// Why:
//
//   - Longest simple path is NP-hard; the junction graph is small enough to
//     enumerate, and bounded fan-out spreads the enumeration across cores
//     without spawning a goroutine per tree node.
//
// Complexity:
//
//   - Time:   O(V!) worst case, in practice bounded by the number of simple
//     paths in the pruned junction graph.
//   - Memory: O(V/64) words per live task for the visited bitset, plus a
//     recursion stack of depth ≤ V.
//   - Tasks:  at most d^ParallelDepth goroutines for maximum out-degree d.
//
// Options:
//
//   - WithContext(ctx)        cancels the search; the context error is returned.
//   - WithParallelDepth(n)    fan-out levels; 0 searches sequentially. Default 4.
//   - WithTerminal(fn)        custom terminal predicate.
//   - WithLogger(l)           zerolog logger for per-search statistics.
//
// Errors:
//
//   - ErrGraphNil        g is nil.
//   - ErrStartNotFound   start is not a node of g.
//   - context errors     ctx was cancelled or timed out.
package longest
