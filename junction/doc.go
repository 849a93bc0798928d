// Package junction compiles a maze.Grid into a compact weighted graph whose
// vertices are decision points and whose edges are whole corridors.
//
// What:
//
//   - Compile walks the grid once with an explicit work list of pending
//     (node, first cell) corridors; it never recurses.
//   - Nodes are the entrance, the exit, every branch cell (three or more
//     passable neighbours, slopes ignored) and every dead end.
//   - Each corridor becomes one edge weighted by its step count. In
//     Directional mode an edge is only registered in the directions in which
//     every step of the corridor is legal; in Undirected mode both directions
//     are always registered with equal weight.
//   - Prune removes border back-edges that can never lie on a simple path
//     from the entrance to the exit.
//   - DOT renders the graph for Graphviz through gonum's encoder.
//
// Why:
//
//   - A maze of thousands of cells collapses to tens of nodes, which is what
//     makes an exhaustive longest-path search feasible at all.
//
// Complexity:
//
//   - Compile: O(R×C) time, every corridor cell is walked at most twice.
//   - Prune:   O(V+E) to walk the outer border once.
//   - Memory:  O(V+E) for the edge store and the corridor ports.
//
// Errors:
//
//   - ErrGridNil:   Compile was given a nil grid.
//   - ErrExhausted: a corridor exceeded the step limit (wrapped in *ExhaustionError).
//
// Pruning assumes the exit is the only terminal node. Compile with
// WithPruning(false) before searching toward any other target.
package junction
