// Package maze loads rectangular text mazes and answers the local questions
// the graph compiler asks about them.
//
// What:
//
//   - Terrain: Wall ('#'), Open ('.') and the four one-way slopes ('^', '>', 'v', '<').
//   - Grid: an immutable rectangle of Terrain with a single Entrance on the first
//     row and a single Exit on the last row.
//   - Mode: Directional (slopes are one-way) or Undirected (slopes behave like Open).
//
// Why:
//
//   - Corridor tracing needs O(1) access to terrain, bounds and step legality.
//   - Structural problems (ragged rows, unknown characters, missing entrance or
//     exit) must be rejected once, at load time, before any graph is built.
//
// Complexity:
//
//   - Parse / Read / New: O(R×C) time and memory.
//   - At, InBounds, CanStep: O(1).
//   - Neighbors: O(1), at most four results.
//
// Errors:
//
//   - ErrEmptyGrid:      the input has no rows or no columns.
//   - ErrTooShort:       fewer than two rows (entrance and exit would share a row).
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadTerrain:     an unrecognized character was found.
//   - ErrNoEntrance:     the first row does not hold exactly one passable cell.
//   - ErrNoExit:         the last row does not hold exactly one passable cell.
//
// Every structural failure is reported as a *StructuralError wrapping one of the
// sentinels above, so both errors.Is and errors.As work.
package maze
