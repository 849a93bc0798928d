// Package trailmaze finds the longest walkable trail through a grid maze,
// from the single opening on the top row to the single opening on the
// bottom row, never stepping on the same tile twice.
//
// What is in the box?
//
//	• maze/           terrain, coordinates and text loading with structural checks
//	• junction/       compiles the grid into a small weighted graph of junctions
//	• longest/        exhaustive longest-simple-path search with bounded parallel fan-out
//	• cmd/trailmaze   command-line front end (solve, graph)
//
// Two traversal modes are supported:
//
//	Directional: slopes (^ > v <) are one-way tiles
//	Undirected:  every non-wall tile is passable both ways
//
// Quick example:
//
//	#.###
//	#...#
//	###.#
//
// has a single trail of length 4 in both modes.
//
// The root package offers Solve and SolveAll, which chain the three stages
// for callers that only want the number, and Analyze, which also returns the
// compiled graph and search statistics. The trailmaze command is built on
// Analyze and Compile.
package trailmaze
