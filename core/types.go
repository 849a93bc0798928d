// File: types.go
// Role: sentinel errors, Edge, Graph, GraphOption and NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight below 1.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge for an ordered pair on a
	// graph without a merge function.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the length of the connection, always ≥ 1.
	Weight int64
}

// MergeFunc combines the weight already stored for an ordered pair with a
// newly added one.
type MergeFunc func(old, added int64) int64

// KeepMax keeps the heavier of two parallel edges.
func KeepMax(old, added int64) int64 { return max(old, added) }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithMerge makes AddEdge fold parallel edges with fn instead of failing.
func WithMerge(fn MergeFunc) GraphOption {
	return func(g *Graph) { g.merge = fn }
}

// Graph is a directed weighted graph.
//
// out[from][to] and in[to][from] point at the same *Edge, so both
// directions of lookup are O(1).
type Graph struct {
	mu sync.RWMutex

	merge MergeFunc

	out map[string]map[string]*Edge
	in  map[string]map[string]*Edge

	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		out: make(map[string]map[string]*Edge),
		in:  make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
