// File: methods_edges.go
// Role: edge lifecycle and queries: AddEdge, RemoveEdge, HasEdge, Weight,
//       Edges, EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) ascending.

package core

import "sort"

// AddEdge creates the edge from→to, adding missing endpoints.
//
// Behavior:
//   - If the pair already has an edge and the graph has a merge function,
//     the stored weight becomes merge(old, weight).
//   - Without a merge function a second edge is ErrMultiEdgeNotAllowed.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadWeight, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	if weight < 1 {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(from)
	g.ensureVertex(to)

	if e, ok := g.out[from][to]; ok {
		if g.merge == nil {
			return ErrMultiEdgeNotAllowed
		}
		e.Weight = g.merge(e.Weight, weight)
		return nil
	}

	e := &Edge{From: from, To: to, Weight: weight}
	g.out[from][to] = e
	g.in[to][from] = e
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge from→to. The opposite direction is untouched.
//
// Errors:
//   - ErrEdgeNotFound: if no such edge exists.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.out[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.out[from], to)
	delete(g.in[to], from)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Weight returns the weight of from→to.
//
// Errors:
//   - ErrEdgeNotFound: if no such edge exists.
//
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.out[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return e.Weight, nil
}

// Edges returns copies of all edges sorted by From, then To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for _, nbrs := range g.out {
		for _, e := range nbrs {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of directed edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
