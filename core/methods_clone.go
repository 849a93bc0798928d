// File: methods_clone.go
// Role: deep copies.

package core

// Clone returns a deep copy of the Graph, including its merge function.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithMerge(g.merge))
	for id := range g.out {
		clone.ensureVertex(id)
	}
	for from, nbrs := range g.out {
		for to, e := range nbrs {
			ne := &Edge{From: from, To: to, Weight: e.Weight}
			clone.out[from][to] = ne
			clone.in[to][from] = ne
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}
