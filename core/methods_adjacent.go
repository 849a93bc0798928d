// File: methods_adjacent.go
// Role: neighbourhood queries: NeighborIDs, InNeighborIDs, Degree.

package core

import "sort"

// NeighborIDs returns the heads of id's outgoing edges in ascending order.
//
// Errors:
//   - ErrVertexNotFound: if id is not a vertex.
//
// Complexity: O(k log k) for out-degree k.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.out[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(nbrs), nil
}

// InNeighborIDs returns the tails of id's incoming edges in ascending order.
//
// Errors:
//   - ErrVertexNotFound: if id is not a vertex.
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.in[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(nbrs), nil
}

// Degree returns the in-degree, the out-degree and the number of distinct
// vertices joined to id in either direction.
//
// Errors:
//   - ErrVertexNotFound: if id is not a vertex.
//
// Complexity: O(in + out).
func (g *Graph) Degree(id string) (in, out, adjacent int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	outs, ok := g.out[id]
	if !ok {
		return 0, 0, 0, ErrVertexNotFound
	}
	ins := g.in[id]
	adjacent = len(outs)
	for from := range ins {
		if _, both := outs[from]; !both {
			adjacent++
		}
	}

	return len(ins), len(outs), adjacent, nil
}

func sortedKeys(m map[string]*Edge) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
