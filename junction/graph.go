package junction

import (
	"maps"
	"slices"

	"github.com/katalvlaran/trailmaze/core"
	"github.com/katalvlaran/trailmaze/maze"
)

// Adjacency maps a node to its reachable neighbours and the corridor length
// to each of them.
type Adjacency map[maze.Point]map[maze.Point]int

// port is one end of a corridor: the node and the unit step the corridor
// takes when leaving it.
type port struct {
	at  maze.Point
	dir maze.Point
}

// Graph is the compiled junction graph. It is built once by Compile and is
// read-only afterwards, so it may be shared across goroutines freely.
//
// Edges live in a core.Graph keyed by Point.String. Besides the edges the
// graph remembers every traced corridor as a pair of ports, whether or not
// the mode allows walking it; Prune uses them to find the maze's outer
// border.
type Graph struct {
	// Entrance is the start node on the first row.
	Entrance maze.Point
	// Exit is the goal node on the last row.
	Exit maze.Point
	// ExitRow is the row index of Exit; any node on it is terminal.
	ExitRow int
	// Mode is the traversal mode the graph was compiled for.
	Mode maze.Mode

	store     *core.Graph
	points    map[string]maze.Point
	corridors map[port]port
}

func newGraph(g *maze.Grid, mode maze.Mode) *Graph {
	jg := &Graph{
		Entrance:  g.Entrance,
		Exit:      g.Exit,
		ExitRow:   g.Exit.Row,
		Mode:      mode,
		store:     core.NewGraph(core.WithMerge(core.KeepMax)),
		points:    make(map[string]maze.Point),
		corridors: make(map[port]port),
	}
	jg.addNode(g.Entrance)
	jg.addNode(g.Exit)

	return jg
}

// Store exposes the underlying edge store. Callers must not modify it.
func (g *Graph) Store() *core.Graph { return g.store }

// Point maps a store vertex ID back to its grid coordinate.
func (g *Graph) Point(id string) (maze.Point, bool) {
	p, ok := g.points[id]
	return p, ok
}

// HasNode reports whether p is a node of the graph.
func (g *Graph) HasNode(p maze.Point) bool {
	_, ok := g.points[p.String()]
	return ok
}

// Nodes returns every node in row-major order.
func (g *Graph) Nodes() []maze.Point {
	out := slices.Collect(maps.Values(g.points))
	slices.SortFunc(out, maze.Point.Compare)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.store.VertexCount() }

// Neighbors returns the heads of p's outgoing edges in row-major order.
func (g *Graph) Neighbors(p maze.Point) []maze.Point {
	ids, err := g.store.NeighborIDs(p.String())
	if err != nil {
		return []maze.Point{}
	}

	return g.toPoints(ids)
}

// Weight returns the length of edge from→to and whether it exists.
func (g *Graph) Weight(from, to maze.Point) (int, bool) {
	w, err := g.store.Weight(from.String(), to.String())
	if err != nil {
		return 0, false
	}

	return int(w), true
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph) HasEdge(from, to maze.Point) bool {
	return g.store.HasEdge(from.String(), to.String())
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int { return g.store.EdgeCount() }

// Degree returns the number of distinct nodes joined to p by an edge in
// either direction: the topological degree of p in the maze.
func (g *Graph) Degree(p maze.Point) int {
	_, _, adjacent, err := g.store.Degree(p.String())
	if err != nil {
		return 0
	}

	return adjacent
}

// Adjacency returns a deep copy of the edges as a nested map. Every node is
// present, including those without outgoing edges.
func (g *Graph) Adjacency() Adjacency {
	out := make(Adjacency, len(g.points))
	for _, p := range g.points {
		out[p] = make(map[maze.Point]int)
	}
	for _, e := range g.store.Edges() {
		out[g.points[e.From]][g.points[e.To]] = int(e.Weight)
	}

	return out
}

// Clone returns an independent copy of g.
func (g *Graph) Clone() *Graph {
	c := *g
	c.store = g.store.Clone()
	c.points = maps.Clone(g.points)
	c.corridors = maps.Clone(g.corridors)

	return &c
}

// Equal reports whether g and o have the same endpoints, mode, nodes and
// edges.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Entrance != o.Entrance || g.Exit != o.Exit || g.ExitRow != o.ExitRow || g.Mode != o.Mode {
		return false
	}

	return slices.Equal(g.store.Vertices(), o.store.Vertices()) &&
		slices.Equal(g.store.Edges(), o.store.Edges())
}

// addNode registers p and reports whether it was already known.
func (g *Graph) addNode(p maze.Point) (known bool) {
	id := p.String()
	if _, ok := g.points[id]; ok {
		return true
	}
	g.points[id] = p
	// a Point always formats to a non-empty ID
	_ = g.store.AddVertex(id)

	return false
}

// setEdge records from→to, keeping the longer of two parallel corridors.
func (g *Graph) setEdge(from, to maze.Point, w int) error {
	return g.store.AddEdge(from.String(), to.String(), int64(w))
}

// removeEdge deletes from→to and reports whether it existed.
func (g *Graph) removeEdge(from, to maze.Point) bool {
	return g.store.RemoveEdge(from.String(), to.String()) == nil
}

// addCorridor records both ends of a traced corridor.
func (g *Graph) addCorridor(a, b port) {
	g.corridors[a] = b
	g.corridors[b] = a
}

func (g *Graph) toPoints(ids []string) []maze.Point {
	out := make([]maze.Point, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.points[id])
	}
	slices.SortFunc(out, maze.Point.Compare)

	return out
}
