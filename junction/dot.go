package junction

import (
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/trailmaze/maze"
)

// dotNode is a junction rendered with its coordinate as DOT identifier.
type dotNode struct {
	id  int64
	pos maze.Point
	// role is "entrance", "exit" or empty
	role string
}

func (n dotNode) ID() int64 { return n.id }
func (n dotNode) DOTID() string { return n.pos.String() }
func (n dotNode) Attributes() []encoding.Attribute {
	if n.role == "" {
		return nil
	}

	return []encoding.Attribute{{Key: "shape", Value: "doublecircle"}, {Key: "xlabel", Value: n.role}}
}

// dotEdge is a corridor labelled by its length.
type dotEdge struct {
	from, to dotNode
	steps    int
}

func (e dotEdge) From() graph.Node { return e.from }
func (e dotEdge) To() graph.Node { return e.to }
func (e dotEdge) ReversedEdge() graph.Edge { return dotEdge{from: e.to, to: e.from, steps: e.steps} }
func (e dotEdge) Weight() float64 { return float64(e.steps) }
func (e dotEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: strconv.Itoa(e.steps)}}
}

// Gonum copies g into a gonum weighted directed graph. Node IDs follow the
// row-major order of Nodes, so the entrance is always ID 0.
func (g *Graph) Gonum() *simple.WeightedDirectedGraph {
	wg := simple.NewWeightedDirectedGraph(0, 0)
	nodes := make(map[maze.Point]dotNode, g.NodeCount())
	for i, p := range g.Nodes() {
		n := dotNode{id: int64(i), pos: p}
		switch p {
		case g.Entrance:
			n.role = "entrance"
		case g.Exit:
			n.role = "exit"
		}
		nodes[p] = n
		wg.AddNode(n)
	}
	for _, e := range g.store.Edges() {
		from, to := nodes[g.points[e.From]], nodes[g.points[e.To]]
		wg.SetWeightedEdge(dotEdge{from: from, to: to, steps: int(e.Weight)})
	}

	return wg
}

// DOT renders g in Graphviz format under the given graph name.
func (g *Graph) DOT(name string) ([]byte, error) {
	return dot.Marshal(g.Gonum(), name, "", "\t")
}
