package core_test

import (
	"fmt"

	"github.com/katalvlaran/trailmaze/core"
)

// ExampleGraph shows a store that keeps the heavier of two parallel edges.
func ExampleGraph() {
	g := core.NewGraph(core.WithMerge(core.KeepMax))
	_ = g.AddEdge("0,1", "5,3", 15)
	_ = g.AddEdge("5,3", "3,11", 22)
	_ = g.AddEdge("5,3", "3,11", 30)

	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s: %d\n", e.From, e.To, e.Weight)
	}
	_ = g.RemoveEdge("0,1", "5,3")
	fmt.Println("edges left:", g.EdgeCount())

	// Output:
	// 0,1 -> 5,3: 15
	// 5,3 -> 3,11: 30
	// edges left: 1
}
