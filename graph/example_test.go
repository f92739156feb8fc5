package graph_test

import (
	"fmt"

	"github.com/paireks/meshmeshmesh-sub000/graph"
	"github.com/paireks/meshmeshmesh-sub000/topo"
)

// ExampleGraph_SplitDisconnectedComponents splits a graph made of a
// triangle and a separate edge pair into its two components.
func ExampleGraph_SplitDisconnectedComponents() {
	g := graph.NewUndirected(5, []topo.Edge{
		topo.NewEdge(0, 1),
		topo.NewEdge(1, 2),
		topo.NewEdge(2, 0),
		topo.NewEdge(3, 4),
	})

	fmt.Println(g.IsConnected())
	fmt.Println(g.SplitDisconnectedComponents())
	// Output:
	// false
	// [[0 1 2] [3 4]]
}

// ExampleGraph_SplitDisconnectedLoops recovers the cyclic vertex order of
// two closed polygon outlines stored in one graph.
func ExampleGraph_SplitDisconnectedLoops() {
	g := graph.New(7, []topo.Edge{
		topo.NewEdge(0, 1),
		topo.NewEdge(1, 2),
		topo.NewEdge(2, 3),
		topo.NewEdge(3, 0),
		topo.NewEdge(4, 5),
		topo.NewEdge(5, 6),
		topo.NewEdge(6, 4),
	})

	for _, loop := range g.SplitDisconnectedLoops() {
		fmt.Println(loop)
	}
	// Output:
	// [0 1 2 3]
	// [4 5 6]
}
