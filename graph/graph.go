package graph

import (
	"errors"
	"fmt"

	"github.com/paireks/meshmeshmesh-sub000/geom"
	"github.com/paireks/meshmeshmesh-sub000/topo"
)

// Sentinel errors for graph construction.
var (
	// ErrLengthMismatch indicates paired per-face inputs of differing length.
	ErrLengthMismatch = errors.New("graph: paired inputs differ in length")
)

// Graph is an adjacency graph over integer vertex ids.
//
// The edge list defines the graph; the two adjacency indexes are derived
// from it and kept in lock-step on every mutation, which is why they are
// private behind copying getters. Edges are directed — an undirected graph
// stores both directions as separate edges.
type Graph struct {
	vertexCount int

	edges []topo.Edge

	// adjacencyVertices[v] lists the end vertex of every edge starting at
	// v; adjacencyEdges[v] lists the matching positions in edges. Both
	// follow edge-insertion order.
	adjacencyVertices [][]int
	adjacencyEdges    [][]int
}

// New builds a Graph over vertexCount vertices from the given directed
// edges. An edge endpoint beyond vertexCount grows the vertex range to
// include it.
func New(vertexCount int, edges []topo.Edge) *Graph {
	g := &Graph{
		vertexCount:       vertexCount,
		edges:             make([]topo.Edge, 0, len(edges)),
		adjacencyVertices: make([][]int, vertexCount),
		adjacencyEdges:    make([][]int, vertexCount),
	}
	for _, e := range edges {
		g.AddEdge(e)
	}

	return g
}

// NewUndirected builds a Graph over vertexCount vertices from an arbitrary
// directed edge list, canonicalized so that every undirected edge is
// present as exactly one pair of directions.
func NewUndirected(vertexCount int, edges []topo.Edge) *Graph {
	return New(vertexCount, topo.UniqueUndirected(edges))
}

// FromFaceNeighbours builds the dual graph of a face-neighbour table: one
// vertex per face, one directed edge face→neighbour for every occupied edge
// slot. Since both sides of a shared edge name each other, the result is
// symmetric without further work.
func FromFaceNeighbours(neighbours []topo.FaceNeighbours) *Graph {
	g := New(len(neighbours), nil)
	for face, fn := range neighbours {
		for _, neighbour := range []int{fn.First, fn.Second, fn.Third} {
			if neighbour != topo.NoNeighbour {
				g.AddEdge(topo.NewEdge(face, neighbour))
			}
		}
	}

	return g
}

// FromFaceNeighboursWithMaxAngle builds the dual graph like
// FromFaceNeighbours, but suppresses every edge whose dihedral angle
// exceeds maxAngle, so that sharply folded face pairs end up in separate
// components. The angle table must be slot-aligned with the neighbour
// table; differing lengths fail with ErrLengthMismatch.
func FromFaceNeighboursWithMaxAngle(neighbours []topo.FaceNeighbours, angles []topo.FaceNeighboursAngle, maxAngle float64) (*Graph, error) {
	if len(neighbours) != len(angles) {
		return nil, fmt.Errorf("%w: %d face neighbours, %d angles",
			ErrLengthMismatch, len(neighbours), len(angles))
	}

	g := New(len(neighbours), nil)
	for face, fn := range neighbours {
		slots := [3]int{fn.First, fn.Second, fn.Third}
		slotAngles := [3]float64{angles[face].First, angles[face].Second, angles[face].Third}
		for slot, neighbour := range slots {
			if neighbour == topo.NoNeighbour || slotAngles[slot] > maxAngle {
				continue
			}
			g.AddEdge(topo.NewEdge(face, neighbour))
		}
	}

	return g, nil
}

// FromClosedPolygon builds the directed loop of a closed polygon: one
// vertex per polygon vertex and an edge from each vertex to the next, the
// last one closing back to vertex 0.
func FromClosedPolygon(p geom.Polygon2D) *Graph {
	n := len(p.Vertices)
	g := New(n, nil)
	for i := 0; i < n; i++ {
		g.AddEdge(topo.NewEdge(i, (i+1)%n))
	}

	return g
}

// AddEdge appends e to the graph, updating both adjacency indexes
// incrementally; existing index entries are never rebuilt. The vertex range
// grows when an endpoint lies beyond it.
func (g *Graph) AddEdge(e topo.Edge) {
	if grown := max(e.Start, e.End) + 1; grown > g.vertexCount {
		g.grow(grown)
	}

	id := len(g.edges)
	g.edges = append(g.edges, e)
	g.adjacencyVertices[e.Start] = append(g.adjacencyVertices[e.Start], e.End)
	g.adjacencyEdges[e.Start] = append(g.adjacencyEdges[e.Start], id)
}

// grow extends the vertex range to n vertices.
func (g *Graph) grow(n int) {
	for len(g.adjacencyVertices) < n {
		g.adjacencyVertices = append(g.adjacencyVertices, nil)
		g.adjacencyEdges = append(g.adjacencyEdges, nil)
	}
	g.vertexCount = n
}

// VertexCount returns how many vertices the graph spans.
func (g *Graph) VertexCount() int {
	return g.vertexCount
}

// Edges returns a copy of the defining edge list in insertion order.
func (g *Graph) Edges() []topo.Edge {
	edges := make([]topo.Edge, len(g.edges))
	copy(edges, g.edges)

	return edges
}

// AdjacencyVertices returns a copy of the per-vertex neighbour index: for
// every vertex, the end vertices of its outgoing edges in insertion order.
func (g *Graph) AdjacencyVertices() [][]int {
	return copyNested(g.adjacencyVertices)
}

// AdjacencyEdges returns a copy of the per-vertex edge index: for every
// vertex, the edge-list positions of its outgoing edges in insertion order.
func (g *Graph) AdjacencyEdges() [][]int {
	return copyNested(g.adjacencyEdges)
}

func copyNested(src [][]int) [][]int {
	out := make([][]int, len(src))
	for i, row := range src {
		if row == nil {
			continue
		}
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}

	return out
}
