package graph

import (
	"fmt"
)

// Graph is a simple undirected graph over the vertices 0..n-1. It is not
// modified once a reduction started working on it.
type Graph struct {
	numVertices int
	numEdges    int
	adjacent    [][]bool
}

// New returns an empty graph with numVertices vertices and no edges.
func New(numVertices int) (*Graph, error) {
	if numVertices <= 0 {
		return nil, fmt.Errorf("graph needs at least one vertex, got %d", numVertices)
	}
	adjacent := make([][]bool, numVertices)
	for i := range adjacent {
		adjacent[i] = make([]bool, numVertices)
	}
	return &Graph{numVertices: numVertices, adjacent: adjacent}, nil
}

func (g *Graph) NumVertices() int {
	return g.numVertices
}

func (g *Graph) NumEdges() int {
	return g.numEdges
}

// IsEdge reports whether u and v are connected. Out-of-range vertices are
// simply not connected to anything.
func (g *Graph) IsEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= g.numVertices || v >= g.numVertices {
		return false
	}
	return g.adjacent[u][v]
}

// AddEdge connects u and v. Adding an existing edge is not an error and
// leaves the edge count untouched.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.numVertices {
		return fmt.Errorf("vertex %d does not exist", u)
	}
	if v < 0 || v >= g.numVertices {
		return fmt.Errorf("vertex %d does not exist", v)
	}
	if u == v {
		return fmt.Errorf("self-loop on vertex %d is not allowed", u)
	}
	if !g.adjacent[u][v] {
		g.numEdges++
	}
	g.adjacent[u][v] = true
	g.adjacent[v][u] = true
	return nil
}

// Edges returns all edges in canonical order, smaller endpoint first and
// sorted ascending.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.numEdges)
	for u := 0; u < g.numVertices; u++ {
		for v := u + 1; v < g.numVertices; v++ {
			if g.adjacent[u][v] {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}
	return edges
}
