package graph

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Edge is an undirected edge in canonical form, smaller endpoint first.
type Edge struct {
	U int
	V int
}

// NewEdge canonicalizes the endpoint order.
func NewEdge(u, v int) Edge {
	if v < u {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}

// EdgeConGraph is a graph whose edges are either homogeneous or
// heterogeneous, together with a set of translators placed on heterogeneous
// edges and the partition of the vertices into homogeneous components.
//
// A homogeneous component is a connected component of the subgraph formed by
// all homogeneous edges plus the heterogeneous edges which carry a
// translator. Components are numbered by first reached vertex, so the
// component containing vertex 0 is always component 0.
type EdgeConGraph struct {
	graph         *Graph
	heterogeneous map[Edge]bool
	translators   []Edge
	hasTranslator map[Edge]bool
	componentOf   []int
	numComponents int
}

// NewEdgeConGraph wraps g with the given set of heterogeneous edges and
// computes the initial homogeneous components. Every heterogeneous edge must
// exist in g.
func NewEdgeConGraph(g *Graph, heterogeneous []Edge) (*EdgeConGraph, error) {
	e := &EdgeConGraph{
		graph:         g,
		heterogeneous: map[Edge]bool{},
		hasTranslator: map[Edge]bool{},
		componentOf:   make([]int, g.NumVertices()),
	}
	for _, edge := range heterogeneous {
		edge = NewEdge(edge.U, edge.V)
		if !g.IsEdge(edge.U, edge.V) {
			return nil, fmt.Errorf("heterogeneous edge (%d,%d) does not exist in the graph", edge.U, edge.V)
		}
		e.heterogeneous[edge] = true
	}
	e.RecomputeComponents()
	return e, nil
}

func (e *EdgeConGraph) Graph() *Graph {
	return e.graph
}

func (e *EdgeConGraph) NumVertices() int {
	return e.graph.NumVertices()
}

func (e *EdgeConGraph) NumEdges() int {
	return e.graph.NumEdges()
}

func (e *EdgeConGraph) IsEdge(u, v int) bool {
	return e.graph.IsEdge(u, v)
}

// IsHeterogeneous reports whether the edge between u and v needs a
// translator before it connects homogeneous components.
func (e *EdgeConGraph) IsHeterogeneous(u, v int) bool {
	return e.heterogeneous[NewEdge(u, v)]
}

func (e *EdgeConGraph) NumComponents() int {
	return e.numComponents
}

// ComponentOf returns the homogeneous component containing v.
func (e *EdgeConGraph) ComponentOf(v int) int {
	return e.componentOf[v]
}

func (e *EdgeConGraph) IsVertexInComponent(v, c int) bool {
	if v < 0 || v >= len(e.componentOf) {
		return false
	}
	return e.componentOf[v] == c
}

// ComponentVertices returns all vertices of component c in ascending order.
func (e *EdgeConGraph) ComponentVertices(c int) []int {
	var vertices []int
	for v, comp := range e.componentOf {
		if comp == c {
			vertices = append(vertices, v)
		}
	}
	return vertices
}

// AddTranslator places a translator on the edge between u and v. The
// component partition is not updated until RecomputeComponents is called.
func (e *EdgeConGraph) AddTranslator(u, v int) {
	edge := NewEdge(u, v)
	if e.hasTranslator[edge] {
		return
	}
	e.hasTranslator[edge] = true
	e.translators = append(e.translators, edge)
}

func (e *EdgeConGraph) HasTranslator(u, v int) bool {
	return e.hasTranslator[NewEdge(u, v)]
}

// Translators returns the translator edges in insertion order.
func (e *EdgeConGraph) Translators() []Edge {
	return e.translators
}

// ResetTranslators removes all translators and recomputes the partition.
func (e *EdgeConGraph) ResetTranslators() {
	e.translators = nil
	e.hasTranslator = map[Edge]bool{}
	e.RecomputeComponents()
}

// RecomputeComponents rebuilds the homogeneous component partition from the
// current translator set. An edge connects two vertices of one component if
// it is homogeneous or carries a translator.
func (e *EdgeConGraph) RecomputeComponents() {
	n := e.graph.NumVertices()
	for v := range e.componentOf {
		e.componentOf[v] = -1
	}

	component := 0
	for start := 0; start < n; start++ {
		if e.componentOf[start] != -1 {
			continue
		}
		queue := []int{start}
		e.componentOf[start] = component
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for v := 0; v < n; v++ {
				if e.componentOf[v] != -1 || !e.connects(u, v) {
					continue
				}
				e.componentOf[v] = component
				queue = append(queue, v)
			}
		}
		component++
	}
	e.numComponents = component
	logrus.Debugf("partitioned %d vertices into %d homogeneous components", n, component)
}

func (e *EdgeConGraph) connects(u, v int) bool {
	if !e.graph.IsEdge(u, v) {
		return false
	}
	edge := NewEdge(u, v)
	return !e.heterogeneous[edge] || e.hasTranslator[edge]
}
