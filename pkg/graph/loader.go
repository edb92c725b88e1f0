package graph

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"
)

// File is the on-disk description of an EdgeConGraph.
type File struct {
	Vertices int        `json:"vertices"`
	Edges    []FileEdge `json:"edges"`
}

type FileEdge struct {
	From          int  `json:"from"`
	To            int  `json:"to"`
	Heterogeneous bool `json:"heterogeneous,omitempty"`
}

// Load builds an EdgeConGraph from yaml data and computes its initial
// homogeneous components.
func Load(data []byte) (*EdgeConGraph, error) {
	file := &File{}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to parse graph file: %v", err)
	}
	g, err := New(file.Vertices)
	if err != nil {
		return nil, err
	}
	var heterogeneous []Edge
	seen := map[Edge]bool{}
	for _, edge := range file.Edges {
		canonical := NewEdge(edge.From, edge.To)
		if seen[canonical] {
			return nil, fmt.Errorf("duplicate edge (%d,%d)", canonical.U, canonical.V)
		}
		seen[canonical] = true
		if err := g.AddEdge(edge.From, edge.To); err != nil {
			return nil, err
		}
		if edge.Heterogeneous {
			heterogeneous = append(heterogeneous, canonical)
		}
	}
	logrus.Debugf("loaded graph with %d vertices, %d edges, %d heterogeneous", g.NumVertices(), g.NumEdges(), len(heterogeneous))
	return NewEdgeConGraph(g, heterogeneous)
}

// LoadFile reads and parses the graph file at path.
func LoadFile(path string) (*EdgeConGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// SaveFile writes the graph description to path as yaml. It refuses to
// overwrite an existing file.
func SaveFile(path string, file *File) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("graph file %s already exists", path)
	} else if !os.IsNotExist(err) {
		return err
	}
	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0660)
}
