package render

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/EmileRolley/project-coca/pkg/graph"
	"github.com/EmileRolley/project-coca/pkg/reduction"
)

func newDecodedPath(t *testing.T) (*graph.EdgeConGraph, *reduction.Hierarchy, map[int]graph.Edge) {
	g := NewGomegaWithT(t)
	gr, err := graph.New(3)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(gr.AddEdge(0, 1)).To(Succeed())
	g.Expect(gr.AddEdge(1, 2)).To(Succeed())
	e, err := graph.NewEdgeConGraph(gr, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	g.Expect(err).ToNot(HaveOccurred())

	hierarchy := &reduction.Hierarchy{
		Parent: []int{-1, 0, 1},
		Level:  []int{0, 0, 1},
	}
	assignment := map[int]graph.Edge{
		0: {U: 0, V: 1},
		1: {U: 1, V: 2},
	}
	return e, hierarchy, assignment
}

func TestToDOT(t *testing.T) {
	g := NewGomegaWithT(t)
	e, hierarchy, assignment := newDecodedPath(t)

	dot := ToDOT(e, hierarchy, assignment)
	g.Expect(dot).To(HavePrefix("digraph hierarchy {"))
	g.Expect(dot).To(ContainSubstring(`c0 [label="C0 {0}\nlevel 0"];`))
	g.Expect(dot).To(ContainSubstring(`c2 [label="C2 {2}\nlevel 1"];`))
	g.Expect(dot).To(ContainSubstring("c0 -> c1;"))
	g.Expect(dot).To(ContainSubstring("c1 -> c2;"))
	g.Expect(dot).To(ContainSubstring(`c0 -> c1 [style=dashed, dir=none, label="t0 (0,1)"];`))
	g.Expect(dot).To(ContainSubstring(`c1 -> c2 [style=dashed, dir=none, label="t1 (1,2)"];`))
}

func TestToDOTWithoutLevels(t *testing.T) {
	g := NewGomegaWithT(t)
	e, hierarchy, _ := newDecodedPath(t)
	hierarchy.Level = []int{-1, -1, -1}

	dot := ToDOT(e, hierarchy, map[int]graph.Edge{})
	g.Expect(dot).To(ContainSubstring(`c1 [label="C1 {1}"];`))
	g.Expect(dot).ToNot(ContainSubstring("level"))
	g.Expect(dot).ToNot(ContainSubstring("dashed"))
}
