package reduction

import (
	"testing"

	"github.com/crillab/gophersat/bf"
	. "github.com/onsi/gomega"

	"github.com/EmileRolley/project-coca/pkg/graph"
)

func TestDecodeModelRoundTrip(t *testing.T) {
	g := NewGomegaWithT(t)
	e := newHeterogeneousPath(t)

	formula, err := Reduce(e, 1)
	g.Expect(err).ToNot(HaveOccurred())
	model := bf.Solve(formula)
	g.Expect(model).ToNot(BeNil())

	g.Expect(DecodeModel(model, e)).To(Succeed())
	// both heterogeneous edges need a translator to chain three components
	g.Expect(e.Translators()).To(ConsistOf(graph.Edge{U: 0, V: 1}, graph.Edge{U: 1, V: 2}))
	g.Expect(e.NumComponents()).To(Equal(1))
}

func TestDecodeModelWithoutTranslators(t *testing.T) {
	g := NewGomegaWithT(t)
	e := newHeterogeneousPath(t)

	g.Expect(DecodeModel(Model{}, e)).To(Succeed())
	g.Expect(e.Translators()).To(BeEmpty())
	g.Expect(e.NumComponents()).To(Equal(3))
}

func TestDecodeAssignmentRejectsDoublyTaggedEdge(t *testing.T) {
	g := NewGomegaWithT(t)
	e := newHeterogeneousPath(t)

	model := Model{
		translatorVarName(0, 1, 0): true,
		translatorVarName(0, 1, 1): true,
	}
	_, err := DecodeAssignment(model, e)
	g.Expect(err).To(MatchError("inconsistent model: edge (0,1) carries translators 0 and 1"))
}

func TestDecodeAssignment(t *testing.T) {
	g := NewGomegaWithT(t)
	e := newHeterogeneousPath(t)

	model := Model{
		translatorVarName(0, 1, 1): true,
		translatorVarName(1, 2, 0): true,
	}
	assignment, err := DecodeAssignment(model, e)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(assignment).To(Equal(map[int]graph.Edge{
		0: {U: 1, V: 2},
		1: {U: 0, V: 1},
	}))
}

func TestDecodeHierarchy(t *testing.T) {
	g := NewGomegaWithT(t)
	e := buildGraph(t, 2, nil, []graph.Edge{{U: 0, V: 1}})

	formula, err := Reduce(e, 0)
	g.Expect(err).ToNot(HaveOccurred())
	model := bf.Solve(formula)
	g.Expect(model).ToNot(BeNil())

	h := DecodeHierarchy(model, e)
	g.Expect(h.Parent).To(Equal([]int{-1, 0}))
	g.Expect(h.Level).To(Equal([]int{0, 0}))
}
