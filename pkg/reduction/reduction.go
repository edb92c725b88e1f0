package reduction

import (
	"fmt"

	"github.com/crillab/gophersat/bf"
	"github.com/sirupsen/logrus"

	"github.com/EmileRolley/project-coca/pkg/graph"
)

// EdgeConGraph is the graph and partition collaborator the reduction works
// against. *graph.EdgeConGraph implements it.
type EdgeConGraph interface {
	NumVertices() int
	NumEdges() int
	IsEdge(u, v int) bool
	NumComponents() int
	IsVertexInComponent(v, c int) bool
	AddTranslator(u, v int)
	RecomputeComponents()
}

var _ EdgeConGraph = &graph.EdgeConGraph{}

// context caches the problem parameters for one reduction call. It never
// outlives Reduce.
type context struct {
	n              int // vertices
	m              int // edges
	numComponents  int // C_H
	numTranslators int // N = C_H - 1
	cost           int // k
	graph          EdgeConGraph
	edges          []graph.Edge
}

func newContext(g EdgeConGraph, cost int) (*context, error) {
	if cost < 0 {
		return nil, fmt.Errorf("cost bound must not be negative, got %d", cost)
	}
	numComponents := g.NumComponents()
	if numComponents <= 0 {
		return nil, fmt.Errorf("graph must have at least one homogeneous component, got %d", numComponents)
	}
	n := g.NumVertices()
	if n <= 0 {
		return nil, fmt.Errorf("graph must have at least one vertex, got %d", n)
	}
	for v := 0; v < n; v++ {
		owners := 0
		for c := 0; c < numComponents; c++ {
			if g.IsVertexInComponent(v, c) {
				owners++
			}
		}
		if owners != 1 {
			return nil, fmt.Errorf("vertex %d belongs to %d components instead of exactly one", v, owners)
		}
	}
	for c := 0; c < numComponents; c++ {
		empty := true
		for v := 0; v < n; v++ {
			if g.IsVertexInComponent(v, c) {
				empty = false
				break
			}
		}
		if empty {
			return nil, fmt.Errorf("component %d is empty, component numbering must be contiguous", c)
		}
	}

	ctx := &context{
		n:              n,
		m:              g.NumEdges(),
		numComponents:  numComponents,
		numTranslators: numComponents - 1,
		cost:           cost,
		graph:          g,
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if g.IsEdge(u, v) {
				ctx.edges = append(ctx.edges, graph.Edge{U: u, V: v})
			}
		}
	}
	return ctx, nil
}

// Reduce encodes the EdgeCon decision problem for g and the cost bound into
// a single formula: it is satisfiable exactly when at most
// NumComponents() - 1 translators can be placed so that the hierarchy of
// homogeneous components reaches a depth strictly greater than cost.
func Reduce(g EdgeConGraph, cost int) (bf.Formula, error) {
	ctx, err := newContext(g, cost)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Building reduction for %d vertices, %d edges, %d components, cost %d.", ctx.n, ctx.m, ctx.numComponents, ctx.cost)
	return conjoin([]bf.Formula{
		ctx.phi2(),
		ctx.phi3(),
		ctx.phi4(),
		ctx.phi5(),
		ctx.phi8(),
	}), nil
}

// disjoin combines sub-formulas with or. Constant operands are resolved
// here and never reach the solver: gophersat mistranslates operand lists
// consisting of constants only, and an empty range must be a literal false
// rather than a zero-argument combinator call.
func disjoin(fs []bf.Formula) bf.Formula {
	literals := make([]bf.Formula, 0, len(fs))
	for _, f := range fs {
		if f == bf.False {
			continue
		}
		if f == bf.True {
			return bf.True
		}
		literals = append(literals, f)
	}
	if len(literals) == 0 {
		return bf.False
	}
	return bf.Or(literals...)
}

// conjoin combines sub-formulas with and, an empty range being the neutral
// literal true. Constants are resolved here for the same reason as in
// disjoin.
func conjoin(fs []bf.Formula) bf.Formula {
	clauses := make([]bf.Formula, 0, len(fs))
	for _, f := range fs {
		if f == bf.True {
			continue
		}
		if f == bf.False {
			return bf.False
		}
		clauses = append(clauses, f)
	}
	if len(clauses) == 0 {
		return bf.True
	}
	return bf.And(clauses...)
}

// phi21 encodes "each translator is placed on at most one edge".
func (ctx *context) phi21() []bf.Formula {
	var clauses []bf.Formula
	for i := 0; i < ctx.numTranslators; i++ {
		for e := 0; e < len(ctx.edges); e++ {
			for f := e + 1; f < len(ctx.edges); f++ {
				clauses = append(clauses, bf.Or(
					bf.Not(TranslatorVar(ctx.edges[e].U, ctx.edges[e].V, i)),
					bf.Not(TranslatorVar(ctx.edges[f].U, ctx.edges[f].V, i)),
				))
			}
		}
	}
	logrus.Debugf("phi_2_1: %d clauses", len(clauses))
	return clauses
}

// phi22 encodes "each edge receives at most one translator".
func (ctx *context) phi22() []bf.Formula {
	var clauses []bf.Formula
	for _, edge := range ctx.edges {
		for i := 0; i < ctx.numTranslators; i++ {
			for j := i + 1; j < ctx.numTranslators; j++ {
				clauses = append(clauses, bf.Or(
					bf.Not(TranslatorVar(edge.U, edge.V, i)),
					bf.Not(TranslatorVar(edge.U, edge.V, j)),
				))
			}
		}
	}
	logrus.Debugf("phi_2_2: %d clauses", len(clauses))
	return clauses
}

func (ctx *context) phi2() bf.Formula {
	return conjoin(append(ctx.phi21(), ctx.phi22()...))
}

// phi31 encodes "every component except the root has at least one parent".
func (ctx *context) phi31() []bf.Formula {
	var clauses []bf.Formula
	for j := 1; j < ctx.numComponents; j++ {
		var parents []bf.Formula
		for j1 := 0; j1 < ctx.numComponents; j1++ {
			if j1 != j {
				parents = append(parents, ParentVar(j, j1))
			}
		}
		clauses = append(clauses, disjoin(parents))
	}
	return clauses
}

// phi32 encodes "every component except the root has at most one parent".
func (ctx *context) phi32() []bf.Formula {
	var clauses []bf.Formula
	for j := 1; j < ctx.numComponents; j++ {
		for j1 := 0; j1 < ctx.numComponents; j1++ {
			if j1 == j {
				continue
			}
			for j2 := j1 + 1; j2 < ctx.numComponents; j2++ {
				if j2 == j {
					continue
				}
				clauses = append(clauses, bf.Or(
					bf.Not(ParentVar(j, j1)),
					bf.Not(ParentVar(j, j2)),
				))
			}
		}
	}
	return clauses
}

func (ctx *context) phi3() bf.Formula {
	return conjoin(append(ctx.phi31(), ctx.phi32()...))
}

// phi41 encodes "every component sits on at least one level".
func (ctx *context) phi41() []bf.Formula {
	var clauses []bf.Formula
	for c := 0; c < ctx.numComponents; c++ {
		var levels []bf.Formula
		for h := 0; h < ctx.numTranslators; h++ {
			levels = append(levels, LevelVar(c, h))
		}
		clauses = append(clauses, disjoin(levels))
	}
	return clauses
}

// phi42 encodes "every component sits on at most one level".
func (ctx *context) phi42() []bf.Formula {
	var clauses []bf.Formula
	for c := 0; c < ctx.numComponents; c++ {
		for h := 0; h < ctx.numTranslators; h++ {
			for h1 := h + 1; h1 < ctx.numTranslators; h1++ {
				clauses = append(clauses, bf.Or(
					bf.Not(LevelVar(c, h)),
					bf.Not(LevelVar(c, h1)),
				))
			}
		}
	}
	return clauses
}

func (ctx *context) phi4() bf.Formula {
	return conjoin(append(ctx.phi41(), ctx.phi42()...))
}

// phi5 encodes "some component sits at level cost or deeper", which makes
// the hierarchy strictly deeper than the cost bound. When cost >= N the
// level range is empty and the formula is a literal false.
func (ctx *context) phi5() bf.Formula {
	var literals []bf.Formula
	for c := 0; c < ctx.numComponents; c++ {
		for h := ctx.cost; h < ctx.numTranslators; h++ {
			literals = append(literals, LevelVar(c, h))
		}
	}
	return disjoin(literals)
}

// phi6 encodes "some edge crossing from component j2 into component j1
// carries a translator". Without such an edge the formula is a literal
// false, which via phi8 forbids the parent relation.
func (ctx *context) phi6(j1, j2 int) bf.Formula {
	var literals []bf.Formula
	for _, edge := range ctx.edges {
		if !ctx.graph.IsVertexInComponent(edge.V, j1) || !ctx.graph.IsVertexInComponent(edge.U, j2) {
			continue
		}
		for i := 0; i < ctx.numTranslators; i++ {
			literals = append(literals, TranslatorVar(edge.U, edge.V, i))
		}
	}
	return disjoin(literals)
}

// phi7 encodes "if component j1 sits at level h then its parent j2 sits at
// level h-1".
func (ctx *context) phi7(j1, j2 int) bf.Formula {
	var clauses []bf.Formula
	for h := 1; h < ctx.numTranslators; h++ {
		clauses = append(clauses, bf.Or(
			bf.Not(LevelVar(j1, h)),
			LevelVar(j2, h-1),
		))
	}
	return conjoin(clauses)
}

// phi8 ties the parent relation to the crossing-edge and level-consistency
// conditions for every ordered pair of distinct components.
func (ctx *context) phi8() bf.Formula {
	var clauses []bf.Formula
	for j1 := 0; j1 < ctx.numComponents; j1++ {
		for j2 := 0; j2 < ctx.numComponents; j2++ {
			if j1 == j2 {
				continue
			}
			// phi6 and phi7 may degenerate to constants, so both
			// implications go through disjoin
			notParent := bf.Not(ParentVar(j1, j2))
			clauses = append(clauses,
				disjoin([]bf.Formula{notParent, ctx.phi6(j1, j2)}),
				disjoin([]bf.Formula{notParent, ctx.phi7(j1, j2)}),
			)
		}
	}
	return conjoin(clauses)
}
