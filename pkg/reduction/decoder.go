package reduction

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/EmileRolley/project-coca/pkg/graph"
)

// Model is a satisfying assignment keyed by variable name, as produced by
// the solving backend. The decoder only reads it.
type Model map[string]bool

// DecodeAssignment extracts which edge carries which translator from the
// model. The formula guarantees every edge carries at most one translator,
// but a model tagging one edge twice is still rejected as an internal
// consistency fault instead of being trusted.
func DecodeAssignment(model Model, g EdgeConGraph) (map[int]graph.Edge, error) {
	n := g.NumVertices()
	numTranslators := g.NumComponents() - 1
	assignment := map[int]graph.Edge{}
	carrying := map[graph.Edge]int{}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if !g.IsEdge(u, v) {
				continue
			}
			for i := 0; i < numTranslators; i++ {
				if !model[translatorVarName(u, v, i)] {
					continue
				}
				edge := graph.Edge{U: u, V: v}
				if previous, taken := carrying[edge]; taken {
					return nil, fmt.Errorf("inconsistent model: edge (%d,%d) carries translators %d and %d", u, v, previous, i)
				}
				carrying[edge] = i
				assignment[i] = edge
			}
		}
	}
	return assignment, nil
}

// DecodeModel places the translators chosen by the model on the graph and
// recomputes the homogeneous components from them.
func DecodeModel(model Model, g EdgeConGraph) error {
	assignment, err := DecodeAssignment(model, g)
	if err != nil {
		return err
	}
	indices := maps.Keys(assignment)
	slices.Sort(indices)
	for _, i := range indices {
		edge := assignment[i]
		logrus.Debugf("translator %d sits on edge (%d,%d)", i, edge.U, edge.V)
		g.AddTranslator(edge.U, edge.V)
	}
	g.RecomputeComponents()
	return nil
}

// Hierarchy is the component tree a satisfying model chose. Parent holds
// the parent component of each component, -1 for the root. Level holds the
// depth the model assigned, -1 when the model assigns none.
type Hierarchy struct {
	Parent []int
	Level  []int
}

// DecodeHierarchy reads the parent and level variables of all components
// from the model. It must run against the partition the formula was built
// from, before DecodeModel recomputes the components.
func DecodeHierarchy(model Model, g EdgeConGraph) *Hierarchy {
	numComponents := g.NumComponents()
	numTranslators := numComponents - 1
	h := &Hierarchy{
		Parent: make([]int, numComponents),
		Level:  make([]int, numComponents),
	}
	for j := 0; j < numComponents; j++ {
		h.Parent[j] = -1
		h.Level[j] = -1
		for j1 := 0; j1 < numComponents; j1++ {
			if j1 != j && model[parentVarName(j, j1)] {
				h.Parent[j] = j1
				break
			}
		}
		for level := 0; level < numTranslators; level++ {
			if model[levelVarName(j, level)] {
				h.Level[j] = level
				break
			}
		}
	}
	return h
}
