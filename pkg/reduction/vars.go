package reduction

import (
	"fmt"

	"github.com/crillab/gophersat/bf"
)

// Variable names are the wire contract with the solver's variable namespace.
// The solver keys variables by name, so equal names always resolve to the
// same variable and the distinct x/p/l prefixes rule out collisions between
// the three families:
//
//	x_[(a,b),i]  edge (a,b) carries translator i
//	p_[j,j1]     component j1 is the parent of component j
//	l_[j,h]      component j sits at level h of the hierarchy

func translatorVarName(u, v, i int) string {
	if v < u {
		u, v = v, u
	}
	return fmt.Sprintf("x_[(%d,%d),%d]", u, v, i)
}

func parentVarName(child, parent int) string {
	return fmt.Sprintf("p_[%d,%d]", child, parent)
}

func levelVarName(component, level int) string {
	return fmt.Sprintf("l_[%d,%d]", component, level)
}

// TranslatorVar is true when the edge between u and v carries translator i.
// Both endpoint orders name the same variable.
func TranslatorVar(u, v, i int) bf.Formula {
	return bf.Var(translatorVarName(u, v, i))
}

// ParentVar is true when parent is the parent component of child.
func ParentVar(child, parent int) bf.Formula {
	return bf.Var(parentVarName(child, parent))
}

// LevelVar is true when component sits at the given level.
func LevelVar(component, level int) bf.Formula {
	return bf.Var(levelVarName(component, level))
}
