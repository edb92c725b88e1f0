package solver

import (
	"github.com/crillab/gophersat/bf"
	"github.com/sirupsen/logrus"

	"github.com/EmileRolley/project-coca/pkg/reduction"
)

// Solve hands the formula to gophersat and returns the satisfying
// assignment. ok is false when the formula is unsatisfiable.
func Solve(formula bf.Formula) (model reduction.Model, ok bool) {
	logrus.Info("Solving.")
	assignment := bf.Solve(formula)
	if assignment == nil {
		logrus.Info("The formula is unsatisfiable.")
		return nil, false
	}
	logrus.Debugf("found a model over %d variables", len(assignment))
	return assignment, true
}
