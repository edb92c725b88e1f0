package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/EmileRolley/project-coca/pkg/graph"
	"github.com/EmileRolley/project-coca/pkg/reduction"
	"github.com/EmileRolley/project-coca/pkg/render"
	"github.com/EmileRolley/project-coca/pkg/solver"
)

type solveOpts struct {
	cost    int
	dotFile string
	svgFile string
	verbose bool
}

var solveopts = solveOpts{}

func NewSolveCmd() *cobra.Command {

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "decides whether translators can force the component hierarchy deeper than the cost bound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if solveopts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			g, err := graph.LoadFile(args[0])
			if err != nil {
				return err
			}
			logrus.Infof("Loaded graph with %d vertices and %d homogeneous components.", g.NumVertices(), g.NumComponents())
			formula, err := reduction.Reduce(g, solveopts.cost)
			if err != nil {
				return err
			}
			model, ok := solver.Solve(formula)
			if !ok {
				fmt.Printf("UNSATISFIABLE: no placement of at most %d translators makes the hierarchy deeper than %d\n",
					g.NumComponents()-1, solveopts.cost)
				return nil
			}

			// The hierarchy and the translator assignment refer to the
			// components the formula was built from, so both are read before
			// the decoder recomputes the partition.
			hierarchy := reduction.DecodeHierarchy(model, g)
			assignment, err := reduction.DecodeAssignment(model, g)
			if err != nil {
				return err
			}
			if solveopts.dotFile != "" || solveopts.svgFile != "" {
				dot := render.ToDOT(g, hierarchy, assignment)
				if solveopts.dotFile != "" {
					if err := os.WriteFile(solveopts.dotFile, []byte(dot), 0660); err != nil {
						return err
					}
				}
				if solveopts.svgFile != "" {
					svg, err := render.RenderSVG(dot)
					if err != nil {
						return err
					}
					if err := os.WriteFile(solveopts.svgFile, svg, 0660); err != nil {
						return err
					}
				}
			}

			if err := reduction.DecodeModel(model, g); err != nil {
				return err
			}
			fmt.Printf("SATISFIABLE: the hierarchy gets deeper than %d\n", solveopts.cost)
			for _, edge := range g.Translators() {
				fmt.Printf("translator on edge (%d,%d)\n", edge.U, edge.V)
			}
			fmt.Printf("%d homogeneous components after placing %d translators\n", g.NumComponents(), len(g.Translators()))
			logrus.Info("Done.")
			return nil
		},
	}

	solveCmd.PersistentFlags().IntVarP(&solveopts.cost, "cost", "k", 0, "cost bound the hierarchy depth has to exceed")
	solveCmd.PersistentFlags().StringVarP(&solveopts.dotFile, "dot", "d", "", "write the decoded hierarchy as Graphviz DOT to this file")
	solveCmd.PersistentFlags().StringVarP(&solveopts.svgFile, "svg", "s", "", "render the decoded hierarchy as SVG to this file")
	solveCmd.PersistentFlags().BoolVarP(&solveopts.verbose, "verbose", "v", false, "log formula construction details")
	return solveCmd
}
