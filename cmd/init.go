package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/EmileRolley/project-coca/pkg/graph"
)

type initOpts struct {
	out string
}

var initopts = initOpts{}

func NewInitCmd() *cobra.Command {

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "writes a starter graph file",
		RunE: func(cmd *cobra.Command, args []string) error {
			file := &graph.File{
				Vertices: 4,
				Edges: []graph.FileEdge{
					{From: 0, To: 1},
					{From: 1, To: 2, Heterogeneous: true},
					{From: 2, To: 3},
					{From: 0, To: 3, Heterogeneous: true},
				},
			}
			if err := graph.SaveFile(initopts.out, file); err != nil {
				return err
			}
			logrus.Infof("Wrote starter graph to %s.", initopts.out)
			return nil
		},
	}

	initCmd.PersistentFlags().StringVarP(&initopts.out, "output", "o", "graph.yaml", "where to write the starter graph file")
	return initCmd
}
