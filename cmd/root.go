package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coca",
	Short: "coca decides the EdgeCon problem by reduction to Boolean satisfiability",
	Long:  `Given a graph with homogeneous and heterogeneous edges, coca decides whether translators can be placed on heterogeneous edges so that the hierarchy of homogeneous components gets deeper than a given cost bound`,
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	rootCmd.AddCommand(NewSolveCmd())
	rootCmd.AddCommand(NewInitCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
