// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"
)

var strategyCmd = &cobra.Command{
	Use:   "strategy [project-id]",
	Short: "Generate a brand strategy for a project",
	Long: `Strategy sends the project's business intake to the text model and
persists the resulting brand strategy. The operation is all-or-nothing:
a malformed or incomplete model response leaves the project unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runStrategy,
}

func runStrategy(cmd *cobra.Command, args []string) error {
	orch, st, err := buildOrchestrator(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	s, err := orch.GenerateStrategy(context.Background(), args[0])
	if err != nil {
		return err
	}
	return printJSON(s)
}

func init() {
	strategyCmd.Flags().String("model", "", "text model identifier (overrides config)")

	rootCmd.AddCommand(strategyCmd)
}
