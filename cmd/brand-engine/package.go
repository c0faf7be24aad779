// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var packageCmd = &cobra.Command{
	Use:   "package [project-id]",
	Short: "Generate the complete asset package",
	Long: `Package generates all six canonical assets (logo, business card,
letterhead, social media post, flyer, banner) concurrently and moves the
project to package_ready. Failed slots become placeholders; the package
is always complete. Re-running regenerates every asset.`,
	Args: cobra.ExactArgs(1),
	RunE: runPackage,
}

func runPackage(cmd *cobra.Command, args []string) error {
	orch, st, err := buildOrchestrator(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	assets, err := orch.GenerateCompletePackage(context.Background(), args[0])
	if err != nil {
		return err
	}

	generated := 0
	for _, a := range assets {
		if a.Generated {
			generated++
		} else {
			fmt.Fprintf(os.Stderr, "warning: %s fell back to placeholder (%s)\n", a.AssetType, a.Error)
		}
	}
	fmt.Fprintf(os.Stderr, "Generated %d/%d assets\n", generated, len(assets))
	return printJSON(assets)
}

func init() {
	packageCmd.Flags().String("image-model", "", "image model identifier (overrides config)")

	rootCmd.AddCommand(packageCmd)
}
