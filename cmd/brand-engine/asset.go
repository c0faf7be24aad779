// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/brand-engine/pkg/types"
)

var assetCmd = &cobra.Command{
	Use:   "asset [project-id] [type]",
	Short: "Generate a single brand asset",
	Long: fmt.Sprintf(`Asset generates one asset of the given type from the project's brand
strategy. A generation failure is contained: the command still succeeds
and records a placeholder asset with an error code.

Valid types: %s.`, assetTypeList()),
	Args: cobra.ExactArgs(2),
	RunE: runAsset,
}

func runAsset(cmd *cobra.Command, args []string) error {
	customContext, _ := cmd.Flags().GetString("context")

	orch, st, err := buildOrchestrator(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	a, err := orch.GenerateAsset(context.Background(), args[0], types.AssetType(args[1]), customContext)
	if err != nil {
		return err
	}
	return printJSON(a)
}

func assetTypeList() string {
	names := make([]string, len(types.CanonicalAssetTypes))
	for i, t := range types.CanonicalAssetTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func init() {
	assetCmd.Flags().String("context", "", "extra direction for the image prompt")
	assetCmd.Flags().String("image-model", "", "image model identifier (overrides config)")

	rootCmd.AddCommand(assetCmd)
}
