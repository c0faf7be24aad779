// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/brand-engine/internal/asset"
	"github.com/pdiddy/brand-engine/internal/store"
	"github.com/pdiddy/brand-engine/internal/strategy"
	"github.com/pdiddy/brand-engine/internal/workflow"
	"github.com/pdiddy/brand-engine/pkg/types"
)

func init() {
	viper.SetDefault("strategy.model", "gpt-4o")
	viper.SetDefault("asset.model", "dall-e-3")
	viper.SetDefault("asset.image_size", "1024x1024")
	viper.SetDefault("asset.max_in_flight", 3)
	viper.SetDefault("asset.slot_timeout", 90*time.Second)
	viper.SetDefault("server.addr", ":8080")
}

// engineConfig assembles component configs from flags, the config file,
// and secrets, in that order of precedence.
func engineConfig(cmd *cobra.Command) types.EngineConfig {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("store.data_dir")
	}

	apiKey := secretDefault("openai-api-key", viper.GetString("api_key"))
	baseURL := secretDefault("openai-base-url", viper.GetString("base_url"))

	cfg := types.EngineConfig{
		Strategy: types.StrategyConfig{
			AIConfig: types.AIConfig{
				Model:   viper.GetString("strategy.model"),
				APIKey:  apiKey,
				BaseURL: baseURL,
			},
		},
		Asset: types.AssetConfig{
			AIConfig: types.AIConfig{
				Model:   viper.GetString("asset.model"),
				APIKey:  apiKey,
				BaseURL: baseURL,
			},
			ImageSize:   viper.GetString("asset.image_size"),
			MaxInFlight: viper.GetInt("asset.max_in_flight"),
			SlotTimeout: viper.GetDuration("asset.slot_timeout"),
		},
		Store:  types.StoreConfig{DataDir: dataDir},
		Server: types.ServerConfig{Addr: viper.GetString("server.addr")},
	}

	// Per-command model overrides; GetString errors when a command does
	// not define the flag.
	if v, err := cmd.Flags().GetString("model"); err == nil && v != "" {
		cfg.Strategy.Model = v
	}
	if v, err := cmd.Flags().GetString("image-model"); err == nil && v != "" {
		cfg.Asset.Model = v
	}
	return cfg
}

// openStore opens the project store for commands that only read or
// write projects without calling AI backends.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	return store.New(engineConfig(cmd).Store)
}

// readOnlyOrchestrator wires an orchestrator without AI backends, for
// commands that validate and persist but never generate.
func readOnlyOrchestrator(st *store.Store) *workflow.Orchestrator {
	return workflow.New(st, nil, nil, nil)
}

// buildOrchestrator wires the full engine: store, OpenAI text and image
// backends, and the package assembler.
func buildOrchestrator(cmd *cobra.Command) (*workflow.Orchestrator, *store.Store, error) {
	cfg := engineConfig(cmd)

	st, err := store.New(cfg.Store)
	if err != nil {
		return nil, nil, err
	}

	textBackend, err := strategy.NewOpenAIBackend(cfg.Strategy)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	imageBackend, err := asset.NewOpenAIImageBackend(cfg.Asset)
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	gen := asset.NewGenerator(imageBackend)
	orch := workflow.New(
		st,
		strategy.NewGenerator(textBackend),
		gen,
		asset.NewAssembler(gen, cfg.Asset),
	)
	return orch, st, nil
}
