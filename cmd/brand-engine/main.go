// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the brand-engine CLI.
// The CLI covers project intake, strategy generation, asset generation,
// and complete-package assembly, plus an HTTP server exposing the same
// operations.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/brand-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the brand-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "brand-engine",
	Short: "AI-assisted brand identity workflow",
	Long: `brand-engine turns a structured business intake into a brand strategy and
a complete set of visual assets. Strategy generation calls a text model;
asset generation calls an image model, with per-asset failures contained
as placeholders so a package is always complete.

Each workflow step is a subcommand: project, strategy, asset, and package.
The serve subcommand exposes the same operations over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./brand-engine.yaml or ~/.config/brand-engine/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "data", "directory for the project database")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("brand-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "brand-engine"))
		}
	}

	viper.SetEnvPrefix("BRAND_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
