// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AIConfig holds shared settings for components that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the API endpoint for OpenAI-compatible gateways.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// StrategyConfig holds settings for brand strategy generation.
type StrategyConfig struct {
	AIConfig `yaml:",inline"`
}

// AssetConfig holds settings for asset generation and package assembly.
type AssetConfig struct {
	AIConfig `yaml:",inline"`

	// ImageSize is the requested image dimensions (default "1024x1024").
	ImageSize string `json:"image_size" yaml:"image_size"`

	// MaxInFlight bounds concurrent image generation calls during
	// package assembly (default 3).
	MaxInFlight int `json:"max_in_flight" yaml:"max_in_flight"`

	// SlotTimeout bounds a single image generation call; a slot that
	// exceeds it is filled with a placeholder (default 90s).
	SlotTimeout time.Duration `json:"slot_timeout" yaml:"slot_timeout"`
}

// StoreConfig holds settings for the project store.
type StoreConfig struct {
	// DataDir is the base directory for persisted data (contains brand.db).
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// ServerConfig holds settings for the HTTP API server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`
}

// EngineConfig groups all component configurations.
type EngineConfig struct {
	Strategy StrategyConfig `json:"strategy" yaml:"strategy"`
	Asset    AssetConfig    `json:"asset" yaml:"asset"`
	Store    StoreConfig    `json:"store" yaml:"store"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}
