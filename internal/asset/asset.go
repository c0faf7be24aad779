// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package asset produces visual brand assets via a generative image
// backend and assembles them into complete packages. Generation failure is
// contained here: a failed call becomes a placeholder Asset carrying a
// cause code, never an error the caller must handle. Package assembly
// therefore always yields the full canonical set.
package asset

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/brand-engine/pkg/types"
)

// PlaceholderURL is the fixed stand-in image reference (a 1x1 transparent
// PNG) substituted when generation fails. Keeping it constant makes
// degraded slots recognizable downstream.
const PlaceholderURL = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// Failure cause codes recorded on placeholder assets.
const (
	causeTimeout      = "timeout"
	causeServiceError = "service_error"
	causeEmptyPayload = "empty_payload"
)

// ImageBackend abstracts the generative image service so tests can supply
// a mock. Implementations take a rendering prompt and return raw PNG bytes.
type ImageBackend interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// Generator produces one Asset per call.
type Generator struct {
	backend ImageBackend
}

// NewGenerator returns a Generator backed by the given image backend.
func NewGenerator(backend ImageBackend) *Generator {
	return &Generator{backend: backend}
}

// Generate produces an Asset of the requested type for the project. The
// project's strategy steers the rendering prompt; customContext is free
// text appended to it. Any backend failure is converted into a placeholder
// Asset rather than returned, so this call cannot fail on generation.
func (g *Generator) Generate(ctx context.Context, p *types.Project, assetType types.AssetType, customContext string) types.Asset {
	a := types.Asset{
		ID:        uuid.NewString(),
		ProjectID: p.ID,
		AssetType: assetType,
		Metadata:  promptMetadata(p.Strategy, customContext),
	}

	prompt, err := renderAssetPrompt(p, assetType, customContext)
	if err != nil {
		return placeholder(a, causeServiceError)
	}

	data, err := g.backend.Generate(ctx, prompt)
	if err != nil {
		return placeholder(a, classify(err))
	}
	if len(data) == 0 {
		return placeholder(a, causeEmptyPayload)
	}

	a.Generated = true
	a.AssetURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
	return a
}

// placeholder fills in the degraded fields on a.
func placeholder(a types.Asset, cause string) types.Asset {
	a.Generated = false
	a.AssetURL = PlaceholderURL
	a.Error = cause
	return a
}

// classify maps a backend error to a short cause code.
func classify(err error) string {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return causeTimeout
	}
	return causeServiceError
}

// promptMetadata snapshots the styling inputs used for the prompt.
func promptMetadata(s *types.BrandStrategy, customContext string) map[string]string {
	m := map[string]string{}
	if s != nil {
		m["design_style"] = s.VisualDirection.DesignStyle
		m["visual_mood"] = s.VisualDirection.VisualMood
		m["color_palette"] = strings.Join(s.ColorPalette, ", ")
	}
	if customContext != "" {
		m["custom_context"] = customContext
	}
	return m
}
