// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package strategy turns business input into a validated BrandStrategy via
// a generative text backend. Generation is all-or-nothing: a response with
// any missing required field is rejected whole, so callers never see a
// partially populated strategy.
package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/brand-engine/pkg/types"
)

// TextBackend abstracts the generative text service so tests can supply a
// mock. Implementations take a rendered prompt and return the raw model
// response.
type TextBackend interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator produces brand strategies from business input.
type Generator struct {
	backend TextBackend
}

// NewGenerator returns a Generator backed by the given text backend.
func NewGenerator(backend TextBackend) *Generator {
	return &Generator{backend: backend}
}

// Generate builds the strategy prompt from input, calls the text backend
// once, and parses the response into a fully populated BrandStrategy. No
// internal retry; the caller decides whether to re-invoke.
func (g *Generator) Generate(ctx context.Context, input types.BusinessInput) (*types.BrandStrategy, error) {
	prompt, err := renderPrompt(input)
	if err != nil {
		return nil, fmt.Errorf("rendering strategy prompt: %w", err)
	}

	raw, err := g.backend.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("completing strategy prompt: %w", err)
	}

	return parseStrategy(raw)
}

// parseStrategy decodes the raw model response into a BrandStrategy and
// validates that every required field is populated.
func parseStrategy(raw string) (*types.BrandStrategy, error) {
	cleaned := stripFences(raw)

	var s types.BrandStrategy
	if err := json.Unmarshal([]byte(cleaned), &s); err != nil {
		return nil, fmt.Errorf("parsing strategy response JSON: %w", err)
	}

	if errs := validateStrategy(&s); len(errs) > 0 {
		return nil, fmt.Errorf("incomplete strategy response: %s", strings.Join(errs, "; "))
	}
	return &s, nil
}

// stripFences removes a Markdown code fence wrapper (```json ... ```) that
// some models emit around JSON responses.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// validateStrategy returns one message per missing required field.
func validateStrategy(s *types.BrandStrategy) []string {
	var errs []string

	if len(s.BrandPersonality.PrimaryTraits) == 0 {
		errs = append(errs, "brand_personality.primary_traits is empty")
	}
	if s.BrandPersonality.Archetype == "" {
		errs = append(errs, "brand_personality.archetype is empty")
	}
	if s.BrandPersonality.Essence == "" {
		errs = append(errs, "brand_personality.essence is empty")
	}
	if s.VisualDirection.DesignStyle == "" {
		errs = append(errs, "visual_direction.design_style is empty")
	}
	if s.VisualDirection.VisualMood == "" {
		errs = append(errs, "visual_direction.visual_mood is empty")
	}
	if len(s.ColorPalette) == 0 {
		errs = append(errs, "color_palette is empty")
	}
	if s.MessagingFramework.Tagline == "" {
		errs = append(errs, "messaging_framework.tagline is empty")
	}
	if s.MessagingFramework.BrandPromise == "" {
		errs = append(errs, "messaging_framework.brand_promise is empty")
	}
	if s.MessagingFramework.UniqueValueProposition == "" {
		errs = append(errs, "messaging_framework.unique_value_proposition is empty")
	}

	return errs
}
