// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package asset

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/brand-engine/pkg/types"
)

// mockImageBackend returns canned bytes or a forced error.
type mockImageBackend struct {
	data   []byte
	err    error
	calls  int
	prompt string
}

func (m *mockImageBackend) Generate(_ context.Context, prompt string) ([]byte, error) {
	m.calls++
	m.prompt = prompt
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}

func testProject() *types.Project {
	return &types.Project{
		ID: "p1",
		BusinessInput: types.BusinessInput{
			BusinessName:        "Acme Robotics",
			BusinessDescription: "Industrial robotics for small factories",
			Industry:            "Technology",
			TargetAudience:      "factory owners",
		},
		Status: types.StatusStrategyReady,
		Strategy: &types.BrandStrategy{
			BrandPersonality: types.BrandPersonality{
				PrimaryTraits: []string{"innovative"},
				Archetype:     "The Creator",
				Essence:       "Precision made human",
			},
			VisualDirection: types.VisualDirection{DesignStyle: "minimalist", VisualMood: "calm confidence"},
			ColorPalette:    []string{"#0A84FF", "#1D1D1F"},
			MessagingFramework: types.MessagingFramework{
				Tagline:                "Build boldly",
				BrandPromise:           "Reliable automation",
				UniqueValueProposition: "Robotics sized for small factories",
			},
		},
	}
}

func TestGenerateSuccess(t *testing.T) {
	backend := &mockImageBackend{data: []byte{0x89, 0x50, 0x4E, 0x47}}
	gen := NewGenerator(backend)

	a := gen.Generate(context.Background(), testProject(), types.AssetLogo, "")

	if !a.Generated {
		t.Fatal("Generated = false, want true")
	}
	if a.Error != "" {
		t.Errorf("Error = %q, want empty on success", a.Error)
	}
	if !strings.HasPrefix(a.AssetURL, "data:image/png;base64,") {
		t.Errorf("AssetURL = %q, want data URL", a.AssetURL)
	}
	if a.AssetURL == PlaceholderURL {
		t.Error("AssetURL is the placeholder on a successful generation")
	}
	if a.ID == "" || a.ProjectID != "p1" || a.AssetType != types.AssetLogo {
		t.Errorf("asset identity fields wrong: %+v", a)
	}
}

func TestGenerateContainsFailure(t *testing.T) {
	tests := []struct {
		name     string
		backend  *mockImageBackend
		wantCode string
	}{
		{"service error", &mockImageBackend{err: fmt.Errorf("boom")}, "service_error"},
		{"timeout", &mockImageBackend{err: fmt.Errorf("image call: %w", context.DeadlineExceeded)}, "timeout"},
		{"canceled", &mockImageBackend{err: context.Canceled}, "timeout"},
		{"empty payload", &mockImageBackend{data: nil}, "empty_payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(tt.backend)
			a := gen.Generate(context.Background(), testProject(), types.AssetBanner, "")

			if a.Generated {
				t.Fatal("Generated = true, want false")
			}
			if a.AssetURL != PlaceholderURL {
				t.Errorf("AssetURL = %q, want the fixed placeholder", a.AssetURL)
			}
			if a.Error != tt.wantCode {
				t.Errorf("Error = %q, want %q", a.Error, tt.wantCode)
			}
			if a.AssetType != types.AssetBanner || a.ProjectID != "p1" {
				t.Errorf("placeholder keeps identity fields: %+v", a)
			}
		})
	}
}

func TestGenerateMetadataSnapshot(t *testing.T) {
	backend := &mockImageBackend{data: []byte{1}}
	gen := NewGenerator(backend)

	a := gen.Generate(context.Background(), testProject(), types.AssetFlyer, "for a trade show")

	if a.Metadata["design_style"] != "minimalist" {
		t.Errorf("metadata design_style = %q", a.Metadata["design_style"])
	}
	if a.Metadata["visual_mood"] != "calm confidence" {
		t.Errorf("metadata visual_mood = %q", a.Metadata["visual_mood"])
	}
	if a.Metadata["color_palette"] != "#0A84FF, #1D1D1F" {
		t.Errorf("metadata color_palette = %q", a.Metadata["color_palette"])
	}
	if a.Metadata["custom_context"] != "for a trade show" {
		t.Errorf("metadata custom_context = %q", a.Metadata["custom_context"])
	}
}

func TestRenderAssetPrompt(t *testing.T) {
	p := testProject()

	for _, assetType := range types.CanonicalAssetTypes {
		prompt, err := renderAssetPrompt(p, assetType, "launch campaign")
		if err != nil {
			t.Fatalf("renderAssetPrompt(%s): %v", assetType, err)
		}
		for _, want := range []string{"Acme Robotics", "minimalist", "calm confidence", "#0A84FF", "launch campaign"} {
			if !strings.Contains(prompt, want) {
				t.Errorf("%s prompt missing %q", assetType, want)
			}
		}
	}

	// Briefs differ per type.
	logo, _ := renderAssetPrompt(p, types.AssetLogo, "")
	banner, _ := renderAssetPrompt(p, types.AssetBanner, "")
	if logo == banner {
		t.Error("logo and banner prompts are identical, want per-type briefs")
	}

	if _, err := renderAssetPrompt(p, types.AssetType("poster"), ""); err == nil {
		t.Error("expected error for unknown asset type")
	}
}

func TestGenerateUniqueIDs(t *testing.T) {
	backend := &mockImageBackend{data: []byte{1}}
	gen := NewGenerator(backend)

	a := gen.Generate(context.Background(), testProject(), types.AssetLogo, "")
	b := gen.Generate(context.Background(), testProject(), types.AssetLogo, "")
	if a.ID == b.ID {
		t.Errorf("two generations share ID %q", a.ID)
	}
}
