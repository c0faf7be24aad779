// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/brand-engine/pkg/types"
)

// mockBackend returns a canned response or a forced error.
type mockBackend struct {
	response string
	err      error
	calls    int
	prompt   string
}

func (m *mockBackend) Complete(_ context.Context, prompt string) (string, error) {
	m.calls++
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

const validResponse = `{
	"brand_personality": {"primary_traits": ["innovative", "precise"], "archetype": "The Creator", "essence": "Precision made human"},
	"visual_direction": {"design_style": "minimalist", "visual_mood": "calm confidence"},
	"color_palette": ["#0A84FF", "#1D1D1F", "#F5F5F7"],
	"messaging_framework": {"tagline": "Build boldly", "brand_promise": "Reliable automation", "unique_value_proposition": "Robotics sized for small factories"}
}`

func testInput() types.BusinessInput {
	return types.BusinessInput{
		BusinessName:        "Acme Robotics",
		BusinessDescription: "Industrial robotics for small factories",
		Industry:            "Technology",
		TargetAudience:      "factory owners",
		BusinessValues:      []string{"innovation", "reliability"},
		PreferredStyle:      "modern",
		PreferredColors:     "cool tones",
	}
}

func TestGenerate(t *testing.T) {
	backend := &mockBackend{response: validResponse}
	gen := NewGenerator(backend)

	s, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(s.BrandPersonality.PrimaryTraits) != 2 {
		t.Errorf("PrimaryTraits = %v, want 2 traits", s.BrandPersonality.PrimaryTraits)
	}
	if s.MessagingFramework.Tagline != "Build boldly" {
		t.Errorf("Tagline = %q, want %q", s.MessagingFramework.Tagline, "Build boldly")
	}
	if len(s.ColorPalette) != 3 {
		t.Errorf("ColorPalette = %v, want 3 colors", s.ColorPalette)
	}
	if backend.calls != 1 {
		t.Errorf("backend.calls = %d, want 1 (no internal retry)", backend.calls)
	}
}

func TestGeneratePromptEncodesInput(t *testing.T) {
	backend := &mockBackend{response: validResponse}
	gen := NewGenerator(backend)

	if _, err := gen.Generate(context.Background(), testInput()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, want := range []string{
		"Acme Robotics",
		"Industrial robotics for small factories",
		"Technology",
		"factory owners",
		"innovation, reliability",
		"modern",
		"cool tones",
	} {
		if !strings.Contains(backend.prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateBackendError(t *testing.T) {
	backend := &mockBackend{err: fmt.Errorf("service unavailable")}
	gen := NewGenerator(backend)

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if backend.calls != 1 {
		t.Errorf("backend.calls = %d, want 1 (no internal retry)", backend.calls)
	}
}

func TestGenerateFencedResponse(t *testing.T) {
	backend := &mockBackend{response: "```json\n" + validResponse + "\n```"}
	gen := NewGenerator(backend)

	s, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if s.BrandPersonality.Archetype != "The Creator" {
		t.Errorf("Archetype = %q, want %q", s.BrandPersonality.Archetype, "The Creator")
	}
}

func TestParseStrategyRejectsMalformed(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantIn   string
	}{
		{
			name:     "not json",
			response: "Here is your brand strategy: be bold!",
			wantIn:   "parsing strategy response JSON",
		},
		{
			name:     "missing tagline",
			response: `{"brand_personality": {"primary_traits": ["a"], "archetype": "x", "essence": "y"}, "visual_direction": {"design_style": "s", "visual_mood": "m"}, "color_palette": ["#fff"], "messaging_framework": {"brand_promise": "p", "unique_value_proposition": "u"}}`,
			wantIn:   "tagline is empty",
		},
		{
			name:     "empty traits",
			response: `{"brand_personality": {"primary_traits": [], "archetype": "x", "essence": "y"}, "visual_direction": {"design_style": "s", "visual_mood": "m"}, "color_palette": ["#fff"], "messaging_framework": {"tagline": "t", "brand_promise": "p", "unique_value_proposition": "u"}}`,
			wantIn:   "primary_traits is empty",
		},
		{
			name:     "empty palette",
			response: `{"brand_personality": {"primary_traits": ["a"], "archetype": "x", "essence": "y"}, "visual_direction": {"design_style": "s", "visual_mood": "m"}, "color_palette": [], "messaging_framework": {"tagline": "t", "brand_promise": "p", "unique_value_proposition": "u"}}`,
			wantIn:   "color_palette is empty",
		},
		{
			name:     "missing visual direction",
			response: `{"brand_personality": {"primary_traits": ["a"], "archetype": "x", "essence": "y"}, "color_palette": ["#fff"], "messaging_framework": {"tagline": "t", "brand_promise": "p", "unique_value_proposition": "u"}}`,
			wantIn:   "design_style is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseStrategy(tt.response)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantIn)
			}
		})
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"{\"a\": 1}", "{\"a\": 1}"},
		{"```json\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"```\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"  \n{\"a\": 1}\n  ", "{\"a\": 1}"},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderPromptOmitsEmptyPreferences(t *testing.T) {
	input := testInput()
	input.PreferredStyle = ""
	input.PreferredColors = ""
	input.BusinessValues = nil

	prompt, err := renderPrompt(input)
	if err != nil {
		t.Fatalf("renderPrompt: %v", err)
	}
	if strings.Contains(prompt, "Preferred visual style") {
		t.Error("prompt should omit empty style preference")
	}
	if strings.Contains(prompt, "Stated values") {
		t.Error("prompt should omit empty values")
	}
	if !strings.Contains(prompt, "brand_personality") {
		t.Error("prompt should pin the response shape")
	}
}
