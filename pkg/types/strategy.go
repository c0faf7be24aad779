// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BrandPersonality captures who the brand is.
type BrandPersonality struct {
	// PrimaryTraits lists the brand's defining traits in priority order.
	PrimaryTraits []string `json:"primary_traits" yaml:"primary_traits"`

	// Archetype is the brand archetype (e.g. "The Creator").
	Archetype string `json:"archetype" yaml:"archetype"`

	// Essence is a one-line distillation of the brand.
	Essence string `json:"essence" yaml:"essence"`
}

// VisualDirection captures how the brand should look.
type VisualDirection struct {
	// DesignStyle names the overall design style (e.g. "minimalist").
	DesignStyle string `json:"design_style" yaml:"design_style"`

	// VisualMood describes the feeling visuals should evoke.
	VisualMood string `json:"visual_mood" yaml:"visual_mood"`
}

// MessagingFramework captures what the brand says.
type MessagingFramework struct {
	// Tagline is the short brand slogan.
	Tagline string `json:"tagline" yaml:"tagline"`

	// BrandPromise states what customers can always expect.
	BrandPromise string `json:"brand_promise" yaml:"brand_promise"`

	// UniqueValueProposition states why the brand over alternatives.
	UniqueValueProposition string `json:"unique_value_proposition" yaml:"unique_value_proposition"`
}

// BrandStrategy is the structured strategy derived from business input.
// A stored strategy is always fully populated; partial strategies are
// rejected at generation time and never persisted.
type BrandStrategy struct {
	BrandPersonality BrandPersonality `json:"brand_personality" yaml:"brand_personality"`

	VisualDirection VisualDirection `json:"visual_direction" yaml:"visual_direction"`

	// ColorPalette lists color values (hex or named) in priority order.
	ColorPalette []string `json:"color_palette" yaml:"color_palette"`

	MessagingFramework MessagingFramework `json:"messaging_framework" yaml:"messaging_framework"`
}
