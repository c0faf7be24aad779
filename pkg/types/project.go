// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Status tracks how far a project has progressed through the brand
// workflow. Transitions are strictly forward: intake to strategy_ready to
// package_ready. A package_ready project accepts repeated package
// regeneration but never moves backward.
type Status string

const (
	StatusIntake        Status = "intake"
	StatusStrategyReady Status = "strategy_ready"
	StatusPackageReady  Status = "package_ready"
)

// statusRank orders statuses for gating checks.
var statusRank = map[Status]int{
	StatusIntake:        0,
	StatusStrategyReady: 1,
	StatusPackageReady:  2,
}

// AtLeast reports whether s has reached the given stage.
func (s Status) AtLeast(min Status) bool {
	return statusRank[s] >= statusRank[min]
}

// Valid reports whether s is a known workflow status.
func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// BusinessInput is the intake questionnaire a caller submits to open a
// project. Name, description, industry, and target audience are required;
// the rest steer prompt construction.
type BusinessInput struct {
	// BusinessName is the name of the business being branded.
	BusinessName string `json:"business_name" yaml:"business_name"`

	// BusinessDescription summarizes what the business does.
	BusinessDescription string `json:"business_description" yaml:"business_description"`

	// Industry is the market segment (e.g. "Technology").
	Industry string `json:"industry" yaml:"industry"`

	// TargetAudience describes who the brand should speak to.
	TargetAudience string `json:"target_audience" yaml:"target_audience"`

	// BusinessValues lists the values the brand should embody, in the
	// order the caller stated them.
	BusinessValues []string `json:"business_values" yaml:"business_values"`

	// PreferredStyle is an optional visual style hint (e.g. "modern").
	PreferredStyle string `json:"preferred_style,omitempty" yaml:"preferred_style,omitempty"`

	// PreferredColors is an optional color preference (e.g. "cool tones").
	PreferredColors string `json:"preferred_colors,omitempty" yaml:"preferred_colors,omitempty"`
}

// Project is the unit of work tracking one business through the brand
// workflow: intake input, the generated strategy, and the asset set.
type Project struct {
	// ID is an opaque project identifier.
	ID string `json:"id" yaml:"id"`

	// BusinessInput is the intake data the project was created with.
	BusinessInput BusinessInput `json:"business_input" yaml:"business_input"`

	// Status is the current workflow stage.
	Status Status `json:"status" yaml:"status"`

	// Strategy is the generated brand strategy, absent until the
	// strategy stage completes. A regenerated strategy replaces the
	// prior one wholly; no merge.
	Strategy *BrandStrategy `json:"strategy,omitempty" yaml:"strategy,omitempty"`

	// Assets maps asset type to the most recent asset generated for
	// that type. At most one record per canonical type; regeneration
	// replaces the prior record.
	Assets map[AssetType]Asset `json:"assets,omitempty" yaml:"assets,omitempty"`

	// CreatedAt is the project creation time.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
