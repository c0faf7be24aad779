// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AssetType identifies one of the canonical visual deliverables a complete
// brand package contains.
type AssetType string

const (
	AssetLogo            AssetType = "logo"
	AssetBusinessCard    AssetType = "business_card"
	AssetLetterhead      AssetType = "letterhead"
	AssetSocialMediaPost AssetType = "social_media_post"
	AssetFlyer           AssetType = "flyer"
	AssetBanner          AssetType = "banner"
)

// CanonicalAssetTypes is the fixed, ordered set of asset types a complete
// package must cover. Package assembly iterates this slice; its order is
// the order assets are returned in.
var CanonicalAssetTypes = []AssetType{
	AssetLogo,
	AssetBusinessCard,
	AssetLetterhead,
	AssetSocialMediaPost,
	AssetFlyer,
	AssetBanner,
}

// Valid reports whether t is one of the canonical asset types.
func (t AssetType) Valid() bool {
	for _, c := range CanonicalAssetTypes {
		if t == c {
			return true
		}
	}
	return false
}

// Asset is one generated (or placeholder) visual deliverable.
type Asset struct {
	// ID is an opaque asset identifier.
	ID string `json:"id" yaml:"id"`

	// ProjectID is the owning project.
	ProjectID string `json:"project_id" yaml:"project_id"`

	// AssetType is the canonical type this asset fills.
	AssetType AssetType `json:"asset_type" yaml:"asset_type"`

	// AssetURL is a self-contained image reference: a data URL holding
	// the generated image, or the fixed placeholder when generation
	// failed.
	AssetURL string `json:"asset_url" yaml:"asset_url"`

	// Generated reports whether real image content was produced.
	Generated bool `json:"generated" yaml:"generated"`

	// Error is a short cause code, present exactly when Generated is
	// false (e.g. "timeout", "service_error", "empty_payload").
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Metadata snapshots the styling inputs used to build the rendering
	// prompt (design style, visual mood, palette, caller context).
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
