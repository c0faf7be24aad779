// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package asset

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"text/template"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pdiddy/brand-engine/pkg/types"
)

// assetBriefs holds the per-type rendering brief. Each brief describes the
// deliverable; the shared template wraps it with brand identity and style.
var assetBriefs = map[types.AssetType]string{
	types.AssetLogo:            "A distinctive logo mark on a clean background, suitable for use at small sizes.",
	types.AssetBusinessCard:    "A business card front design with the business name and room for contact details.",
	types.AssetLetterhead:      "A letterhead design for A4 stationery with a header treatment and generous whitespace.",
	types.AssetSocialMediaPost: "A square social media post graphic announcing the brand, with strong visual hierarchy.",
	types.AssetFlyer:           "A promotional flyer layout with a bold headline area and supporting imagery.",
	types.AssetBanner:          "A wide web banner with the brand name and tagline treatment.",
}

// assetPromptTmpl combines business identity, the chosen visual direction,
// the color palette, and the per-type brief into one rendering prompt.
var assetPromptTmpl = template.Must(template.New("asset").Parse(`{{.Brief}}

Brand: {{.BusinessName}} ({{.Industry}}).
Design style: {{.DesignStyle}}. Visual mood: {{.VisualMood}}.
Color palette: {{.ColorPalette}}.
{{- if .Tagline}}
Tagline: "{{.Tagline}}".
{{- end}}
{{- if .Context}}
Additional direction: {{.Context}}.
{{- end}}
Professional quality, no photographic text artifacts.`))

// renderAssetPrompt builds the image prompt for one asset type.
func renderAssetPrompt(p *types.Project, assetType types.AssetType, customContext string) (string, error) {
	brief, ok := assetBriefs[assetType]
	if !ok {
		return "", fmt.Errorf("no brief for asset type %q", assetType)
	}

	data := struct {
		Brief        string
		BusinessName string
		Industry     string
		DesignStyle  string
		VisualMood   string
		ColorPalette string
		Tagline      string
		Context      string
	}{
		Brief:        brief,
		BusinessName: p.BusinessInput.BusinessName,
		Industry:     p.BusinessInput.Industry,
		Context:      customContext,
	}
	if p.Strategy != nil {
		data.DesignStyle = p.Strategy.VisualDirection.DesignStyle
		data.VisualMood = p.Strategy.VisualDirection.VisualMood
		data.ColorPalette = strings.Join(p.Strategy.ColorPalette, ", ")
		data.Tagline = p.Strategy.MessagingFramework.Tagline
	}

	var buf bytes.Buffer
	if err := assetPromptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// OpenAIImageBackend implements ImageBackend using the openai-go SDK
// (image generations, base64 response).
type OpenAIImageBackend struct {
	Model string
	Size  string
	Opts  []option.RequestOption
}

// NewOpenAIImageBackend builds an OpenAIImageBackend from config.
func NewOpenAIImageBackend(cfg types.AssetConfig) (*OpenAIImageBackend, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing; provide asset.api_key or .secrets/openai-api-key")
	}
	if cfg.Model == "" {
		return nil, errors.New("asset model is required")
	}
	size := cfg.ImageSize
	if size == "" {
		size = "1024x1024"
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIImageBackend{Model: cfg.Model, Size: size, Opts: opts}, nil
}

// Generate requests one image for the prompt and returns the decoded bytes.
func (o *OpenAIImageBackend) Generate(ctx context.Context, prompt string) ([]byte, error) {
	client := openai.NewClient(o.Opts...)

	resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         prompt,
		Model:          openai.ImageModel(o.Model),
		Size:           openai.ImageGenerateParamsSize(o.Size),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
		N:              openai.Int(1),
	})
	if err != nil {
		return nil, fmt.Errorf("calling image generations: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("image generations returned no data")
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decoding image payload: %w", err)
	}
	return data, nil
}
