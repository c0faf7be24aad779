// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pdiddy/brand-engine/pkg/types"
)

// strategyPromptTmpl is the prompt sent to the text backend. It encodes the
// intake answers and pins the response to the exact BrandStrategy shape.
var strategyPromptTmpl = template.Must(template.New("strategy").Parse(`You are a senior brand strategist. Develop a complete brand strategy for the following business.

Business name: {{.BusinessName}}
Description: {{.BusinessDescription}}
Industry: {{.Industry}}
Target audience: {{.TargetAudience}}
{{- if .Values}}
Stated values: {{.Values}}
{{- end}}
{{- if .PreferredStyle}}
Preferred visual style: {{.PreferredStyle}}
{{- end}}
{{- if .PreferredColors}}
Preferred colors: {{.PreferredColors}}
{{- end}}

Respond with a single JSON object in exactly this shape, with every field populated. Do not include any text outside the JSON object.

{"brand_personality": {"primary_traits": ["trait", "..."], "archetype": "brand archetype", "essence": "one-line brand essence"}, "visual_direction": {"design_style": "overall design style", "visual_mood": "mood visuals should evoke"}, "color_palette": ["#RRGGBB", "..."], "messaging_framework": {"tagline": "short slogan", "brand_promise": "what customers can always expect", "unique_value_proposition": "why this brand over alternatives"}}
`))

// systemPrompt frames every strategy completion.
const systemPrompt = "You are a brand strategy engine. You respond only with valid JSON."

// renderPrompt executes the strategy prompt template with the intake input.
func renderPrompt(input types.BusinessInput) (string, error) {
	data := struct {
		BusinessName        string
		BusinessDescription string
		Industry            string
		TargetAudience      string
		Values              string
		PreferredStyle      string
		PreferredColors     string
	}{
		BusinessName:        input.BusinessName,
		BusinessDescription: input.BusinessDescription,
		Industry:            input.Industry,
		TargetAudience:      input.TargetAudience,
		Values:              strings.Join(input.BusinessValues, ", "),
		PreferredStyle:      input.PreferredStyle,
		PreferredColors:     input.PreferredColors,
	}

	var buf bytes.Buffer
	if err := strategyPromptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// OpenAIBackend implements TextBackend using the openai-go SDK (chat
// completions).
type OpenAIBackend struct {
	Model string
	Opts  []option.RequestOption
}

// NewOpenAIBackend builds an OpenAIBackend from config.
func NewOpenAIBackend(cfg types.StrategyConfig) (*OpenAIBackend, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing; provide strategy.api_key or .secrets/openai-api-key")
	}
	if cfg.Model == "" {
		return nil, errors.New("strategy model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIBackend{Model: cfg.Model, Opts: opts}, nil
}

// Complete sends the prompt as a single chat completion and returns the
// first choice's content.
func (o *OpenAIBackend) Complete(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(o.Opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("calling chat completions: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completions returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
