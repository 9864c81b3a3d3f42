package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/flashnote/core/internal/config"
)

const (
	openAIDefaultBaseURL = "https://api.openai.com/v1"
	openAIDefaultModel   = "gpt-4o-mini"
)

// openAIProvider talks to the OpenAI chat completions API.
type openAIProvider struct {
	client *resty.Client
	model  string
}

func newOpenAIProvider(cfg *config.AIConfig) *openAIProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openAIDefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openAIDefaultModel
	}

	return &openAIProvider{
		client: newRestyClient(baseURL, cfg.APIKey),
		model:  model,
	}
}

func (p *openAIProvider) Name() string { return config.ProviderOpenAI }

type openAIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatRequest struct {
	Model    string              `json:"model"`
	Messages []openAIChatMessage `json:"messages"`
}

// openAIChatResponse is the OpenAI response envelope. Only the fields the
// gateway needs are mapped.
type openAIChatResponse struct {
	Choices []struct {
		Message openAIChatMessage `json:"message"`
	} `json:"choices"`
}

// extractText pulls the generated text out of the envelope.
func (r *openAIChatResponse) extractText() (string, error) {
	if len(r.Choices) == 0 || r.Choices[0].Message.Content == "" {
		return "", ErrProviderResponse
	}

	return r.Choices[0].Message.Content, nil
}

// Complete implements [completer] against POST /chat/completions.
func (p *openAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(openAIChatRequest{
			Model:    p.model,
			Messages: []openAIChatMessage{{Role: "user", Content: prompt}},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProviderRequest, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d", ErrProviderRequest, resp.StatusCode())
	}

	var envelope openAIChatResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return "", fmt.Errorf("%w: %w", ErrProviderResponse, err)
	}

	return envelope.extractText()
}
