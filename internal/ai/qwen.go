package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/flashnote/core/internal/config"
)

const (
	qwenDefaultBaseURL = "https://dashscope.aliyuncs.com/api/v1"
	qwenDefaultModel   = "qwen-turbo"
)

// qwenProvider talks to the DashScope text-generation API.
type qwenProvider struct {
	client *resty.Client
	model  string
}

func newQwenProvider(cfg *config.AIConfig) *qwenProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = qwenDefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = qwenDefaultModel
	}

	return &qwenProvider{
		client: newRestyClient(baseURL, cfg.APIKey),
		model:  model,
	}
}

func (p *qwenProvider) Name() string { return config.ProviderQwen }

type qwenMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type qwenRequest struct {
	Model string `json:"model"`
	Input struct {
		Messages []qwenMessage `json:"messages"`
	} `json:"input"`
	Parameters struct {
		ResultFormat string `json:"result_format"`
	} `json:"parameters"`
}

// qwenResponse is the DashScope response envelope. Depending on the
// requested result format the text arrives either in output.choices or in
// output.text.
type qwenResponse struct {
	Output struct {
		Choices []struct {
			Message qwenMessage `json:"message"`
		} `json:"choices"`
		Text string `json:"text"`
	} `json:"output"`
}

// extractText pulls the generated text out of the envelope.
func (r *qwenResponse) extractText() (string, error) {
	if len(r.Output.Choices) > 0 && r.Output.Choices[0].Message.Content != "" {
		return r.Output.Choices[0].Message.Content, nil
	}
	if r.Output.Text != "" {
		return r.Output.Text, nil
	}

	return "", ErrProviderResponse
}

// Complete implements [completer] against the DashScope generation endpoint.
func (p *qwenProvider) Complete(ctx context.Context, prompt string) (string, error) {
	req := qwenRequest{Model: p.model}
	req.Input.Messages = []qwenMessage{{Role: "user", Content: prompt}}
	req.Parameters.ResultFormat = "message"

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/services/aigc/text-generation/generation")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProviderRequest, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d", ErrProviderRequest, resp.StatusCode())
	}

	var envelope qwenResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return "", fmt.Errorf("%w: %w", ErrProviderResponse, err)
	}

	return envelope.extractText()
}
