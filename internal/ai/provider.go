package ai

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/flashnote/core/internal/config"
)

const providerTimeout = 60 * time.Second

// completer is the uniform contract every provider exposes to the gateway:
// a prompt in, generated text out. Provider-specific request bodies and
// response envelopes stay behind this boundary.
type completer interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// newCompleter dispatches on the configured provider name. Unrecognized
// names fail fast with [config.ErrUnknownProvider] before any network call.
func newCompleter(cfg *config.AIConfig) (completer, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case config.ProviderOpenAI:
		return newOpenAIProvider(cfg), nil
	case config.ProviderQwen:
		return newQwenProvider(cfg), nil
	default:
		return nil, config.ErrUnknownProvider
	}
}

// newRestyClient builds the shared HTTP client configuration for a provider.
func newRestyClient(baseURL, apiKey string) *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(providerTimeout).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")
}
