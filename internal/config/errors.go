package config

import "errors"

// Configuration errors raised before any provider network call is made.
var (
	// ErrUnknownProvider indicates the configured AI provider name is not
	// one of the supported providers (openai, qwen) or is empty.
	ErrUnknownProvider = errors.New("unknown ai provider")

	// ErrMissingAPIKey indicates no credential is configured for the
	// selected provider.
	ErrMissingAPIKey = errors.New("missing ai api key")
)
