package ai

import "errors"

// Provider errors. These never escape the gateway's public operations; each
// use case converts them into its own fallback result.
var (
	// ErrProviderRequest is returned when the HTTP call to a provider
	// fails outright (network error or non-success status).
	ErrProviderRequest = errors.New("provider request failed")

	// ErrProviderResponse is returned when a provider's response envelope
	// does not contain generated text where expected.
	ErrProviderResponse = errors.New("malformed provider response")
)
