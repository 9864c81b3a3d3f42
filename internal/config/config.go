// SPDX-License-Identifier: Apache-2.0

// Package config assembles the AI gateway configuration from persisted
// settings and process environment defaults.
//
// Stored settings always win; environment values only participate when the
// corresponding stored key is absent. The shell persists environment-seeded
// values once, after which the environment is no longer consulted.
package config

import "strings"

// Setting keys under which the AI configuration is persisted. Three separate
// keys rather than one blob so partial configuration is independently
// detectable.
const (
	SettingAIProvider = "ai_provider"
	SettingAIAPIKey   = "ai_api_key"
	SettingAIModel    = "ai_model"
)

// Supported AI provider names.
const (
	ProviderOpenAI = "openai"
	ProviderQwen   = "qwen"
)

// AIConfig selects an AI provider and carries its credential and model.
//
// Env tags feed the environment-derived defaults used to seed settings on
// first run. BaseURL overrides the provider default endpoint and exists
// primarily for tests.
type AIConfig struct {
	Provider string `env:"FLASHNOTE_AI_PROVIDER" json:"provider"`
	APIKey   string `env:"FLASHNOTE_AI_API_KEY" json:"api_key"`
	Model    string `env:"FLASHNOTE_AI_MODEL" json:"model,omitempty"`
	BaseURL  string `env:"FLASHNOTE_AI_BASE_URL" json:"base_url,omitempty"`
}

// validate checks that the merged configuration names a known provider and
// carries a credential. An empty provider is reported as unknown so the
// gateway fails fast before any network call.
func (cfg *AIConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderOpenAI, ProviderQwen:
	default:
		return ErrUnknownProvider
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		return ErrMissingAPIKey
	}

	return nil
}
