package config

import (
	"context"
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// SettingsReader is the subset of the settings store the builder needs.
// A nil value is returned for absent keys.
type SettingsReader interface {
	GetSetting(ctx context.Context, key string) (*string, error)
}

type aiConfigBuilder struct {
	configs []*AIConfig
	err     error
}

func newAIConfigBuilder() *aiConfigBuilder {
	return &aiConfigBuilder{
		configs: make([]*AIConfig, 0, 2),
	}
}

// build merges the collected configuration layers in order (earlier layers
// win) and validates the result.
func (b *aiConfigBuilder) build() (*AIConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building ai config: %w", b.err)
	}

	config := new(AIConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging ai configs: %w", err)
		}
	}

	return config, config.validate()
}

// withSettings layers the persisted setting values. Absent keys contribute
// nothing, letting a later env layer fill the gap.
func (b *aiConfigBuilder) withSettings(ctx context.Context, settings SettingsReader) *aiConfigBuilder {
	if settings == nil {
		return b
	}

	storedCfg := &AIConfig{}
	for _, bind := range []struct {
		key  string
		dest *string
	}{
		{SettingAIProvider, &storedCfg.Provider},
		{SettingAIAPIKey, &storedCfg.APIKey},
		{SettingAIModel, &storedCfg.Model},
	} {
		value, err := settings.GetSetting(ctx, bind.key)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		if value != nil {
			*bind.dest = *value
		}
	}

	b.configs = append(b.configs, storedCfg)
	return b
}

// withEnv layers the environment-derived defaults.
func (b *aiConfigBuilder) withEnv() *aiConfigBuilder {
	envCfg := &AIConfig{}
	if err := env.Parse(envCfg); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting env configs: %w", err))
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// LoadAIConfig resolves the effective AI configuration: persisted settings
// first, environment defaults for whatever settings do not cover.
//
// Returns [ErrUnknownProvider] or [ErrMissingAPIKey] (wrapped) when the
// merged result is unusable; callers treat both as configuration errors and
// never reach the network.
func LoadAIConfig(ctx context.Context, settings SettingsReader) (*AIConfig, error) {
	return newAIConfigBuilder().
		withSettings(ctx, settings).
		withEnv().
		build()
}

// FromEnv resolves the AI configuration from the environment alone. Used to
// seed persisted settings on first run.
func FromEnv() (*AIConfig, error) {
	envCfg := &AIConfig{}
	if err := env.Parse(envCfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return envCfg, nil
}
