// Package ai turns note collections and free-text user input into AI
// completions for three use cases (daily digest, content optimization,
// assistant chat) and normalizes provider responses back into strict
// shapes.
//
// The gateway never lets a provider failure escape its public operations:
// each use case converts failures into its own safe fallback. Provider
// routing and envelope parsing are fully internal to the completer
// boundary.
package ai

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/flashnote/core/internal/config"
	"github.com/flashnote/core/internal/logger"
	"github.com/flashnote/core/models"
)

const (
	emptyDigestPlaceholder = "No notes were captured today, so there is nothing to summarize yet."
	digestApology          = "Sorry, the daily digest could not be generated right now. Please try again later."
)

// Gateway routes prompts to the configured provider and post-processes the
// results.
type Gateway struct {
	provider completer
	logger   *logger.Logger
}

// New constructs a [Gateway] for the configured provider. An unrecognized
// provider name fails here, before any network call, with
// [config.ErrUnknownProvider].
func New(cfg *config.AIConfig, log *logger.Logger) (*Gateway, error) {
	provider, err := newCompleter(cfg)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("provider", provider.Name()).Msg("creating ai gateway")
	return &Gateway{
		provider: provider,
		logger:   log,
	}, nil
}

// GenerateDailyDigest produces the fixed three-section Markdown report over
// notes. An empty collection returns a placeholder without calling the
// provider; a provider failure returns a user-facing apology. Digest
// generation is advisory, never critical-path.
func (g *Gateway) GenerateDailyDigest(ctx context.Context, notes []models.Note) string {
	if len(notes) == 0 {
		return emptyDigestPlaceholder
	}

	text, err := g.provider.Complete(ctx, buildDigestPrompt(notes))
	if err != nil {
		g.logger.Warn().Err(err).Str("func", "Gateway.GenerateDailyDigest").Msg("digest generation failed")
		return digestApology
	}

	return text
}

// OptimizeContent reformats loosely-structured input into plain
// hierarchical text, then strips any residual markup the provider still
// emitted. On failure the original input is returned unchanged (fail-open,
// content-preserving).
func (g *Gateway) OptimizeContent(ctx context.Context, raw string) string {
	text, err := g.provider.Complete(ctx, buildOptimizePrompt(raw))
	if err != nil {
		g.logger.Warn().Err(err).Str("func", "Gateway.OptimizeContent").Msg("content optimization failed")
		return raw
	}

	return sanitizePlainText(text)
}

// ProcessAssistantChat runs one assistant turn over userInput with the most
// recent notes as context. The provider is asked for a JSON object with a
// message and an action list; parsing is defensive and the raw response
// text becomes the message when no valid object can be extracted. This
// operation never raises past its boundary.
func (g *Gateway) ProcessAssistantChat(ctx context.Context, userInput string, notes []models.Note) models.AssistantReply {
	raw, err := g.provider.Complete(ctx, buildAssistantPrompt(userInput, notes))
	if err != nil {
		g.logger.Warn().Err(err).Str("func", "Gateway.ProcessAssistantChat").Msg("assistant chat failed")
		return models.AssistantReply{
			Message: "Sorry, I could not process that request right now.",
			Actions: []models.AssistantAction{},
		}
	}

	return parseAssistantReply(raw)
}

// parseAssistantReply extracts the first balanced JSON object from raw and
// decodes it. Unknown action types are dropped; anything unparseable falls
// back to the raw text with no actions.
func parseAssistantReply(raw string) models.AssistantReply {
	fallback := models.AssistantReply{
		Message: strings.TrimSpace(raw),
		Actions: []models.AssistantAction{},
	}

	span, ok := extractFirstJSONObject(raw)
	if !ok {
		return fallback
	}

	var reply models.AssistantReply
	if err := json.Unmarshal([]byte(span), &reply); err != nil {
		return fallback
	}
	if reply.Message == "" {
		return fallback
	}

	actions := make([]models.AssistantAction, 0, len(reply.Actions))
	for _, action := range reply.Actions {
		if !models.ValidActionType(action.Type) {
			continue
		}
		if action.Params == nil {
			action.Params = map[string]any{}
		}
		actions = append(actions, action)
	}
	reply.Actions = actions

	return reply
}

// ValidateConfig issues a minimal canned prompt and checks the response for
// the expected acknowledgement. Used to confirm a credential is usable
// before persisting it.
func (g *Gateway) ValidateConfig(ctx context.Context) bool {
	text, err := g.provider.Complete(ctx, validationPrompt)
	if err != nil {
		g.logger.Warn().Err(err).Str("func", "Gateway.ValidateConfig").Msg("credential validation failed")
		return false
	}

	return strings.Contains(strings.ToUpper(text), "OK")
}
