package service

import (
	"github.com/flashnote/core/internal/logger"
	"github.com/flashnote/core/internal/store"
)

// Services aggregates the application services over the shared storages,
// capturer, and AI gateway.
type Services struct {
	Notes     NoteService
	Assistant AssistantService
	Digests   DigestService
}

func NewServices(storages store.Storages, gateway AIGateway, capturer ContextCapturer, logger *logger.Logger) *Services {
	return &Services{
		Notes:     NewNoteService(storages.Notes, storages.Tags, gateway, capturer, logger),
		Assistant: NewAssistantService(storages.Notes, gateway, logger),
		Digests:   NewDigestService(storages.Notes, storages.Digests, gateway, logger),
	}
}
