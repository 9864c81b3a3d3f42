package service

import (
	"context"

	"github.com/flashnote/core/models"
)

// NoteService is the capture-to-persistence pipeline: it snapshots the
// user's environment, creates the note, and keeps tag usage counters
// current.
type NoteService interface {
	// CaptureNote persists input, filling in the environment context when
	// the caller did not supply one.
	CaptureNote(ctx context.Context, input models.CreateNoteInput) (models.Note, error)

	// OptimizeNote rewrites a note's text into clean hierarchical plain
	// text. The text is preserved unchanged when the provider fails.
	OptimizeNote(ctx context.Context, id string) (models.Note, error)
}

// AssistantService runs conversational turns and executes the actions the
// assistant requests against the note store.
type AssistantService interface {
	Chat(ctx context.Context, userInput string) (ChatResult, error)
}

// DigestService produces the daily digest over today's notes and manages
// the saved-digest history.
type DigestService interface {
	// GenerateToday summarizes today's notes into the three-section digest.
	GenerateToday(ctx context.Context) (string, error)

	// SaveToday generates today's digest and stores it in history.
	SaveToday(ctx context.Context) (models.SavedDigest, error)

	// History returns all saved digests, newest first.
	History(ctx context.Context) ([]models.SavedDigest, error)
}

// ContextCapturer snapshots the foreground application context. It never
// fails; unavailable context resolves to fallback values.
type ContextCapturer interface {
	Capture(ctx context.Context) models.CaptureContext
}

// AIGateway is the provider-backed text generation surface consumed by the
// services.
type AIGateway interface {
	GenerateDailyDigest(ctx context.Context, notes []models.Note) string
	OptimizeContent(ctx context.Context, raw string) string
	ProcessAssistantChat(ctx context.Context, userInput string, notes []models.Note) models.AssistantReply
	ValidateConfig(ctx context.Context) bool
}
