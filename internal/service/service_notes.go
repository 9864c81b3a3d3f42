package service

import (
	"context"

	"github.com/flashnote/core/internal/logger"
	"github.com/flashnote/core/internal/store"
	"github.com/flashnote/core/models"
)

type noteService struct {
	notes    store.NoteRepository
	tags     store.TagRepository
	gateway  AIGateway
	capturer ContextCapturer

	logger *logger.Logger
}

func NewNoteService(notes store.NoteRepository, tags store.TagRepository, gateway AIGateway, capturer ContextCapturer, logger *logger.Logger) NoteService {
	return &noteService{
		notes:    notes,
		tags:     tags,
		gateway:  gateway,
		capturer: capturer,
		logger:   logger,
	}
}

// CaptureNote snapshots the environment when the caller supplied no
// context, persists the note, and bumps usage counters for the project tag
// and every attached tag. Counter failures are logged, never raised: tag
// statistics must not block note creation.
func (s *noteService) CaptureNote(ctx context.Context, input models.CreateNoteInput) (models.Note, error) {
	if input.Context == nil {
		captured := s.capturer.Capture(ctx)
		input.Context = &captured
	}

	note, err := s.notes.CreateNote(ctx, input)
	if err != nil {
		return models.Note{}, err
	}

	s.bumpTagUsage(ctx, note)

	return note, nil
}

func (s *noteService) bumpTagUsage(ctx context.Context, note models.Note) {
	names := make([]string, 0, len(note.Tags)+1)
	if note.ProjectTag != "" {
		names = append(names, note.ProjectTag)
	}
	names = append(names, note.Tags...)

	for _, name := range names {
		if err := s.tags.IncrementTagUsage(ctx, name); err != nil {
			s.logger.Warn().Err(err).Str("func", "noteService.bumpTagUsage").Str("tag", name).Msg("failed to bump tag usage")
		}
	}
}

// OptimizeNote rewrites the note text via the provider and persists the
// result. A provider failure leaves the stored text unchanged, so the
// returned note always reflects the database state.
func (s *noteService) OptimizeNote(ctx context.Context, id string) (models.Note, error) {
	note, err := s.notes.GetNoteByID(ctx, id)
	if err != nil {
		return models.Note{}, err
	}

	optimized := s.gateway.OptimizeContent(ctx, note.Text)
	if optimized == note.Text || optimized == "" {
		return note, nil
	}

	updated, err := s.notes.UpdateNoteText(ctx, id, optimized)
	if err != nil {
		return models.Note{}, err
	}
	if !updated {
		return models.Note{}, store.ErrNoteNotFound
	}

	note.Text = optimized
	return note, nil
}
