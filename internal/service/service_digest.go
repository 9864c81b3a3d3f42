package service

import (
	"context"
	"fmt"
	"time"

	"github.com/flashnote/core/internal/logger"
	"github.com/flashnote/core/internal/store"
	"github.com/flashnote/core/models"
)

// digestDateLayout is the calendar-date key under which digests are saved.
const digestDateLayout = "2006-01-02"

type digestService struct {
	notes   store.NoteRepository
	digests store.DigestRepository
	gateway AIGateway

	logger *logger.Logger
}

func NewDigestService(notes store.NoteRepository, digests store.DigestRepository, gateway AIGateway, logger *logger.Logger) DigestService {
	return &digestService{
		notes:   notes,
		digests: digests,
		gateway: gateway,
		logger:  logger,
	}
}

// GenerateToday loads today's notes and produces the three-section digest.
// The error return covers note loading only; provider failures resolve to
// the gateway's fallback text.
func (s *digestService) GenerateToday(ctx context.Context) (string, error) {
	notes, err := s.notes.GetTodayNotes(ctx)
	if err != nil {
		return "", fmt.Errorf("loading today's notes: %w", err)
	}

	return s.gateway.GenerateDailyDigest(ctx, notes), nil
}

// SaveToday generates today's digest and stores it under the current local
// calendar date. Saving twice on one day keeps both entries; retrieval by
// date returns the most recent save.
func (s *digestService) SaveToday(ctx context.Context) (models.SavedDigest, error) {
	summary, err := s.GenerateToday(ctx)
	if err != nil {
		return models.SavedDigest{}, err
	}

	date := time.Now().Format(digestDateLayout)
	saved, err := s.digests.SaveDigest(ctx, date, summary)
	if err != nil {
		return models.SavedDigest{}, fmt.Errorf("saving digest for %s: %w", date, err)
	}

	s.logger.Debug().Str("func", "digestService.SaveToday").Str("date", date).Msg("digest saved to history")
	return saved, nil
}

func (s *digestService) History(ctx context.Context) ([]models.SavedDigest, error) {
	return s.digests.GetSavedDigests(ctx)
}
