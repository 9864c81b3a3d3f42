package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/flashnote/core/internal/logger"
	"github.com/flashnote/core/models"
)

// digestRepository is the SQLite-backed implementation of [DigestRepository].
type digestRepository struct {
	*DB
	logger *logger.Logger
}

// NewDigestRepository constructs a [DigestRepository] backed by the provided
// database connection and logger.
func NewDigestRepository(db *DB, logger *logger.Logger) DigestRepository {
	logger.Debug().Msg("creating digest repository")
	return &digestRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveDigest implements [DigestRepository]. Saving is always an explicit
// caller action; the same date may be saved any number of times and saves
// are ordered by SavedAt.
func (r *digestRepository) SaveDigest(ctx context.Context, date, summary string) (models.SavedDigest, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	digest := models.SavedDigest{
		ID:        newID(),
		Date:      date,
		Summary:   summary,
		CreatedAt: now,
		SavedAt:   now,
	}

	stmt, err := r.prepared(ctx, "saveDigest", insertSavedDigest)
	if err != nil {
		return models.SavedDigest{}, err
	}

	_, err = stmt.ExecContext(ctx, digest.ID, digest.Date, digest.Summary, digest.CreatedAt, digest.SavedAt)
	if err != nil {
		log.Err(err).Str("func", "digestRepository.SaveDigest").Str("date", date).Msg("failed to insert digest")
		return models.SavedDigest{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return digest, nil
}

// GetSavedDigests implements [DigestRepository].
func (r *digestRepository) GetSavedDigests(ctx context.Context) ([]models.SavedDigest, error) {
	log := logger.FromContext(ctx)

	stmt, err := r.prepared(ctx, "getSavedDigests", selectSavedDigests)
	if err != nil {
		return nil, err
	}

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "digestRepository.GetSavedDigests").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	digests := make([]models.SavedDigest, 0)
	for rows.Next() {
		var digest models.SavedDigest
		if err = rows.Scan(&digest.ID, &digest.Date, &digest.Summary, &digest.CreatedAt, &digest.SavedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		digests = append(digests, digest)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return digests, nil
}

// GetSavedDigestByDate implements [DigestRepository]. Returns the most
// recent save for the date, or nil when the date has never been saved.
func (r *digestRepository) GetSavedDigestByDate(ctx context.Context, date string) (*models.SavedDigest, error) {
	stmt, err := r.prepared(ctx, "getSavedDigestByDate", selectSavedDigestByDate)
	if err != nil {
		return nil, err
	}

	var digest models.SavedDigest
	err = stmt.QueryRowContext(ctx, date).
		Scan(&digest.ID, &digest.Date, &digest.Summary, &digest.CreatedAt, &digest.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &digest, nil
}

// DeleteSavedDigest implements [DigestRepository].
func (r *digestRepository) DeleteSavedDigest(ctx context.Context, id string) (bool, error) {
	stmt, err := r.prepared(ctx, "deleteSavedDigest", deleteSavedDigestSQL)
	if err != nil {
		return false, err
	}

	res, err := stmt.ExecContext(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}
