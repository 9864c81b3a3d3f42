package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/flashnote/core/internal/logger"
	"github.com/flashnote/core/models"
)

// tagRepository is the SQLite-backed implementation of [TagRepository].
type tagRepository struct {
	*DB
	logger *logger.Logger
}

// NewTagRepository constructs a [TagRepository] backed by the provided
// database connection and logger.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateCustomTag implements [TagRepository]. Collisions with an existing
// name (case-sensitive, enforced by the UNIQUE constraint) are reported as a
// structured failure without mutating state.
func (r *tagRepository) CreateCustomTag(ctx context.Context, name, color string) models.CreateTagResult {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return models.CreateTagResult{Error: ErrEmptyTagName.Error()}
	}

	tag := models.CustomTag{
		ID:        newID(),
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}

	stmt, err := r.prepared(ctx, "createCustomTag", insertCustomTag)
	if err != nil {
		return models.CreateTagResult{Error: err.Error()}
	}

	if _, err = stmt.ExecContext(ctx, tag.ID, tag.Name, tag.Color, tag.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return models.CreateTagResult{Error: ErrTagNameExists.Error()}
		}

		log.Err(err).Str("func", "tagRepository.CreateCustomTag").Str("name", name).Msg("failed to insert custom tag")
		return models.CreateTagResult{Error: err.Error()}
	}

	return models.CreateTagResult{Success: true, Tag: &tag}
}

// GetCustomTags implements [TagRepository].
func (r *tagRepository) GetCustomTags(ctx context.Context) ([]models.CustomTag, error) {
	log := logger.FromContext(ctx)

	stmt, err := r.prepared(ctx, "getCustomTags", selectCustomTags)
	if err != nil {
		return nil, err
	}

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "tagRepository.GetCustomTags").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.CustomTag, 0)
	for rows.Next() {
		var tag models.CustomTag
		if err = rows.Scan(&tag.ID, &tag.Name, &tag.Color, &tag.CreatedAt, &tag.UsedCount); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tags = append(tags, tag)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}

// DeleteCustomTag implements [TagRepository].
func (r *tagRepository) DeleteCustomTag(ctx context.Context, id string) (bool, error) {
	stmt, err := r.prepared(ctx, "deleteCustomTag", deleteCustomTagSQL)
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

// TagExists implements [TagRepository]. The check is case-sensitive,
// matching the uniqueness rule.
func (r *tagRepository) TagExists(ctx context.Context, name string) (bool, error) {
	stmt, err := r.prepared(ctx, "tagExists", countCustomTagByName)
	if err != nil {
		return false, err
	}

	var count int64
	if err = stmt.QueryRowContext(ctx, name).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count > 0, nil
}

// IncrementTagUsage implements [TagRepository].
func (r *tagRepository) IncrementTagUsage(ctx context.Context, name string) error {
	stmt, err := r.prepared(ctx, "incrementTagUsage", incrementTagUsageSQL)
	if err != nil {
		return err
	}

	if _, err = stmt.ExecContext(ctx, name); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
