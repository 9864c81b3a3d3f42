package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/flashnote/core/internal/logger"
)

// settingsRepository is the SQLite-backed implementation of
// [SettingsRepository].
//
// Settings are best-effort configuration, not critical data: when the store
// connection is already closed both accessors degrade to a logged warning
// (no-op on write, nil on read) so shutdown races triggered by the shell
// never surface as user-facing errors. This deliberately diverges from the
// loud failure path used by note writes.
type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// provided database connection and logger.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

// SetSetting implements [SettingsRepository].
func (r *settingsRepository) SetSetting(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if r.Closed() {
		r.logger.Warn().Str("key", key).Msg("settings write skipped: store is closed")
		return nil
	}

	stmt, err := r.prepared(ctx, "setSetting", upsertSetting)
	if err != nil {
		if errors.Is(err, ErrStoreClosed) {
			r.logger.Warn().Str("key", key).Msg("settings write skipped: store is closed")
			return nil
		}
		return err
	}

	if _, err = stmt.ExecContext(ctx, key, value); err != nil {
		log.Err(err).Str("func", "settingsRepository.SetSetting").Str("key", key).Msg("failed to upsert setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSetting implements [SettingsRepository]. Absence of a key returns nil
// with no error, distinct from an empty stored value.
func (r *settingsRepository) GetSetting(ctx context.Context, key string) (*string, error) {
	if r.Closed() {
		r.logger.Warn().Str("key", key).Msg("settings read skipped: store is closed")
		return nil, nil
	}

	stmt, err := r.prepared(ctx, "getSetting", selectSetting)
	if err != nil {
		if errors.Is(err, ErrStoreClosed) {
			r.logger.Warn().Str("key", key).Msg("settings read skipped: store is closed")
			return nil, nil
		}
		return nil, err
	}

	var value string
	err = stmt.QueryRowContext(ctx, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &value, nil
}
