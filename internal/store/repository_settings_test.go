package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettingsRepo(t *testing.T) (SettingsRepository, *DB) {
	t.Helper()
	db := newTestDB(t)
	return NewSettingsRepository(db, testLogger()), db
}

func TestSettings_SetGetRoundTrip(t *testing.T) {
	repo, _ := newTestSettingsRepo(t)
	ctx := testContext()

	require.NoError(t, repo.SetSetting(ctx, "ai_provider", "openai"))

	value, err := repo.GetSetting(ctx, "ai_provider")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "openai", *value)
}

func TestSettings_UpsertOverwrites(t *testing.T) {
	repo, _ := newTestSettingsRepo(t)
	ctx := testContext()

	require.NoError(t, repo.SetSetting(ctx, "ai_model", "gpt-4o-mini"))
	require.NoError(t, repo.SetSetting(ctx, "ai_model", "gpt-4o"))

	value, err := repo.GetSetting(ctx, "ai_model")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "gpt-4o", *value)
}

func TestSettings_AbsentKeyDistinctFromEmptyValue(t *testing.T) {
	repo, _ := newTestSettingsRepo(t)
	ctx := testContext()

	absent, err := repo.GetSetting(ctx, "never_set")
	require.NoError(t, err)
	assert.Nil(t, absent)

	require.NoError(t, repo.SetSetting(ctx, "empty_key", ""))
	empty, err := repo.GetSetting(ctx, "empty_key")
	require.NoError(t, err)
	require.NotNil(t, empty)
	assert.Equal(t, "", *empty)
}

// Settings access after Close must degrade to warnings, never errors, so
// shutdown races do not surface spurious failures.
func TestSettings_DegradeSilentlyAfterClose(t *testing.T) {
	repo, db := newTestSettingsRepo(t)
	ctx := testContext()

	require.NoError(t, repo.SetSetting(ctx, "ai_provider", "qwen"))
	require.NoError(t, db.Close())

	require.NoError(t, repo.SetSetting(ctx, "ai_provider", "openai"))

	value, err := repo.GetSetting(ctx, "ai_provider")
	require.NoError(t, err)
	assert.Nil(t, value)
}
