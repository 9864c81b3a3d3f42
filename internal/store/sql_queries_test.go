// SPDX-License-Identifier: Apache-2.0

package store

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashnote/core/internal/logger"
)

func Test_buildGetNotesQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildGetNotesQuery(10, 5)
	require.NoError(t, err)
	require.Len(t, args, 0)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from notes")
	assert.Contains(t, q, "order by created_at desc")
	assert.Contains(t, q, "limit 10")
	assert.Contains(t, q, "offset 5")
}

func Test_buildGetNotesQuery_NoLimit(t *testing.T) {
	query, _, err := buildGetNotesQuery(0, 5)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.NotContains(t, q, "limit")
	assert.NotContains(t, q, "offset", "offset without a limit must be ignored")
}

func Test_buildTodayNotesQuery_BoundsAsArgs(t *testing.T) {
	start := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	query, args, err := buildTodayNotesQuery(start, end)
	require.NoError(t, err)
	require.Len(t, args, 2)
	assert.Equal(t, start, args[0])
	assert.Equal(t, end, args[1])

	q := strings.ToLower(query)
	assert.Contains(t, q, "created_at >= ?")
	assert.Contains(t, q, "created_at < ?")
}

func Test_buildSearchNotesQuery_EscapesLikeWildcards(t *testing.T) {
	query, args, err := buildSearchNotesQuery("100%_Done", 3)
	require.NoError(t, err)
	require.Len(t, args, 1)
	assert.Equal(t, `%100\%\_done%`, args[0])

	q := strings.ToLower(query)
	assert.Contains(t, q, "lower(text) like ?")
	assert.Contains(t, q, "limit 3")
}

func Test_buildCleanupQuery_FiltersStatusAndCutoff(t *testing.T) {
	cutoff := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	query, args, err := buildCleanupQuery(cutoff)
	require.NoError(t, err)
	require.Len(t, args, 2)
	assert.Equal(t, "closed", args[0])
	assert.Equal(t, cutoff, args[1])

	q := strings.ToLower(query)
	assert.Contains(t, q, "delete from notes")
	assert.Contains(t, q, "status = ?")
	assert.Contains(t, q, "created_at < ?")
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })

	return &DB{
		DB:     raw,
		logger: logger.Nop(),
		stmts:  make(map[string]*sql.Stmt),
	}, mock
}

func TestGetNotes_QueryErrorIsWrapped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .* FROM notes").WillReturnError(sql.ErrConnDone)

	_, err := repo.GetNotes(testContext(), 0, 0)
	require.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotes_ScanErrorIsWrapped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	// deliberately short row to force a scan failure
	rows := sqlmock.NewRows([]string{"id", "text"}).AddRow("n1", "text")
	mock.ExpectQuery("SELECT .* FROM notes").WillReturnRows(rows)

	_, err := repo.GetNotes(testContext(), 0, 0)
	require.ErrorIs(t, err, ErrScanningRows)
	require.NoError(t, mock.ExpectationsWereMet())
}
