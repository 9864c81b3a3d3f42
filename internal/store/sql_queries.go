package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const noteColumns = `id, text, created_at, app_name, window_title, url, type_hint, tags, project_tag, status`

const (
	insertNote = `INSERT INTO notes (
			id,
			text,
			created_at,
			app_name,
			window_title,
			url,
			type_hint,
			tags,
			project_tag,
			status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	selectNoteByID = `SELECT ` + noteColumns + `
		FROM notes
		WHERE id = ?;`

	updateNoteTextSQL = `UPDATE notes SET text = ? WHERE id = ?;`

	updateNoteTagsSQL = `UPDATE notes SET tags = ? WHERE id = ?;`

	updateNoteStatusSQL = `UPDATE notes SET status = ? WHERE id = ?;`

	deleteNoteSQL = `DELETE FROM notes WHERE id = ?;`

	insertCustomTag = `INSERT INTO custom_tags (id, name, color, created_at, used_count)
		VALUES (?, ?, ?, ?, 0);`

	selectCustomTags = `SELECT id, name, color, created_at, used_count
		FROM custom_tags
		ORDER BY used_count DESC, created_at DESC;`

	deleteCustomTagSQL = `DELETE FROM custom_tags WHERE id = ?;`

	countCustomTagByName = `SELECT COUNT(1) FROM custom_tags WHERE name = ?;`

	incrementTagUsageSQL = `UPDATE custom_tags SET used_count = used_count + 1 WHERE name = ?;`

	insertSavedDigest = `INSERT INTO saved_digests (id, date, summary, created_at, saved_at)
		VALUES (?, ?, ?, ?, ?);`

	selectSavedDigests = `SELECT id, date, summary, created_at, saved_at
		FROM saved_digests
		ORDER BY date DESC, saved_at DESC;`

	selectSavedDigestByDate = `SELECT id, date, summary, created_at, saved_at
		FROM saved_digests
		WHERE date = ?
		ORDER BY saved_at DESC
		LIMIT 1;`

	deleteSavedDigestSQL = `DELETE FROM saved_digests WHERE id = ?;`

	upsertSetting = `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	selectSetting = `SELECT value FROM settings WHERE key = ?;`
)

// buildGetNotesQuery constructs the paginated listing query, newest first.
// A non-positive limit selects everything; offset only applies together
// with a limit.
func buildGetNotesQuery(limit, offset int) (string, []any, error) {
	builder := sq.Select(noteColumns).
		From("notes").
		OrderBy("created_at DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
		if offset > 0 {
			builder = builder.Offset(uint64(offset))
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildTodayNotesQuery selects notes created within [start, end), newest
// first. The bounds are the local calendar day converted to storage time.
func buildTodayNotesQuery(start, end time.Time) (string, []any, error) {
	query, args, err := sq.Select(noteColumns).
		From("notes").
		Where(sq.GtOrEq{"created_at": start}).
		Where(sq.Lt{"created_at": end}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSearchNotesQuery selects notes whose text contains term,
// case-insensitively, newest first.
func buildSearchNotesQuery(term string, limit int) (string, []any, error) {
	builder := sq.Select(noteColumns).
		From("notes").
		Where(sq.Expr(`LOWER(text) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(term))+"%")).
		OrderBy("created_at DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCleanupQuery deletes closed notes created before cutoff. Retention is
// computed from created_at, never from the closure time.
func buildCleanupQuery(cutoff time.Time) (string, []any, error) {
	query, args, err := sq.Delete("notes").
		Where(sq.Eq{"status": "closed"}).
		Where(sq.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
