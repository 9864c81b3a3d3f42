package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flashnote/core/internal/classifier"
	"github.com/flashnote/core/internal/logger"
	"github.com/flashnote/core/models"
)

// retentionWindow is how long a closed note survives, counted from its
// creation time. A note closed minutes after creation is still retained
// until seven days after creation, not seven days after closure.
const retentionWindow = 7 * 24 * time.Hour

// noteRepository is the SQLite-backed implementation of [NoteRepository].
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote implements [NoteRepository]. The id is a time-ordered UUID, the
// creation timestamp is assigned at the moment of the store call, and an
// absent type hint is inferred from the text by the classifier. Capture
// context fields are stored verbatim.
func (r *noteRepository) CreateNote(ctx context.Context, input models.CreateNoteInput) (models.Note, error) {
	log := logger.FromContext(ctx)

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return models.Note{}, ErrEmptyNoteText
	}

	typeHint := input.TypeHint
	if typeHint == "" {
		typeHint = classifier.Classify(text)
	} else if !models.ValidNoteType(typeHint) {
		return models.Note{}, ErrInvalidNoteType
	}

	note := models.Note{
		ID:         newID(),
		Text:       text,
		CreatedAt:  time.Now().UTC(),
		TypeHint:   typeHint,
		Tags:       dedupTags(input.Tags),
		ProjectTag: input.ProjectTag,
		Status:     models.StatusNew,
	}
	if input.Context != nil {
		note.AppName = input.Context.AppName
		note.WindowTitle = input.Context.WindowTitle
		note.URL = input.Context.URL
	}

	tagsJSON, err := json.Marshal(note.Tags)
	if err != nil {
		return models.Note{}, fmt.Errorf("encode note tags: %w", err)
	}

	stmt, err := r.prepared(ctx, "createNote", insertNote)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to prepare insert")
		return models.Note{}, err
	}

	_, err = stmt.ExecContext(ctx,
		note.ID, note.Text, note.CreatedAt,
		note.AppName, note.WindowTitle, note.URL,
		string(note.TypeHint), string(tagsJSON), note.ProjectTag, string(note.Status),
	)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return note, nil
}

// GetNotes implements [NoteRepository].
func (r *noteRepository) GetNotes(ctx context.Context, limit, offset int) ([]models.Note, error) {
	query, args, err := buildGetNotesQuery(limit, offset)
	if err != nil {
		return nil, err
	}

	return r.queryNotes(ctx, "noteRepository.GetNotes", query, args...)
}

// GetTodayNotes implements [NoteRepository]. The calendar day is resolved in
// the process's local time zone at the moment of the call.
func (r *noteRepository) GetTodayNotes(ctx context.Context) ([]models.Note, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	query, args, err := buildTodayNotesQuery(start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}

	return r.queryNotes(ctx, "noteRepository.GetTodayNotes", query, args...)
}

// GetNoteByID implements [NoteRepository].
func (r *noteRepository) GetNoteByID(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	stmt, err := r.prepared(ctx, "getNoteByID", selectNoteByID)
	if err != nil {
		return models.Note{}, err
	}

	note, err := scanNote(stmt.QueryRowContext(ctx, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetNoteByID").Str("note_id", id).Msg("failed to fetch note")
		return models.Note{}, err
	}

	return note, nil
}

// SearchNotes implements [NoteRepository].
func (r *noteRepository) SearchNotes(ctx context.Context, term string, limit int) ([]models.Note, error) {
	query, args, err := buildSearchNotesQuery(term, limit)
	if err != nil {
		return nil, err
	}

	return r.queryNotes(ctx, "noteRepository.SearchNotes", query, args...)
}

// DeleteNote implements [NoteRepository].
func (r *noteRepository) DeleteNote(ctx context.Context, id string) (bool, error) {
	return r.execAffectingOne(ctx, "deleteNote", deleteNoteSQL, id)
}

// UpdateNoteText implements [NoteRepository].
func (r *noteRepository) UpdateNoteText(ctx context.Context, id, text string) (bool, error) {
	return r.execAffectingOne(ctx, "updateNoteText", updateNoteTextSQL, text, id)
}

// UpdateNoteTags implements [NoteRepository]. Tags are deduplicated
// preserving first-occurrence order before storage.
func (r *noteRepository) UpdateNoteTags(ctx context.Context, id string, tags []string) (bool, error) {
	tagsJSON, err := json.Marshal(dedupTags(tags))
	if err != nil {
		return false, fmt.Errorf("encode note tags: %w", err)
	}

	return r.execAffectingOne(ctx, "updateNoteTags", updateNoteTagsSQL, string(tagsJSON), id)
}

// UpdateNoteStatus implements [NoteRepository].
func (r *noteRepository) UpdateNoteStatus(ctx context.Context, id string, status models.NoteStatus) (bool, error) {
	if !models.ValidNoteStatus(status) {
		return false, ErrInvalidNoteStatus
	}

	return r.execAffectingOne(ctx, "updateNoteStatus", updateNoteStatusSQL, string(status), id)
}

// CleanupCompletedNotes implements [NoteRepository]. Safe to call
// repeatedly; a pass that matches nothing reports success with a zero count.
func (r *noteRepository) CleanupCompletedNotes(ctx context.Context) models.CleanupResult {
	log := logger.FromContext(ctx)

	query, args, err := buildCleanupQuery(time.Now().UTC().Add(-retentionWindow))
	if err != nil {
		return models.CleanupResult{Error: err.Error()}
	}

	if r.Closed() {
		return models.CleanupResult{Error: ErrStoreClosed.Error()}
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CleanupCompletedNotes").Msg("failed to delete expired notes")
		return models.CleanupResult{Error: err.Error()}
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return models.CleanupResult{Error: err.Error()}
	}

	log.Debug().Str("func", "noteRepository.CleanupCompletedNotes").Int64("deleted", deleted).Msg("retention cleanup finished")
	return models.CleanupResult{Success: true, DeletedCount: deleted}
}

func (r *noteRepository) execAffectingOne(ctx context.Context, name, query string, args ...any) (bool, error) {
	log := logger.FromContext(ctx)

	stmt, err := r.prepared(ctx, name, query)
	if err != nil {
		return false, err
	}

	res, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository."+name).Msg("failed to execute statement")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (r *noteRepository) queryNotes(ctx context.Context, caller, query string, args ...any) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if r.Closed() {
		return nil, ErrStoreClosed
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Err(err).Str("func", caller).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanNote materializes one notes row. Tags always come back as a slice and
// status is defaulted to new if storage holds an empty value.
func scanNote(row rowScanner) (models.Note, error) {
	var (
		note     models.Note
		typeHint string
		tagsJSON string
		status   string
	)

	err := row.Scan(
		&note.ID, &note.Text, &note.CreatedAt,
		&note.AppName, &note.WindowTitle, &note.URL,
		&typeHint, &tagsJSON, &note.ProjectTag, &status,
	)
	if err != nil {
		return models.Note{}, err
	}

	note.TypeHint = models.NoteType(typeHint)

	note.Tags = make([]string, 0)
	if tagsJSON != "" {
		if err = json.Unmarshal([]byte(tagsJSON), &note.Tags); err != nil {
			note.Tags = make([]string, 0)
		}
	}

	note.Status = models.NoteStatus(status)
	if note.Status == "" {
		note.Status = models.StatusNew
	}

	return note, nil
}

// dedupTags removes duplicates while preserving first-occurrence order.
func dedupTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}

	return result
}
