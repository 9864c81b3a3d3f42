package store

import (
	"context"

	"github.com/flashnote/core/models"
)

// NoteRepository persists and queries captured notes and applies the
// retention policy over closed notes.
type NoteRepository interface {
	// CreateNote assigns an id and creation timestamp, infers the type
	// hint when absent, defaults the status to new, and persists the note.
	CreateNote(ctx context.Context, input models.CreateNoteInput) (models.Note, error)

	// GetNotes returns notes ordered by creation time descending. A
	// non-positive limit returns everything.
	GetNotes(ctx context.Context, limit, offset int) ([]models.Note, error)

	// GetTodayNotes returns the subset of notes created on the current
	// local calendar day.
	GetTodayNotes(ctx context.Context) ([]models.Note, error)

	// GetNoteByID fetches a single note. Returns [ErrNoteNotFound] when
	// id is absent.
	GetNoteByID(ctx context.Context, id string) (models.Note, error)

	// SearchNotes returns notes whose text contains query,
	// case-insensitively, newest first.
	SearchNotes(ctx context.Context, query string, limit int) ([]models.Note, error)

	// DeleteNote removes a note, reporting false when id is absent.
	DeleteNote(ctx context.Context, id string) (bool, error)

	// UpdateNoteText replaces the note text, reporting false when id is
	// absent.
	UpdateNoteText(ctx context.Context, id, text string) (bool, error)

	// UpdateNoteTags replaces the tag set, reporting false when id is
	// absent.
	UpdateNoteTags(ctx context.Context, id string, tags []string) (bool, error)

	// UpdateNoteStatus moves the note to the given lifecycle state,
	// reporting false when id is absent.
	UpdateNoteStatus(ctx context.Context, id string, status models.NoteStatus) (bool, error)

	// CleanupCompletedNotes deletes every closed note whose creation
	// timestamp is older than the retention window. Idempotent.
	CleanupCompletedNotes(ctx context.Context) models.CleanupResult
}

// TagRepository maintains the registry of user-defined custom tags.
type TagRepository interface {
	// CreateCustomTag registers a new tag. Name collisions are reported
	// in the result, never raised, and leave existing state untouched.
	CreateCustomTag(ctx context.Context, name, color string) models.CreateTagResult

	// GetCustomTags returns all tags ordered by usage count descending,
	// then creation time descending.
	GetCustomTags(ctx context.Context) ([]models.CustomTag, error)

	// DeleteCustomTag removes a tag, reporting false when id is absent.
	DeleteCustomTag(ctx context.Context, id string) (bool, error)

	// TagExists reports whether a tag with the given name is registered.
	TagExists(ctx context.Context, name string) (bool, error)

	// IncrementTagUsage bumps the usage counter of the named tag.
	// Unknown names are a no-op.
	IncrementTagUsage(ctx context.Context, name string) error
}

// DigestRepository persists AI digests explicitly saved to history.
type DigestRepository interface {
	// SaveDigest stores a digest for the given calendar date. Multiple
	// saves per date are allowed.
	SaveDigest(ctx context.Context, date, summary string) (models.SavedDigest, error)

	// GetSavedDigests returns all saved digests ordered by date, then
	// save time descending.
	GetSavedDigests(ctx context.Context) ([]models.SavedDigest, error)

	// GetSavedDigestByDate returns the most recent save for the date, or
	// nil when none exists.
	GetSavedDigestByDate(ctx context.Context, date string) (*models.SavedDigest, error)

	// DeleteSavedDigest removes a saved digest, reporting false when id
	// is absent.
	DeleteSavedDigest(ctx context.Context, id string) (bool, error)
}

// SettingsRepository is the flat key/value store for small persisted
// configuration. Access after Close degrades to warnings rather than errors
// so shutdown races never crash callers.
type SettingsRepository interface {
	// SetSetting upserts a value. A no-op with a logged warning when the
	// store is closed.
	SetSetting(ctx context.Context, key, value string) error

	// GetSetting returns the stored value, or nil when the key is absent
	// or the store is closed. Absence is distinct from an empty value.
	GetSetting(ctx context.Context, key string) (*string, error)
}
