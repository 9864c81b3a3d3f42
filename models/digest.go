package models

import "time"

// SavedDigest is a persisted AI summary for a calendar date. Multiple saves
// per date are allowed and ordered by save time; the digest is only ever
// created by an explicit save action, never automatically.
type SavedDigest struct {
	// ID is the unique identifier of the saved digest.
	ID string `json:"id"`

	// Date is the calendar day the digest covers, formatted YYYY-MM-DD.
	// Not unique across saves.
	Date string `json:"date"`

	// Summary is the formatted Markdown digest text.
	Summary string `json:"summary"`

	// CreatedAt is the timestamp the digest content was generated.
	CreatedAt time.Time `json:"created_at"`

	// SavedAt is the timestamp the digest was saved to history.
	SavedAt time.Time `json:"saved_at"`
}
