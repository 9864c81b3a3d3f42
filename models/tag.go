package models

import "time"

// CustomTag is a user-defined label usable as a project or category marker.
// Names are unique (case-sensitive); uniqueness is enforced at creation.
type CustomTag struct {
	// ID is the unique identifier of the tag.
	ID string `json:"id"`

	// Name is the display name. Unique across all custom tags.
	Name string `json:"name"`

	// Color is a display hint for the presentation layer.
	Color string `json:"color,omitempty"`

	// CreatedAt is the tag creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// UsedCount is a monotonically non-decreasing usage counter,
	// informational only.
	UsedCount int64 `json:"used_count"`
}

// CreateTagResult is the structured outcome of a custom-tag creation.
// Duplicate names are reported here rather than raised, so the caller can
// surface an inline message.
type CreateTagResult struct {
	Success bool       `json:"success"`
	Tag     *CustomTag `json:"tag,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// CleanupResult is the outcome of a retention cleanup pass.
type CleanupResult struct {
	Success      bool   `json:"success"`
	DeletedCount int64  `json:"deleted_count"`
	Error        string `json:"error,omitempty"`
}
