package models

import "time"

// NoteType is the inferred or user-chosen semantic category of a note.
type NoteType string

const (
	// TypeTodo marks an actionable task or follow-up item.
	TypeTodo NoteType = "todo"

	// TypeIssue marks a defect, risk, or problem report.
	TypeIssue NoteType = "issue"

	// TypeIdea marks a suggestion or optimization thought.
	TypeIdea NoteType = "idea"

	// TypeFeeling marks an affective or reflective entry.
	TypeFeeling NoteType = "feeling"

	// TypeNote is the fallback category for plain observations.
	TypeNote NoteType = "note"
)

// NoteStatus tracks the lifecycle of a note. Transitions are caller-driven;
// the only automatic transition is closed → deleted via retention cleanup.
type NoteStatus string

const (
	// StatusNew is the default status assigned at creation.
	StatusNew NoteStatus = "new"

	// StatusOngoing marks a note the user is actively working on.
	StatusOngoing NoteStatus = "ongoing"

	// StatusClosed marks a note as done; closed notes older than the
	// retention window are removed by cleanup.
	StatusClosed NoteStatus = "closed"
)

// Note is a single captured thought together with its classification
// metadata and the environmental context recorded at creation time.
type Note struct {
	// ID is the opaque unique identifier assigned at creation. Immutable.
	ID string `json:"id"`

	// Text is the captured free-form content. Mutable via edit and
	// AI optimization.
	Text string `json:"text"`

	// CreatedAt is assigned once at creation and defines retrieval
	// ordering across the collection.
	CreatedAt time.Time `json:"created_at"`

	// AppName is the foreground application at capture time, if known.
	AppName string `json:"app_name,omitempty"`

	// WindowTitle is the foreground window title at capture time, if known.
	WindowTitle string `json:"window_title,omitempty"`

	// URL is the page address extracted from a browser window title,
	// if one was detected.
	URL string `json:"url,omitempty"`

	// TypeHint is the note category, explicit or inferred at creation.
	TypeHint NoteType `json:"type_hint"`

	// Tags is the set of free-form labels attached to the note. Always
	// materialized as a slice, never a raw serialized blob.
	Tags []string `json:"tags"`

	// ProjectTag optionally groups the note into a project.
	ProjectTag string `json:"project_tag,omitempty"`

	// Status is the lifecycle state, defaulted to StatusNew.
	Status NoteStatus `json:"status"`
}

// CaptureContext is the snapshot of the user's environment at the moment a
// note is created. All fields are best-effort and may be empty.
type CaptureContext struct {
	// AppName is the foreground application name.
	AppName string `json:"app_name,omitempty"`

	// WindowTitle is the foreground window title.
	WindowTitle string `json:"window_title,omitempty"`

	// URL is the extracted page address for browser windows.
	URL string `json:"url,omitempty"`
}

// CreateNoteInput carries the caller-supplied fields for note creation.
// Context and TypeHint are optional; an absent TypeHint is inferred from
// the text by the classifier.
type CreateNoteInput struct {
	Text       string          `json:"text"`
	Context    *CaptureContext `json:"context,omitempty"`
	TypeHint   NoteType        `json:"type_hint,omitempty"`
	Tags       []string        `json:"tags,omitempty"`
	ProjectTag string          `json:"project_tag,omitempty"`
}

// ValidNoteType reports whether t is one of the five known categories.
func ValidNoteType(t NoteType) bool {
	switch t {
	case TypeTodo, TypeIssue, TypeIdea, TypeFeeling, TypeNote:
		return true
	}
	return false
}

// ValidNoteStatus reports whether s is one of the known lifecycle states.
func ValidNoteStatus(s NoteStatus) bool {
	switch s {
	case StatusNew, StatusOngoing, StatusClosed:
		return true
	}
	return false
}
