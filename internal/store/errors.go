package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStoreClosed is returned when a mutation is attempted after Close.
	// Settings access converts this into a warning instead.
	ErrStoreClosed = errors.New("store is closed")

	// ErrEmptyNoteText is returned when note creation is attempted with
	// blank text.
	ErrEmptyNoteText = errors.New("note text is empty")

	// ErrNoteNotFound is returned when a query targets a note id that does
	// not exist in the database.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrTagNameExists is returned when custom tag creation collides with
	// an existing name. Creation surfaces it as a structured failure
	// result, never a raised error.
	ErrTagNameExists = errors.New("tag name already exists")

	// ErrEmptyTagName is returned when custom tag creation is attempted
	// with a blank name.
	ErrEmptyTagName = errors.New("tag name is empty")

	// ErrInvalidNoteStatus is returned when a status update names a value
	// outside the known lifecycle states.
	ErrInvalidNoteStatus = errors.New("invalid note status")

	// ErrInvalidNoteType is returned when a type hint outside the five
	// known categories is supplied explicitly.
	ErrInvalidNoteType = errors.New("invalid note type")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared.
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
