package store

import "github.com/google/uuid"

// newID generates a time-ordered UUIDv7 identifier, falling back to a
// random UUIDv4 if v7 generation fails.
func newID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
