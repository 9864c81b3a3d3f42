package store

import "github.com/flashnote/core/internal/logger"

// Storages aggregates all repositories sharing one database connection.
type Storages struct {
	Notes    NoteRepository
	Tags     TagRepository
	Digests  DigestRepository
	Settings SettingsRepository
}

// NewStorages wires every repository onto the shared connection.
func NewStorages(db *DB, logger *logger.Logger) Storages {
	return Storages{
		Notes:    NewNoteRepository(db, logger),
		Tags:     NewTagRepository(db, logger),
		Digests:  NewDigestRepository(db, logger),
		Settings: NewSettingsRepository(db, logger),
	}
}
