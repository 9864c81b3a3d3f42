// Package store owns the durable representation of notes, custom tags,
// saved digests, and settings, backed by a single long-lived SQLite
// connection.
//
// Write paths are serialized by the database; callers needing
// read-modify-write semantics must serialize themselves (last writer wins).
// Settings access degrades to warnings after Close so shutdown races never
// surface as user-facing errors; every other mutation fails loudly.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/flashnote/core/internal/logger"
	"github.com/flashnote/core/migrations"
)

// DB wraps the SQLite connection shared by all repositories. It owns a
// per-instance prepared-statement cache, populated lazily on first use per
// operation name and released on Close.
type DB struct {
	*sql.DB
	logger *logger.Logger

	mu     sync.Mutex
	stmts  map[string]*sql.Stmt
	closed bool
}

// NewConnectSQLite opens (creating if necessary) the SQLite database file at
// dsn and verifies the connection with a ping.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
		stmts:  make(map[string]*sql.Stmt),
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// prepared returns the cached prepared statement for name, compiling and
// caching it on first use.
func (db *DB) prepared(ctx context.Context, name, query string) (*sql.Stmt, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.closed {
		return nil, ErrStoreClosed
	}

	if stmt, ok := db.stmts[name]; ok {
		return stmt, nil
	}

	stmt, err := db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPreparingStatement, name, err)
	}

	db.stmts[name] = stmt
	return stmt, nil
}

// Closed reports whether Close has been called.
func (db *DB) Closed() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.closed
}

// Close releases the statement cache and the underlying connection.
// Idempotent; subsequent mutation calls fail with [ErrStoreClosed] while
// settings access degrades to a warning.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.closed {
		return nil
	}
	db.closed = true

	for name, stmt := range db.stmts {
		if err := stmt.Close(); err != nil {
			db.logger.Warn().Err(err).Str("stmt", name).Msg("failed to close prepared statement")
		}
	}
	db.stmts = make(map[string]*sql.Stmt)

	return db.DB.Close()
}
