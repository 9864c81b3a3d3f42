package store

import (
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether err is a SQLite constraint error caused
// by a UNIQUE or PRIMARY KEY collision. It attempts to unwrap err as a
// sqlite3.Error and inspects the extended result code.
//
// See https://www.sqlite.org/rescode.html for the full list of SQLite
// result codes.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
