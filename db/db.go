package db

import (
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3"
)

const dbDriver = "sqlite3"

// Sentinel errors the dispatcher turns into distinct user-facing messages.
var (
	ErrNotFound        = errors.New("not found")
	ErrMultipleMatches = errors.New("multiple matches for unique key")
	ErrNotConfigured   = errors.New("archive backend not configured")
)

// Archive wraps the SQLite archive database. A nil *Archive is valid and
// makes every operation fail closed with ErrNotConfigured.
type Archive struct {
	db *sql.DB
}

// Open opens (creating if needed) the archive database at path and ensures
// the schema exists.
func Open(path string) (*Archive, error) {
	if path == "" {
		return nil, ErrNotConfigured
	}
	conn, err := sql.Open(dbDriver, path)
	if err != nil {
		return nil, err
	}
	a := &Archive{db: conn}
	if err := a.createTables(); err != nil {
		conn.Close()
		return nil, err
	}
	return a, nil
}

// Close closes the underlying connection pool.
func (a *Archive) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *Archive) ready() error {
	if a == nil || a.db == nil {
		return ErrNotConfigured
	}
	return nil
}

// createTables creates the necessary tables in the database if they don't exist.
func (a *Archive) createTables() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS myo_archive (
			cardId TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			title TEXT,
			author TEXT,
			description TEXT,
			category TEXT,
			userId TEXT,
			creatorEmail TEXT,
			duration INTEGER NOT NULL DEFAULT 0,
			fileSize INTEGER NOT NULL DEFAULT 0,
			createdAt TEXT,
			updatedAt TEXT,
			submitCount INTEGER NOT NULL DEFAULT 1,
			firstSubmittedAt INTEGER NOT NULL,
			lastSubmittedAt INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS links (
			id TEXT PRIMARY KEY,
			userId TEXT NOT NULL,
			url TEXT NOT NULL,
			createdAt INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS emails (
			id TEXT PRIMARY KEY,
			userId TEXT NOT NULL,
			email TEXT NOT NULL,
			createdAt INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS applications (
			userId TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			updatedAt INTEGER NOT NULL
		);`,
	}
	for _, stmt := range statements {
		if _, err := a.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
