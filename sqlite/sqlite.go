// Package sqlite provides SQLite-based storage implementations for lectio services.
package sqlite

import (
	"context"
	"database/sql"

	"github.com/awalczyk/lectio"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
// Failures surface EUNAVAILABLE so the caller can report degraded mode
// instead of crashing.
func (db *DB) Open() error {
	if db.path == "" {
		return lectio.Errorf(lectio.EINVALID, "Database path required.")
	}

	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return lectio.Errorf(lectio.EUNAVAILABLE, "failed to open database at %q: %v", db.path, err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	// A single connection also means transactions never interleave.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return lectio.Errorf(lectio.EUNAVAILABLE, "failed to connect to database at %q: %v", db.path, err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	// This prevents immediate "database is locked" errors.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return lectio.Errorf(lectio.EUNAVAILABLE, "failed to set busy timeout: %v", err)
	}

	// Enable WAL mode for file-based databases for better write performance.
	// Imports write thousands of rows in one transaction and WAL keeps
	// readers unblocked while that happens.
	// Note: WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return lectio.Errorf(lectio.EUNAVAILABLE, "failed to enable WAL mode: %v", err)
		}
	}

	// Enable foreign key constraints
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return lectio.Errorf(lectio.EUNAVAILABLE, "failed to enable foreign keys: %v", err)
	}

	db.db = conn

	// Create schema
	if err := db.createSchema(); err != nil {
		conn.Close()
		return lectio.Errorf(lectio.EUNAVAILABLE, "failed to create schema: %v", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, opts)
}

// Stats returns database statistics.
func (db *DB) Stats() sql.DBStats {
	return db.db.Stats()
}

// createSchema creates the database tables if they don't exist. The schema
// is additive: importing another translation adds rows under a new
// discriminator value, never rewrites existing ones.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS verses (
			translation TEXT NOT NULL,
			ref TEXT NOT NULL,
			book TEXT NOT NULL,
			chapter INTEGER NOT NULL,
			verse INTEGER NOT NULL,
			text TEXT NOT NULL,
			PRIMARY KEY (translation, ref)
		);

		CREATE INDEX IF NOT EXISTS idx_verses_book_chapter ON verses(translation, book, chapter);

		CREATE TABLE IF NOT EXISTS annotations (
			translation TEXT NOT NULL,
			ref TEXT NOT NULL,
			book TEXT NOT NULL,
			chapter INTEGER NOT NULL,
			verse INTEGER NOT NULL,
			color TEXT NOT NULL DEFAULT 'none',
			underline INTEGER NOT NULL DEFAULT 0,
			bold INTEGER NOT NULL DEFAULT 0,
			bookmarked INTEGER NOT NULL DEFAULT 0,
			note TEXT NOT NULL DEFAULT '',
			note_kind TEXT NOT NULL DEFAULT 'study',
			note_favorite INTEGER NOT NULL DEFAULT 0,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (translation, ref)
		);

		CREATE INDEX IF NOT EXISTS idx_annotations_book_chapter ON annotations(translation, book, chapter);
		CREATE INDEX IF NOT EXISTS idx_annotations_updated_at ON annotations(updated_at);

		CREATE TABLE IF NOT EXISTS bookmarks (
			translation TEXT NOT NULL,
			book TEXT NOT NULL,
			chapter INTEGER NOT NULL,
			saved_at TEXT NOT NULL,
			PRIMARY KEY (translation, book, chapter)
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS import_sessions (
			id TEXT PRIMARY KEY,
			translation TEXT NOT NULL,
			source TEXT NOT NULL DEFAULT '',
			verse_count INTEGER NOT NULL DEFAULT 0,
			book_count INTEGER NOT NULL DEFAULT 0,
			source_hash TEXT NOT NULL DEFAULT '',
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_import_sessions_translation ON import_sessions(translation);
	`

	_, err := db.db.Exec(schema)
	return err
}
