// Package store persists the small amount of state that outlives a session.
package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// SchemaVersion is the latest schema version supported by Migrate.
const SchemaVersion = 1

// KV is a string key-value table in a SQLite database.
type KV struct {
	db *sql.DB
}

// DefaultPath returns the database location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve user config dir")
	}
	return filepath.Join(dir, "cosmicfolio", "state.db"), nil
}

// OpenSQLite opens (creating if needed) the database at path and migrates it.
// ":memory:" gives a private in-memory database.
func OpenSQLite(path string) (*KV, error) {
	if path == "" {
		return nil, errors.New("open store: empty path")
	}
	if path != ":memory:" {
		err := os.MkdirAll(filepath.Dir(path), 0o755)
		if err != nil {
			return nil, errors.Wrapf(err, "open store: create dir for %s", path)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open store: %s", path)
	}
	// a single connection keeps ":memory:" databases shared and writes serialized
	db.SetMaxOpenConns(1)

	err = Migrate(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &KV{db: db}, nil
}

// Migrate ensures the schema exists and is upgraded to SchemaVersion.
func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("migrate: db is nil")
	}

	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY);`)
	if err != nil {
		return errors.Wrap(err, "migrate: create schema_migrations")
	}

	var current int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current)
	if err != nil {
		return errors.Wrap(err, "migrate: read current version")
	}
	if current >= SchemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "migrate: begin transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`)
	if err != nil {
		return errors.Wrap(err, "migrate: create kv table")
	}

	_, err = tx.Exec(`INSERT INTO schema_migrations(version) VALUES (?);`, SchemaVersion)
	if err != nil {
		return errors.Wrap(err, "migrate: record schema version")
	}

	err = tx.Commit()
	if err != nil {
		return errors.Wrap(err, "migrate: commit transaction")
	}
	return nil
}

// Get returns the value stored under key.
func (s *KV) Get(key string) (value string, ok bool, err error) {
	if s == nil || s.db == nil {
		return "", false, errors.New("get: store is closed")
	}
	err = s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "get %s", key)
	}
	return value, true, nil
}

// Set upserts value under key.
func (s *KV) Set(key, value string) error {
	if s == nil || s.db == nil {
		return errors.New("set: store is closed")
	}
	if key == "" {
		return errors.New("set: empty key")
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.Exec(
		`INSERT INTO kv(key, value, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now,
	)
	if err != nil {
		return errors.Wrapf(err, "set %s", key)
	}
	return nil
}

// Close releases the database. Later calls fail.
func (s *KV) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
