package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps cache entries in a single-table sqlite database.
type SQLiteStore struct {
	conn *sql.DB
}

// NewSQLiteStore opens or creates the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// WAL mode tolerates the duplicate-fetch write race better.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS cache (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SQLiteStore{conn: conn}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// GetString reads the value for key; a missing row is not an error.
func (s *SQLiteStore) GetString(key string) (string, bool, error) {
	var value string
	err := s.conn.QueryRow("SELECT value FROM cache WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading cache entry: %w", err)
	}
	return value, true, nil
}

// SetString replaces the value for key.
func (s *SQLiteStore) SetString(key, value string) error {
	_, err := s.conn.Exec(
		"INSERT INTO cache (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}
