package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps each blob as a row in a single collections table. It trades the
// file backend's one-file-per-collection layout for a single portable database file.
type SQLiteStore struct {
	db            *sql.DB
	capacityBytes int64
	mu            sync.Mutex
}

var _ BlobStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at path and ensures the schema.
// capacityBytes limits the total size of all blobs; zero means unlimited.
func NewSQLiteStore(path string, capacityBytes int64) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db %s: %w", path, err)
	}
	// The driver serializes access through a single connection; the store's own
	// mutex already orders callers.
	db.SetMaxOpenConns(1)

	const schema = `
		CREATE TABLE IF NOT EXISTS collections (
			name       TEXT PRIMARY KEY,
			data       BLOB NOT NULL,
			updated_at TEXT NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure collections schema: %w", err)
	}
	return &SQLiteStore{db: db, capacityBytes: capacityBytes}, nil
}

// Read returns the blob stored under name.
func (s *SQLiteStore) Read(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var data []byte
	err := s.db.QueryRow(`SELECT data FROM collections WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", name, err)
	}
	return data, nil
}

// Write replaces the blob stored under name.
func (s *SQLiteStore) Write(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.capacityBytes > 0 {
		var used sql.NullInt64
		err := s.db.QueryRow(
			`SELECT COALESCE(SUM(LENGTH(data)), 0) FROM collections WHERE name != ?`, name,
		).Scan(&used)
		if err != nil {
			return fmt.Errorf("measure stored collections: %w", err)
		}
		if used.Int64+int64(len(data)) > s.capacityBytes {
			return ErrCapacityExceeded
		}
	}

	_, err := s.db.Exec(
		`INSERT INTO collections (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	return nil
}

// Delete removes the blob stored under name.
func (s *SQLiteStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM collections WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete collection %s: %w", name, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
