// Package store persists the khata snapshot in a local SQLite database.
//
// The whole state is one JSON blob under one key, written atomically on every
// mutation. That mirrors how the original app used device-local storage: a
// single value, replaced wholesale, with a built-in default when absent or
// unreadable.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is the on-device snapshot store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the snapshot database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the persisted snapshot. An absent or unparseable blob yields the
// built-in default snapshot rather than an error; data problems never block
// the app from starting.
func (s *Store) Load() (model.Snapshot, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM snapshot WHERE key = ?", snapshotKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultSnapshot(), nil
	}
	if err != nil {
		return model.DefaultSnapshot(), fmt.Errorf("reading snapshot: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(value, &snap); err != nil {
		return model.DefaultSnapshot(), nil
	}
	snap.Normalize()
	return snap, nil
}

// Save durably replaces the entire persisted state in a single write.
func (s *Store) Save(snap model.Snapshot) error {
	value, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`INSERT OR REPLACE INTO snapshot (key, value, saved_at)
		VALUES (?, ?, ?)`, snapshotKey, value, now)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Raw returns the exact persisted bytes, or nil if nothing has been saved
// yet. Export uses it so a backup file is byte-faithful to the stored state.
func (s *Store) Raw() ([]byte, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM snapshot WHERE key = ?", snapshotKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return value, nil
}
