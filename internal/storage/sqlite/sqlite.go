// Package sqlite provides a storage backend keeping each namespace
// document in a single-table SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Load reads the namespace document.
func (s *Store) Load(ctx context.Context, namespace string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM namespaces WHERE namespace = ?`, namespace,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", namespace, err)
	}
	return payload, true, nil
}

// Save upserts the namespace document.
func (s *Store) Save(ctx context.Context, namespace string, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO namespaces (namespace, payload, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (namespace) DO UPDATE SET
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		namespace, payload,
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", namespace, err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
