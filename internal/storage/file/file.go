// Package file provides a storage backend keeping one JSON document
// per namespace in a local directory.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type Store struct {
	dir string
}

// New creates a file store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(namespace string) string {
	return filepath.Join(s.dir, namespace+".json")
}

// Load reads the namespace document. A missing file means the
// namespace has never been written; that is not an error.
func (s *Store) Load(_ context.Context, namespace string) ([]byte, bool, error) {
	doc, err := os.ReadFile(s.path(namespace))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", namespace, err)
	}
	return doc, true, nil
}

// Save writes the document through a temp file and rename so a crash
// mid-write never leaves a truncated namespace behind.
func (s *Store) Save(_ context.Context, namespace string, payload []byte) error {
	tmp, err := os.CreateTemp(s.dir, namespace+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", namespace, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", namespace, err)
	}
	if err := os.Rename(tmp.Name(), s.path(namespace)); err != nil {
		return fmt.Errorf("replace %s: %w", namespace, err)
	}
	return nil
}
