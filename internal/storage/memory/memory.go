// Package memory provides an in-process storage backend, used by tests
// and as the zero-configuration default.
package memory

import (
	"context"
	"sync"
)

type Store struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func New() *Store {
	return &Store{docs: make(map[string][]byte)}
}

// Load returns the last saved payload for the namespace.
func (s *Store) Load(_ context.Context, namespace string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[namespace]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, true, nil
}

// Save replaces the namespace's payload.
func (s *Store) Save(_ context.Context, namespace string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := make([]byte, len(payload))
	copy(doc, payload)
	s.docs[namespace] = doc
	return nil
}
