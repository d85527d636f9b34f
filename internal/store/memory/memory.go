// Package memory provides a process-local store.Store.
package memory

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"sync"

	"github.com/dmitrijs2005/savebank/internal/store"
)

// Store keeps children in memory, grouped by path. It is safe for
// concurrent use.
type Store struct {
	mu       sync.RWMutex
	children map[string][]store.Child
	newKey   func() (string, error)
}

// New returns an empty Store.
func New() *Store {
	return &Store{children: make(map[string][]store.Child), newKey: store.NewKey}
}

func (s *Store) Push(ctx context.Context, path string, fields store.Fields) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := store.ValidatePath(path); err != nil {
		return "", err
	}
	if err := store.ValidateFields(fields); err != nil {
		return "", err
	}

	key, err := s.newKey()
	if err != nil {
		return "", fmt.Errorf("key generation: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := strings.Trim(path, "/")
	s.children[p] = append(s.children[p], store.Child{Key: key, Value: maps.Clone(fields)})
	return key, nil
}

func (s *Store) Get(ctx context.Context, q store.Query) (*store.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := store.ValidatePath(q.Path); err != nil {
		return nil, err
	}

	s.mu.RLock()
	src := s.children[strings.Trim(q.Path, "/")]
	out := make([]store.Child, 0, len(src))
	for _, c := range src {
		out = append(out, store.Child{Key: c.Key, Value: maps.Clone(c.Value)})
	}
	s.mu.RUnlock()

	return store.NewSnapshot(q, out), nil
}
