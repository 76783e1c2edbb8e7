package memory

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"photo-backend/internal/shared/storage/blob"
)

type object struct {
	data        []byte
	contentType string
}

// Store is an in-memory blob.Store for development and tests.
type Store struct {
	mu      sync.RWMutex
	objects map[string]object
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{objects: make(map[string]object)}
}

// Put stores a copy of the payload under the given key.
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = object{data: buf, contentType: contentType}
	return nil
}

// Delete removes the object at key. Missing keys are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// PresignGet returns a synthetic capability URL with the expiry embedded.
func (s *Store) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.objects[key]; !ok {
		return "", fmt.Errorf("object not found: %s", key)
	}
	deadline := time.Now().UTC().Add(expires).Unix()
	return fmt.Sprintf("memory://blobs/%s?expires=%d", url.PathEscape(key), deadline), nil
}

// Get returns the stored payload and content type; tests use it to inspect
// what was written.
func (s *Store) Get(key string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	if !ok {
		return nil, "", false
	}
	return obj.data, obj.contentType, true
}

// Len reports how many objects are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

var _ blob.Store = (*Store)(nil)
