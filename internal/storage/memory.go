package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
)

// Object is a file held by MemoryStore.
type Object struct {
	ContentType string
	Data        []byte
}

// MemoryStore keeps uploads in process memory. It backs development setups
// without a storage bucket, and tests.
type MemoryStore struct {
	bucket  string
	mu      sync.RWMutex
	objects map[string]Object
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(bucket string) *MemoryStore {
	return &MemoryStore{bucket: bucket, objects: make(map[string]Object)}
}

// Store reads the whole file and returns a memory:// reference to it.
func (s *MemoryStore) Store(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ref := fmt.Sprintf("memory://%s/%s", s.bucket, ObjectName(name))
	s.mu.Lock()
	s.objects[ref] = Object{ContentType: contentType, Data: buf.Bytes()}
	s.mu.Unlock()
	return ref, nil
}

// Get returns a stored object by reference.
func (s *MemoryStore) Get(ref string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[ref]
	return obj, ok
}
