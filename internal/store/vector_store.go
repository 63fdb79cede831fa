package store

import (
	"fmt"
	"sync"

	"srpprim/internal/domain"
)

// VectorFileStore keeps a known-answer vector set in a single JSON file.
type VectorFileStore struct {
	path string
	mu   sync.Mutex
}

var _ domain.VectorStore = (*VectorFileStore)(nil)

// NewVectorFileStore returns a store backed by the file at path.
func NewVectorFileStore(path string) *VectorFileStore {
	return &VectorFileStore{path: path}
}

// Path returns the backing file.
func (s *VectorFileStore) Path() string { return s.path }

// LoadVectors reads the vector file; a missing file reports ok=false.
func (s *VectorFileStore) LoadVectors() (domain.Vectors, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var v domain.Vectors
	ok, err := readJSON(s.path, &v)
	if err != nil {
		return domain.Vectors{}, false, fmt.Errorf("read vectors %s: %w", s.path, err)
	}
	return v, ok, nil
}

// SaveVectors atomically replaces the vector file with v.
func (s *VectorFileStore) SaveVectors(v domain.Vectors) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSON(s.path, v, 0o644); err != nil {
		return fmt.Errorf("write vectors %s: %w", s.path, err)
	}
	return nil
}
