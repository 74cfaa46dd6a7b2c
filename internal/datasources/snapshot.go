package datasources

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// ReviewsSnapshotKey is the storage key of the review store document.
const ReviewsSnapshotKey = "reviews"

// CollectionsSnapshotKey is the storage key of one user's collection document.
func CollectionsSnapshotKey(userID string) string {
	return "collections:" + userID
}

// SnapshotLoader reads a stored document. Returns nil, nil when nothing is stored under key.
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context, key string) ([]byte, error)
}

// SnapshotSaver replaces the document stored under key.
type SnapshotSaver interface {
	SaveSnapshot(ctx context.Context, key string, doc []byte) error
}

// SnapshotStore combines all snapshot persistence operations.
type SnapshotStore interface {
	SnapshotLoader
	SnapshotSaver
}

// SnapshotKeyLister lists every stored key in ascending order.
type SnapshotKeyLister interface {
	ListSnapshotKeys(ctx context.Context) ([]string, error)
}

// SnapshotRepository is a snapshot backend that can also enumerate its documents.
type SnapshotRepository interface {
	SnapshotStore
	SnapshotKeyLister
}

// MemorySnapshotStore keeps documents in process memory.
type MemorySnapshotStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

var _ SnapshotRepository = (*MemorySnapshotStore)(nil)

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{docs: map[string][]byte{}}
}

func (s *MemorySnapshotStore) LoadSnapshot(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[key]
	if !ok {
		return nil, nil
	}
	return slices.Clone(doc), nil
}

func (s *MemorySnapshotStore) SaveSnapshot(_ context.Context, key string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[key] = slices.Clone(doc)
	return nil
}

func (s *MemorySnapshotStore) ListSnapshotKeys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Sorted(maps.Keys(s.docs)), nil
}
