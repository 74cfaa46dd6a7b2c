package userdata

import (
	"fmt"

	"github.com/jbeshir/movie-userdata/internal/domain"
)

// namedSet is an insertion-ordered set of collection entries keyed by movie id.
// It holds no lock of its own; CollectionStore guards it.
type namedSet struct {
	name    domain.CollectionName
	entries map[domain.MovieID]domain.CollectionEntry
	order   []domain.MovieID
}

func newNamedSet(name domain.CollectionName) *namedSet {
	return &namedSet{
		name:    name,
		entries: map[domain.MovieID]domain.CollectionEntry{},
	}
}

func (s *namedSet) has(id domain.MovieID) bool {
	_, ok := s.entries[id]
	return ok
}

// add inserts entry unless its movie is already present, reporting whether it did.
func (s *namedSet) add(entry domain.CollectionEntry) bool {
	if s.has(entry.MovieID) {
		return false
	}
	s.entries[entry.MovieID] = entry
	s.order = append(s.order, entry.MovieID)
	return true
}

func (s *namedSet) remove(id domain.MovieID) bool {
	if !s.has(id) {
		return false
	}
	delete(s.entries, id)
	s.order = removeValue(s.order, id)
	return true
}

func (s *namedSet) list() []domain.CollectionEntry {
	result := make([]domain.CollectionEntry, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.entries[id])
	}
	return result
}

func (s *namedSet) count() int {
	return len(s.order)
}

func validateEntries(name domain.CollectionName, entries []domain.CollectionEntry) error {
	seen := make(map[domain.MovieID]struct{}, len(entries))
	for _, e := range entries {
		if e.MovieID != e.Snapshot.ID {
			return fmt.Errorf("%s entry for movie [%d] holds snapshot of movie [%d]", name, e.MovieID, e.Snapshot.ID)
		}
		if _, dup := seen[e.MovieID]; dup {
			return fmt.Errorf("%s holds movie [%d] twice", name, e.MovieID)
		}
		seen[e.MovieID] = struct{}{}
	}
	return nil
}

// removeValue deletes the first occurrence of v, preserving order.
func removeValue[T comparable](s []T, v T) []T {
	for i := range s {
		if s[i] == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
