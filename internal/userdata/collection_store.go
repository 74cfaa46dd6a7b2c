package userdata

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/domain"
)

type collectionSnapshot struct {
	Favorites []domain.CollectionEntry `json:"favorites"`
	Watchlist []domain.CollectionEntry `json:"watchlist"`
	Wishlist  []domain.CollectionEntry `json:"wishlist"`
}

func (d collectionSnapshot) validate() error {
	return errors.Join(
		validateEntries(domain.CollectionFavorites, d.Favorites),
		validateEntries(domain.CollectionWatchlist, d.Watchlist),
		validateEntries(domain.CollectionWishlist, d.Wishlist),
	)
}

// CollectionStore holds one user's favorites, watchlist and wishlist.
type CollectionStore struct {
	mu      sync.RWMutex
	ownerID string
	sets    map[domain.CollectionName]*namedSet

	snapshots   datasources.SnapshotSaver
	snapshotKey string
	broker      *Broker
	now         func() time.Time
}

// NewCollectionStore builds the store for ownerID from its last persisted snapshot,
// or empty when there is none or it cannot be used.
func NewCollectionStore(
	ctx context.Context,
	ownerID string,
	snapshots datasources.SnapshotStore,
	broker *Broker,
) *CollectionStore {
	s := &CollectionStore{
		ownerID:     ownerID,
		sets:        map[domain.CollectionName]*namedSet{},
		snapshots:   snapshots,
		snapshotKey: datasources.CollectionsSnapshotKey(ownerID),
		broker:      broker,
		now:         currentTime,
	}
	for _, name := range domain.ValidCollectionNames {
		s.sets[name] = newNamedSet(name)
	}

	doc := loadDocument(ctx, snapshots, s.snapshotKey, collectionSnapshot.validate)
	s.restore(doc)

	return s
}

func (s *CollectionStore) restore(doc collectionSnapshot) {
	for name, entries := range map[domain.CollectionName][]domain.CollectionEntry{
		domain.CollectionFavorites: doc.Favorites,
		domain.CollectionWatchlist: doc.Watchlist,
		domain.CollectionWishlist:  doc.Wishlist,
	} {
		for _, e := range entries {
			s.sets[name].add(e)
		}
	}
}

func (s *CollectionStore) OwnerID() string {
	return s.ownerID
}

func (s *CollectionStore) Favorites() *Collection {
	return &Collection{store: s, set: s.sets[domain.CollectionFavorites]}
}

func (s *CollectionStore) Watchlist() *Collection {
	return &Collection{store: s, set: s.sets[domain.CollectionWatchlist]}
}

func (s *CollectionStore) Wishlist() *Collection {
	return &Collection{store: s, set: s.sets[domain.CollectionWishlist]}
}

// Set returns the named collection, or a validation error for an unknown name.
func (s *CollectionStore) Set(name domain.CollectionName) (*Collection, error) {
	set, ok := s.sets[name]
	if !ok {
		return nil, domain.ValidationErrorf("unknown collection [%s]", name)
	}
	return &Collection{store: s, set: set}, nil
}

// Membership reports which of the three collections hold the movie.
func (s *CollectionStore) Membership(id domain.MovieID) domain.Membership {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Membership{
		Favorites: s.sets[domain.CollectionFavorites].has(id),
		Watchlist: s.sets[domain.CollectionWatchlist].has(id),
		Wishlist:  s.sets[domain.CollectionWishlist].has(id),
	}
}

// Counts returns the size of each collection.
func (s *CollectionStore) Counts() map[domain.CollectionName]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[domain.CollectionName]int, len(s.sets))
	for name, set := range s.sets {
		counts[name] = set.count()
	}
	return counts
}

// Snapshot returns the persisted form of the store.
func (s *CollectionStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := encodeDocument(s.snapshotLocked())
	if err != nil {
		return nil, fmt.Errorf("snapshotting collections of [%s]: %w", s.ownerID, err)
	}
	return raw, nil
}

func (s *CollectionStore) Subscribe(fn func(domain.Event)) (unsubscribe func()) {
	return s.broker.Subscribe(fn)
}

func (s *CollectionStore) snapshotLocked() collectionSnapshot {
	return collectionSnapshot{
		Favorites: s.sets[domain.CollectionFavorites].list(),
		Watchlist: s.sets[domain.CollectionWatchlist].list(),
		Wishlist:  s.sets[domain.CollectionWishlist].list(),
	}
}

// mutate applies fn under the write lock and, if it changed anything, persists
// the snapshot before releasing the lock and then notifies subscribers.
func (s *CollectionStore) mutate(ctx context.Context, set *namedSet, id domain.MovieID, fn func() (domain.EventType, bool)) bool {
	s.mu.Lock()
	eventType, changed := fn()
	var at time.Time
	if changed {
		at = s.now()
		saveDocument(ctx, s.snapshots, s.snapshotKey, s.snapshotLocked())
	}
	s.mu.Unlock()

	if !changed {
		return false
	}

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "collection changed",
		"owner_id", s.ownerID, "collection", set.name, "movie_id", id, "event", eventType)

	s.broker.Publish(domain.Event{
		Type:       eventType,
		OwnerID:    s.ownerID,
		Collection: set.name,
		MovieID:    id,
		At:         at,
	})
	return true
}

// Collection is a handle on one named set of a CollectionStore.
type Collection struct {
	store *CollectionStore
	set   *namedSet
}

func (c *Collection) Name() domain.CollectionName {
	return c.set.name
}

// Add stores a snapshot of movie. Adding a movie already present changes nothing.
// Reports whether the movie was newly added.
func (c *Collection) Add(ctx context.Context, movie domain.MovieRef) bool {
	return c.store.mutate(ctx, c.set, movie.ID, func() (domain.EventType, bool) {
		return domain.EventCollectionAdded, c.set.add(domain.CollectionEntry{
			MovieID:  movie.ID,
			Snapshot: cloneMovie(movie),
			AddedAt:  c.store.now(),
		})
	})
}

// Remove deletes the movie if present. Reports whether it was present.
func (c *Collection) Remove(ctx context.Context, id domain.MovieID) bool {
	return c.store.mutate(ctx, c.set, id, func() (domain.EventType, bool) {
		return domain.EventCollectionRemoved, c.set.remove(id)
	})
}

// Toggle removes the movie if present and adds it otherwise, returning the new membership.
func (c *Collection) Toggle(ctx context.Context, movie domain.MovieRef) bool {
	var member bool
	c.store.mutate(ctx, c.set, movie.ID, func() (domain.EventType, bool) {
		if c.set.remove(movie.ID) {
			return domain.EventCollectionRemoved, true
		}
		member = true
		return domain.EventCollectionAdded, c.set.add(domain.CollectionEntry{
			MovieID:  movie.ID,
			Snapshot: cloneMovie(movie),
			AddedAt:  c.store.now(),
		})
	})
	return member
}

func (c *Collection) IsMember(id domain.MovieID) bool {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	return c.set.has(id)
}

// List returns the stored movie snapshots in insertion order.
func (c *Collection) List() []domain.MovieRef {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	movies := make([]domain.MovieRef, 0, c.set.count())
	for _, e := range c.set.list() {
		movies = append(movies, cloneMovie(e.Snapshot))
	}
	return movies
}

// Entries returns the full entries, including when each was added, in insertion order.
func (c *Collection) Entries() []domain.CollectionEntry {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	entries := c.set.list()
	for i := range entries {
		entries[i].Snapshot = cloneMovie(entries[i].Snapshot)
	}
	return entries
}

func (c *Collection) Count() int {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	return c.set.count()
}

func cloneMovie(m domain.MovieRef) domain.MovieRef {
	if m.Genres != nil {
		m.Genres = append([]string(nil), m.Genres...)
	}
	return m
}
