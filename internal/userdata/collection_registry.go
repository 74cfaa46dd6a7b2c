package userdata

import (
	"context"
	"sync"

	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/domain"
	"golang.org/x/sync/singleflight"
)

// CollectionRegistry hands out one CollectionStore per user, loading each on first use.
// Concurrent first uses by one user share a single load; other users are not held up by it.
type CollectionRegistry struct {
	mu        sync.Mutex
	stores    map[string]*CollectionStore
	loads     singleflight.Group
	snapshots datasources.SnapshotStore
	broker    *Broker
}

func NewCollectionRegistry(snapshots datasources.SnapshotStore, broker *Broker) *CollectionRegistry {
	return &CollectionRegistry{
		stores:    map[string]*CollectionStore{},
		snapshots: snapshots,
		broker:    broker,
	}
}

// ForUser returns the collection store of userID.
func (r *CollectionRegistry) ForUser(ctx context.Context, userID string) (*CollectionStore, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	if store, ok := r.cached(userID); ok {
		return store, nil
	}

	v, _, _ := r.loads.Do(userID, func() (any, error) {
		if store, ok := r.cached(userID); ok {
			return store, nil
		}

		// A cancelled request must not leave an empty store cached.
		store := NewCollectionStore(context.WithoutCancel(ctx), userID, r.snapshots, r.broker)

		r.mu.Lock()
		r.stores[userID] = store
		r.mu.Unlock()
		return store, nil
	})
	return v.(*CollectionStore), nil
}

func (r *CollectionRegistry) cached(userID string) (*CollectionStore, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, ok := r.stores[userID]
	return store, ok
}

func (r *CollectionRegistry) Subscribe(fn func(domain.Event)) (unsubscribe func()) {
	return r.broker.Subscribe(fn)
}

var _ datasources.Collections = (*CollectionRegistry)(nil)

func (r *CollectionRegistry) AddToCollection(
	ctx context.Context,
	userID string,
	name domain.CollectionName,
	movie domain.MovieRef,
) (bool, error) {
	c, err := r.collection(ctx, userID, name)
	if err != nil {
		return false, err
	}
	return c.Add(ctx, movie), nil
}

func (r *CollectionRegistry) RemoveFromCollection(
	ctx context.Context,
	userID string,
	name domain.CollectionName,
	id domain.MovieID,
) (bool, error) {
	c, err := r.collection(ctx, userID, name)
	if err != nil {
		return false, err
	}
	return c.Remove(ctx, id), nil
}

func (r *CollectionRegistry) ListCollection(
	ctx context.Context,
	userID string,
	name domain.CollectionName,
) ([]domain.CollectionEntry, error) {
	c, err := r.collection(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	return c.Entries(), nil
}

func (r *CollectionRegistry) CountCollections(ctx context.Context, userID string) (map[domain.CollectionName]int, error) {
	store, err := r.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return store.Counts(), nil
}

func (r *CollectionRegistry) GetMembership(ctx context.Context, userID string, id domain.MovieID) (domain.Membership, error) {
	store, err := r.ForUser(ctx, userID)
	if err != nil {
		return domain.Membership{}, err
	}
	return store.Membership(id), nil
}

func (r *CollectionRegistry) collection(ctx context.Context, userID string, name domain.CollectionName) (*Collection, error) {
	store, err := r.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return store.Set(name)
}
