package userdata

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/datasources/mocks"
	"github.com/jbeshir/movie-userdata/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCollectionStore(snapshots datasources.SnapshotStore) *CollectionStore {
	s := NewCollectionStore(testContext(), "alice", snapshots, NewBroker())
	s.now = stepClock()
	return s
}

func TestCollection_AddIsIdempotent(t *testing.T) {
	s := newTestCollectionStore(datasources.NewMemorySnapshotStore())
	ctx := testContext()
	inception := testMovie(27205, "Inception")

	assert.True(t, s.Favorites().Add(ctx, inception))
	assert.False(t, s.Favorites().Add(ctx, inception))

	assert.Equal(t, 1, s.Favorites().Count())
	assert.Equal(t, []domain.MovieRef{inception}, s.Favorites().List())
}

func TestCollection_Toggle(t *testing.T) {
	s := newTestCollectionStore(datasources.NewMemorySnapshotStore())
	ctx := testContext()
	inception := testMovie(27205, "Inception")

	assert.True(t, s.Watchlist().Toggle(ctx, inception))
	assert.True(t, s.Watchlist().IsMember(inception.ID))

	assert.False(t, s.Watchlist().Toggle(ctx, inception))
	assert.False(t, s.Watchlist().IsMember(inception.ID))
	assert.Empty(t, s.Watchlist().List())
}

func TestCollection_Remove(t *testing.T) {
	s := newTestCollectionStore(datasources.NewMemorySnapshotStore())
	ctx := testContext()

	assert.False(t, s.Wishlist().Remove(ctx, 27205))

	s.Wishlist().Add(ctx, testMovie(27205, "Inception"))
	s.Wishlist().Add(ctx, testMovie(603, "The Matrix"))
	s.Wishlist().Add(ctx, testMovie(157336, "Interstellar"))

	assert.True(t, s.Wishlist().Remove(ctx, 603))

	var ids []domain.MovieID
	for _, m := range s.Wishlist().List() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []domain.MovieID{27205, 157336}, ids)
}

func TestCollectionStore_CollectionsAreIndependent(t *testing.T) {
	s := newTestCollectionStore(datasources.NewMemorySnapshotStore())
	ctx := testContext()
	inception := testMovie(27205, "Inception")

	s.Favorites().Add(ctx, inception)
	assert.Equal(t, domain.Membership{Favorites: true}, s.Membership(inception.ID))

	s.Watchlist().Add(ctx, inception)
	s.Favorites().Remove(ctx, inception.ID)
	assert.Equal(t, domain.Membership{Watchlist: true}, s.Membership(inception.ID))

	assert.Equal(t, map[domain.CollectionName]int{
		domain.CollectionFavorites: 0,
		domain.CollectionWatchlist: 1,
		domain.CollectionWishlist:  0,
	}, s.Counts())
}

func TestCollection_ListReturnsCopies(t *testing.T) {
	s := newTestCollectionStore(datasources.NewMemorySnapshotStore())
	ctx := testContext()
	inception := testMovie(27205, "Inception")
	s.Favorites().Add(ctx, inception)

	inception.Genres[0] = "Changed"
	listed := s.Favorites().List()
	listed[0].Genres[1] = "Changed"

	assert.Equal(t, []string{"Science Fiction", "Thriller"}, s.Favorites().List()[0].Genres)
}

func TestCollectionStore_Set(t *testing.T) {
	s := newTestCollectionStore(datasources.NewMemorySnapshotStore())

	c, err := s.Set(domain.CollectionWishlist)
	require.NoError(t, err)
	assert.Equal(t, domain.CollectionWishlist, c.Name())

	_, err = s.Set("seen")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCollectionStore_Subscribe(t *testing.T) {
	s := newTestCollectionStore(datasources.NewMemorySnapshotStore())
	ctx := testContext()
	inception := testMovie(27205, "Inception")

	var events []domain.Event
	unsubscribe := s.Subscribe(func(e domain.Event) { events = append(events, e) })

	s.Favorites().Add(ctx, inception)
	s.Favorites().Add(ctx, inception)
	s.Favorites().Remove(ctx, inception.ID)
	s.Favorites().Remove(ctx, inception.ID)
	unsubscribe()
	s.Favorites().Add(ctx, inception)

	require.Len(t, events, 2)
	assert.Equal(t, domain.EventCollectionAdded, events[0].Type)
	assert.Equal(t, domain.EventCollectionRemoved, events[1].Type)
	for _, e := range events {
		assert.Equal(t, "alice", e.OwnerID)
		assert.Equal(t, domain.CollectionFavorites, e.Collection)
		assert.Equal(t, inception.ID, e.MovieID)
	}
}

func TestCollectionStore_SnapshotRoundTrip(t *testing.T) {
	snapshots := datasources.NewMemorySnapshotStore()
	s := newTestCollectionStore(snapshots)
	ctx := testContext()

	s.Favorites().Add(ctx, testMovie(27205, "Inception"))
	s.Favorites().Add(ctx, testMovie(603, "The Matrix"))
	s.Watchlist().Add(ctx, testMovie(157336, "Interstellar"))
	s.Wishlist().Add(ctx, domain.MovieRef{ID: 11, Title: "Star Wars"})

	before, err := s.Snapshot()
	require.NoError(t, err)

	stored, err := snapshots.LoadSnapshot(ctx, datasources.CollectionsSnapshotKey("alice"))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(stored))

	reloaded := NewCollectionStore(ctx, "alice", snapshots, NewBroker())
	after, err := reloaded.Snapshot()
	require.NoError(t, err)

	if diff := cmp.Diff(string(before), string(after)); diff != "" {
		t.Errorf("snapshot changed across reload (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(s.Favorites().Entries(), reloaded.Favorites().Entries()); diff != "" {
		t.Errorf("favorites changed across reload (-before +after):\n%s", diff)
	}
}

func TestNewCollectionStore_FallsBackToEmpty(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		loadErr error
	}{
		{
			name:    "load_error",
			loadErr: errors.New("disk on fire"),
		},
		{
			name: "not_json",
			doc:  "favorites: [27205]",
		},
		{
			name: "wrong_shape",
			doc:  `{"favorites": {"27205": true}}`,
		},
		{
			name: "unknown_field",
			doc:  `{"favorites": [], "watchlist": [], "wishlist": [], "seen": []}`,
		},
		{
			name: "snapshot_of_another_movie",
			doc:  `{"favorites": [{"movie_id": 1, "snapshot": {"id": 2}, "added_at": "2024-04-27T12:00:00Z"}]}`,
		},
		{
			name: "movie_twice",
			doc: `{"watchlist": [` +
				`{"movie_id": 1, "snapshot": {"id": 1}, "added_at": "2024-04-27T12:00:00Z"},` +
				`{"movie_id": 1, "snapshot": {"id": 1}, "added_at": "2024-04-27T12:00:01Z"}]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snapshots := mocks.NewMockSnapshotStore(t)
			var raw []byte
			if tc.doc != "" {
				raw = []byte(tc.doc)
			}
			snapshots.EXPECT().
				LoadSnapshot(mock.Anything, datasources.CollectionsSnapshotKey("alice")).
				Return(raw, tc.loadErr)

			s := NewCollectionStore(testContext(), "alice", snapshots, NewBroker())

			assert.Equal(t, map[domain.CollectionName]int{
				domain.CollectionFavorites: 0,
				domain.CollectionWatchlist: 0,
				domain.CollectionWishlist:  0,
			}, s.Counts())
		})
	}
}

func TestCollection_AddSurvivesSaveFailure(t *testing.T) {
	snapshots := mocks.NewMockSnapshotStore(t)
	snapshots.EXPECT().
		LoadSnapshot(mock.Anything, mock.Anything).
		Return(nil, nil)
	snapshots.EXPECT().
		SaveSnapshot(mock.Anything, datasources.CollectionsSnapshotKey("alice"), mock.Anything).
		Return(errors.New("disk full"))

	s := NewCollectionStore(testContext(), "alice", snapshots, NewBroker())

	assert.True(t, s.Favorites().Add(context.Background(), testMovie(27205, "Inception")))
	assert.True(t, s.Favorites().IsMember(27205))
}

func TestCollectionRegistry_ForUser(t *testing.T) {
	snapshots := datasources.NewMemorySnapshotStore()
	r := NewCollectionRegistry(snapshots, NewBroker())
	ctx := testContext()

	added, err := r.AddToCollection(ctx, "alice", domain.CollectionFavorites, testMovie(27205, "Inception"))
	require.NoError(t, err)
	assert.True(t, added)

	aliceStore, err := r.ForUser(ctx, "alice")
	require.NoError(t, err)
	again, err := r.ForUser(ctx, "alice")
	require.NoError(t, err)
	assert.Same(t, aliceStore, again)

	membership, err := r.GetMembership(ctx, "bob", 27205)
	require.NoError(t, err)
	assert.Equal(t, domain.Membership{}, membership)

	_, err = r.ForUser(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = r.ListCollection(ctx, "alice", "seen")
	assert.ErrorIs(t, err, domain.ErrValidation)

	// A fresh registry over the same storage sees the persisted collection.
	entries, err := NewCollectionRegistry(snapshots, NewBroker()).ListCollection(ctx, "alice", domain.CollectionFavorites)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.MovieID(27205), entries[0].MovieID)
}
