package datasources

import (
	"context"

	"github.com/jbeshir/movie-userdata/internal/domain"
)

// CollectionAdder stores a movie snapshot in one of a user's collections.
// Returns false when the movie was already present.
type CollectionAdder interface {
	AddToCollection(ctx context.Context, userID string, name domain.CollectionName, movie domain.MovieRef) (bool, error)
}

// CollectionRemover removes a movie from one of a user's collections.
// Returns false when the movie was not present.
type CollectionRemover interface {
	RemoveFromCollection(ctx context.Context, userID string, name domain.CollectionName, id domain.MovieID) (bool, error)
}

type CollectionLister interface {
	ListCollection(ctx context.Context, userID string, name domain.CollectionName) ([]domain.CollectionEntry, error)
}

type CollectionCounter interface {
	CountCollections(ctx context.Context, userID string) (map[domain.CollectionName]int, error)
}

type MembershipGetter interface {
	GetMembership(ctx context.Context, userID string, id domain.MovieID) (domain.Membership, error)
}

// Collections combines all per-user collection operations.
type Collections interface {
	CollectionAdder
	CollectionRemover
	CollectionLister
	CollectionCounter
	MembershipGetter
}
