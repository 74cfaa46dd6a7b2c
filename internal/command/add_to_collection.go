package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/domain"
)

// AddToCollectionRequest is the request for the AddToCollection command.
type AddToCollectionRequest struct {
	UserID     string
	Collection domain.CollectionName
	MovieID    domain.MovieID
}

// AddToCollectionResult reports the movie as stored and whether it was newly added.
type AddToCollectionResult struct {
	Movie domain.MovieRef
	Added bool
}

// AddToCollection copies the current catalog data of a movie into one of a user's collections.
type AddToCollection struct {
	MovieGetter     datasources.MovieGetter
	CollectionAdder datasources.CollectionAdder
}

var _ Command[AddToCollectionRequest, AddToCollectionResult] = (*AddToCollection)(nil)

// NewAddToCollection creates a properly initialized AddToCollection command.
func NewAddToCollection(
	movieGetter datasources.MovieGetter,
	collectionAdder datasources.CollectionAdder,
) *AddToCollection {
	return &AddToCollection{
		MovieGetter:     movieGetter,
		CollectionAdder: collectionAdder,
	}
}

func (c *AddToCollection) Execute(ctx context.Context, req AddToCollectionRequest) (AddToCollectionResult, error) {
	movie, err := c.MovieGetter.GetMovieByID(ctx, req.MovieID)
	if err != nil {
		return AddToCollectionResult{}, fmt.Errorf("fetching movie: %w", err)
	}

	added, err := c.CollectionAdder.AddToCollection(ctx, req.UserID, req.Collection, movie)
	if err != nil {
		return AddToCollectionResult{}, fmt.Errorf("adding movie to %s: %w", req.Collection, err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "added movie to collection",
		"movie_id", req.MovieID, "collection", req.Collection, "added", added)

	return AddToCollectionResult{Movie: movie, Added: added}, nil
}
