package datasources

import (
	"context"

	"github.com/jbeshir/movie-userdata/internal/domain"
)

// MovieGetter looks up a single catalog title.
// Returns an error wrapping domain.ErrNotFound when the id is unknown.
type MovieGetter interface {
	GetMovieByID(ctx context.Context, id domain.MovieID) (domain.MovieRef, error)
}

type MovieLister interface {
	ListMovies(ctx context.Context) ([]domain.MovieRef, error)
}

// Catalog combines the read-only movie catalog operations.
type Catalog interface {
	MovieGetter
	MovieLister
}
