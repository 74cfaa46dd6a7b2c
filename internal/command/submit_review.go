package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/domain"
)

// SubmitReview adds the current user's review of a movie that exists in the catalog.
type SubmitReview struct {
	MovieGetter datasources.MovieGetter
	ReviewAdder datasources.ReviewAdder
}

var _ Command[domain.ReviewInput, domain.Review] = (*SubmitReview)(nil)

// NewSubmitReview creates a properly initialized SubmitReview command.
func NewSubmitReview(
	movieGetter datasources.MovieGetter,
	reviewAdder datasources.ReviewAdder,
) *SubmitReview {
	return &SubmitReview{
		MovieGetter: movieGetter,
		ReviewAdder: reviewAdder,
	}
}

func (c *SubmitReview) Execute(ctx context.Context, input domain.ReviewInput) (domain.Review, error) {
	if _, err := c.MovieGetter.GetMovieByID(ctx, input.MovieID); err != nil {
		return domain.Review{}, fmt.Errorf("fetching movie: %w", err)
	}

	review, err := c.ReviewAdder.AddReview(ctx, input)
	if err != nil {
		return domain.Review{}, fmt.Errorf("adding review: %w", err)
	}

	return review, nil
}
