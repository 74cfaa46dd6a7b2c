package datasources

import (
	"context"

	"github.com/jbeshir/movie-userdata/internal/domain"
)

// The review operations act as the user attached to the context.

type ReviewAdder interface {
	AddReview(ctx context.Context, input domain.ReviewInput) (domain.Review, error)
}

type ReviewUpdater interface {
	UpdateReview(ctx context.Context, reviewID string, patch domain.ReviewPatch) (domain.Review, error)
}

type ReviewDeleter interface {
	DeleteReview(ctx context.Context, reviewID string) error
}

type ReviewVoter interface {
	VoteHelpful(ctx context.Context, reviewID string, helpful bool) (domain.Review, error)
}

type ReviewGetter interface {
	GetReview(ctx context.Context, reviewID string) (domain.Review, error)
}

// UserMovieReviewGetter finds the review userID wrote for movieID; false when there is none.
type UserMovieReviewGetter interface {
	GetUserReviewForMovie(ctx context.Context, userID string, movieID domain.MovieID) (domain.Review, bool)
}

type ReviewVoteChecker interface {
	HasVoted(ctx context.Context, reviewID, voterID string) bool
}

type MovieReviewsGetter interface {
	GetReviewsByMovie(ctx context.Context, movieID domain.MovieID) []domain.Review
}

type UserReviewsGetter interface {
	GetReviewsByUser(ctx context.Context, userID string) []domain.Review
}

// ReviewLister returns every review, newest first.
type ReviewLister interface {
	ListReviews(ctx context.Context) []domain.Review
}

type MovieRatingStatsGetter interface {
	GetMovieRatingStats(ctx context.Context, movieID domain.MovieID) domain.RatingStats
}

type OverallStatsGetter interface {
	GetOverallStats(ctx context.Context) domain.OverallStats
}

// AuthorStatsGetter derives each author's profile counters from the stored reviews.
type AuthorStatsGetter interface {
	AuthorStats(ctx context.Context) map[string]domain.AuthorStats
}

// Reviews combines all review store operations.
type Reviews interface {
	ReviewAdder
	ReviewUpdater
	ReviewDeleter
	ReviewVoter
	ReviewGetter
	UserMovieReviewGetter
	ReviewVoteChecker
	MovieReviewsGetter
	UserReviewsGetter
	ReviewLister
	MovieRatingStatsGetter
	OverallStatsGetter
	AuthorStatsGetter
}
