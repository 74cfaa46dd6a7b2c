package datasources

import (
	"context"

	"github.com/jbeshir/movie-userdata/internal/domain"
)

// CurrentUserGetter resolves the user acting in the given context.
// The boolean is false when the context carries no user.
type CurrentUserGetter interface {
	CurrentUser(ctx context.Context) (domain.User, bool)
}

type UserGetter interface {
	GetUser(ctx context.Context, userID string) (domain.User, error)
}

// UserStatsAdjuster applies counter side effects of review activity to a user profile.
type UserStatsAdjuster interface {
	AdjustTotalReviews(ctx context.Context, userID string, delta int) error
	AdjustHelpfulVotes(ctx context.Context, userID string, delta int) error
}

// UserStatsSyncer replaces profile counters with figures derived from the review history,
// registering authors the directory does not know yet.
type UserStatsSyncer interface {
	SyncAuthorStats(ctx context.Context, stats map[string]domain.AuthorStats)
}

// Identity combines all identity collaborator operations.
type Identity interface {
	CurrentUserGetter
	UserGetter
	UserStatsAdjuster
	UserStatsSyncer
}

// NullUserStatsAdjuster is a null implementation of UserStatsAdjuster.
type NullUserStatsAdjuster struct{}

var _ UserStatsAdjuster = NullUserStatsAdjuster{}

func (NullUserStatsAdjuster) AdjustTotalReviews(_ context.Context, _ string, _ int) error {
	return nil
}

func (NullUserStatsAdjuster) AdjustHelpfulVotes(_ context.Context, _ string, _ int) error {
	return nil
}
