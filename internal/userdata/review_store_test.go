package userdata

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/datasources/mocks"
	"github.com/jbeshir/movie-userdata/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestReviewStore(snapshots datasources.SnapshotStore, userStats datasources.UserStatsAdjuster) *ReviewStore {
	s := NewReviewStore(testContext(), testUsers, userStats, snapshots, NewBroker())
	s.now = stepClock()
	return s
}

func validReview(movieID domain.MovieID, rating int) domain.ReviewInput {
	return domain.ReviewInput{
		MovieID: movieID,
		Rating:  rating,
		Title:   "Worth the runtime",
		Content: "Layered, loud and surprisingly moving.",
	}
}

func intPtr(v int) *int          { return &v }
func stringPtr(v string) *string { return &v }
func boolPtr(v bool) *bool       { return &v }

func TestReviewStore_AddReview(t *testing.T) {
	cases := []struct {
		name    string
		userID  string
		input   domain.ReviewInput
		wantErr error
	}{
		{
			name:   "adds_review",
			userID: "alice",
			input:  validReview(27205, 9),
		},
		{
			name:    "no_current_user",
			userID:  "",
			input:   validReview(27205, 9),
			wantErr: domain.ErrUnauthenticated,
		},
		{
			name:    "unknown_current_user",
			userID:  "mallory",
			input:   validReview(27205, 9),
			wantErr: domain.ErrUnauthenticated,
		},
		{
			name:    "rating_too_low",
			userID:  "alice",
			input:   validReview(27205, 0),
			wantErr: domain.ErrValidation,
		},
		{
			name:    "rating_too_high",
			userID:  "alice",
			input:   validReview(27205, 11),
			wantErr: domain.ErrValidation,
		},
		{
			name:   "blank_title",
			userID: "alice",
			input: domain.ReviewInput{
				MovieID: 27205, Rating: 5, Title: "   ", Content: "Fine.",
			},
			wantErr: domain.ErrValidation,
		},
		{
			name:   "blank_content",
			userID: "alice",
			input: domain.ReviewInput{
				MovieID: 27205, Rating: 5, Title: "Fine", Content: "\n\t",
			},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "missing_movie",
			userID:  "alice",
			input:   validReview(0, 5),
			wantErr: domain.ErrValidation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestReviewStore(datasources.NewMemorySnapshotStore(), datasources.NullUserStatsAdjuster{})
			ctx := testContextWithUserID(tc.userID)

			review, err := s.AddReview(ctx, tc.input)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, s.ListReviews(ctx))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, review.ID)
			assert.Equal(t, "alice", review.UserID)
			assert.Equal(t, "Alice", review.UserName)
			assert.Equal(t, "https://example.com/alice.png", review.UserAvatar)
			assert.Equal(t, review.CreatedAt, review.UpdatedAt)
			assert.False(t, review.Edited())
			assert.False(t, review.Verified)
			assert.Zero(t, review.HelpfulVotes)
			assert.Zero(t, review.TotalVotes)

			assert.Equal(t, []domain.Review{review}, s.GetReviewsByMovie(ctx, tc.input.MovieID))
			assert.Equal(t, []domain.Review{review}, s.GetReviewsByUser(ctx, "alice"))
			stored, err := s.GetReview(ctx, review.ID)
			require.NoError(t, err)
			assert.Equal(t, review, stored)
		})
	}
}

func TestReviewStore_AddReview_TrimsText(t *testing.T) {
	s := newTestReviewStore(datasources.NewMemorySnapshotStore(), datasources.NullUserStatsAdjuster{})

	review, err := s.AddReview(testContextWithUserID("alice"), domain.ReviewInput{
		MovieID: 27205, Rating: 8, Title: "  Dreams  ", Content: " Within dreams.\n",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dreams", review.Title)
	assert.Equal(t, "Within dreams.", review.Content)
}

func TestReviewStore_AddReview_OnePerUserAndMovie(t *testing.T) {
	s := newTestReviewStore(datasources.NewMemorySnapshotStore(), datasources.NullUserStatsAdjuster{})
	ctx := testContextWithUserID("alice")

	first, err := s.AddReview(ctx, validReview(27205, 9))
	require.NoError(t, err)

	_, err = s.AddReview(ctx, validReview(27205, 3))
	require.ErrorIs(t, err, domain.ErrDuplicate)
	var dup *domain.DuplicateReviewError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, first.ID, dup.ExistingReviewID)

	assert.Len(t, s.GetReviewsByUser(ctx, "alice"), 1)
	assert.Equal(t, 1, s.GetMovieRatingStats(ctx, 27205).TotalReviews)

	existing, ok := s.GetUserReviewForMovie(ctx, "alice", 27205)
	require.True(t, ok)
	assert.Equal(t, first, existing)

	_, ok = s.GetUserReviewForMovie(ctx, "bob", 27205)
	assert.False(t, ok)

	// The same user may review another movie, and another user the same movie.
	_, err = s.AddReview(ctx, validReview(603, 7))
	require.NoError(t, err)
	_, err = s.AddReview(testContextWithUserID("bob"), validReview(27205, 6))
	require.NoError(t, err)
}

func TestReviewStore_UpdateReview(t *testing.T) {
	cases := []struct {
		name     string
		userID   string
		reviewID string
		patch    domain.ReviewPatch
		wantErr  error
	}{
		{
			name:   "updates_all_fields",
			userID: "alice",
			patch: domain.ReviewPatch{
				Rating:         intPtr(4),
				Title:          stringPtr(" Second thoughts "),
				Content:        stringPtr("Less moving on a rewatch."),
				SpoilerWarning: boolPtr(true),
			},
		},
		{
			name:    "not_the_author",
			userID:  "bob",
			patch:   domain.ReviewPatch{Rating: intPtr(1)},
			wantErr: domain.ErrOwnership,
		},
		{
			name:    "no_current_user",
			userID:  "",
			patch:   domain.ReviewPatch{Rating: intPtr(1)},
			wantErr: domain.ErrUnauthenticated,
		},
		{
			name:     "unknown_review",
			userID:   "alice",
			reviewID: "missing",
			patch:    domain.ReviewPatch{Rating: intPtr(1)},
			wantErr:  domain.ErrNotFound,
		},
		{
			name:    "empty_patch",
			userID:  "alice",
			wantErr: domain.ErrValidation,
		},
		{
			name:    "not_the_author_with_invalid_rating",
			userID:  "bob",
			patch:   domain.ReviewPatch{Rating: intPtr(11)},
			wantErr: domain.ErrOwnership,
		},
		{
			name:     "unknown_review_with_empty_patch",
			userID:   "alice",
			reviewID: "missing",
			wantErr:  domain.ErrNotFound,
		},
		{
			name:   "invalid_rating_rejects_whole_patch",
			userID: "alice",
			patch: domain.ReviewPatch{
				Title:  stringPtr("Changed"),
				Rating: intPtr(11),
			},
			wantErr: domain.ErrValidation,
		},
		{
			name:   "blank_content_rejects_whole_patch",
			userID: "alice",
			patch: domain.ReviewPatch{
				Rating:  intPtr(2),
				Content: stringPtr(" "),
			},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestReviewStore(datasources.NewMemorySnapshotStore(), datasources.NullUserStatsAdjuster{})
			original, err := s.AddReview(testContextWithUserID("alice"), validReview(27205, 9))
			require.NoError(t, err)
			_, err = s.VoteHelpful(testContextWithUserID("carol"), original.ID, true)
			require.NoError(t, err)
			original, err = s.GetReview(testContext(), original.ID)
			require.NoError(t, err)

			reviewID := tc.reviewID
			if reviewID == "" {
				reviewID = original.ID
			}
			updated, err := s.UpdateReview(testContextWithUserID(tc.userID), reviewID, tc.patch)

			stored, getErr := s.GetReview(testContext(), original.ID)
			require.NoError(t, getErr)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, original, stored)
				assert.Equal(t, 9.0, s.GetMovieRatingStats(testContext(), 27205).AverageRating)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, updated, stored)
			assert.Equal(t, 4, stored.Rating)
			assert.Equal(t, "Second thoughts", stored.Title)
			assert.Equal(t, "Less moving on a rewatch.", stored.Content)
			assert.True(t, stored.SpoilerWarning)
			assert.Equal(t, original.CreatedAt, stored.CreatedAt)
			assert.True(t, stored.UpdatedAt.After(stored.CreatedAt))
			assert.True(t, stored.Edited())
			assert.Equal(t, 1, stored.HelpfulVotes)
			assert.Equal(t, 1, stored.TotalVotes)

			stats := s.GetMovieRatingStats(testContext(), 27205)
			assert.Equal(t, 4.0, stats.AverageRating)
			assert.Equal(t, 0, stats.RatingDistribution[9])
			assert.Equal(t, 1, stats.RatingDistribution[4])
		})
	}
}

func TestReviewStore_DeleteReview(t *testing.T) {
	s := newTestReviewStore(datasources.NewMemorySnapshotStore(), datasources.NullUserStatsAdjuster{})
	alice := testContextWithUserID("alice")
	bob := testContextWithUserID("bob")

	aliceReview, err := s.AddReview(alice, validReview(27205, 9))
	require.NoError(t, err)
	bobReview, err := s.AddReview(bob, validReview(27205, 5))
	require.NoError(t, err)
	_, err = s.VoteHelpful(bob, aliceReview.ID, true)
	require.NoError(t, err)
	_, err = s.VoteHelpful(alice, bobReview.ID, false)
	require.NoError(t, err)

	err = s.DeleteReview(bob, aliceReview.ID)
	require.ErrorIs(t, err, domain.ErrOwnership)
	_, err = s.GetReview(alice, aliceReview.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteReview(alice, aliceReview.ID))

	_, err = s.GetReview(alice, aliceReview.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []domain.Review{{
		ID:           bobReview.ID,
		MovieID:      bobReview.MovieID,
		UserID:       "bob",
		UserName:     "Bob",
		UserAvatar:   bobReview.UserAvatar,
		Rating:       5,
		Title:        bobReview.Title,
		Content:      bobReview.Content,
		TotalVotes:   1,
		HelpfulVotes: 0,
		CreatedAt:    bobReview.CreatedAt,
		UpdatedAt:    bobReview.UpdatedAt,
	}}, s.GetReviewsByMovie(alice, 27205))
	assert.Empty(t, s.GetReviewsByUser(alice, "alice"))
	assert.False(t, s.HasVoted(alice, aliceReview.ID, "bob"))
	assert.True(t, s.HasVoted(alice, bobReview.ID, "alice"))
	assert.Equal(t, 5.0, s.GetMovieRatingStats(alice, 27205).AverageRating)

	err = s.DeleteReview(alice, aliceReview.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The author may review the movie again once the old review is gone.
	again, err := s.AddReview(alice, validReview(27205, 8))
	require.NoError(t, err)
	assert.NotEqual(t, aliceReview.ID, again.ID)
}

func TestReviewStore_VoteHelpful(t *testing.T) {
	s := newTestReviewStore(datasources.NewMemorySnapshotStore(), datasources.NullUserStatsAdjuster{})
	review, err := s.AddReview(testContextWithUserID("alice"), validReview(27205, 9))
	require.NoError(t, err)
	bob := testContextWithUserID("bob")

	voted, err := s.VoteHelpful(bob, review.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, voted.TotalVotes)
	assert.Equal(t, 1, voted.HelpfulVotes)
	assert.True(t, s.HasVoted(bob, review.ID, "bob"))

	_, err = s.VoteHelpful(bob, review.ID, false)
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	voted, err = s.VoteHelpful(testContextWithUserID("carol"), review.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 2, voted.TotalVotes)
	assert.Equal(t, 1, voted.HelpfulVotes)

	_, err = s.VoteHelpful(bob, "missing", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.VoteHelpful(testContext(), review.ID, true)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	stored, err := s.GetReview(bob, review.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.TotalVotes)
	assert.Equal(t, 1, stored.HelpfulVotes)
	assert.Equal(t, review.UpdatedAt, stored.UpdatedAt)
}

func TestReviewStore_GetMovieRatingStats(t *testing.T) {
	cases := []struct {
		name        string
		ratings     []int
		wantAverage float64
		wantDist    map[int]int
	}{
		{
			name:        "no_reviews",
			wantAverage: 0,
			wantDist:    map[int]int{},
		},
		{
			name:        "whole_average",
			ratings:     []int{10, 8, 6},
			wantAverage: 8.0,
			wantDist:    map[int]int{10: 1, 8: 1, 6: 1},
		},
		{
			name:        "rounds_to_one_decimal",
			ratings:     []int{7, 7, 8},
			wantAverage: 7.3,
			wantDist:    map[int]int{7: 2, 8: 1},
		},
		{
			name:        "rounds_half_up",
			ratings:     []int{1, 10, 10, 10},
			wantAverage: 7.8,
			wantDist:    map[int]int{1: 1, 10: 3},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestReviewStore(datasources.NewMemorySnapshotStore(), datasources.NullUserStatsAdjuster{})
			for i, rating := range tc.ratings {
				users := testIdentity{}
				userID := fmt.Sprintf("user%d", i)
				users[userID] = domain.User{ID: userID}
				s.identity = users
				_, err := s.AddReview(testContextWithUserID(userID), validReview(27205, rating))
				require.NoError(t, err)
			}

			stats := s.GetMovieRatingStats(testContext(), 27205)

			wantDist := map[int]int{}
			for rating := 1; rating <= 10; rating++ {
				wantDist[rating] = tc.wantDist[rating]
			}
			assert.Equal(t, domain.RatingStats{
				AverageRating:      tc.wantAverage,
				TotalReviews:       len(tc.ratings),
				RatingDistribution: wantDist,
			}, stats)
		})
	}
}

func TestReviewStore_ListReviewsAndOverallStats(t *testing.T) {
	s := newTestReviewStore(datasources.NewMemorySnapshotStore(), datasources.NullUserStatsAdjuster{})
	ctx := testContext()

	assert.Equal(t, domain.OverallStats{}, s.GetOverallStats(ctx))

	first, err := s.AddReview(testContextWithUserID("alice"), validReview(27205, 9))
	require.NoError(t, err)
	second, err := s.AddReview(testContextWithUserID("bob"), validReview(603, 6))
	require.NoError(t, err)
	third, err := s.AddReview(testContextWithUserID("alice"), validReview(157336, 8))
	require.NoError(t, err)

	var ids []string
	for _, r := range s.ListReviews(ctx) {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{third.ID, second.ID, first.ID}, ids)
	assert.Equal(t, domain.OverallStats{AverageRating: 7.7, TotalReviews: 3}, s.GetOverallStats(ctx))

	_, err = s.VoteHelpful(testContextWithUserID("bob"), first.ID, true)
	require.NoError(t, err)
	_, err = s.VoteHelpful(testContextWithUserID("carol"), first.ID, true)
	require.NoError(t, err)
	_, err = s.VoteHelpful(testContextWithUserID("carol"), second.ID, false)
	require.NoError(t, err)
	_, err = s.VoteHelpful(testContextWithUserID("bob"), third.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.OverallStats{AverageRating: 7.7, TotalReviews: 3, HelpfulVotes: 3}, s.GetOverallStats(ctx))

	require.NoError(t, s.DeleteReview(testContextWithUserID("alice"), first.ID))
	assert.Equal(t, domain.OverallStats{AverageRating: 7.0, TotalReviews: 2, HelpfulVotes: 1}, s.GetOverallStats(ctx))
}

func TestReviewStore_AuthorStats(t *testing.T) {
	s := newTestReviewStore(datasources.NewMemorySnapshotStore(), datasources.NullUserStatsAdjuster{})
	ctx := testContext()

	assert.Empty(t, s.AuthorStats(ctx))

	first, err := s.AddReview(testContextWithUserID("alice"), validReview(27205, 9))
	require.NoError(t, err)
	second, err := s.AddReview(testContextWithUserID("bob"), validReview(27205, 6))
	require.NoError(t, err)
	_, err = s.AddReview(testContextWithUserID("alice"), validReview(603, 7))
	require.NoError(t, err)
	_, err = s.VoteHelpful(testContextWithUserID("bob"), first.ID, true)
	require.NoError(t, err)
	_, err = s.VoteHelpful(testContextWithUserID("carol"), first.ID, true)
	require.NoError(t, err)
	_, err = s.VoteHelpful(testContextWithUserID("alice"), second.ID, false)
	require.NoError(t, err)

	assert.Equal(t, map[string]domain.AuthorStats{
		"alice": {
			Name:          "Alice",
			Avatar:        "https://example.com/alice.png",
			FirstReviewAt: first.CreatedAt,
			TotalReviews:  2,
			HelpfulVotes:  2,
		},
		"bob": {
			Name:          "Bob",
			Avatar:        "https://example.com/bob.png",
			FirstReviewAt: second.CreatedAt,
			TotalReviews:  1,
		},
	}, s.AuthorStats(ctx))
}

func TestReviewStore_UserStatsSideEffects(t *testing.T) {
	userStats := mocks.NewMockUserStatsAdjuster(t)
	s := newTestReviewStore(datasources.NewMemorySnapshotStore(), userStats)

	userStats.EXPECT().AdjustTotalReviews(mock.Anything, "alice", 1).Return(nil).Once()
	review, err := s.AddReview(testContextWithUserID("alice"), validReview(27205, 9))
	require.NoError(t, err)

	userStats.EXPECT().AdjustHelpfulVotes(mock.Anything, "alice", 1).Return(errors.New("profile service down")).Once()
	_, err = s.VoteHelpful(testContextWithUserID("bob"), review.ID, true)
	require.NoError(t, err)

	// An unhelpful vote credits nobody.
	_, err = s.VoteHelpful(testContextWithUserID("carol"), review.ID, false)
	require.NoError(t, err)

	// Deleting the review withdraws its helpful votes along with it.
	userStats.EXPECT().AdjustTotalReviews(mock.Anything, "alice", -1).Return(nil).Once()
	userStats.EXPECT().AdjustHelpfulVotes(mock.Anything, "alice", -1).Return(nil).Once()
	require.NoError(t, s.DeleteReview(testContextWithUserID("alice"), review.ID))
}

func TestReviewStore_DeleteUnvotedReviewLeavesHelpfulVotes(t *testing.T) {
	userStats := mocks.NewMockUserStatsAdjuster(t)
	s := newTestReviewStore(datasources.NewMemorySnapshotStore(), userStats)

	userStats.EXPECT().AdjustTotalReviews(mock.Anything, "alice", 1).Return(nil).Once()
	review, err := s.AddReview(testContextWithUserID("alice"), validReview(27205, 9))
	require.NoError(t, err)
	_, err = s.VoteHelpful(testContextWithUserID("bob"), review.ID, false)
	require.NoError(t, err)

	userStats.EXPECT().AdjustTotalReviews(mock.Anything, "alice", -1).Return(nil).Once()
	require.NoError(t, s.DeleteReview(testContextWithUserID("alice"), review.ID))
}

func TestReviewStore_Subscribe(t *testing.T) {
	s := newTestReviewStore(datasources.NewMemorySnapshotStore(), datasources.NullUserStatsAdjuster{})
	alice := testContextWithUserID("alice")

	var events []domain.Event
	unsubscribe := s.Subscribe(func(e domain.Event) { events = append(events, e) })

	review, err := s.AddReview(alice, validReview(27205, 9))
	require.NoError(t, err)
	_, err = s.AddReview(alice, validReview(27205, 9))
	require.Error(t, err)
	_, err = s.UpdateReview(alice, review.ID, domain.ReviewPatch{Rating: intPtr(8)})
	require.NoError(t, err)
	_, err = s.VoteHelpful(testContextWithUserID("bob"), review.ID, true)
	require.NoError(t, err)
	require.NoError(t, s.DeleteReview(alice, review.ID))
	unsubscribe()
	_, err = s.AddReview(alice, validReview(603, 9))
	require.NoError(t, err)

	var types []domain.EventType
	for _, e := range events {
		types = append(types, e.Type)
		assert.Equal(t, review.ID, e.ReviewID)
		assert.Equal(t, review.MovieID, e.MovieID)
	}
	assert.Equal(t, []domain.EventType{
		domain.EventReviewAdded,
		domain.EventReviewUpdated,
		domain.EventReviewVoted,
		domain.EventReviewDeleted,
	}, types)
	assert.Equal(t, "bob", events[2].OwnerID)
}

func TestReviewStore_SnapshotRoundTrip(t *testing.T) {
	snapshots := datasources.NewMemorySnapshotStore()
	s := newTestReviewStore(snapshots, datasources.NullUserStatsAdjuster{})
	alice := testContextWithUserID("alice")
	bob := testContextWithUserID("bob")

	first, err := s.AddReview(alice, validReview(27205, 9))
	require.NoError(t, err)
	second, err := s.AddReview(bob, validReview(27205, 4))
	require.NoError(t, err)
	_, err = s.UpdateReview(bob, second.ID, domain.ReviewPatch{SpoilerWarning: boolPtr(true)})
	require.NoError(t, err)
	_, err = s.VoteHelpful(bob, first.ID, true)
	require.NoError(t, err)
	_, err = s.VoteHelpful(testContextWithUserID("carol"), first.ID, false)
	require.NoError(t, err)

	before, err := s.Snapshot()
	require.NoError(t, err)

	stored, err := snapshots.LoadSnapshot(alice, datasources.ReviewsSnapshotKey)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(stored))

	reloaded := NewReviewStore(testContext(), testUsers, datasources.NullUserStatsAdjuster{}, snapshots, NewBroker())
	after, err := reloaded.Snapshot()
	require.NoError(t, err)

	if diff := cmp.Diff(string(before), string(after)); diff != "" {
		t.Errorf("snapshot changed across reload (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(s.ListReviews(alice), reloaded.ListReviews(alice)); diff != "" {
		t.Errorf("reviews changed across reload (-before +after):\n%s", diff)
	}
	assert.Equal(t, s.GetMovieRatingStats(alice, 27205), reloaded.GetMovieRatingStats(alice, 27205))
	assert.Equal(t, s.GetOverallStats(alice), reloaded.GetOverallStats(alice))
	assert.Equal(t, 1, reloaded.GetOverallStats(alice).HelpfulVotes)
	assert.True(t, reloaded.HasVoted(alice, first.ID, "carol"))

	// Indexes are rebuilt, so uniqueness still holds after a reload.
	_, err = reloaded.AddReview(alice, validReview(27205, 1))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestNewReviewStore_FallsBackToEmpty(t *testing.T) {
	const review = `{"id": "r1", "movie_id": 27205, "user_id": "alice", "user_name": "Alice", ` +
		`"user_avatar": "", "rating": 9, "title": "t", "content": "c", "spoiler_warning": false, ` +
		`"verified": false, "helpful_votes": %d, "total_votes": %d, ` +
		`"created_at": "2024-04-27T12:00:00Z", "updated_at": "2024-04-27T12:00:00Z"}`

	cases := []struct {
		name    string
		doc     string
		loadErr error
	}{
		{
			name:    "load_error",
			loadErr: errors.New("connection refused"),
		},
		{
			name: "truncated",
			doc:  `{"reviews": [`,
		},
		{
			name: "unknown_field",
			doc:  `{"reviews": [], "votes": [], "version": 2}`,
		},
		{
			name: "rating_out_of_range",
			doc:  `{"reviews": [{"id": "r1", "movie_id": 1, "user_id": "alice", "rating": 11}]}`,
		},
		{
			name: "duplicate_review_id",
			doc: `{"reviews": [{"id": "r1", "movie_id": 1, "user_id": "alice", "rating": 5}, ` +
				`{"id": "r1", "movie_id": 2, "user_id": "alice", "rating": 5}]}`,
		},
		{
			name: "two_reviews_by_author_for_movie",
			doc: `{"reviews": [{"id": "r1", "movie_id": 1, "user_id": "alice", "rating": 5}, ` +
				`{"id": "r2", "movie_id": 1, "user_id": "alice", "rating": 5}]}`,
		},
		{
			name: "more_helpful_than_total",
			doc:  `{"reviews": [` + fmt.Sprintf(review, 2, 1) + `]}`,
		},
		{
			name: "counts_disagree_with_votes",
			doc:  `{"reviews": [` + fmt.Sprintf(review, 1, 1) + `], "votes": []}`,
		},
		{
			name: "vote_on_unknown_review",
			doc: `{"reviews": [` + fmt.Sprintf(review, 0, 0) + `], ` +
				`"votes": [{"review_id": "r2", "voter_id": "bob", "helpful": true}]}`,
		},
		{
			name: "repeat_vote",
			doc: `{"reviews": [` + fmt.Sprintf(review, 2, 2) + `], "votes": [` +
				`{"review_id": "r1", "voter_id": "bob", "helpful": true}, ` +
				`{"review_id": "r1", "voter_id": "bob", "helpful": true}]}`,
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
				LoadSnapshot(mock.Anything, datasources.ReviewsSnapshotKey).
				Return(raw, tc.loadErr)

			s := NewReviewStore(testContext(), testUsers, datasources.NullUserStatsAdjuster{}, snapshots, NewBroker())

			assert.Empty(t, s.ListReviews(testContext()))
			assert.Equal(t, domain.OverallStats{}, s.GetOverallStats(testContext()))
		})
	}
}

func TestNewReviewStore_LoadsValidSnapshot(t *testing.T) {
	const doc = `{"reviews": [{"id": "r1", "movie_id": 27205, "user_id": "alice", "user_name": "Alice", ` +
		`"user_avatar": "", "rating": 9, "title": "t", "content": "c", "spoiler_warning": false, ` +
		`"verified": true, "helpful_votes": 1, "total_votes": 2, ` +
		`"created_at": "2024-04-27T12:00:00Z", "updated_at": "2024-04-28T12:00:00Z"}], "votes": [` +
		`{"review_id": "r1", "voter_id": "bob", "helpful": true}, ` +
		`{"review_id": "r1", "voter_id": "carol", "helpful": false}]}`

	snapshots := datasources.NewMemorySnapshotStore()
	require.NoError(t, snapshots.SaveSnapshot(testContext(), datasources.ReviewsSnapshotKey, []byte(doc)))

	s := NewReviewStore(testContext(), testUsers, datasources.NullUserStatsAdjuster{}, snapshots, NewBroker())

	review, err := s.GetReview(testContext(), "r1")
	require.NoError(t, err)
	assert.True(t, review.Verified)
	assert.True(t, review.Edited())
	assert.True(t, s.HasVoted(testContext(), "r1", "carol"))

	_, err = s.VoteHelpful(testContextWithUserID("bob"), "r1", true)
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
}

func TestReviewStore_AddReviewSurvivesSaveFailure(t *testing.T) {
	snapshots := mocks.NewMockSnapshotStore(t)
	snapshots.EXPECT().
		LoadSnapshot(mock.Anything, datasources.ReviewsSnapshotKey).
		Return(nil, nil)
	snapshots.EXPECT().
		SaveSnapshot(mock.Anything, datasources.ReviewsSnapshotKey, mock.Anything).
		Return(errors.New("disk full")).
		Once()

	s := NewReviewStore(testContext(), testUsers, datasources.NullUserStatsAdjuster{}, snapshots, NewBroker())

	review, err := s.AddReview(testContextWithUserID("alice"), validReview(27205, 9))
	require.NoError(t, err)
	assert.Equal(t, []domain.Review{review}, s.GetReviewsByMovie(testContext(), 27205))
}
