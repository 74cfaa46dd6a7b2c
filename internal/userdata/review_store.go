package userdata

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/domain"
)

type reviewSnapshot struct {
	Reviews []domain.Review     `json:"reviews"`
	Votes   []domain.VoteRecord `json:"votes"`
}

func (d reviewSnapshot) validate() error {
	type authorMovie struct {
		userID  string
		movieID domain.MovieID
	}
	type counts struct{ helpful, total int }

	ids := make(map[string]counts, len(d.Reviews))
	authored := make(map[authorMovie]struct{}, len(d.Reviews))
	for _, r := range d.Reviews {
		if r.ID == "" {
			return errors.New("review without id")
		}
		if _, dup := ids[r.ID]; dup {
			return fmt.Errorf("review [%s] stored twice", r.ID)
		}
		if err := validateRating(r.Rating); err != nil {
			return fmt.Errorf("review [%s]: %w", r.ID, err)
		}
		if r.HelpfulVotes < 0 || r.HelpfulVotes > r.TotalVotes {
			return fmt.Errorf("review [%s] has %d helpful of %d votes", r.ID, r.HelpfulVotes, r.TotalVotes)
		}
		key := authorMovie{userID: r.UserID, movieID: r.MovieID}
		if _, dup := authored[key]; dup {
			return fmt.Errorf("user [%s] has two reviews of movie [%d]", r.UserID, r.MovieID)
		}
		authored[key] = struct{}{}
		ids[r.ID] = counts{}
	}

	voted := make(map[voteKey]struct{}, len(d.Votes))
	for _, v := range d.Votes {
		c, ok := ids[v.ReviewID]
		if !ok {
			return fmt.Errorf("vote by [%s] on unknown review [%s]", v.VoterID, v.ReviewID)
		}
		key := voteKey{reviewID: v.ReviewID, voterID: v.VoterID}
		if _, dup := voted[key]; dup {
			return fmt.Errorf("voter [%s] voted twice on review [%s]", v.VoterID, v.ReviewID)
		}
		voted[key] = struct{}{}
		c.total++
		if v.Helpful {
			c.helpful++
		}
		ids[v.ReviewID] = c
	}

	for _, r := range d.Reviews {
		if c := ids[r.ID]; c.total != r.TotalVotes || c.helpful != r.HelpfulVotes {
			return fmt.Errorf("review [%s] vote counts disagree with the vote ledger", r.ID)
		}
	}
	return nil
}

var _ datasources.Reviews = (*ReviewStore)(nil)

type voteKey struct {
	reviewID string
	voterID  string
}

// ReviewStore owns every review, the helpfulness vote ledger, and the derived
// per-movie rating statistics.
type ReviewStore struct {
	mu        sync.RWMutex
	reviews   map[string]*domain.Review
	order     []string
	byMovie   map[domain.MovieID][]string
	byUser    map[string][]string
	votes     map[voteKey]domain.VoteRecord
	voteOrder []voteKey
	tallies   map[domain.MovieID]*ratingTally

	identity  datasources.CurrentUserGetter
	userStats datasources.UserStatsAdjuster
	snapshots datasources.SnapshotSaver
	broker    *Broker
	now       func() time.Time
	newID     func() string
}

// NewReviewStore builds the store from its last persisted snapshot, or empty when
// there is none or it cannot be used.
func NewReviewStore(
	ctx context.Context,
	identity datasources.CurrentUserGetter,
	userStats datasources.UserStatsAdjuster,
	snapshots datasources.SnapshotStore,
	broker *Broker,
) *ReviewStore {
	s := &ReviewStore{
		reviews:   map[string]*domain.Review{},
		byMovie:   map[domain.MovieID][]string{},
		byUser:    map[string][]string{},
		votes:     map[voteKey]domain.VoteRecord{},
		tallies:   map[domain.MovieID]*ratingTally{},
		identity:  identity,
		userStats: userStats,
		snapshots: snapshots,
		broker:    broker,
		now:       currentTime,
		newID:     uuid.NewString,
	}

	doc := loadDocument(ctx, snapshots, datasources.ReviewsSnapshotKey, reviewSnapshot.validate)
	for i := range doc.Reviews {
		r := doc.Reviews[i]
		s.insertLocked(&r)
	}
	for _, v := range doc.Votes {
		key := voteKey{reviewID: v.ReviewID, voterID: v.VoterID}
		s.votes[key] = v
		s.voteOrder = append(s.voteOrder, key)
	}

	return s
}

// AddReview records a review of input.MovieID by the current user.
func (s *ReviewStore) AddReview(ctx context.Context, input domain.ReviewInput) (domain.Review, error) {
	user, ok := s.identity.CurrentUser(ctx)
	if !ok {
		return domain.Review{}, fmt.Errorf("adding review: %w", domain.ErrUnauthenticated)
	}
	if input.MovieID <= 0 {
		return domain.Review{}, domain.ValidationErrorf("movie id must be positive")
	}
	if err := validateRating(input.Rating); err != nil {
		return domain.Review{}, err
	}
	title, content := strings.TrimSpace(input.Title), strings.TrimSpace(input.Content)
	if err := validateText(title, content); err != nil {
		return domain.Review{}, err
	}

	s.mu.Lock()
	if existing, ok := s.userReviewForMovieLocked(user.ID, input.MovieID); ok {
		s.mu.Unlock()
		return domain.Review{}, &domain.DuplicateReviewError{
			UserID:           user.ID,
			MovieID:          input.MovieID,
			ExistingReviewID: existing.ID,
		}
	}

	now := s.now()
	review := &domain.Review{
		ID:             s.newID(),
		MovieID:        input.MovieID,
		UserID:         user.ID,
		UserName:       user.Name,
		UserAvatar:     user.Avatar,
		Rating:         input.Rating,
		Title:          title,
		Content:        content,
		SpoilerWarning: input.SpoilerWarning,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.insertLocked(review)
	s.persistLocked(ctx)
	result := *review
	s.mu.Unlock()

	logger := domain.LoggerFromContext(ctx)
	if err := s.userStats.AdjustTotalReviews(ctx, user.ID, 1); err != nil {
		logger.WarnContext(ctx, "unable to increment review count", "user_id", user.ID, "error", err)
	}
	logger.DebugContext(ctx, "review added", "review_id", result.ID, "movie_id", result.MovieID)

	s.publish(domain.EventReviewAdded, user.ID, result)
	return result, nil
}

// UpdateReview applies patch to a review authored by the current user.
// Ownership is checked first, then the patch is validated as a whole before anything changes.
func (s *ReviewStore) UpdateReview(ctx context.Context, reviewID string, patch domain.ReviewPatch) (domain.Review, error) {
	user, ok := s.identity.CurrentUser(ctx)
	if !ok {
		return domain.Review{}, fmt.Errorf("updating review: %w", domain.ErrUnauthenticated)
	}

	s.mu.Lock()
	review, err := s.ownedReviewLocked(user.ID, reviewID)
	if err != nil {
		s.mu.Unlock()
		return domain.Review{}, err
	}
	title, content, err := validatePatch(patch)
	if err != nil {
		s.mu.Unlock()
		return domain.Review{}, err
	}

	if patch.Rating != nil && *patch.Rating != review.Rating {
		tally := s.tallies[review.MovieID]
		tally.remove(review.Rating)
		tally.add(*patch.Rating)
		review.Rating = *patch.Rating
	}
	if title != nil {
		review.Title = *title
	}
	if content != nil {
		review.Content = *content
	}
	if patch.SpoilerWarning != nil {
		review.SpoilerWarning = *patch.SpoilerWarning
	}
	review.UpdatedAt = s.now()
	s.persistLocked(ctx)
	result := *review
	s.mu.Unlock()

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "review updated", "review_id", result.ID)

	s.publish(domain.EventReviewUpdated, user.ID, result)
	return result, nil
}

// validatePatch returns the trimmed title and content of patch, or the first problem with it.
func validatePatch(patch domain.ReviewPatch) (title, content *string, err error) {
	if patch == (domain.ReviewPatch{}) {
		return nil, nil, domain.ValidationErrorf("no fields to update")
	}
	if patch.Rating != nil {
		if err := validateRating(*patch.Rating); err != nil {
			return nil, nil, err
		}
	}
	if patch.Title != nil {
		t := strings.TrimSpace(*patch.Title)
		if t == "" {
			return nil, nil, domain.ValidationErrorf("title must not be empty")
		}
		title = &t
	}
	if patch.Content != nil {
		c := strings.TrimSpace(*patch.Content)
		if c == "" {
			return nil, nil, domain.ValidationErrorf("content must not be empty")
		}
		content = &c
	}
	return title, content, nil
}

// DeleteReview removes a review authored by the current user along with the votes cast on it.
func (s *ReviewStore) DeleteReview(ctx context.Context, reviewID string) error {
	user, ok := s.identity.CurrentUser(ctx)
	if !ok {
		return fmt.Errorf("deleting review: %w", domain.ErrUnauthenticated)
	}

	s.mu.Lock()
	review, err := s.ownedReviewLocked(user.ID, reviewID)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	delete(s.reviews, review.ID)
	s.order = removeValue(s.order, review.ID)
	s.byMovie[review.MovieID] = removeValue(s.byMovie[review.MovieID], review.ID)
	if len(s.byMovie[review.MovieID]) == 0 {
		delete(s.byMovie, review.MovieID)
	}
	s.byUser[review.UserID] = removeValue(s.byUser[review.UserID], review.ID)
	if len(s.byUser[review.UserID]) == 0 {
		delete(s.byUser, review.UserID)
	}
	s.tallies[review.MovieID].remove(review.Rating)
	s.tallies[review.MovieID].helpful -= review.HelpfulVotes
	if s.tallies[review.MovieID].count == 0 {
		delete(s.tallies, review.MovieID)
	}

	kept := s.voteOrder[:0]
	for _, key := range s.voteOrder {
		if key.reviewID == review.ID {
			delete(s.votes, key)
			continue
		}
		kept = append(kept, key)
	}
	s.voteOrder = kept

	s.persistLocked(ctx)
	result := *review
	s.mu.Unlock()

	logger := domain.LoggerFromContext(ctx)
	if err := s.userStats.AdjustTotalReviews(ctx, user.ID, -1); err != nil {
		logger.WarnContext(ctx, "unable to decrement review count", "user_id", user.ID, "error", err)
	}
	if result.HelpfulVotes > 0 {
		if err := s.userStats.AdjustHelpfulVotes(ctx, user.ID, -result.HelpfulVotes); err != nil {
			logger.WarnContext(ctx, "unable to withdraw helpful votes", "user_id", user.ID, "error", err)
		}
	}
	logger.DebugContext(ctx, "review deleted", "review_id", result.ID)

	s.publish(domain.EventReviewDeleted, user.ID, result)
	return nil
}

// VoteHelpful records the current user's judgment of a review.
// Each user votes at most once per review; a second vote is rejected with domain.ErrAlreadyVoted.
func (s *ReviewStore) VoteHelpful(ctx context.Context, reviewID string, helpful bool) (domain.Review, error) {
	user, ok := s.identity.CurrentUser(ctx)
	if !ok {
		return domain.Review{}, fmt.Errorf("voting on review: %w", domain.ErrUnauthenticated)
	}

	s.mu.Lock()
	review, ok := s.reviews[reviewID]
	if !ok {
		s.mu.Unlock()
		return domain.Review{}, domain.NotFoundErrorf("review [%s]", reviewID)
	}
	key := voteKey{reviewID: reviewID, voterID: user.ID}
	if _, voted := s.votes[key]; voted {
		s.mu.Unlock()
		return domain.Review{}, domain.ErrAlreadyVoted
	}

	s.votes[key] = domain.VoteRecord{ReviewID: reviewID, VoterID: user.ID, Helpful: helpful}
	s.voteOrder = append(s.voteOrder, key)
	review.TotalVotes++
	if helpful {
		review.HelpfulVotes++
		s.tallies[review.MovieID].helpful++
	}
	s.persistLocked(ctx)
	result := *review
	s.mu.Unlock()

	logger := domain.LoggerFromContext(ctx)
	if helpful {
		if err := s.userStats.AdjustHelpfulVotes(ctx, result.UserID, 1); err != nil {
			logger.WarnContext(ctx, "unable to credit helpful vote", "user_id", result.UserID, "error", err)
		}
	}
	logger.DebugContext(ctx, "review voted", "review_id", result.ID, "helpful", helpful)

	s.publish(domain.EventReviewVoted, user.ID, result)
	return result, nil
}

func (s *ReviewStore) GetReview(_ context.Context, reviewID string) (domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.reviews[reviewID]
	if !ok {
		return domain.Review{}, domain.NotFoundErrorf("review [%s]", reviewID)
	}
	return *review, nil
}

// GetReviewsByMovie returns the reviews of a movie in the order they were written.
func (s *ReviewStore) GetReviewsByMovie(_ context.Context, movieID domain.MovieID) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectLocked(s.byMovie[movieID])
}

// GetReviewsByUser returns the reviews written by userID in the order they were written.
func (s *ReviewStore) GetReviewsByUser(_ context.Context, userID string) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectLocked(s.byUser[userID])
}

// GetUserReviewForMovie returns userID's review of movieID, if they wrote one.
func (s *ReviewStore) GetUserReviewForMovie(_ context.Context, userID string, movieID domain.MovieID) (domain.Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.userReviewForMovieLocked(userID, movieID)
	if !ok {
		return domain.Review{}, false
	}
	return *review, true
}

// ListReviews returns every review, newest first.
func (s *ReviewStore) ListReviews(_ context.Context) []domain.Review {
	s.mu.RLock()
	reviews := s.collectLocked(s.order)
	s.mu.RUnlock()

	return QueryReviews(reviews, domain.ReviewQuery{Sort: domain.ReviewSortNewest})
}

func (s *ReviewStore) GetMovieRatingStats(_ context.Context, movieID domain.MovieID) domain.RatingStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tallies[movieID].stats()
}

func (s *ReviewStore) GetOverallStats(_ context.Context) domain.OverallStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats domain.OverallStats
	sum := 0
	for _, tally := range s.tallies {
		sum += tally.sum
		stats.TotalReviews += tally.count
		stats.HelpfulVotes += tally.helpful
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = roundToTenth(float64(sum) / float64(stats.TotalReviews))
	}
	return stats
}

// AuthorStats totals the reviews and helpful votes of every author, oldest review first.
func (s *ReviewStore) AuthorStats(_ context.Context) map[string]domain.AuthorStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]domain.AuthorStats, len(s.byUser))
	for _, id := range s.order {
		review := s.reviews[id]
		author, ok := stats[review.UserID]
		if !ok {
			author = domain.AuthorStats{
				Name:          review.UserName,
				Avatar:        review.UserAvatar,
				FirstReviewAt: review.CreatedAt,
			}
		}
		author.TotalReviews++
		author.HelpfulVotes += review.HelpfulVotes
		stats[review.UserID] = author
	}
	return stats
}

// HasVoted reports whether voterID has already voted on reviewID.
func (s *ReviewStore) HasVoted(_ context.Context, reviewID, voterID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.votes[voteKey{reviewID: reviewID, voterID: voterID}]
	return ok
}

// Snapshot returns the persisted form of the store.
func (s *ReviewStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := encodeDocument(s.snapshotLocked())
	if err != nil {
		return nil, fmt.Errorf("snapshotting reviews: %w", err)
	}
	return raw, nil
}

func (s *ReviewStore) Subscribe(fn func(domain.Event)) (unsubscribe func()) {
	return s.broker.Subscribe(fn)
}

func (s *ReviewStore) insertLocked(review *domain.Review) {
	s.reviews[review.ID] = review
	s.order = append(s.order, review.ID)
	s.byMovie[review.MovieID] = append(s.byMovie[review.MovieID], review.ID)
	s.byUser[review.UserID] = append(s.byUser[review.UserID], review.ID)

	tally, ok := s.tallies[review.MovieID]
	if !ok {
		tally = &ratingTally{}
		s.tallies[review.MovieID] = tally
	}
	tally.add(review.Rating)
	tally.helpful += review.HelpfulVotes
}

func (s *ReviewStore) ownedReviewLocked(userID, reviewID string) (*domain.Review, error) {
	review, ok := s.reviews[reviewID]
	if !ok {
		return nil, domain.NotFoundErrorf("review [%s]", reviewID)
	}
	if review.UserID != userID {
		return nil, fmt.Errorf("%w: review [%s] belongs to another user", domain.ErrOwnership, reviewID)
	}
	return review, nil
}

func (s *ReviewStore) userReviewForMovieLocked(userID string, movieID domain.MovieID) (*domain.Review, bool) {
	for _, id := range s.byUser[userID] {
		if review := s.reviews[id]; review.MovieID == movieID {
			return review, true
		}
	}
	return nil, false
}

func (s *ReviewStore) collectLocked(ids []string) []domain.Review {
	reviews := make([]domain.Review, 0, len(ids))
	for _, id := range ids {
		reviews = append(reviews, *s.reviews[id])
	}
	return reviews
}

func (s *ReviewStore) snapshotLocked() reviewSnapshot {
	doc := reviewSnapshot{
		Reviews: s.collectLocked(s.order),
		Votes:   make([]domain.VoteRecord, 0, len(s.voteOrder)),
	}
	for _, key := range s.voteOrder {
		doc.Votes = append(doc.Votes, s.votes[key])
	}
	return doc
}

func (s *ReviewStore) persistLocked(ctx context.Context) {
	saveDocument(ctx, s.snapshots, datasources.ReviewsSnapshotKey, s.snapshotLocked())
}

func (s *ReviewStore) publish(eventType domain.EventType, actorID string, review domain.Review) {
	s.broker.Publish(domain.Event{
		Type:     eventType,
		OwnerID:  actorID,
		MovieID:  review.MovieID,
		ReviewID: review.ID,
		At:       s.now(),
	})
}

func validateRating(rating int) error {
	if rating < domain.MinReviewRating || rating > domain.MaxReviewRating {
		return domain.ValidationErrorf("rating must be between %d and %d", domain.MinReviewRating, domain.MaxReviewRating)
	}
	return nil
}

func validateText(title, content string) error {
	if title == "" {
		return domain.ValidationErrorf("title must not be empty")
	}
	if content == "" {
		return domain.ValidationErrorf("content must not be empty")
	}
	return nil
}
