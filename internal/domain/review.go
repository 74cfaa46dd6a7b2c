package domain

import "time"

const (
	MinReviewRating = 1
	MaxReviewRating = 10
)

type Review struct {
	ID             string    `json:"id"`
	MovieID        MovieID   `json:"movie_id"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	UserAvatar     string    `json:"user_avatar"`
	Rating         int       `json:"rating"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	SpoilerWarning bool      `json:"spoiler_warning"`
	Verified       bool      `json:"verified"`
	HelpfulVotes   int       `json:"helpful_votes"`
	TotalVotes     int       `json:"total_votes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Edited reports whether the review has been changed since it was written.
func (r Review) Edited() bool {
	return !r.UpdatedAt.Equal(r.CreatedAt)
}

// ReviewInput is what an author submits for a new review.
type ReviewInput struct {
	MovieID        MovieID `json:"movie_id"`
	Rating         int     `json:"rating"`
	Title          string  `json:"title"`
	Content        string  `json:"content"`
	SpoilerWarning bool    `json:"spoiler_warning"`
}

// ReviewPatch holds the editable review fields; nil fields are left unchanged.
type ReviewPatch struct {
	Rating         *int    `json:"rating,omitempty"`
	Title          *string `json:"title,omitempty"`
	Content        *string `json:"content,omitempty"`
	SpoilerWarning *bool   `json:"spoiler_warning,omitempty"`
}

// VoteRecord is one voter's helpfulness judgment on one review.
type VoteRecord struct {
	ReviewID string `json:"review_id"`
	VoterID  string `json:"voter_id"`
	Helpful  bool   `json:"helpful"`
}

// RatingStats summarises the reviews of a single movie.
// RatingDistribution always holds the keys 1 through 10.
type RatingStats struct {
	AverageRating      float64     `json:"average_rating"`
	TotalReviews       int         `json:"total_reviews"`
	RatingDistribution map[int]int `json:"rating_distribution"`
}

// OverallStats summarises every review in the store.
type OverallStats struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
	HelpfulVotes  int     `json:"helpful_votes"`
}

// ReviewSortField selects the ordering of a review listing.
type ReviewSortField string

const (
	ReviewSortNewest  ReviewSortField = "newest"
	ReviewSortOldest  ReviewSortField = "oldest"
	ReviewSortHelpful ReviewSortField = "helpful"
	ReviewSortRating  ReviewSortField = "rating"
)

var ValidReviewSortFields = []ReviewSortField{
	ReviewSortNewest,
	ReviewSortOldest,
	ReviewSortHelpful,
	ReviewSortRating,
}

// ReviewQuery orders and filters a review listing. A zero Rating means no filter.
type ReviewQuery struct {
	Sort   ReviewSortField
	Rating int
}
