package domain

import "time"

// User is the identity provider's view of a person. The user-data stores only read it.
type User struct {
	ID           string    `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Avatar       string    `json:"avatar" yaml:"avatar"`
	JoinedDate   time.Time `json:"joined_date" yaml:"joined_date"`
	TotalReviews int       `json:"total_reviews" yaml:"total_reviews"`
	HelpfulVotes int       `json:"helpful_votes" yaml:"helpful_votes"`
}

// AuthorStats is what the review history records about one author.
type AuthorStats struct {
	Name          string
	Avatar        string
	FirstReviewAt time.Time
	TotalReviews  int
	HelpfulVotes  int
}
