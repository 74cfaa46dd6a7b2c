package userdata

import (
	"slices"

	"github.com/jbeshir/movie-userdata/internal/domain"
)

// ParseReviewSortField validates a sort field taken from user input.
// An empty string selects newest first.
func ParseReviewSortField(s string) (domain.ReviewSortField, error) {
	if s == "" {
		return domain.ReviewSortNewest, nil
	}
	for _, field := range domain.ValidReviewSortFields {
		if string(field) == s {
			return field, nil
		}
	}
	return "", domain.ValidationErrorf("unknown sort field [%s]", s)
}

// QueryReviews filters reviews to query.Rating, when set, and orders them by query.Sort.
// Reviews that compare equal keep their relative order. The input slice is not modified.
func QueryReviews(reviews []domain.Review, query domain.ReviewQuery) []domain.Review {
	result := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if query.Rating != 0 && r.Rating != query.Rating {
			continue
		}
		result = append(result, r)
	}

	switch query.Sort {
	case domain.ReviewSortOldest:
		slices.SortStableFunc(result, func(a, b domain.Review) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case domain.ReviewSortHelpful:
		slices.SortStableFunc(result, func(a, b domain.Review) int {
			return b.HelpfulVotes - a.HelpfulVotes
		})
	case domain.ReviewSortRating:
		slices.SortStableFunc(result, func(a, b domain.Review) int {
			return b.Rating - a.Rating
		})
	default:
		slices.SortStableFunc(result, func(a, b domain.Review) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
	return result
}
