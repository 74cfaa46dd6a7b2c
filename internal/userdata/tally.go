package userdata

import (
	"math"

	"github.com/jbeshir/movie-userdata/internal/domain"
)

// ratingTally keeps the running figures behind a movie's rating statistics.
type ratingTally struct {
	sum          int
	count        int
	helpful      int
	distribution [domain.MaxReviewRating + 1]int
}

func (t *ratingTally) add(rating int) {
	t.sum += rating
	t.count++
	t.distribution[rating]++
}

func (t *ratingTally) remove(rating int) {
	t.sum -= rating
	t.count--
	t.distribution[rating]--
}

func (t *ratingTally) stats() domain.RatingStats {
	stats := domain.RatingStats{
		RatingDistribution: make(map[int]int, domain.MaxReviewRating),
	}
	for rating := domain.MinReviewRating; rating <= domain.MaxReviewRating; rating++ {
		stats.RatingDistribution[rating] = 0
	}
	if t == nil || t.count == 0 {
		return stats
	}

	stats.TotalReviews = t.count
	stats.AverageRating = roundToTenth(float64(t.sum) / float64(t.count))
	for rating := domain.MinReviewRating; rating <= domain.MaxReviewRating; rating++ {
		stats.RatingDistribution[rating] = t.distribution[rating]
	}
	return stats
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
