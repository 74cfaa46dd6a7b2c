package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/domain"
	"github.com/jbeshir/movie-userdata/internal/userdata"
)

const spoilerPlaceholder = "This review contains spoilers."

// MovieReviewsRSS serves the reviews of one movie as an RSS feed, newest first.
type MovieReviewsRSS struct {
	FeedBaseURL     string
	FeedAuthorName  string
	FeedAuthorEmail string
	Movies          datasources.MovieGetter
	Reviews         datasources.MovieReviewsGetter
	CacheMaxAge     time.Duration
}

func (c MovieReviewsRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDFromVars(r)
	if err != nil {
		writeError(w, r, err, "invalid movie id")
		return
	}

	movie, err := c.Movies.GetMovieByID(r.Context(), movieID)
	if err != nil {
		writeError(w, r, err, "unable to fetch movie for feed")
		return
	}

	moviePage := fmt.Sprintf("%s/movie/%d", c.FeedBaseURL, movie.ID)
	feed := &feeds.Feed{
		Title:       fmt.Sprintf("Reviews of %s", movie.Title),
		Link:        &feeds.Link{Href: moviePage},
		Description: fmt.Sprintf("User reviews of %s", movie.Title),
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	reviews := userdata.QueryReviews(
		c.Reviews.GetReviewsByMovie(r.Context(), movieID),
		domain.ReviewQuery{Sort: domain.ReviewSortNewest},
	)
	for _, review := range reviews {
		description := review.Content
		if review.SpoilerWarning {
			description = spoilerPlaceholder
		}

		feed.Items = append(feed.Items, &feeds.Item{
			Id:          review.ID,
			IsPermaLink: "false",
			Title:       fmt.Sprintf("%d/10: %s", review.Rating, review.Title),
			Link:        &feeds.Link{Href: moviePage + "#review-" + review.ID},
			Description: description,
			Author:      &feeds.Author{Name: review.UserName},
			Created:     review.CreatedAt,
			Updated:     review.UpdatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		writeError(w, r, err, "unable to format feed as RSS")
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
