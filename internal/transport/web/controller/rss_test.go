package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/movie-userdata/internal/datasources/mocks"
	"github.com/jbeshir/movie-userdata/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMovieReviewsRSS_ServeHTTP(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	movies := mocks.NewMockMovieGetter(t)
	reviews := mocks.NewMockMovieReviewsGetter(t)
	movies.EXPECT().GetMovieByID(mock.Anything, domain.MovieID(3)).Return(domain.MovieRef{ID: 3, Title: "Heat"}, nil)
	reviews.EXPECT().GetReviewsByMovie(mock.Anything, domain.MovieID(3)).Return([]domain.Review{
		{ID: "r1", MovieID: 3, UserName: "Alice", Rating: 9, Title: "Great", Content: "Loved the shootout",
			CreatedAt: base, UpdatedAt: base},
		{ID: "r2", MovieID: 3, UserName: "Bob", Rating: 4, Title: "Twist", Content: "The ending where he dies",
			SpoilerWarning: true, CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour)},
	})

	controller := MovieReviewsRSS{
		FeedBaseURL:     "https://movies.example.com",
		FeedAuthorName:  "Movie Reviews",
		FeedAuthorEmail: "feeds@example.com",
		Movies:          movies,
		Reviews:         reviews,
		CacheMaxAge:     5 * time.Minute,
	}

	req := httptest.NewRequest(http.MethodGet, "/movies/3/reviews/rss", nil)
	req = testContext()(req)
	req = mux.SetURLVars(req, map[string]string{"movie_id": "3"})
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "max-age=300", rec.Header().Get("Cache-Control"))

	body := rec.Body.String()
	assert.Contains(t, body, "Reviews of Heat")
	assert.Contains(t, body, "9/10: Great")
	assert.Contains(t, body, "Loved the shootout")
	assert.Contains(t, body, spoilerPlaceholder)
	assert.NotContains(t, body, "The ending where he dies")
	assert.Contains(t, body, "https://movies.example.com/movie/3#review-r1")
	assert.Less(t, strings.Index(body, "4/10: Twist"), strings.Index(body, "9/10: Great"))
}

func TestMovieReviewsRSS_UnknownMovie(t *testing.T) {
	movies := mocks.NewMockMovieGetter(t)
	reviews := mocks.NewMockMovieReviewsGetter(t)
	movies.EXPECT().
		GetMovieByID(mock.Anything, domain.MovieID(99)).
		Return(domain.MovieRef{}, domain.NotFoundErrorf("movie [99]"))

	req := httptest.NewRequest(http.MethodGet, "/movies/99/reviews/rss", nil)
	req = testContext()(req)
	req = mux.SetURLVars(req, map[string]string{"movie_id": "99"})
	rec := httptest.NewRecorder()

	MovieReviewsRSS{Movies: movies, Reviews: reviews}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
