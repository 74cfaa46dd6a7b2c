package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/movie-userdata/internal/domain"
	"github.com/jbeshir/movie-userdata/internal/transport/web/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	UserID        string
	Body          map[string]any
}

func newTestServer(t *testing.T, status int, response any) (*httptest.Server, *recordedRequest) {
	t.Helper()

	recorded := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.Method = r.Method
		recorded.Path = r.URL.Path
		recorded.RawQuery = r.URL.RawQuery
		recorded.Authorization = r.Header.Get("Authorization")
		recorded.UserID = r.Header.Get("X-User-ID")
		if r.ContentLength > 0 {
			_ = json.NewDecoder(r.Body).Decode(&recorded.Body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if response != nil {
			_ = json.NewEncoder(w).Encode(response)
		}
	}))
	t.Cleanup(srv.Close)

	return srv, recorded
}

func TestClient_Authentication(t *testing.T) {
	cases := []struct {
		name              string
		apiToken          string
		userID            string
		wantAuthorization string
		wantUserID        string
	}{
		{
			name:              "token_sent_as_auth0_bearer",
			apiToken:          "abc",
			wantAuthorization: "Bearer auth0|abc",
		},
		{
			name:       "user_id_sent_as_header",
			userID:     "user-1",
			wantUserID: "user-1",
		},
		{
			name:              "token_preferred_over_user_id",
			apiToken:          "abc",
			userID:            "user-1",
			wantAuthorization: "Bearer auth0|abc",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, recorded := newTestServer(t, http.StatusOK, controller.MembershipGetResponse{})

			c := NewClient(srv.URL+"/", tc.apiToken, tc.userID)
			_, err := c.GetMembership(context.Background(), 7)
			require.NoError(t, err)

			assert.Equal(t, "/v1/movies/7/membership", recorded.Path)
			assert.Equal(t, tc.wantAuthorization, recorded.Authorization)
			assert.Equal(t, tc.wantUserID, recorded.UserID)
		})
	}
}

func TestClient_ListMovieReviews(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	srv, recorded := newTestServer(t, http.StatusOK, controller.ReviewsListResponse{
		Data: []controller.ReviewResponse{{
			Review: domain.Review{ID: "r1", MovieID: 42, Rating: 8, CreatedAt: created, UpdatedAt: created},
		}},
	})

	c := NewClient(srv.URL, "", "user-1")
	reviews, err := c.ListMovieReviews(context.Background(), 42, ReviewFilters{Sort: "helpful", Rating: 8})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, recorded.Method)
	assert.Equal(t, "/v1/movies/42/reviews", recorded.Path)
	assert.Equal(t, "rating=8&sort=helpful", recorded.RawQuery)
	require.Len(t, reviews, 1)
	assert.Equal(t, "r1", reviews[0].ID)
	assert.False(t, reviews[0].Edited)
}

func TestClient_WriteReview(t *testing.T) {
	srv, recorded := newTestServer(t, http.StatusCreated, controller.ReviewGetResponse{
		Data: controller.ReviewResponse{Review: domain.Review{ID: "r1", MovieID: 42, Rating: 9}},
	})

	c := NewClient(srv.URL, "", "user-1")
	review, err := c.WriteReview(context.Background(), 42, controller.ReviewCreateRequest{
		Rating:         9,
		Title:          "Great",
		Content:        "A very good film indeed.",
		SpoilerWarning: true,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, recorded.Method)
	assert.Equal(t, "/v1/movies/42/reviews", recorded.Path)
	assert.Equal(t, map[string]any{
		"rating":          float64(9),
		"title":           "Great",
		"content":         "A very good film indeed.",
		"spoiler_warning": true,
	}, recorded.Body)
	assert.Equal(t, "r1", review.ID)
}

func TestClient_DuplicateReviewError(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusConflict, controller.ErrorResponse{
		Message:          "already reviewed",
		ExistingReviewID: "r0",
	})

	c := NewClient(srv.URL, "", "user-1")
	_, err := c.WriteReview(context.Background(), 42, controller.ReviewCreateRequest{Rating: 5})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "already reviewed", apiErr.Message)
	assert.Equal(t, "r0", apiErr.ExistingReviewID)
}

func TestClient_UpdateReview(t *testing.T) {
	srv, recorded := newTestServer(t, http.StatusOK, controller.ReviewGetResponse{})

	rating := 6
	c := NewClient(srv.URL, "", "user-1")
	_, err := c.UpdateReview(context.Background(), "r1", domain.ReviewPatch{Rating: &rating})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, recorded.Method)
	assert.Equal(t, "/v1/reviews/r1", recorded.Path)
	assert.Equal(t, map[string]any{"rating": float64(6)}, recorded.Body)
}

func TestClient_VoteReview(t *testing.T) {
	srv, recorded := newTestServer(t, http.StatusOK, controller.ReviewGetResponse{
		Data: controller.ReviewResponse{Review: domain.Review{ID: "r1", HelpfulVotes: 1, TotalVotes: 1}},
	})

	c := NewClient(srv.URL, "", "user-1")
	review, err := c.VoteReview(context.Background(), "r1", true)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, recorded.Method)
	assert.Equal(t, "/v1/reviews/r1/vote/true", recorded.Path)
	assert.Equal(t, 1, review.HelpfulVotes)
}

func TestClient_Collections(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		srv, recorded := newTestServer(t, http.StatusCreated, controller.CollectionMoviePutResponse{
			Data:  domain.MovieRef{ID: 42, Title: "Heat"},
			Added: true,
		})

		c := NewClient(srv.URL, "", "user-1")
		resp, err := c.AddToCollection(context.Background(), domain.CollectionWatchlist, 42)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPut, recorded.Method)
		assert.Equal(t, "/v1/collections/watchlist/42", recorded.Path)
		assert.True(t, resp.Added)
		assert.Equal(t, "Heat", resp.Data.Title)
	})

	t.Run("remove", func(t *testing.T) {
		srv, recorded := newTestServer(t, http.StatusNoContent, nil)

		c := NewClient(srv.URL, "", "user-1")
		err := c.RemoveFromCollection(context.Background(), domain.CollectionFavorites, 42)
		require.NoError(t, err)

		assert.Equal(t, http.MethodDelete, recorded.Method)
		assert.Equal(t, "/v1/collections/favorites/42", recorded.Path)
	})

	t.Run("count", func(t *testing.T) {
		srv, recorded := newTestServer(t, http.StatusOK, controller.CollectionsCountResponse{
			Data: map[domain.CollectionName]int{domain.CollectionFavorites: 2},
		})

		c := NewClient(srv.URL, "", "user-1")
		counts, err := c.CountCollections(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "/v1/collections", recorded.Path)
		assert.Equal(t, 2, counts[domain.CollectionFavorites])
	})
}

func TestClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "", "user-1")
	_, err := c.ListUserReviews(context.Background(), "me")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "bad gateway", apiErr.Message)
}
