// Package client provides an HTTP client for the movie user-data API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/movie-userdata/internal/domain"
	"github.com/jbeshir/movie-userdata/internal/transport/web/controller"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode       int
	Message          string
	ExistingReviewID string
}

func (e *APIError) Error() string {
	if e.ExistingReviewID != "" {
		return fmt.Sprintf("API error (status %d): %s (existing review %s)", e.StatusCode, e.Message, e.ExistingReviewID)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// ReviewFilters orders and filters a review listing.
type ReviewFilters struct {
	Sort   string
	Rating int
}

func (f ReviewFilters) queryParams() url.Values {
	params := url.Values{}
	if f.Sort != "" {
		params.Set("sort", f.Sort)
	}
	if f.Rating > 0 {
		params.Set("rating", strconv.Itoa(f.Rating))
	}
	return params
}

// Client is an HTTP client for the movie user-data API.
type Client struct {
	baseURL    string
	apiToken   string
	userID     string
	httpClient *http.Client
}

// NewClient creates a new API client. apiToken is an Auth0 access token; userID is
// sent in the X-User-ID header instead when the API runs behind an identity proxy.
func NewClient(baseURL, apiToken, userID string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		userID:   userID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	switch {
	case c.apiToken != "":
		req.Header.Set("Authorization", "Bearer auth0|"+c.apiToken)
	case c.userID != "":
		req.Header.Set("X-User-ID", c.userID)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}

		var errResp controller.ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			apiErr.Message = errResp.Message
			apiErr.ExistingReviewID = errResp.ExistingReviewID
		}
		return apiErr
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func (c *Client) call(ctx context.Context, method, path string, body, result any) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return c.handleResponse(resp, result)
}

// ListMovies returns the catalog in document order.
func (c *Client) ListMovies(ctx context.Context) ([]domain.MovieRef, error) {
	var resp controller.MoviesListResponse
	if err := c.call(ctx, http.MethodGet, "/v1/movies", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetUser returns a profile; "me" means the authenticated user.
func (c *Client) GetUser(ctx context.Context, userID string) (domain.User, error) {
	var resp controller.UserGetResponse
	if err := c.call(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(userID), nil, &resp); err != nil {
		return domain.User{}, err
	}
	return resp.Data, nil
}

// ListMovieReviews returns the reviews of a movie, newest first unless filters say otherwise.
func (c *Client) ListMovieReviews(
	ctx context.Context, movieID domain.MovieID, filters ReviewFilters,
) ([]controller.ReviewResponse, error) {
	path := fmt.Sprintf("/v1/movies/%d/reviews", movieID)
	if params := filters.queryParams(); len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp controller.ReviewsListResponse
	if err := c.call(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GetMovieRatings(ctx context.Context, movieID domain.MovieID) (domain.RatingStats, error) {
	var resp controller.MovieRatingsGetResponse
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/v1/movies/%d/ratings", movieID), nil, &resp); err != nil {
		return domain.RatingStats{}, err
	}
	return resp.Data, nil
}

// ListReviews returns every review with the site-wide rating summary.
func (c *Client) ListReviews(ctx context.Context, filters ReviewFilters) (controller.ReviewsListResponse, error) {
	path := "/v1/reviews"
	if params := filters.queryParams(); len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp controller.ReviewsListResponse
	if err := c.call(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return controller.ReviewsListResponse{}, err
	}
	return resp, nil
}

// ListUserReviews returns the reviews written by userID; "me" means the authenticated user.
func (c *Client) ListUserReviews(ctx context.Context, userID string) ([]controller.ReviewResponse, error) {
	var resp controller.ReviewsListResponse
	path := "/v1/users/" + url.PathEscape(userID) + "/reviews"
	if err := c.call(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetMyReview returns the authenticated user's review of a movie.
func (c *Client) GetMyReview(ctx context.Context, movieID domain.MovieID) (controller.ReviewResponse, error) {
	var resp controller.ReviewGetResponse
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/v1/movies/%d/reviews/mine", movieID), nil, &resp); err != nil {
		return controller.ReviewResponse{}, err
	}
	return resp.Data, nil
}

func (c *Client) WriteReview(
	ctx context.Context, movieID domain.MovieID, review controller.ReviewCreateRequest,
) (controller.ReviewResponse, error) {
	var resp controller.ReviewGetResponse
	if err := c.call(ctx, http.MethodPost, fmt.Sprintf("/v1/movies/%d/reviews", movieID), review, &resp); err != nil {
		return controller.ReviewResponse{}, err
	}
	return resp.Data, nil
}

func (c *Client) UpdateReview(
	ctx context.Context, reviewID string, patch domain.ReviewPatch,
) (controller.ReviewResponse, error) {
	var resp controller.ReviewGetResponse
	if err := c.call(ctx, http.MethodPatch, "/v1/reviews/"+url.PathEscape(reviewID), patch, &resp); err != nil {
		return controller.ReviewResponse{}, err
	}
	return resp.Data, nil
}

func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	return c.call(ctx, http.MethodDelete, "/v1/reviews/"+url.PathEscape(reviewID), nil, nil)
}

func (c *Client) VoteReview(ctx context.Context, reviewID string, helpful bool) (controller.ReviewResponse, error) {
	var resp controller.ReviewGetResponse
	path := fmt.Sprintf("/v1/reviews/%s/vote/%t", url.PathEscape(reviewID), helpful)
	if err := c.call(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return controller.ReviewResponse{}, err
	}
	return resp.Data, nil
}

func (c *Client) HasVoted(ctx context.Context, reviewID string) (bool, error) {
	var resp controller.ReviewVoteGetResponse
	path := "/v1/reviews/" + url.PathEscape(reviewID) + "/vote"
	if err := c.call(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return false, err
	}
	return resp.Data.Voted, nil
}

func (c *Client) CountCollections(ctx context.Context) (map[domain.CollectionName]int, error) {
	var resp controller.CollectionsCountResponse
	if err := c.call(ctx, http.MethodGet, "/v1/collections", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) ListCollection(ctx context.Context, name domain.CollectionName) ([]domain.CollectionEntry, error) {
	var resp controller.CollectionListResponse
	if err := c.call(ctx, http.MethodGet, "/v1/collections/"+string(name), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// AddToCollection stores the movie and reports whether it was newly added.
func (c *Client) AddToCollection(
	ctx context.Context, name domain.CollectionName, movieID domain.MovieID,
) (controller.CollectionMoviePutResponse, error) {
	var resp controller.CollectionMoviePutResponse
	path := fmt.Sprintf("/v1/collections/%s/%d", name, movieID)
	if err := c.call(ctx, http.MethodPut, path, nil, &resp); err != nil {
		return controller.CollectionMoviePutResponse{}, err
	}
	return resp, nil
}

func (c *Client) RemoveFromCollection(ctx context.Context, name domain.CollectionName, movieID domain.MovieID) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/v1/collections/%s/%d", name, movieID), nil, nil)
}

func (c *Client) GetMembership(ctx context.Context, movieID domain.MovieID) (domain.Membership, error) {
	var resp controller.MembershipGetResponse
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/v1/movies/%d/membership", movieID), nil, &resp); err != nil {
		return domain.Membership{}, err
	}
	return resp.Data, nil
}
