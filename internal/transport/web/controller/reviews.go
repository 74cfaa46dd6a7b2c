package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jbeshir/movie-userdata/internal/command"
	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/domain"
	"github.com/jbeshir/movie-userdata/internal/userdata"
)

// Bool string constants for route parameters.
const (
	boolTrue  = "true"
	boolFalse = "false"
)

// ReviewResponse is a review as served to clients, with its edited marker.
type ReviewResponse struct {
	domain.Review
	Edited bool `json:"edited"`
}

func reviewResponse(r domain.Review) ReviewResponse {
	return ReviewResponse{Review: r, Edited: r.Edited()}
}

func reviewResponses(reviews []domain.Review) []ReviewResponse {
	result := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, reviewResponse(r))
	}
	return result
}

type ReviewsListResponse struct {
	Data     []ReviewResponse    `json:"data"`
	Metadata ReviewsListMetadata `json:"metadata"`
}

type ReviewsListMetadata struct {
	AverageRating *float64 `json:"average_rating,omitempty"`
	TotalReviews  *int     `json:"total_reviews,omitempty"`
	HelpfulVotes  *int     `json:"helpful_votes,omitempty"`
}

type ReviewGetResponse struct {
	Data ReviewResponse `json:"data"`
}

func reviewQueryFromQuery(q url.Values) (domain.ReviewQuery, error) {
	var query domain.ReviewQuery

	sort, err := userdata.ParseReviewSortField(q.Get("sort"))
	if err != nil {
		return domain.ReviewQuery{}, err
	}
	query.Sort = sort

	if q.Has("rating") {
		rating, err := strconv.Atoi(q.Get("rating"))
		if err != nil || rating < domain.MinReviewRating || rating > domain.MaxReviewRating {
			return domain.ReviewQuery{}, domain.ValidationErrorf("invalid rating filter [%s]", q.Get("rating"))
		}
		query.Rating = rating
	}

	return query, nil
}

type MovieReviewsList struct {
	Getter datasources.MovieReviewsGetter
}

func (c MovieReviewsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDFromVars(r)
	if err != nil {
		writeError(w, r, err, "invalid movie id")
		return
	}
	query, err := reviewQueryFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err, "unable to parse review query")
		return
	}

	reviews := userdata.QueryReviews(c.Getter.GetReviewsByMovie(r.Context(), movieID), query)
	writeJSON(w, r, http.StatusOK, ReviewsListResponse{Data: reviewResponses(reviews)})
}

type MovieRatingsGet struct {
	Getter datasources.MovieRatingStatsGetter
}

type MovieRatingsGetResponse struct {
	Data domain.RatingStats `json:"data"`
}

func (c MovieRatingsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDFromVars(r)
	if err != nil {
		writeError(w, r, err, "invalid movie id")
		return
	}

	writeJSON(w, r, http.StatusOK, MovieRatingsGetResponse{Data: c.Getter.GetMovieRatingStats(r.Context(), movieID)})
}

// ReviewsList serves every review, newest first unless the query says otherwise,
// along with the site-wide rating average and helpful vote total.
type ReviewsList struct {
	Lister datasources.ReviewLister
	Stats  datasources.OverallStatsGetter
}

func (c ReviewsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query, err := reviewQueryFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err, "unable to parse review query")
		return
	}

	reviews := userdata.QueryReviews(c.Lister.ListReviews(r.Context()), query)
	stats := c.Stats.GetOverallStats(r.Context())

	writeJSON(w, r, http.StatusOK, ReviewsListResponse{
		Data: reviewResponses(reviews),
		Metadata: ReviewsListMetadata{
			AverageRating: &stats.AverageRating,
			TotalReviews:  &stats.TotalReviews,
			HelpfulVotes:  &stats.HelpfulVotes,
		},
	})
}

type UserReviewsList struct {
	Getter datasources.UserReviewsGetter
}

func (c UserReviewsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query, err := reviewQueryFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err, "unable to parse review query")
		return
	}

	userID := mux.Vars(r)["user_id"]
	if userID == "me" {
		userID = domain.UserIDFromContext(r.Context())
	}

	reviews := userdata.QueryReviews(c.Getter.GetReviewsByUser(r.Context(), userID), query)
	writeJSON(w, r, http.StatusOK, ReviewsListResponse{Data: reviewResponses(reviews)})
}

type ReviewCreateRequest struct {
	Rating         int    `json:"rating"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	SpoilerWarning bool   `json:"spoiler_warning"`
}

type ReviewCreate struct {
	SubmitCmd command.Command[domain.ReviewInput, domain.Review]
}

func (c ReviewCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDFromVars(r)
	if err != nil {
		writeError(w, r, err, "invalid movie id")
		return
	}

	var req ReviewCreateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err, "invalid review body")
		return
	}

	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("movie_id", movieID))

	review, err := c.SubmitCmd.Execute(ctx, domain.ReviewInput{
		MovieID:        movieID,
		Rating:         req.Rating,
		Title:          req.Title,
		Content:        req.Content,
		SpoilerWarning: req.SpoilerWarning,
	})
	if err != nil {
		writeError(w, r.WithContext(ctx), err, "unable to submit review")
		return
	}

	writeJSON(w, r, http.StatusCreated, ReviewGetResponse{Data: reviewResponse(review)})
}

type ReviewUpdate struct {
	Updater datasources.ReviewUpdater
}

func (c ReviewUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["review_id"]

	var patch domain.ReviewPatch
	if err := decodeBody(w, r, &patch); err != nil {
		writeError(w, r, err, "invalid review patch")
		return
	}

	review, err := c.Updater.UpdateReview(r.Context(), reviewID, patch)
	if err != nil {
		writeError(w, r, err, "unable to update review")
		return
	}

	writeJSON(w, r, http.StatusOK, ReviewGetResponse{Data: reviewResponse(review)})
}

type ReviewDelete struct {
	Deleter datasources.ReviewDeleter
}

func (c ReviewDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := c.Deleter.DeleteReview(r.Context(), mux.Vars(r)["review_id"]); err != nil {
		writeError(w, r, err, "unable to delete review")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ReviewVote struct {
	Voter datasources.ReviewVoter
}

func (c ReviewVote) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var helpful bool
	switch vars["helpful"] {
	case boolTrue:
		helpful = true
	case boolFalse:
		helpful = false
	default:
		writeError(w, r, domain.ValidationErrorf("invalid vote [%s]", vars["helpful"]), "invalid vote")
		return
	}

	review, err := c.Voter.VoteHelpful(r.Context(), vars["review_id"], helpful)
	if err != nil {
		writeError(w, r, err, "unable to record vote")
		return
	}

	writeJSON(w, r, http.StatusOK, ReviewGetResponse{Data: reviewResponse(review)})
}

// MyMovieReviewGet serves the caller's own review of a movie, so clients can offer
// an edit instead of a second review.
type MyMovieReviewGet struct {
	Getter datasources.UserMovieReviewGetter
}

func (c MyMovieReviewGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDFromVars(r)
	if err != nil {
		writeError(w, r, err, "invalid movie id")
		return
	}

	userID := domain.UserIDFromContext(r.Context())
	review, ok := c.Getter.GetUserReviewForMovie(r.Context(), userID, movieID)
	if !ok {
		writeError(w, r, domain.NotFoundErrorf("review of movie [%d] by user [%s]", movieID, userID),
			"no review of movie by user")
		return
	}

	writeJSON(w, r, http.StatusOK, ReviewGetResponse{Data: reviewResponse(review)})
}

type ReviewVoteGet struct {
	Reviews datasources.ReviewGetter
	Votes   datasources.ReviewVoteChecker
}

type ReviewVoteGetResponse struct {
	Data ReviewVoteStatus `json:"data"`
}

type ReviewVoteStatus struct {
	ReviewID string `json:"review_id"`
	Voted    bool   `json:"voted"`
}

func (c ReviewVoteGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["review_id"]

	if _, err := c.Reviews.GetReview(r.Context(), reviewID); err != nil {
		writeError(w, r, err, "unable to get review")
		return
	}

	voted := c.Votes.HasVoted(r.Context(), reviewID, domain.UserIDFromContext(r.Context()))
	writeJSON(w, r, http.StatusOK, ReviewVoteGetResponse{Data: ReviewVoteStatus{ReviewID: reviewID, Voted: voted}})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: unable to decode request body: %s", domain.ErrValidation, err.Error())
	}
	return nil
}
