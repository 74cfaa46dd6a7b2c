package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/jbeshir/movie-userdata/cmd/mcp/client"
	"github.com/jbeshir/movie-userdata/internal/domain"
	"github.com/jbeshir/movie-userdata/internal/transport/web/controller"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) handleListMovies(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	movies, err := s.client.ListMovies(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list movies: %v", err)), nil
	}
	if len(movies) == 0 {
		return mcp.NewToolResultText("The catalog is empty."), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d movie(s):\n\n", len(movies))
	for _, m := range movies {
		fmt.Fprintf(&sb, "%d: %s (%s)\n", m.ID, m.Title, m.ReleaseDate)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleGetProfile(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	userID := "me"
	if id, ok := request.Params.Arguments["user_id"].(string); ok && strings.TrimSpace(id) != "" {
		userID = strings.TrimSpace(id)
	}

	user, err := s.client.GetUser(ctx, userID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get profile: %v", err)), nil
	}

	return formatJSONResult(user)
}

func (s *Server) handleListMovieReviews(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	movieID, err := parseMovieID(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	filters, err := parseReviewFilters(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	reviews, err := s.client.ListMovieReviews(ctx, movieID, filters)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list reviews: %v", err)), nil
	}

	return formatReviewsResult(reviews)
}

func (s *Server) handleGetMovieRatings(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	movieID, err := parseMovieID(request.Params.Arguments)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	stats, err := s.client.GetMovieRatings(ctx, movieID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get ratings: %v", err)), nil
	}

	return formatJSONResult(stats)
}

func (s *Server) handleListAllReviews(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	filters, err := parseReviewFilters(request.Params.Arguments)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := s.client.ListReviews(ctx, filters)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list reviews: %v", err)), nil
	}
	if len(resp.Data) == 0 {
		return mcp.NewToolResultText("No reviews found."), nil
	}

	data, err := json.MarshalIndent(resp.Data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format reviews: %v", err)), nil
	}

	var summary string
	if resp.Metadata.AverageRating != nil && resp.Metadata.TotalReviews != nil {
		summary = fmt.Sprintf("Average rating %.1f over %d review(s).\n",
			*resp.Metadata.AverageRating, *resp.Metadata.TotalReviews)
	}
	if resp.Metadata.HelpfulVotes != nil {
		summary += fmt.Sprintf("%d helpful vote(s) cast.\n", *resp.Metadata.HelpfulVotes)
	}
	msg := fmt.Sprintf("%sFound %d review(s):\n\n%s", summary, len(resp.Data), string(data))
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleListUserReviews(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	userID := "me"
	if id, ok := request.Params.Arguments["user_id"].(string); ok && strings.TrimSpace(id) != "" {
		userID = strings.TrimSpace(id)
	}

	reviews, err := s.client.ListUserReviews(ctx, userID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list reviews: %v", err)), nil
	}

	return formatReviewsResult(reviews)
}

func (s *Server) handleGetMyReview(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	movieID, err := parseMovieID(request.Params.Arguments)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	review, err := s.client.GetMyReview(ctx, movieID)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return mcp.NewToolResultText(fmt.Sprintf("You have not reviewed movie %d.", movieID)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to get review: %v", err)), nil
	}

	return formatJSONResult(review)
}

func (s *Server) handleWriteReview(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	movieID, err := parseMovieID(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req, err := parseReviewCreate(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	review, err := s.client.WriteReview(ctx, movieID, req)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.ExistingReviewID != "" {
			msg := fmt.Sprintf(
				"You have already reviewed movie %d; use update_review with review_id %s to change it.",
				movieID, apiErr.ExistingReviewID)
			return mcp.NewToolResultError(msg), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to write review: %v", err)), nil
	}

	return formatJSONResult(review)
}

func (s *Server) handleUpdateReview(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	reviewID, err := parseReviewID(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	patch, err := parseReviewPatch(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	review, err := s.client.UpdateReview(ctx, reviewID, patch)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to update review: %v", err)), nil
	}

	return formatJSONResult(review)
}

func (s *Server) handleDeleteReview(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	reviewID, err := parseReviewID(request.Params.Arguments)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.client.DeleteReview(ctx, reviewID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete review: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Successfully deleted review %s", reviewID)), nil
}

func (s *Server) handleVoteReview(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	reviewID, err := parseReviewID(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	helpful, ok := args["helpful"].(bool)
	if !ok {
		return mcp.NewToolResultError("helpful is required (true or false)"), nil
	}

	review, err := s.client.VoteReview(ctx, reviewID, helpful)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to vote on review: %v", err)), nil
	}

	msg := fmt.Sprintf("Recorded your vote on review %s; %d of %d voter(s) found it helpful.",
		reviewID, review.HelpfulVotes, review.TotalVotes)
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleHasVoted(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	reviewID, err := parseReviewID(request.Params.Arguments)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	voted, err := s.client.HasVoted(ctx, reviewID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to check vote: %v", err)), nil
	}

	if voted {
		return mcp.NewToolResultText(fmt.Sprintf("You have already voted on review %s.", reviewID)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("You have not voted on review %s yet.", reviewID)), nil
}

func (s *Server) handleCountCollections(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	counts, err := s.client.CountCollections(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to count collections: %v", err)), nil
	}

	return formatJSONResult(counts)
}

func (s *Server) handleListCollection(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	name, err := parseCollection(request.Params.Arguments)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entries, err := s.client.ListCollection(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list collection: %v", err)), nil
	}
	if len(entries) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("Your %s is empty.", name)), nil
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format collection: %v", err)), nil
	}

	msg := fmt.Sprintf("Found %d movie(s) in your %s:\n\n%s", len(entries), name, string(data))
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleAddToCollection(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	name, err := parseCollection(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	movieID, err := parseMovieID(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := s.client.AddToCollection(ctx, name, movieID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add to collection: %v", err)), nil
	}

	if !resp.Added {
		return mcp.NewToolResultText(fmt.Sprintf("%s is already in your %s.", resp.Data.Title, name)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Added %s to your %s.", resp.Data.Title, name)), nil
}

func (s *Server) handleRemoveFromCollection(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	name, err := parseCollection(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	movieID, err := parseMovieID(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.client.RemoveFromCollection(ctx, name, movieID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to remove from collection: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Movie %d is no longer in your %s.", movieID, name)), nil
}

func (s *Server) handleGetMembership(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	movieID, err := parseMovieID(request.Params.Arguments)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	membership, err := s.client.GetMembership(ctx, movieID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get membership: %v", err)), nil
	}

	return formatJSONResult(membership)
}

func parseMovieID(args map[string]any) (domain.MovieID, error) {
	id, ok := args["movie_id"].(float64)
	if !ok {
		return 0, errors.New("movie_id is required")
	}
	if id <= 0 || id != float64(int64(id)) {
		return 0, fmt.Errorf("movie_id must be a positive integer, got %v", id)
	}
	return domain.MovieID(id), nil
}

func parseReviewID(args map[string]any) (string, error) {
	id, ok := args["review_id"].(string)
	if !ok || strings.TrimSpace(id) == "" {
		return "", errors.New("review_id is required")
	}
	return strings.TrimSpace(id), nil
}

func parseCollection(args map[string]any) (domain.CollectionName, error) {
	raw, ok := args["collection"].(string)
	if !ok || raw == "" {
		return "", errors.New("collection is required (favorites, watchlist or wishlist)")
	}
	return domain.ParseCollectionName(strings.ToLower(raw))
}

func parseRating(args map[string]any) (int, bool, error) {
	raw, ok := args["rating"].(float64)
	if !ok {
		return 0, false, nil
	}
	if raw != float64(int(raw)) || raw < domain.MinReviewRating || raw > domain.MaxReviewRating {
		return 0, false, fmt.Errorf("rating must be a whole number from %d to %d, got %v",
			domain.MinReviewRating, domain.MaxReviewRating, raw)
	}
	return int(raw), true, nil
}

func parseReviewFilters(args map[string]any) (client.ReviewFilters, error) {
	var filters client.ReviewFilters

	if sort, ok := args["sort"].(string); ok && sort != "" {
		sort = strings.ToLower(sort)
		if !slices.Contains(reviewSortFields, sort) {
			return filters, fmt.Errorf("sort must be one of %s", strings.Join(reviewSortFields, ", "))
		}
		filters.Sort = sort
	}

	rating, _, err := parseRating(args)
	if err != nil {
		return filters, err
	}
	filters.Rating = rating

	return filters, nil
}

func parseReviewCreate(args map[string]any) (controller.ReviewCreateRequest, error) {
	var req controller.ReviewCreateRequest

	rating, ok, err := parseRating(args)
	if err != nil {
		return req, err
	}
	if !ok {
		return req, errors.New("rating is required")
	}
	req.Rating = rating

	if req.Title, ok = args["title"].(string); !ok || strings.TrimSpace(req.Title) == "" {
		return req, errors.New("title is required")
	}
	if req.Content, ok = args["content"].(string); !ok || strings.TrimSpace(req.Content) == "" {
		return req, errors.New("content is required")
	}
	req.SpoilerWarning, _ = args["spoiler_warning"].(bool)

	return req, nil
}

func parseReviewPatch(args map[string]any) (domain.ReviewPatch, error) {
	var patch domain.ReviewPatch

	rating, ok, err := parseRating(args)
	if err != nil {
		return patch, err
	}
	if ok {
		patch.Rating = &rating
	}
	if title, ok := args["title"].(string); ok {
		patch.Title = &title
	}
	if content, ok := args["content"].(string); ok {
		patch.Content = &content
	}
	if spoiler, ok := args["spoiler_warning"].(bool); ok {
		patch.SpoilerWarning = &spoiler
	}

	if patch == (domain.ReviewPatch{}) {
		return patch, errors.New("at least one of rating, title, content or spoiler_warning must be given")
	}
	return patch, nil
}

func formatReviewsResult(reviews []controller.ReviewResponse) (*mcp.CallToolResult, error) {
	if len(reviews) == 0 {
		return mcp.NewToolResultText("No reviews found."), nil
	}

	data, err := json.MarshalIndent(reviews, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format reviews: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Found %d review(s):\n\n%s", len(reviews), string(data))
	return mcp.NewToolResultText(msg), nil
}

func formatJSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
