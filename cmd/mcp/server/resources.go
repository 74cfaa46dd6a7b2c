package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jbeshir/movie-userdata/cmd/mcp/client"
	"github.com/jbeshir/movie-userdata/internal/domain"
	"github.com/jbeshir/movie-userdata/internal/transport/web/controller"
	"github.com/mark3labs/mcp-go/mcp"
)

const movieReviewsURIPrefix = "movie-reviews://"

type movieReviewsResource struct {
	MovieID domain.MovieID              `json:"movie_id"`
	Ratings domain.RatingStats          `json:"ratings"`
	Reviews []controller.ReviewResponse `json:"reviews"`
}

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			movieReviewsURIPrefix+"{movie_id}",
			"Reviews and rating summary of a movie",
			mcp.WithTemplateDescription(
				"Fetch the rating statistics of a movie together with all of its "+
					"reviews, newest first."),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleMovieReviewsResource,
	)
}

func (s *Server) handleMovieReviewsResource(
	ctx context.Context,
	request mcp.ReadResourceRequest,
) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	movieID, err := parseMovieReviewsURI(uri)
	if err != nil {
		return nil, err
	}

	ratings, err := s.client.GetMovieRatings(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ratings of movie %d: %w", movieID, err)
	}

	reviews, err := s.client.ListMovieReviews(ctx, movieID, client.ReviewFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews of movie %d: %w", movieID, err)
	}

	data, err := json.MarshalIndent(movieReviewsResource{
		MovieID: movieID,
		Ratings: ratings,
		Reviews: reviews,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal movie reviews: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func parseMovieReviewsURI(uri string) (domain.MovieID, error) {
	if !strings.HasPrefix(uri, movieReviewsURIPrefix) {
		return 0, fmt.Errorf("invalid movie reviews URI format: %s", uri)
	}

	raw := strings.TrimPrefix(uri, movieReviewsURIPrefix)
	if raw == "" {
		return 0, fmt.Errorf("missing movie_id in URI: %s", uri)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid movie_id in URI: %s", uri)
	}
	return domain.MovieID(id), nil
}
