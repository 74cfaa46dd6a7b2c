// Package server provides the MCP server implementation.
package server

import (
	"github.com/jbeshir/movie-userdata/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var collectionNames = []string{"favorites", "watchlist", "wishlist"}

var reviewSortFields = []string{"newest", "oldest", "helpful", "rating"}

// Server is the MCP server for movie reviews and collections.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"movie-userdata",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.registerCatalogTools()
	s.registerReviewTools()
	s.registerCollectionTools()
}

func (s *Server) registerCatalogTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_movies",
		mcp.WithDescription("List every movie in the catalog with its id, title and release date."),
	), s.handleListMovies)

	s.mcpServer.AddTool(mcp.NewTool("get_profile",
		mcp.WithDescription("Get a user's profile, including how many reviews they wrote and how many helpful votes those earned."),
		mcp.WithString("user_id",
			mcp.Description("Id of the user, or 'me' (default) for the authenticated user"),
		),
	), s.handleGetProfile)
}

func (s *Server) registerReviewTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_movie_reviews",
		mcp.WithDescription(
			"List the reviews written for a movie. Newest first unless another sort order is given."),
		mcp.WithNumber("movie_id",
			mcp.Required(),
			mcp.Description("Catalog id of the movie"),
		),
		mcp.WithString("sort",
			mcp.Description("Sort order: newest, oldest, helpful or rating"),
			mcp.Enum(reviewSortFields...),
		),
		mcp.WithNumber("rating",
			mcp.Description("Only include reviews with exactly this rating (1-10)"),
		),
	), s.handleListMovieReviews)

	s.mcpServer.AddTool(mcp.NewTool("get_movie_ratings",
		mcp.WithDescription("Get the average rating, review count and rating distribution of a movie."),
		mcp.WithNumber("movie_id",
			mcp.Required(),
			mcp.Description("Catalog id of the movie"),
		),
	), s.handleGetMovieRatings)

	s.mcpServer.AddTool(mcp.NewTool("list_all_reviews",
		mcp.WithDescription("List every review across all movies, newest first, with the overall average rating."),
		mcp.WithString("sort",
			mcp.Description("Sort order: newest, oldest, helpful or rating"),
			mcp.Enum(reviewSortFields...),
		),
		mcp.WithNumber("rating",
			mcp.Description("Only include reviews with exactly this rating (1-10)"),
		),
	), s.handleListAllReviews)

	s.mcpServer.AddTool(mcp.NewTool("list_user_reviews",
		mcp.WithDescription("List the reviews written by a user. Defaults to your own reviews."),
		mcp.WithString("user_id",
			mcp.Description("Id of the author, or 'me' (default) for the authenticated user"),
		),
	), s.handleListUserReviews)

	s.mcpServer.AddTool(mcp.NewTool("get_my_review",
		mcp.WithDescription("Get your own review of a movie, if you wrote one. Requires authentication."),
		mcp.WithNumber("movie_id",
			mcp.Required(),
			mcp.Description("Catalog id of the movie"),
		),
	), s.handleGetMyReview)

	s.mcpServer.AddTool(mcp.NewTool("write_review",
		mcp.WithDescription("Write a review of a movie. You can only review each movie once. Requires authentication."),
		mcp.WithNumber("movie_id",
			mcp.Required(),
			mcp.Description("Catalog id of the movie"),
		),
		mcp.WithNumber("rating",
			mcp.Required(),
			mcp.Description("Rating from 1 to 10"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Review headline (max 100 characters)"),
			mcp.MaxLength(100),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Review body (10 to 5000 characters)"),
			mcp.MaxLength(5000),
		),
		mcp.WithBoolean("spoiler_warning",
			mcp.Description("Whether the review reveals plot details"),
		),
	), s.handleWriteReview)

	s.mcpServer.AddTool(mcp.NewTool("update_review",
		mcp.WithDescription("Edit one of your reviews. Only the fields given are changed. Requires authentication."),
		mcp.WithString("review_id",
			mcp.Required(),
			mcp.Description("Id of the review to edit"),
		),
		mcp.WithNumber("rating",
			mcp.Description("New rating from 1 to 10"),
		),
		mcp.WithString("title",
			mcp.Description("New headline"),
		),
		mcp.WithString("content",
			mcp.Description("New body"),
		),
		mcp.WithBoolean("spoiler_warning",
			mcp.Description("New spoiler flag"),
		),
	), s.handleUpdateReview)

	s.mcpServer.AddTool(mcp.NewTool("delete_review",
		mcp.WithDescription("Delete one of your reviews. Requires authentication."),
		mcp.WithString("review_id",
			mcp.Required(),
			mcp.Description("Id of the review to delete"),
		),
	), s.handleDeleteReview)

	s.mcpServer.AddTool(mcp.NewTool("vote_review",
		mcp.WithDescription("Mark a review as helpful or not helpful. One vote per review. Requires authentication."),
		mcp.WithString("review_id",
			mcp.Required(),
			mcp.Description("Id of the review to vote on"),
		),
		mcp.WithBoolean("helpful",
			mcp.Required(),
			mcp.Description("Whether the review was helpful"),
		),
	), s.handleVoteReview)

	s.mcpServer.AddTool(mcp.NewTool("has_voted",
		mcp.WithDescription("Check whether you have already voted on a review. Requires authentication."),
		mcp.WithString("review_id",
			mcp.Required(),
			mcp.Description("Id of the review"),
		),
	), s.handleHasVoted)
}

func (s *Server) registerCollectionTools() {
	s.mcpServer.AddTool(mcp.NewTool("count_collections",
		mcp.WithDescription("Count the movies in each of your collections. Requires authentication."),
	), s.handleCountCollections)

	s.mcpServer.AddTool(mcp.NewTool("list_collection",
		mcp.WithDescription("List the movies in one of your collections, most recently added first. Requires authentication."),
		mcp.WithString("collection",
			mcp.Required(),
			mcp.Description("Collection name: favorites, watchlist or wishlist"),
			mcp.Enum(collectionNames...),
		),
	), s.handleListCollection)

	s.mcpServer.AddTool(mcp.NewTool("add_to_collection",
		mcp.WithDescription("Add a movie to one of your collections. Requires authentication."),
		mcp.WithString("collection",
			mcp.Required(),
			mcp.Description("Collection name: favorites, watchlist or wishlist"),
			mcp.Enum(collectionNames...),
		),
		mcp.WithNumber("movie_id",
			mcp.Required(),
			mcp.Description("Catalog id of the movie"),
		),
	), s.handleAddToCollection)

	s.mcpServer.AddTool(mcp.NewTool("remove_from_collection",
		mcp.WithDescription("Remove a movie from one of your collections. Requires authentication."),
		mcp.WithString("collection",
			mcp.Required(),
			mcp.Description("Collection name: favorites, watchlist or wishlist"),
			mcp.Enum(collectionNames...),
		),
		mcp.WithNumber("movie_id",
			mcp.Required(),
			mcp.Description("Catalog id of the movie"),
		),
	), s.handleRemoveFromCollection)

	s.mcpServer.AddTool(mcp.NewTool("get_membership",
		mcp.WithDescription("Report which of your collections a movie is in. Requires authentication."),
		mcp.WithNumber("movie_id",
			mcp.Required(),
			mcp.Description("Catalog id of the movie"),
		),
	), s.handleGetMembership)
}
