// Package main provides the entry point for the movie user-data MCP server.
//
// The server lets AI agents read and write movie reviews and manage a user's
// favorites, watchlist and wishlist through the movie user-data API.
//
// Configuration:
//
//	MOVIE_USERDATA_API_URL   - Base URL of the API (default: http://localhost:8080)
//	MOVIE_USERDATA_API_TOKEN - Auth0 access token, sent as "Bearer auth0|<token>"
//	MOVIE_USERDATA_USER_ID   - User id sent in X-User-ID when the API trusts a proxy header
//
// One of MOVIE_USERDATA_API_TOKEN or MOVIE_USERDATA_USER_ID is required.
//
// Usage:
//
//	claude mcp add movie-userdata --transport stdio \
//	  --env MOVIE_USERDATA_API_TOKEN=xxx \
//	  -- /path/to/movie-userdata-mcp
package main

import (
	"log"
	"os"

	"github.com/jbeshir/movie-userdata/cmd/mcp/client"
	"github.com/jbeshir/movie-userdata/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("MOVIE_USERDATA_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiToken := os.Getenv("MOVIE_USERDATA_API_TOKEN")
	userID := os.Getenv("MOVIE_USERDATA_USER_ID")
	if apiToken == "" && userID == "" {
		log.Fatal("MOVIE_USERDATA_API_TOKEN or MOVIE_USERDATA_USER_ID environment variable is required")
	}

	apiClient := client.NewClient(apiURL, apiToken, userID)
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
