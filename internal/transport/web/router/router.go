package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jbeshir/movie-userdata/internal/command"
	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/domain"
	"github.com/jbeshir/movie-userdata/internal/transport/web/controller"
	"github.com/jbeshir/movie-userdata/internal/transport/web/events"
)

// Params holds everything the HTTP routes are built from.
type Params struct {
	Catalog     datasources.Catalog
	Users       datasources.Identity
	Collections datasources.Collections
	Reviews     datasources.Reviews

	AddToCollectionCmd command.Command[command.AddToCollectionRequest, command.AddToCollectionResult]
	SubmitReviewCmd    command.Command[domain.ReviewInput, domain.Review]

	Hub *events.Hub

	RSSFeedBaseURL     string
	RSSFeedAuthorName  string
	RSSFeedAuthorEmail string
	RSSCacheMaxAge     time.Duration

	WriteRateLimit RateLimitConfig
	AuthMiddleware func(http.Handler) http.Handler
}

func MakeRouter(p Params) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(p.AuthMiddleware)

	writeLimit := rateLimitMiddleware(NewKeyedRateLimiter(p.WriteRateLimit))

	r.Handle("/v1/collections", requireAuthMiddleware(controller.CollectionsCount{
		Counter: p.Collections,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/collections/{collection}", requireAuthMiddleware(controller.CollectionList{
		Lister: p.Collections,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/collections/{collection}/{movie_id}", requireAuthMiddleware(controller.CollectionMoviePut{
		AddCmd: p.AddToCollectionCmd,
	})).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/collections/{collection}/{movie_id}", requireAuthMiddleware(controller.CollectionMovieDelete{
		Remover: p.Collections,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/movies", controller.MoviesList{
		Lister: p.Catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/movies/{movie_id}/membership", requireAuthMiddleware(controller.MembershipGet{
		Getter: p.Collections,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/movies/{movie_id}/reviews", controller.MovieReviewsList{
		Getter: p.Reviews,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/movies/{movie_id}/reviews", requireAuthMiddleware(writeLimit(controller.ReviewCreate{
		SubmitCmd: p.SubmitReviewCmd,
	}))).Methods(http.MethodPost)

	r.Handle("/v1/movies/{movie_id}/reviews/mine", requireAuthMiddleware(controller.MyMovieReviewGet{
		Getter: p.Reviews,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/movies/{movie_id}/ratings", controller.MovieRatingsGet{
		Getter: p.Reviews,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/movies/{movie_id}/reviews/rss", controller.MovieReviewsRSS{
		FeedBaseURL:     p.RSSFeedBaseURL,
		FeedAuthorName:  p.RSSFeedAuthorName,
		FeedAuthorEmail: p.RSSFeedAuthorEmail,
		Movies:          p.Catalog,
		Reviews:         p.Reviews,
		CacheMaxAge:     p.RSSCacheMaxAge,
	}).Methods(http.MethodGet)

	r.Handle("/v1/reviews", controller.ReviewsList{
		Lister: p.Reviews,
		Stats:  p.Reviews,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/reviews/{review_id}", requireAuthMiddleware(controller.ReviewUpdate{
		Updater: p.Reviews,
	})).Methods(http.MethodPatch, http.MethodOptions)

	r.Handle("/v1/reviews/{review_id}", requireAuthMiddleware(controller.ReviewDelete{
		Deleter: p.Reviews,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/reviews/{review_id}/vote", requireAuthMiddleware(controller.ReviewVoteGet{
		Reviews: p.Reviews,
		Votes:   p.Reviews,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/reviews/{review_id}/vote/{helpful}", requireAuthMiddleware(writeLimit(controller.ReviewVote{
		Voter: p.Reviews,
	}))).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/users/{user_id}", controller.UserGet{
		CurrentUser: p.Users,
		Users:       p.Users,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/{user_id}/reviews", controller.UserReviewsList{
		Getter: p.Reviews,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/events", requireAuthMiddleware(controller.Events{
		Hub: p.Hub,
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Callers authenticate with a bearer token, not cookies.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	})).Methods(http.MethodGet)

	return r, nil
}
