package controller

import (
	"net/http"

	"github.com/jbeshir/movie-userdata/internal/command"
	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/domain"
)

type CollectionsCount struct {
	Counter datasources.CollectionCounter
}

type CollectionsCountResponse struct {
	Data map[domain.CollectionName]int `json:"data"`
}

func (c CollectionsCount) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	counts, err := c.Counter.CountCollections(r.Context(), domain.UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, "unable to count collections")
		return
	}

	writeJSON(w, r, http.StatusOK, CollectionsCountResponse{Data: counts})
}

type CollectionList struct {
	Lister datasources.CollectionLister
}

type CollectionListResponse struct {
	Data []domain.CollectionEntry `json:"data"`
}

func (c CollectionList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, err := collectionFromVars(r)
	if err != nil {
		writeError(w, r, err, "invalid collection")
		return
	}

	entries, err := c.Lister.ListCollection(r.Context(), domain.UserIDFromContext(r.Context()), name)
	if err != nil {
		writeError(w, r, err, "unable to list collection")
		return
	}

	writeJSON(w, r, http.StatusOK, CollectionListResponse{Data: entries})
}

type CollectionMoviePut struct {
	AddCmd command.Command[command.AddToCollectionRequest, command.AddToCollectionResult]
}

type CollectionMoviePutResponse struct {
	Data  domain.MovieRef `json:"data"`
	Added bool            `json:"added"`
}

// ServeHTTP answers 201 when the movie was added and 200 when it was already present.
func (c CollectionMoviePut) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, err := collectionFromVars(r)
	if err != nil {
		writeError(w, r, err, "invalid collection")
		return
	}
	movieID, err := movieIDFromVars(r)
	if err != nil {
		writeError(w, r, err, "invalid movie id")
		return
	}

	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("movie_id", movieID, "collection", name))

	result, err := c.AddCmd.Execute(ctx, command.AddToCollectionRequest{
		UserID:     domain.UserIDFromContext(ctx),
		Collection: name,
		MovieID:    movieID,
	})
	if err != nil {
		writeError(w, r.WithContext(ctx), err, "unable to add movie to collection")
		return
	}

	status := http.StatusOK
	if result.Added {
		status = http.StatusCreated
	}
	writeJSON(w, r, status, CollectionMoviePutResponse{Data: result.Movie, Added: result.Added})
}

type CollectionMovieDelete struct {
	Remover datasources.CollectionRemover
}

// ServeHTTP answers 204 whether or not the movie was present.
func (c CollectionMovieDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, err := collectionFromVars(r)
	if err != nil {
		writeError(w, r, err, "invalid collection")
		return
	}
	movieID, err := movieIDFromVars(r)
	if err != nil {
		writeError(w, r, err, "invalid movie id")
		return
	}

	if _, err := c.Remover.RemoveFromCollection(r.Context(), domain.UserIDFromContext(r.Context()), name, movieID); err != nil {
		writeError(w, r, err, "unable to remove movie from collection")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type MembershipGet struct {
	Getter datasources.MembershipGetter
}

type MembershipGetResponse struct {
	Data domain.Membership `json:"data"`
}

func (c MembershipGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	movieID, err := movieIDFromVars(r)
	if err != nil {
		writeError(w, r, err, "invalid movie id")
		return
	}

	membership, err := c.Getter.GetMembership(r.Context(), domain.UserIDFromContext(r.Context()), movieID)
	if err != nil {
		writeError(w, r, err, "unable to get membership")
		return
	}

	writeJSON(w, r, http.StatusOK, MembershipGetResponse{Data: membership})
}
