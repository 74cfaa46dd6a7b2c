package controller

import (
	"net/http"

	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/domain"
)

type MoviesList struct {
	Lister datasources.MovieLister
}

type MoviesListResponse struct {
	Data []domain.MovieRef `json:"data"`
}

func (c MoviesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	movies, err := c.Lister.ListMovies(r.Context())
	if err != nil {
		writeError(w, r, err, "unable to list movies")
		return
	}

	writeJSON(w, r, http.StatusOK, MoviesListResponse{Data: movies})
}
