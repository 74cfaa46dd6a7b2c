package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/domain"
)

// UserGet serves a user's profile with their review and helpful vote counts.
// The id "me" resolves to the authenticated caller.
type UserGet struct {
	CurrentUser datasources.CurrentUserGetter
	Users       datasources.UserGetter
}

type UserGetResponse struct {
	Data domain.User `json:"data"`
}

func (c UserGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	if userID == "me" {
		user, ok := c.CurrentUser.CurrentUser(r.Context())
		if !ok {
			writeError(w, r, domain.ErrUnauthenticated, "no current user")
			return
		}
		writeJSON(w, r, http.StatusOK, UserGetResponse{Data: user})
		return
	}

	user, err := c.Users.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "unable to get user")
		return
	}

	writeJSON(w, r, http.StatusOK, UserGetResponse{Data: user})
}
