package router

import (
	"net/http"

	"github.com/jbeshir/movie-userdata/internal/domain"
)

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := domain.UserIDFromContext(r.Context())
		if userID == "" {
			logger := domain.LoggerFromContext(r.Context())
			logger.InfoContext(r.Context(), "attempt to use endpoint requiring auth without user ID",
				"path", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"authentication required"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}
