package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jbeshir/movie-userdata/internal/domain"
)

type ErrorResponse struct {
	Message          string `json:"message"`
	ExistingReviewID string `json:"existing_review_id,omitempty"`
}

// statusForError maps a store rejection kind to its HTTP status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrOwnership):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes the matching status. Rejections carry their message
// in the body; unexpected failures do not.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	status := statusForError(err)

	if status == http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, "error", err)
		w.WriteHeader(status)
		return
	}
	logger.InfoContext(ctx, msg, "error", err, "status", status)

	resp := ErrorResponse{Message: err.Error()}
	var dup *domain.DuplicateReviewError
	if errors.As(err, &dup) {
		resp.ExistingReviewID = dup.ExistingReviewID
	}
	writeJSON(w, r, status, resp)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

func movieIDFromVars(r *http.Request) (domain.MovieID, error) {
	s := mux.Vars(r)["movie_id"]
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationErrorf("invalid movie id [%s]", s)
	}
	return domain.MovieID(id), nil
}

func collectionFromVars(r *http.Request) (domain.CollectionName, error) {
	return domain.ParseCollectionName(mux.Vars(r)["collection"])
}
