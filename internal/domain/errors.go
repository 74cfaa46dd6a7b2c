package domain

import (
	"errors"
	"fmt"
)

// Rejection kinds returned by the user-data stores. Callers match them with errors.Is;
// the wrapped message carries the detail.
var (
	ErrValidation      = errors.New("validation failed")
	ErrDuplicate       = errors.New("already exists")
	ErrOwnership       = errors.New("not the owner")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("no current user")
)

// ErrAlreadyVoted is returned, wrapped in ErrDuplicate, for a second vote by the same voter.
var ErrAlreadyVoted = fmt.Errorf("%w: vote already cast for this review", ErrDuplicate)

func ValidationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// DuplicateReviewError rejects a second review by the same author for the same movie.
// ExistingReviewID lets the caller redirect to editing the existing review.
type DuplicateReviewError struct {
	UserID           string
	MovieID          MovieID
	ExistingReviewID string
}

func (e *DuplicateReviewError) Error() string {
	return fmt.Sprintf("user [%s] has already reviewed movie [%d]: %s", e.UserID, e.MovieID, ErrDuplicate)
}

func (e *DuplicateReviewError) Unwrap() error {
	return ErrDuplicate
}
