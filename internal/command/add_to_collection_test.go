package command

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jbeshir/movie-userdata/internal/datasources/mocks"
	"github.com/jbeshir/movie-userdata/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestAddToCollection_Execute(t *testing.T) {
	inception := domain.MovieRef{ID: 27205, Title: "Inception", Genres: []string{"Action"}}

	cases := []struct {
		name        string
		movie       domain.MovieRef
		fetchErr    error
		added       bool
		addErr      error
		wantAddCall bool
		wantErr     bool
		wantErrIs   error
		wantResult  AddToCollectionResult
	}{
		{
			name:        "adds_movie",
			movie:       inception,
			added:       true,
			wantAddCall: true,
			wantResult:  AddToCollectionResult{Movie: inception, Added: true},
		},
		{
			name:        "already_present",
			movie:       inception,
			added:       false,
			wantAddCall: true,
			wantResult:  AddToCollectionResult{Movie: inception, Added: false},
		},
		{
			name:      "unknown_movie",
			fetchErr:  domain.NotFoundErrorf("movie [27205]"),
			wantErr:   true,
			wantErrIs: domain.ErrNotFound,
		},
		{
			name:        "unknown_collection",
			movie:       inception,
			addErr:      domain.ValidationErrorf("unknown collection [seen]"),
			wantAddCall: true,
			wantErr:     true,
			wantErrIs:   domain.ErrValidation,
		},
		{
			name:        "store_error",
			movie:       inception,
			addErr:      errors.New("boom"),
			wantAddCall: true,
			wantErr:     true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			movieGetter := mocks.NewMockMovieGetter(t)
			collectionAdder := mocks.NewMockCollectionAdder(t)

			movieGetter.EXPECT().
				GetMovieByID(mock.Anything, domain.MovieID(27205)).
				Return(tc.movie, tc.fetchErr)

			if tc.wantAddCall {
				collectionAdder.EXPECT().
					AddToCollection(mock.Anything, "user1", domain.CollectionWatchlist, tc.movie).
					Return(tc.added, tc.addErr)
			}

			cmd := NewAddToCollection(movieGetter, collectionAdder)
			result, err := cmd.Execute(testContext(), AddToCollectionRequest{
				UserID:     "user1",
				Collection: domain.CollectionWatchlist,
				MovieID:    27205,
			})

			if tc.wantErr {
				require.Error(t, err)
				if tc.wantErrIs != nil {
					assert.ErrorIs(t, err, tc.wantErrIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, result)
		})
	}
}
