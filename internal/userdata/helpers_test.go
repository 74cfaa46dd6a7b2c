package userdata

import (
	"context"
	"log/slog"
	"time"

	"github.com/jbeshir/movie-userdata/internal/domain"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func testContextWithUserID(userID string) context.Context {
	return domain.ContextWithUserID(testContext(), userID)
}

// testIdentity resolves the current user from the user id in the context.
type testIdentity map[string]domain.User

func (i testIdentity) CurrentUser(ctx context.Context) (domain.User, bool) {
	user, ok := i[domain.UserIDFromContext(ctx)]
	return user, ok
}

var testUsers = testIdentity{
	"alice": {ID: "alice", Name: "Alice", Avatar: "https://example.com/alice.png"},
	"bob":   {ID: "bob", Name: "Bob", Avatar: "https://example.com/bob.png"},
	"carol": {ID: "carol", Name: "Carol"},
}

// stepClock returns a clock that advances one second on every reading.
func stepClock() func() time.Time {
	t := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func testMovie(id domain.MovieID, title string) domain.MovieRef {
	return domain.MovieRef{
		ID:          id,
		Title:       title,
		PosterImage: "https://example.com/posters/" + title + ".jpg",
		Rating:      7.9,
		ReleaseDate: "2010-07-16",
		Genres:      []string{"Science Fiction", "Thriller"},
	}
}
