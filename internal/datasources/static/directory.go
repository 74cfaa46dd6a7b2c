package static

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/domain"
	"gopkg.in/yaml.v3"
)

var _ datasources.Identity = (*Directory)(nil)

// Directory is an in-memory user directory seeded from a YAML document.
// Authenticated users it has never seen are registered on first sight.
type Directory struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	now   func() time.Time
}

type directoryDocument struct {
	Users []domain.User `yaml:"users"`
}

func NewDirectory(users []domain.User) (*Directory, error) {
	d := &Directory{
		users: make(map[string]*domain.User, len(users)),
		now:   time.Now,
	}
	for i := range users {
		u := users[i]
		if u.ID == "" {
			return nil, fmt.Errorf("user [%s] has no id", u.Name)
		}
		if _, dup := d.users[u.ID]; dup {
			return nil, fmt.Errorf("user id [%s] listed twice", u.ID)
		}
		d.users[u.ID] = &u
	}
	return d, nil
}

func LoadDirectory(r io.Reader) (*Directory, error) {
	var doc directoryDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding user directory: %w", err)
	}
	return NewDirectory(doc.Users)
}

func LoadDirectoryFile(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening user directory file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadDirectory(f)
}

// CurrentUser returns the user whose id the auth middleware placed in ctx.
func (d *Directory) CurrentUser(ctx context.Context) (domain.User, bool) {
	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		return domain.User{}, false
	}

	d.mu.RLock()
	u, ok := d.users[userID]
	d.mu.RUnlock()
	if ok {
		return *u, true
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if u, ok := d.users[userID]; ok {
		return *u, true
	}
	u = &domain.User{ID: userID, Name: userID, JoinedDate: d.now().UTC()}
	d.users[userID] = u

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "registered new user", "user_id", userID)
	return *u, true
}

func (d *Directory) GetUser(_ context.Context, userID string) (domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[userID]
	if !ok {
		return domain.User{}, domain.NotFoundErrorf("user [%s]", userID)
	}
	return *u, nil
}

func (d *Directory) AdjustTotalReviews(_ context.Context, userID string, delta int) error {
	return d.adjust(userID, func(u *domain.User) { u.TotalReviews = max(u.TotalReviews+delta, 0) })
}

func (d *Directory) AdjustHelpfulVotes(_ context.Context, userID string, delta int) error {
	return d.adjust(userID, func(u *domain.User) { u.HelpfulVotes = max(u.HelpfulVotes+delta, 0) })
}

// SyncAuthorStats sets every user's counters to the figures in stats, which the review
// history is the source of. Authors the directory has not seen are registered.
func (d *Directory) SyncAuthorStats(ctx context.Context, stats map[string]domain.AuthorStats) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for id, u := range d.users {
		u.TotalReviews = stats[id].TotalReviews
		u.HelpfulVotes = stats[id].HelpfulVotes
	}

	registered := 0
	for id, author := range stats {
		if _, ok := d.users[id]; ok {
			continue
		}
		name := author.Name
		if name == "" {
			name = id
		}
		d.users[id] = &domain.User{
			ID:           id,
			Name:         name,
			Avatar:       author.Avatar,
			JoinedDate:   author.FirstReviewAt.UTC(),
			TotalReviews: author.TotalReviews,
			HelpfulVotes: author.HelpfulVotes,
		}
		registered++
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "synced user stats from reviews", "authors", len(stats), "registered", registered)
}

func (d *Directory) adjust(userID string, fn func(u *domain.User)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.users[userID]
	if !ok {
		return domain.NotFoundErrorf("user [%s]", userID)
	}
	fn(u)
	return nil
}
