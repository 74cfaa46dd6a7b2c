package domain

import "time"

// MovieID identifies a title in the catalog.
type MovieID int64

// MovieRef is the catalog data copied into user data at the time it is stored,
// so lists keep rendering if the catalog later changes.
type MovieRef struct {
	ID          MovieID  `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	PosterImage string   `json:"poster_image" yaml:"poster_image"`
	Rating      float64  `json:"rating" yaml:"rating"`
	ReleaseDate string   `json:"release_date" yaml:"release_date"`
	Genres      []string `json:"genres" yaml:"genres"`
}

// CollectionName is one of the three per-user movie sets.
type CollectionName string

const (
	CollectionFavorites CollectionName = "favorites"
	CollectionWatchlist CollectionName = "watchlist"
	CollectionWishlist  CollectionName = "wishlist"
)

var ValidCollectionNames = []CollectionName{
	CollectionFavorites,
	CollectionWatchlist,
	CollectionWishlist,
}

// ParseCollectionName validates a collection name taken from user input.
func ParseCollectionName(s string) (CollectionName, error) {
	for _, name := range ValidCollectionNames {
		if string(name) == s {
			return name, nil
		}
	}
	return "", ValidationErrorf("unknown collection [%s]", s)
}

// CollectionEntry is a movie's membership record in one collection.
type CollectionEntry struct {
	MovieID  MovieID   `json:"movie_id"`
	Snapshot MovieRef  `json:"snapshot"`
	AddedAt  time.Time `json:"added_at"`
}

// Membership reports which collections a movie belongs to.
type Membership struct {
	Favorites bool `json:"favorites"`
	Watchlist bool `json:"watchlist"`
	Wishlist  bool `json:"wishlist"`
}
