package static

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/domain"
	"gopkg.in/yaml.v3"
)

var _ datasources.Catalog = (*Catalog)(nil)

// Catalog is a read-only movie catalog loaded once from a YAML document.
type Catalog struct {
	movies map[domain.MovieID]domain.MovieRef
	order  []domain.MovieID
}

type catalogDocument struct {
	Movies []domain.MovieRef `yaml:"movies"`
}

func NewCatalog(movies []domain.MovieRef) (*Catalog, error) {
	c := &Catalog{movies: make(map[domain.MovieID]domain.MovieRef, len(movies))}
	for _, m := range movies {
		if m.ID <= 0 {
			return nil, fmt.Errorf("movie [%s] has invalid id [%d]", m.Title, m.ID)
		}
		if _, dup := c.movies[m.ID]; dup {
			return nil, fmt.Errorf("movie id [%d] listed twice", m.ID)
		}
		c.movies[m.ID] = m
		c.order = append(c.order, m.ID)
	}
	return c, nil
}

func LoadCatalog(r io.Reader) (*Catalog, error) {
	var doc catalogDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return NewCatalog(doc.Movies)
}

func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadCatalog(f)
}

func (c *Catalog) GetMovieByID(_ context.Context, id domain.MovieID) (domain.MovieRef, error) {
	m, ok := c.movies[id]
	if !ok {
		return domain.MovieRef{}, domain.NotFoundErrorf("movie [%d]", id)
	}
	return cloneMovie(m), nil
}

// ListMovies returns every movie in document order.
func (c *Catalog) ListMovies(_ context.Context) ([]domain.MovieRef, error) {
	movies := make([]domain.MovieRef, 0, len(c.order))
	for _, id := range c.order {
		movies = append(movies, cloneMovie(c.movies[id]))
	}
	return movies, nil
}

func cloneMovie(m domain.MovieRef) domain.MovieRef {
	if m.Genres != nil {
		m.Genres = append([]string(nil), m.Genres...)
	}
	return m
}
