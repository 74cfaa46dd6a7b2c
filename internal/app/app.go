package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jbeshir/movie-userdata/internal/command"
	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/datasources/badger"
	"github.com/jbeshir/movie-userdata/internal/datasources/gormdb"
	"github.com/jbeshir/movie-userdata/internal/datasources/mysql"
	"github.com/jbeshir/movie-userdata/internal/datasources/static"
	"github.com/jbeshir/movie-userdata/internal/domain"
	"github.com/jbeshir/movie-userdata/internal/transport/web/events"
	"github.com/jbeshir/movie-userdata/internal/transport/web/router"
	"github.com/jbeshir/movie-userdata/internal/transport/web/server"
	"github.com/jbeshir/movie-userdata/internal/userdata"
)

type Component interface {
	Run(ctx context.Context) error
}

// Setup builds the service components. The returned cleanup releases storage
// and must run after every component has stopped.
func Setup(ctx context.Context) ([]Component, func(), error) {
	snapshots, closeSnapshots, err := SetupSnapshotStore(ctx, "")
	if err != nil {
		return nil, nil, fmt.Errorf("setting up snapshot store: %w", err)
	}
	cleanup := func() {
		if err := closeSnapshots(); err != nil {
			logger := domain.LoggerFromContext(ctx)
			logger.ErrorContext(ctx, "unable to close snapshot store", "error", err)
		}
	}

	catalog, err := static.LoadCatalogFile(MustGetEnvAsString(ctx, "CATALOG_FILE"))
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("loading movie catalog: %w", err)
	}

	directory, err := setupDirectory()
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("loading user directory: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	broker := userdata.NewBroker()
	reviews := userdata.NewReviewStore(ctx, directory, directory, snapshots, broker)
	directory.SyncAuthorStats(ctx, reviews.AuthorStats(ctx))
	collections := userdata.NewCollectionRegistry(snapshots, broker)

	hub := events.NewHub()
	broker.Subscribe(hub.Publish)

	httpRouter, err := router.MakeRouter(router.Params{
		Catalog:            catalog,
		Users:              directory,
		Collections:        collections,
		Reviews:            reviews,
		AddToCollectionCmd: command.NewAddToCollection(catalog, collections),
		SubmitReviewCmd:    command.NewSubmitReview(catalog, reviews),
		Hub:                hub,
		RSSFeedBaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		RSSFeedAuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		RSSFeedAuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		RSSCacheMaxAge:     MustGetEnvAsDuration(ctx, "RSS_FEED_CACHE_MAX_AGE"),
		WriteRateLimit:     writeRateLimitConfig(ctx),
		AuthMiddleware:     authMiddleware,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	var autocertHostnames []string
	tlsDisabled := MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED")
	if !tlsDisabled {
		autocertHostnames = MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES")
	}

	return []Component{
		&server.Server{
			TLSDisabled:       tlsDisabled,
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: autocertHostnames,
			Router:            httpRouter,
		},
		hub,
	}, cleanup, nil
}

// SetupSnapshotStore opens the backend selected by <envPrefix>SNAPSHOT_DRIVER. Every other
// variable it reads carries the same prefix. The returned function closes the backend.
func SetupSnapshotStore(ctx context.Context, envPrefix string) (datasources.SnapshotRepository, func() error, error) {
	switch driver := MustGetEnvAsString(ctx, envPrefix+"SNAPSHOT_DRIVER"); driver {
	case "memory":
		return datasources.NewMemorySnapshotStore(), func() error { return nil }, nil
	case "badger":
		store, err := badger.Open(MustGetEnvAsString(ctx, envPrefix+"BADGER_DIR"))
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, envPrefix+"MYSQL_URI"))
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		repo := mysql.New(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, nil, errors.Join(err, db.Close())
		}
		return repo, db.Close, nil
	case "gorm":
		db, err := gormdb.Open(MustGetEnvAsString(ctx, envPrefix+"GORM_DATABASE_URL"))
		if err != nil {
			return nil, nil, err
		}
		repo := gormdb.New(db)
		if err := repo.Migrate(ctx); err != nil {
			return nil, nil, errors.Join(err, repo.Close())
		}
		return repo, repo.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown snapshot driver [%s]", driver)
	}
}

func setupDirectory() (*static.Directory, error) {
	path := GetEnvAsStringOr("USERS_FILE", "")
	if path == "" {
		return static.NewDirectory(nil)
	}
	return static.LoadDirectoryFile(path)
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "header":
			validators = append(validators, router.NewHeaderValidator(GetEnvAsStringOr("AUTH_HEADER_NAME", "X-User-ID")))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
