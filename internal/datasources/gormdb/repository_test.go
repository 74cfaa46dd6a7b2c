package gormdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) *Repository {
	db, err := Open("sqlite://" + filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)

	repo := New(db)
	t.Cleanup(func() { _ = repo.Close() })
	require.NoError(t, repo.Migrate(context.Background()))

	return repo
}

func TestRepository_Snapshots(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()
	key := datasources.CollectionsSnapshotKey("alice")

	doc, err := repo.LoadSnapshot(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, doc)

	require.NoError(t, repo.SaveSnapshot(ctx, key, []byte(`{"favorites":[]}`)))
	require.NoError(t, repo.SaveSnapshot(ctx, key, []byte(`{"favorites":null}`)))
	require.NoError(t, repo.SaveSnapshot(ctx, datasources.ReviewsSnapshotKey, []byte(`{"reviews":[]}`)))

	doc, err = repo.LoadSnapshot(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"favorites":null}`, string(doc))

	doc, err = repo.LoadSnapshot(ctx, datasources.ReviewsSnapshotKey)
	require.NoError(t, err)
	assert.Equal(t, `{"reviews":[]}`, string(doc))
}

func TestOpen_RejectsUnknownScheme(t *testing.T) {
	_, err := Open("mysql://localhost/userdata")
	assert.ErrorContains(t, err, "unsupported database url")
}

func TestRepository_ListSnapshotKeys(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSnapshot(ctx, datasources.ReviewsSnapshotKey, []byte(`{}`)))
	require.NoError(t, repo.SaveSnapshot(ctx, datasources.CollectionsSnapshotKey("bob"), []byte(`{}`)))
	require.NoError(t, repo.SaveSnapshot(ctx, datasources.CollectionsSnapshotKey("alice"), []byte(`{}`)))

	keys, err := repo.ListSnapshotKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"collections:alice", "collections:bob", "reviews"}, keys)
}
