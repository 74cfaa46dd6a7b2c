package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/movie-userdata/internal/datasources"
)

const snapshotsTable = "user_data_snapshots"

var _ datasources.SnapshotRepository = (*Repository)(nil)

// Repository stores user-data snapshot documents in MySQL, one row per key.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// EnsureSchema creates the snapshot table if it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	ctb := sqlbuilder.CreateTable(snapshotsTable).IfNotExists()
	ctb.Define("snapshot_key", "VARCHAR(255)", "NOT NULL", "PRIMARY KEY")
	ctb.Define("document", "LONGBLOB", "NOT NULL")
	ctb.Define("updated_at", "DATETIME(6)", "NOT NULL")
	ctb.Option("DEFAULT CHARACTER SET", "utf8mb4")

	query, args := ctb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("creating snapshots table: %w", err)
	}
	return nil
}

func (r *Repository) LoadSnapshot(ctx context.Context, key string) ([]byte, error) {
	sb := sqlbuilder.Select("document")
	sb.From(snapshotsTable)
	sb.Where(sb.Equal("snapshot_key", key))

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading snapshot [%s]: %w", key, err)
	}
	return doc, nil
}

func (r *Repository) SaveSnapshot(ctx context.Context, key string, doc []byte) error {
	ib := sqlbuilder.InsertInto(snapshotsTable)
	ib.Cols("snapshot_key", "document", "updated_at")
	ib.Values(key, doc, r.now().UTC())
	ib.SQL("ON DUPLICATE KEY UPDATE document = VALUES(document), updated_at = VALUES(updated_at)")

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("saving snapshot [%s]: %w", key, err)
	}
	return nil
}

func (r *Repository) ListSnapshotKeys(ctx context.Context) ([]string, error) {
	sb := sqlbuilder.Select("snapshot_key")
	sb.From(snapshotsTable)
	sb.OrderBy("snapshot_key").Asc()

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing snapshot keys: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scanning snapshot key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing snapshot keys: %w", err)
	}
	return keys, nil
}
