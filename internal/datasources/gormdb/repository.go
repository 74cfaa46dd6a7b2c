package gormdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/movie-userdata/internal/datasources"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type snapshotRow struct {
	Key       string    `gorm:"column:snapshot_key;primaryKey;size:255"`
	Document  []byte    `gorm:"column:document;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (snapshotRow) TableName() string {
	return "user_data_snapshots"
}

var _ datasources.SnapshotRepository = (*Repository)(nil)

// Repository stores user-data snapshot documents through GORM.
type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the snapshot table.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&snapshotRow{}); err != nil {
		return fmt.Errorf("migrating snapshots table: %w", err)
	}
	return nil
}

func (r *Repository) LoadSnapshot(ctx context.Context, key string) ([]byte, error) {
	var row snapshotRow
	err := r.db.WithContext(ctx).Where("snapshot_key = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot [%s]: %w", key, err)
	}
	return row.Document, nil
}

func (r *Repository) SaveSnapshot(ctx context.Context, key string, doc []byte) error {
	row := snapshotRow{Key: key, Document: doc}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "snapshot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("saving snapshot [%s]: %w", key, err)
	}
	return nil
}

func (r *Repository) ListSnapshotKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Model(&snapshotRow{}).Order("snapshot_key").Pluck("snapshot_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("listing snapshot keys: %w", err)
	}
	return keys, nil
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("getting database handle: %w", err)
	}
	return sqlDB.Close()
}
