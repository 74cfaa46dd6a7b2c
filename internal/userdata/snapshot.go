package userdata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/domain"
)

// loadDocument reads and strictly decodes the document stored under key, then checks it
// with validate. Any failure yields the zero document: a store always starts, falling back
// to empty state when its snapshot is missing or unusable.
func loadDocument[T any](
	ctx context.Context,
	loader datasources.SnapshotLoader,
	key string,
	validate func(T) error,
) T {
	var empty T
	logger := domain.LoggerFromContext(ctx).With("snapshot_key", key)

	raw, err := loader.LoadSnapshot(ctx, key)
	if err != nil {
		logger.WarnContext(ctx, "unable to load snapshot, starting empty", "error", err)
		return empty
	}
	if raw == nil {
		logger.DebugContext(ctx, "no snapshot stored, starting empty")
		return empty
	}

	var doc T
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		logger.WarnContext(ctx, "unreadable snapshot, starting empty", "error", err)
		return empty
	}
	if err := validate(doc); err != nil {
		logger.WarnContext(ctx, "snapshot failed validation, starting empty", "error", err)
		return empty
	}

	return doc
}

// saveDocument writes doc under key. Failures are logged and do not undo the in-memory change.
func saveDocument(ctx context.Context, saver datasources.SnapshotSaver, key string, doc any) {
	raw, err := json.Marshal(doc)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to encode snapshot", "snapshot_key", key, "error", err)
		return
	}

	if err := saver.SaveSnapshot(ctx, key, raw); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "unable to persist snapshot", "snapshot_key", key, "error", err)
	}
}

func encodeDocument(doc any) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return raw, nil
}

// currentTime returns the current time without a monotonic reading, so values survive
// a JSON round trip unchanged.
func currentTime() time.Time {
	return time.Now().UTC().Round(0)
}
