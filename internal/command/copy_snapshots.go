package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jbeshir/movie-userdata/internal/datasources"
	"github.com/jbeshir/movie-userdata/internal/domain"
)

// CopySnapshotsRequest is the request for the CopySnapshots command.
type CopySnapshotsRequest struct {
	// Overwrite replaces documents the destination already holds.
	Overwrite bool
}

// CopySnapshotsResult counts what happened to each source document.
type CopySnapshotsResult struct {
	Copied  int
	Skipped int
	Invalid int
}

// CopySnapshots moves every user-data document from one snapshot backend to another,
// for example when switching SNAPSHOT_DRIVER.
type CopySnapshots struct {
	SourceKeyLister datasources.SnapshotKeyLister
	SourceLoader    datasources.SnapshotLoader
	DestLoader      datasources.SnapshotLoader
	DestSaver       datasources.SnapshotSaver
}

var _ Command[CopySnapshotsRequest, CopySnapshotsResult] = (*CopySnapshots)(nil)

// NewCopySnapshots creates a properly initialized CopySnapshots command.
func NewCopySnapshots(
	sourceKeyLister datasources.SnapshotKeyLister,
	sourceLoader datasources.SnapshotLoader,
	destLoader datasources.SnapshotLoader,
	destSaver datasources.SnapshotSaver,
) *CopySnapshots {
	return &CopySnapshots{
		SourceKeyLister: sourceKeyLister,
		SourceLoader:    sourceLoader,
		DestLoader:      destLoader,
		DestSaver:       destSaver,
	}
}

func (c *CopySnapshots) Execute(ctx context.Context, req CopySnapshotsRequest) (CopySnapshotsResult, error) {
	logger := domain.LoggerFromContext(ctx)

	keys, err := c.SourceKeyLister.ListSnapshotKeys(ctx)
	if err != nil {
		return CopySnapshotsResult{}, fmt.Errorf("listing source snapshots: %w", err)
	}

	var result CopySnapshotsResult
	for _, key := range keys {
		doc, err := c.SourceLoader.LoadSnapshot(ctx, key)
		if err != nil {
			return result, fmt.Errorf("loading source snapshot [%s]: %w", key, err)
		}
		if doc == nil {
			result.Skipped++
			continue
		}

		// Undecodable documents would load as empty state anyway.
		if !json.Valid(doc) {
			logger.WarnContext(ctx, "skipping snapshot that is not valid JSON", "key", key)
			result.Invalid++
			continue
		}

		if !req.Overwrite {
			existing, err := c.DestLoader.LoadSnapshot(ctx, key)
			if err != nil {
				return result, fmt.Errorf("checking destination snapshot [%s]: %w", key, err)
			}
			if existing != nil {
				logger.InfoContext(ctx, "destination already holds snapshot, skipping", "key", key)
				result.Skipped++
				continue
			}
		}

		if err := c.DestSaver.SaveSnapshot(ctx, key, doc); err != nil {
			return result, fmt.Errorf("saving destination snapshot [%s]: %w", key, err)
		}
		logger.DebugContext(ctx, "copied snapshot", "key", key, "bytes", len(doc))
		result.Copied++
	}

	return result, nil
}
