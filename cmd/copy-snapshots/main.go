// Command copy-snapshots copies every stored user-data document from one snapshot
// backend to another. Both sides are configured like the service's SNAPSHOT_DRIVER,
// with SOURCE_ and DEST_ prefixes (e.g. SOURCE_SNAPSHOT_DRIVER=badger, SOURCE_BADGER_DIR,
// DEST_SNAPSHOT_DRIVER=mysql, DEST_MYSQL_URI). Set COPY_OVERWRITE=true to replace
// documents the destination already holds.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jbeshir/movie-userdata/internal/app"
	"github.com/jbeshir/movie-userdata/internal/command"
	"github.com/jbeshir/movie-userdata/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	// Setup logger
	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	result, err := run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "snapshot copy failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "snapshot copy completed successfully",
		"copied", result.Copied,
		"skipped", result.Skipped,
		"invalid", result.Invalid,
	)
}

func run(ctx context.Context) (command.CopySnapshotsResult, error) {
	source, closeSource, err := app.SetupSnapshotStore(ctx, "SOURCE_")
	if err != nil {
		return command.CopySnapshotsResult{}, fmt.Errorf("opening source snapshot store: %w", err)
	}
	defer func() { _ = closeSource() }()

	dest, closeDest, err := app.SetupSnapshotStore(ctx, "DEST_")
	if err != nil {
		return command.CopySnapshotsResult{}, fmt.Errorf("opening destination snapshot store: %w", err)
	}
	defer func() { _ = closeDest() }()

	copyCmd := command.NewCopySnapshots(source, source, dest, dest)
	return copyCmd.Execute(ctx, command.CopySnapshotsRequest{
		Overwrite: app.GetEnvAsStringOr("COPY_OVERWRITE", "false") == "true",
	})
}
