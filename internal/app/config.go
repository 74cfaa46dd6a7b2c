package app

import (
	"context"
	"os"
	"time"

	"github.com/jbeshir/movie-userdata/internal/transport/web/router"
)

// DefaultWriteRateLimitConfig returns the default per-caller limit on review and vote writes.
func DefaultWriteRateLimitConfig() router.RateLimitConfig {
	return router.RateLimitConfig{
		Every: 2 * time.Second,
		Burst: 10,
	}
}

func writeRateLimitConfig(ctx context.Context) router.RateLimitConfig {
	cfg := DefaultWriteRateLimitConfig()
	if _, ok := os.LookupEnv("WRITE_RATE_LIMIT_EVERY"); ok {
		cfg.Every = MustGetEnvAsDuration(ctx, "WRITE_RATE_LIMIT_EVERY")
	}
	if _, ok := os.LookupEnv("WRITE_RATE_LIMIT_BURST"); ok {
		cfg.Burst = MustGetEnvAsInt(ctx, "WRITE_RATE_LIMIT_BURST")
	}
	return cfg
}
