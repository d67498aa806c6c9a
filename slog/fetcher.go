// Package slog provides logging decorators for the blotter interfaces.
package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/blotter"
)

// Ensure LoggingFetcher implements blotter.Fetcher.
var _ blotter.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. The digest of each body is
// logged so successive runs show whether the published document changed.
type LoggingFetcher struct {
	next   blotter.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next blotter.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (body []byte, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(body),
			"digest", Digest(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Digest returns the xxHash of b as 16 hex digits, or "" for no content.
func Digest(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}
