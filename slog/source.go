package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/asheesh-yadav/leximorph"
)

// Ensure LoggingURLSource implements leximorph.URLSource.
var _ leximorph.URLSource = (*LoggingURLSource)(nil)

// LoggingURLSource wraps a URLSource with debug logging.
type LoggingURLSource struct {
	next   leximorph.URLSource
	logger *slog.Logger
}

// NewLoggingURLSource creates a new LoggingURLSource.
func NewLoggingURLSource(next leximorph.URLSource, logger *slog.Logger) *LoggingURLSource {
	return &LoggingURLSource{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped source and logs the operation.
func (s *LoggingURLSource) DiscoverURLs(ctx context.Context, source string, filter *leximorph.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("url discovery",
			"source", source,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, source, filter)
}
