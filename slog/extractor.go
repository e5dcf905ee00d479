package slog

import (
	"log/slog"
	"time"

	"github.com/asheesh-yadav/leximorph"
)

// Ensure LoggingExtractor implements leximorph.Extractor.
var _ leximorph.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   leximorph.Extractor
	engine string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. engine names the
// wrapped extractor in log records.
func NewLoggingExtractor(next leximorph.Extractor, engine string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, engine: engine, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what it found.
func (e *LoggingExtractor) Extract(html string) (article *leximorph.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"engine", e.engine,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if article != nil {
			attrs = append(attrs,
				"title", article.Title,
				"elements", len(article.Content),
				"placeholder", article.IsPlaceholder(),
			)
		}
		attrs = append(attrs, "err", err)
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
