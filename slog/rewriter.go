package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/asheesh-yadav/leximorph"
)

// Ensure LoggingRewriter implements leximorph.Rewriter.
var _ leximorph.Rewriter = (*LoggingRewriter)(nil)

// LoggingRewriter wraps a Rewriter with debug logging. The text itself is
// never logged.
type LoggingRewriter struct {
	next   leximorph.Rewriter
	logger *slog.Logger
}

// NewLoggingRewriter creates a new LoggingRewriter.
func NewLoggingRewriter(next leximorph.Rewriter, logger *slog.Logger) *LoggingRewriter {
	return &LoggingRewriter{next: next, logger: logger}
}

// Rewrite delegates to the wrapped rewriter and logs the request shape.
func (r *LoggingRewriter) Rewrite(ctx context.Context, req leximorph.RewriteRequest) (suggestions []leximorph.Suggestion, err error) {
	defer func(begin time.Time) {
		r.logger.Info("rewrite",
			"mode", req.Mode,
			"language", req.Language,
			"chars", len(req.Text),
			"suggestions", len(suggestions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Rewrite(ctx, req)
}
