package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/asheesh-yadav/leximorph"
)

// Ensure LoggingTranslator implements leximorph.ArticleTranslator.
var _ leximorph.ArticleTranslator = (*LoggingTranslator)(nil)

// LoggingTranslator wraps an ArticleTranslator with debug logging.
type LoggingTranslator struct {
	next   leximorph.ArticleTranslator
	logger *slog.Logger
}

// NewLoggingTranslator creates a new LoggingTranslator.
func NewLoggingTranslator(next leximorph.ArticleTranslator, logger *slog.Logger) *LoggingTranslator {
	return &LoggingTranslator{next: next, logger: logger}
}

// TranslateArticle delegates to the wrapped translator and logs the
// detected and requested languages.
func (t *LoggingTranslator) TranslateArticle(ctx context.Context, article *leximorph.Article, targetLang string, keywords []string) (tr *leximorph.Translation, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"target", targetLang,
			"keywords", len(keywords),
			"duration", time.Since(begin),
		}
		if tr != nil {
			attrs = append(attrs, "source", tr.SourceLanguage, "resolved", tr.TargetLanguage)
		}
		attrs = append(attrs, "err", err)
		t.logger.Info("translate", attrs...)
	}(time.Now())
	return t.next.TranslateArticle(ctx, article, targetLang, keywords)
}
