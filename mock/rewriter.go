package mock

import (
	"context"
	"io"

	"github.com/asheesh-yadav/leximorph"
)

var (
	_ leximorph.Rewriter     = (*Rewriter)(nil)
	_ leximorph.Exporter     = (*Exporter)(nil)
	_ leximorph.TokenCounter = (*TokenCounter)(nil)
)

// Rewriter is a mock implementation of leximorph.Rewriter.
type Rewriter struct {
	RewriteFn func(ctx context.Context, req leximorph.RewriteRequest) ([]leximorph.Suggestion, error)
}

func (r *Rewriter) Rewrite(ctx context.Context, req leximorph.RewriteRequest) ([]leximorph.Suggestion, error) {
	return r.RewriteFn(ctx, req)
}

// Exporter is a mock implementation of leximorph.Exporter.
type Exporter struct {
	ExportFn func(w io.Writer, article *leximorph.Article, opts leximorph.ExportOptions) error
}

func (e *Exporter) Export(w io.Writer, article *leximorph.Article, opts leximorph.ExportOptions) error {
	return e.ExportFn(w, article, opts)
}

// TokenCounter is a mock implementation of leximorph.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (c *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return c.CountTokensFn(ctx, text)
}
