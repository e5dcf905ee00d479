// Package crawl runs the batch pipeline: it fetches a list of article URLs,
// extracts each page, optionally translates it, and stores the results.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/asheesh-yadav/leximorph"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of URLs processed at once.
const DefaultConcurrency = 4

// Crawler processes batches of article URLs.
type Crawler struct {
	Fetcher   leximorph.Fetcher
	Extractor leximorph.Extractor
	Documents leximorph.DocumentWriter

	// Browser, if set, re-fetches pages whose static HTML yields no content.
	Browser leximorph.Fetcher

	// Translator is required when Options.TargetLanguage is set.
	Translator leximorph.ArticleTranslator

	// Seen, if set, skips URLs already processed by this or an earlier run.
	Seen leximorph.URLSet

	// RateLimiter, if set, paces requests per host.
	RateLimiter leximorph.DomainLimiter

	Concurrency int
	RetryDelays []time.Duration

	// Logger receives retries and failures. Nil discards them.
	Logger *slog.Logger
}

// Options controls one batch run.
type Options struct {
	// TargetLanguage translates every article when set.
	TargetLanguage string

	// Keywords are translated along with each article.
	Keywords []string
}

// Item is the outcome for one input URL.
type Item struct {
	URL      string
	Document *leximorph.Document // nil unless saved
	Skipped  bool
	Err      error
}

// Result holds the outcome of a batch run. Items are in input order.
type Result struct {
	Items   []Item
	Saved   int
	Failed  int
	Skipped int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run processes urls and stores one Document per successful URL. Failures
// of individual URLs are recorded in the result; only context cancellation
// aborts the run.
func (c *Crawler) Run(ctx context.Context, urls []string, opts Options, progress ProgressFunc) (*Result, error) {
	if opts.TargetLanguage != "" && c.Translator == nil {
		return nil, leximorph.Errorf(leximorph.EINVALID, "translation requested but no translator configured")
	}

	result := &Result{Items: make([]Item, len(urls))}
	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	type outcome struct {
		position int
		article  *leximorph.Article
		language string
		err      error
	}
	outcomes := make(chan outcome, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency())

	for i, u := range urls {
		result.Items[i].URL = u
		result.Items[i].Skipped = c.Seen != nil && !c.Seen.Add(u)
	}

	go func() {
		for i, u := range urls {
			if result.Items[i].Skipped {
				continue
			}
			g.Go(func() error {
				article, lang, err := c.process(gctx, u, opts)
				outcomes <- outcome{position: i, article: article, language: lang, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(outcomes)
	}()

	articles := make([]*leximorph.Article, len(urls))
	languages := make([]string, len(urls))
	var completed atomic.Int64
	for o := range outcomes {
		n := int(completed.Add(1))
		item := &result.Items[o.position]
		if o.err != nil {
			item.Err = o.err
			c.logger().Warn("batch item failed", "url", item.URL, "error", o.err)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: n, Total: total, URL: item.URL, Error: o.err})
			}
			continue
		}
		articles[o.position] = o.article
		languages[o.position] = o.language
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, URL: item.URL})
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Store in input order so history lists match the batch.
	for i := range result.Items {
		item := &result.Items[i]
		switch {
		case item.Skipped:
			result.Skipped++
			continue
		case item.Err != nil:
			result.Failed++
			continue
		}
		doc := &leximorph.Document{
			SourceURL: item.URL,
			Language:  languages[i],
			Article:   articles[i],
		}
		if err := c.Documents.CreateDocument(ctx, doc); err != nil {
			item.Err = err
			result.Failed++
			continue
		}
		item.Document = doc
		result.Saved++
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return result, nil
}

// process fetches, extracts and optionally translates a single URL. It
// returns the article and the language it is in ("" when untranslated).
func (c *Crawler) process(ctx context.Context, rawURL string, opts Options) (*leximorph.Article, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, "", leximorph.Errorf(leximorph.EINVALID, "invalid URL %q", rawURL)
	}

	article, err := c.extract(ctx, c.Fetcher, u)
	if err != nil {
		return nil, "", err
	}
	if c.Browser != nil && NeedsBrowser(article) {
		c.logger().Debug("re-fetching with browser", "url", rawURL)
		if rendered, err := c.extract(ctx, c.Browser, u); err == nil && ContentDiffers(article, rendered) {
			article = rendered
		} else if err != nil {
			c.logger().Warn("browser fetch failed", "url", rawURL, "error", err)
		}
	}

	if opts.TargetLanguage == "" {
		return article, "", nil
	}
	t, err := c.Translator.TranslateArticle(ctx, article, opts.TargetLanguage, opts.Keywords)
	if err != nil {
		return nil, "", err
	}
	return t.Article, t.TargetLanguage, nil
}

func (c *Crawler) extract(ctx context.Context, f leximorph.Fetcher, u *url.URL) (*leximorph.Article, error) {
	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}
	html, err := FetchWithRetryDelays(ctx, u.String(), f.Fetch, c.logger(), c.retryDelays())
	if err != nil {
		return nil, err
	}
	return c.Extractor.Extract(html)
}

func (c *Crawler) concurrency() int {
	if c.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return c.Concurrency
}

func (c *Crawler) retryDelays() []time.Duration {
	if c.RetryDelays == nil {
		return DefaultRetryDelays()
	}
	return c.RetryDelays
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
