package main

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/asheesh-yadav/leximorph"
	"github.com/asheesh-yadav/leximorph/crawl"
	"github.com/asheesh-yadav/leximorph/fs"
)

// Keys of Dependencies.Sources.
const (
	sourceFeed    = "feed"
	sourceSitemap = "sitemap"
	sourcePage    = "page"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	// Compile filters to URLFilter (validates regex patterns early)
	var urlFilter *leximorph.URLFilter
	if len(c.Filter) > 0 || len(c.Exclude) > 0 {
		urlFilter = &leximorph.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
		for _, pattern := range c.Exclude {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid exclude pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Exclude = append(urlFilter.Exclude, re)
		}
	}

	urls, err := c.discover(deps, urlFilter)
	if err != nil {
		return printError(deps, err)
	}
	if c.Limit > 0 && len(urls) > c.Limit {
		urls = urls[:c.Limit]
	}

	// Preview mode: show URLs without processing them
	if c.Preview {
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs found.")
		return nil
	}

	crawler := deps.Crawler
	if c.Concurrency > 0 {
		crawler.Concurrency = c.Concurrency
	}
	crawler.Documents = deps.Documents

	var store *fs.FileStore
	if c.Output != "" {
		store, err = c.fileStore(deps)
		if err != nil {
			return printError(deps, err)
		}
		crawler.Documents = teeWriter{deps.Documents, store}
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", crawl.TruncateURL(event.URL, 80), leximorph.ErrorMessage(event.Error))
		case crawl.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := crawler.Run(deps.Ctx, urls, crawl.Options{TargetLanguage: c.To, Keywords: c.Keywords}, progress)
	if err != nil {
		if store != nil {
			_ = store.Abort()
		}
		fmt.Fprintf(deps.Stderr, "error: batch aborted: %v\n", err)
		return err
	}

	if store != nil {
		if err := store.Commit(); err != nil {
			return printError(deps, err)
		}
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d, failed %d, skipped %d\n", result.Saved, result.Failed, result.Skipped)
	if store != nil && result.Saved > 0 {
		fmt.Fprintf(deps.Stdout, "  Files in %s\n", store.Dir())
	}

	if result.Saved == 0 && result.Failed > 0 {
		return leximorph.Errorf(leximorph.EUNAVAILABLE, "all %d URLs failed", result.Failed)
	}
	return nil
}

// discover returns the URLs to process from exactly one of the positional
// URLs, --feed, --sitemap or --page.
func (c *BatchCmd) discover(deps *Dependencies, filter *leximorph.URLFilter) ([]string, error) {
	var key, source string
	n := 0
	for k, v := range map[string]string{sourceFeed: c.Feed, sourceSitemap: c.Sitemap, sourcePage: c.Page} {
		if v != "" {
			key, source = k, v
			n++
		}
	}
	if len(c.URLs) > 0 {
		n++
	}
	switch {
	case n == 0:
		return nil, leximorph.Errorf(leximorph.EINVALID, "URLs, --feed, --sitemap or --page required")
	case n > 1:
		return nil, leximorph.Errorf(leximorph.EINVALID, "use only one of URLs, --feed, --sitemap or --page")
	}

	if key == "" {
		urls := make([]string, 0, len(c.URLs))
		for _, u := range c.URLs {
			if filter.Match(u) {
				urls = append(urls, u)
			}
		}
		return urls, nil
	}

	src, ok := deps.Sources[key]
	if !ok {
		return nil, leximorph.Errorf(leximorph.ENOTIMPLEMENTED, "no %s source configured", key)
	}
	return src.DiscoverURLs(deps.Ctx, source, filter)
}

// fileStore creates the store exporting this run's documents. Keywords are
// translated once so translated articles highlight them in their own
// language.
func (c *BatchCmd) fileStore(deps *Dependencies) (*fs.FileStore, error) {
	format := leximorph.Format(c.Format)
	if format == "" {
		format = deps.Config.Output.Format
	}
	exporter, err := deps.Exporters.Get(format)
	if err != nil {
		return nil, err
	}

	keywords := c.Keywords
	if c.To != "" && len(keywords) > 0 {
		keywords = make([]string, len(c.Keywords))
		for i, kw := range c.Keywords {
			if keywords[i], err = deps.Files.TranslateText(deps.Ctx, kw, c.To); err != nil {
				return nil, err
			}
		}
	}

	name := "batch-" + time.Now().Format("20060102-150405")
	return fs.NewFileStore(c.Output, name, exporter, format, fs.WithKeywords(keywords)), nil
}

// teeWriter stores each document in every writer in turn and stops at the
// first failure.
type teeWriter []leximorph.DocumentWriter

func (t teeWriter) CreateDocument(ctx context.Context, doc *leximorph.Document) error {
	for _, w := range t {
		if err := w.CreateDocument(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}
