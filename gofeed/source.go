// Package gofeed discovers article URLs from RSS, Atom and JSON feeds using
// mmcdole/gofeed.
package gofeed

import (
	"cmp"
	"context"
	"errors"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/asheesh-yadav/leximorph"
	"github.com/mmcdole/gofeed"
)

// DefaultUserAgent is sent with feed requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; leximorph/1.0)"

// Ensure Source implements leximorph.URLSource at compile time.
var _ leximorph.URLSource = (*Source)(nil)

// Source lists the item links of a feed.
type Source struct {
	parser *gofeed.Parser
}

// Option configures a Source.
type Option func(*Source)

// WithHTTPClient sets the client used to download feeds.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) {
		s.parser.Client = c
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(s *Source) {
		s.parser.UserAgent = ua
	}
}

// NewSource creates a new Source.
func NewSource(opts ...Option) *Source {
	p := gofeed.NewParser()
	p.UserAgent = DefaultUserAgent
	s := &Source{parser: p}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type feedEntry struct {
	link string
	date time.Time
}

// DiscoverURLs returns the item links of the feed at feedURL, newest first.
// Items without a link are skipped and duplicate links are listed once.
// Undated items keep their feed order after dated ones.
func (s *Source) DiscoverURLs(ctx context.Context, feedURL string, filter *leximorph.URLFilter) ([]string, error) {
	u, err := url.Parse(feedURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, leximorph.Errorf(leximorph.EINVALID, "invalid feed URL %q", feedURL)
	}

	feed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var httpErr gofeed.HTTPError
		if errors.As(err, &httpErr) {
			return nil, leximorph.Errorf(leximorph.EUNAVAILABLE, "HTTP %d for %s", httpErr.StatusCode, feedURL)
		}
		if errors.Is(err, gofeed.ErrFeedTypeNotDetected) {
			return nil, leximorph.Errorf(leximorph.EINVALID, "%s is not a feed", feedURL)
		}
		return nil, leximorph.Errorf(leximorph.EUNAVAILABLE, "fetching feed %s: %v", feedURL, err)
	}

	seen := make(map[string]bool, len(feed.Items))
	entries := make([]feedEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil || item.Link == "" || seen[item.Link] {
			continue
		}
		seen[item.Link] = true
		e := feedEntry{link: item.Link}
		switch {
		case item.PublishedParsed != nil:
			e.date = *item.PublishedParsed
		case item.UpdatedParsed != nil:
			e.date = *item.UpdatedParsed
		}
		entries = append(entries, e)
	}

	slices.SortStableFunc(entries, func(a, b feedEntry) int {
		switch {
		case a.date.IsZero() && b.date.IsZero():
			return 0
		case a.date.IsZero():
			return 1
		case b.date.IsZero():
			return -1
		}
		return cmp.Compare(b.date.UnixNano(), a.date.UnixNano())
	})

	urls := make([]string, 0, len(entries))
	for _, e := range entries {
		if filter.Match(e.link) {
			urls = append(urls, e.link)
		}
	}
	return urls, nil
}
