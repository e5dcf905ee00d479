package goquery

import (
	"context"
	"net/url"
	"slices"

	"github.com/asheesh-yadav/leximorph"
)

var _ leximorph.URLSource = (*ListingSource)(nil)

// ListingSource discovers article URLs by scraping a listing page such as a
// front page, section page or blog index.
type ListingSource struct {
	fetcher     leximorph.Fetcher
	registry    leximorph.LinkSelectorRegistry
	minPriority leximorph.LinkPriority
}

// ListingOption configures a ListingSource.
type ListingOption func(*ListingSource)

// WithMinPriority drops links found below priority p. The default keeps
// fallback links too.
func WithMinPriority(p leximorph.LinkPriority) ListingOption {
	return func(s *ListingSource) {
		s.minPriority = p
	}
}

// NewListingSource creates a ListingSource that fetches pages with fetcher
// and picks a link selector from registry.
func NewListingSource(fetcher leximorph.Fetcher, registry leximorph.LinkSelectorRegistry, opts ...ListingOption) *ListingSource {
	s := &ListingSource{
		fetcher:     fetcher,
		registry:    registry,
		minPriority: leximorph.PriorityFallback,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DiscoverURLs fetches the listing page at source and returns its story
// links, highest priority first and in page order within a priority.
func (s *ListingSource) DiscoverURLs(ctx context.Context, source string, filter *leximorph.URLFilter) ([]string, error) {
	u, err := url.Parse(source)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, leximorph.Errorf(leximorph.EINVALID, "invalid listing URL %q", source)
	}

	html, err := s.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	selector := s.registry.GetForHTML(html)
	links, err := selector.ExtractLinks(html, source)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(links, func(a, b leximorph.DiscoveredLink) int {
		return int(b.Priority) - int(a.Priority)
	})

	seen := make(map[string]bool)
	urls := []string{}
	for _, link := range links {
		if link.Priority < s.minPriority || !filter.Match(link.URL) {
			continue
		}
		key := leximorph.NormalizeURL(link.URL)
		if seen[key] {
			continue
		}
		seen[key] = true
		urls = append(urls, link.URL)
	}
	return urls, nil
}
