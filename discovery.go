package leximorph

import (
	"context"
	"regexp"
)

// URLSource discovers article URLs from a listing such as an RSS/Atom feed
// or a news sitemap. It feeds the batch pipeline.
type URLSource interface {
	// DiscoverURLs returns the article URLs listed at source, newest first
	// when the listing carries dates. The filter can be used to
	// include/exclude URLs by pattern. If filter is nil, all URLs are returned.
	DiscoverURLs(ctx context.Context, source string, filter *URLFilter) ([]string, error)
}

// URLFilter specifies patterns for including/excluding URLs.
type URLFilter struct {
	// Include patterns - if set, only URLs matching at least one pattern are included.
	Include []*regexp.Regexp

	// Exclude patterns - URLs matching any pattern are excluded.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// Match returns true if the URL passes the filter.
// If the filter is nil, all URLs pass.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}

	return true
}
