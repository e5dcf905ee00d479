package goquery

import "github.com/asheesh-yadav/leximorph"

var _ leximorph.LinkSelector = (*SubstackSelector)(nil)

// SubstackSelector extracts post links from Substack archive and home
// pages. Posts live under /p/ and their previews carry the
// post-preview-title class.
type SubstackSelector struct{}

// NewSubstackSelector creates a new SubstackSelector.
func NewSubstackSelector() *SubstackSelector {
	return &SubstackSelector{}
}

// Name returns the selector's identifier.
func (s *SubstackSelector) Name() string {
	return "substack"
}

// ExtractLinks parses HTML and returns discovered links with priority.
func (s *SubstackSelector) ExtractLinks(html string, baseURL string) ([]leximorph.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: "a.post-preview-title[href]", Priority: leximorph.PriorityHeadline, Source: "headline"},
		{Selector: `.post-preview a[href*="/p/"], a[data-testid="post-preview-title"][href]`, Priority: leximorph.PriorityTeaser, Source: "teaser"},
		{Selector: `a[href*="/p/"]`, Priority: leximorph.PriorityFallback, Source: "post"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
