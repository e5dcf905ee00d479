package goquery

import "github.com/asheesh-yadav/leximorph"

var _ leximorph.LinkSelector = (*GhostSelector)(nil)

// GhostSelector extracts story links from Ghost publications.
// Validated against the Casper and Source themes:
// - a.post-card-content-link wraps each card's title and excerpt
// - .gh-card-link is the card link in Source
type GhostSelector struct{}

// NewGhostSelector creates a new GhostSelector.
func NewGhostSelector() *GhostSelector {
	return &GhostSelector{}
}

// Name returns the selector's identifier.
func (s *GhostSelector) Name() string {
	return "ghost"
}

// ExtractLinks parses HTML and returns discovered links with priority.
func (s *GhostSelector) ExtractLinks(html string, baseURL string) ([]leximorph.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: "a.post-card-content-link[href], a.gh-card-link[href]", Priority: leximorph.PriorityHeadline, Source: "headline"},
		{Selector: "article.post-card a[href], article.gh-card a[href]", Priority: leximorph.PriorityTeaser, Source: "teaser"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
