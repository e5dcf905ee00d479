package goquery

import "github.com/asheesh-yadav/leximorph"

var _ leximorph.LinkSelector = (*WordPressSelector)(nil)

// WordPressSelector extracts story links from WordPress blog and archive
// pages. It targets the markup shared by the core block themes and the
// classic themes:
// - .entry-title and .wp-block-post-title for post headlines
// - article.post and .wp-block-post for post cards
// - .widget_recent_entries for the recent posts widget
type WordPressSelector struct{}

// NewWordPressSelector creates a new WordPressSelector.
func NewWordPressSelector() *WordPressSelector {
	return &WordPressSelector{}
}

// Name returns the selector's identifier.
func (s *WordPressSelector) Name() string {
	return "wordpress"
}

// ExtractLinks parses HTML and returns discovered links with priority.
func (s *WordPressSelector) ExtractLinks(html string, baseURL string) ([]leximorph.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: ".entry-title a[href], .wp-block-post-title a[href]", Priority: leximorph.PriorityHeadline, Source: "headline"},
		{Selector: "article.post a.more-link[href], .wp-block-post a[href]", Priority: leximorph.PriorityTeaser, Source: "teaser"},
		{Selector: ".widget_recent_entries a[href], .wp-block-latest-posts a[href]", Priority: leximorph.PriorityRelated, Source: "recent"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
