package goquery

import "github.com/asheesh-yadav/leximorph"

var _ leximorph.LinkSelector = (*BloggerSelector)(nil)

// BloggerSelector extracts post links from Blogger (Blogspot) blogs, whose
// templates title each post with h3.post-title.
type BloggerSelector struct{}

// NewBloggerSelector creates a new BloggerSelector.
func NewBloggerSelector() *BloggerSelector {
	return &BloggerSelector{}
}

// Name returns the selector's identifier.
func (s *BloggerSelector) Name() string {
	return "blogger"
}

// ExtractLinks parses HTML and returns discovered links with priority.
func (s *BloggerSelector) ExtractLinks(html string, baseURL string) ([]leximorph.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: ".post-title a[href], .post-title.entry-title a[href]", Priority: leximorph.PriorityHeadline, Source: "headline"},
		{Selector: ".jump-link a[href], .post-outer a.timestamp-link[href]", Priority: leximorph.PriorityTeaser, Source: "teaser"},
		{Selector: ".BlogArchive ul.posts a[href], .PopularPosts .item-title a[href]", Priority: leximorph.PriorityRelated, Source: "archive"},
	}
	return ExtractLinksWithConfigs(html, baseURL, configs)
}
