package goquery

import "github.com/asheesh-yadav/leximorph"

var _ leximorph.LinkSelector = (*GenericSelector)(nil)

// GenericSelector finds story links on any listing page using common news
// and blog markup: headline anchors, teaser cards and schema.org article
// markup. Any other same-host link whose path looks like a story is kept at
// fallback priority.
type GenericSelector struct{}

// NewGenericSelector creates a new GenericSelector.
func NewGenericSelector() *GenericSelector {
	return &GenericSelector{}
}

// Name returns the selector's identifier.
func (s *GenericSelector) Name() string {
	return "generic"
}

// ExtractLinks parses HTML and returns discovered links with priority.
//
// Priority order (highest to lowest):
//   - Headline: article h1-h3 anchors, .headline, [itemprop="headline"]
//   - Teaser: article cards, .story, .card, [itemtype*="Article"]
//   - Related: aside and .related blocks
//   - Fallback: story-shaped paths anywhere on the page
func (s *GenericSelector) ExtractLinks(html string, baseURL string) ([]leximorph.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: `article h1 a[href], article h2 a[href], article h3 a[href], .headline a[href], a.headline[href], [itemprop="headline"] a[href]`, Priority: leximorph.PriorityHeadline, Source: "headline"},
		{Selector: `h2 a[href], h3 a[href]`, Priority: leximorph.PriorityTeaser, Source: "heading"},
		{Selector: `article a[href], .story a[href], .card a[href], .teaser a[href], [itemtype*="Article"] a[href]`, Priority: leximorph.PriorityTeaser, Source: "teaser"},
		{Selector: `aside a[href], .related a[href], .most-read a[href]`, Priority: leximorph.PriorityRelated, Source: "related"},
	}
	return ExtractLinksWithConfigsAndFallback(html, baseURL, configs)
}
