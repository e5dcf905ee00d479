package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/asheesh-yadav/leximorph"
)

// SelectorConfig defines a CSS selector with its priority and source label.
type SelectorConfig struct {
	Selector string
	Priority leximorph.LinkPriority
	Source   string
}

var (
	datePathRE = regexp.MustCompile(`/(19|20)\d{2}/\d{1,2}(/\d{1,2})?/`)
	idPathRE   = regexp.MustCompile(`[-/]\d{5,}(\.html?)?/?$`)
)

// nonArticleSegments are path segments of index, account and utility pages.
var nonArticleSegments = map[string]bool{
	"tag": true, "tags": true, "category": true, "categories": true, "topic": true, "topics": true,
	"author": true, "authors": true, "page": true, "search": true, "login": true, "signin": true,
	"signup": true, "subscribe": true, "account": true, "about": true, "contact": true,
	"privacy": true, "terms": true, "feed": true, "rss": true, "newsletter": true,
	"newsletters": true, "video": true, "videos": true, "podcast": true, "podcasts": true,
}

// ExtractLinksWithConfigs extracts links from HTML using the provided selector configurations.
// Links are deduplicated by URL, keeping the highest priority version.
// External links (different host than baseURL) are filtered out.
// The returned links maintain document order based on first occurrence.
func ExtractLinksWithConfigs(html string, baseURL string, configs []SelectorConfig) ([]leximorph.DiscoveredLink, error) {
	return extractLinksWithConfigs(html, baseURL, configs, false)
}

// ExtractLinksWithConfigsAndFallback is like ExtractLinksWithConfigs but also
// picks up any same-host anchor whose path looks like a story.
// Fallback links have PriorityFallback and won't override higher-priority duplicates.
func ExtractLinksWithConfigsAndFallback(html string, baseURL string, configs []SelectorConfig) ([]leximorph.DiscoveredLink, error) {
	return extractLinksWithConfigs(html, baseURL, configs, true)
}

func extractLinksWithConfigs(html string, baseURL string, configs []SelectorConfig, includeFallback bool) ([]leximorph.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, leximorph.Errorf(leximorph.EINVALID, "invalid base URL %q", baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, leximorph.Errorf(leximorph.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]int)
	var links []leximorph.DiscoveredLink

	add := func(sel *goquery.Selection, priority leximorph.LinkPriority, source string, accept func(*url.URL) bool) {
		href, exists := sel.Attr("href")
		if !exists || href == "" || isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == nil || resolved.Host != base.Host || !accept(resolved) {
			return
		}
		key := resolved.String()

		link := leximorph.DiscoveredLink{
			URL:      key,
			Priority: priority,
			Text:     strings.Join(strings.Fields(sel.Text()), " "),
			Source:   source,
		}

		if idx, ok := seen[key]; ok {
			if priority > links[idx].Priority {
				links[idx] = link
			}
			return
		}
		seen[key] = len(links)
		links = append(links, link)
	}

	for _, config := range configs {
		doc.Find(config.Selector).Each(func(_ int, sel *goquery.Selection) {
			add(sel, config.Priority, config.Source, isNotIndexPage)
		})
	}

	if includeFallback {
		doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
			add(sel, leximorph.PriorityFallback, "fallback", LooksLikeArticle)
		})
	}

	return links, nil
}

// LooksLikeArticle reports whether a URL path has the shape of a story
// rather than a section, tag or utility page: a dated path, a numeric story
// ID, or a hyphenated slug in the last segment.
func LooksLikeArticle(u *url.URL) bool {
	if !isNotIndexPage(u) {
		return false
	}
	path := u.EscapedPath()
	if datePathRE.MatchString(path) || idPathRE.MatchString(path) {
		return true
	}
	segments := pathSegments(path)
	if len(segments) == 0 {
		return false
	}
	last := strings.TrimSuffix(strings.TrimSuffix(segments[len(segments)-1], ".html"), ".htm")
	return strings.Count(last, "-") >= 2
}

// isNotIndexPage rejects the site root and paths through index or utility
// segments.
func isNotIndexPage(u *url.URL) bool {
	segments := pathSegments(u.EscapedPath())
	if len(segments) == 0 {
		return false
	}
	for _, s := range segments {
		if nonArticleSegments[strings.ToLower(s)] {
			return false
		}
	}
	return true
}

func pathSegments(path string) []string {
	var out []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// resolveURL resolves href against base and strips the fragment.
// Returns nil if the href cannot be parsed or points back at base.
func resolveURL(base *url.URL, href string) *url.URL {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return nil
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if resolved.String() == baseNoFragment.String() {
		return nil
	}
	return resolved
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
