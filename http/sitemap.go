package http

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/asheesh-yadav/leximorph"
	"github.com/beevik/etree"
)

// Ensure SitemapService implements leximorph.URLSource.
var _ leximorph.URLSource = (*SitemapService)(nil)

// sitemapDateLayouts are the W3C datetime forms used by <lastmod> and
// <news:publication_date>.
var sitemapDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02",
}

// SitemapService discovers article URLs from a site's sitemaps via HTTP.
// News sitemaps are supported: publication dates are used to order results.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// sitemapEntry is one <url> of a urlset.
type sitemapEntry struct {
	loc  string
	date time.Time // zero when undated
}

// DiscoverURLs returns the article URLs listed in the sitemaps of the site
// at siteURL, newest first. Undated entries follow dated ones in sitemap
// order. Returns an empty slice (not nil) if no sitemaps are found.
//
// When siteURL has a non-root path (e.g., https://example.com/world/),
// only URLs with paths starting with that prefix are returned.
func (s *SitemapService) DiscoverURLs(ctx context.Context, siteURL string, filter *leximorph.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(siteURL)
	if err != nil || base.Host == "" {
		return nil, leximorph.Errorf(leximorph.EINVALID, "invalid site URL %q", siteURL)
	}

	pathPrefix := base.Path
	if pathPrefix == "/" {
		pathPrefix = ""
	}

	// Sitemaps are always looked up at the root of the host.
	root := *base
	root.Path = ""
	root.RawQuery = ""

	sitemapURLs, err := s.findSitemapURLs(ctx, &root)
	if err != nil {
		return nil, err
	}

	var entries []sitemapEntry
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	for _, sitemapURL := range sitemapURLs {
		found, err := s.processSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			return nil, err
		}
		for _, e := range found {
			if seenURLs[e.loc] {
				continue
			}
			seenURLs[e.loc] = true
			if pathPrefix != "" && !matchesPathPrefix(e.loc, pathPrefix) {
				continue
			}
			if !filter.Match(e.loc) {
				continue
			}
			entries = append(entries, e)
		}
	}

	slices.SortStableFunc(entries, func(a, b sitemapEntry) int {
		switch {
		case a.date.IsZero() && b.date.IsZero():
			return 0
		case a.date.IsZero():
			return 1
		case b.date.IsZero():
			return -1
		}
		return cmp.Compare(b.date.Unix(), a.date.Unix())
	})

	urls := make([]string, 0, len(entries))
	for _, e := range entries {
		urls = append(urls, e.loc)
	}
	return urls, nil
}

// matchesPathPrefix checks if a URL's path starts with the given prefix,
// respecting path boundaries: /world matches /world/ and /world/europe but
// not /worldcup.
func matchesPathPrefix(rawURL, prefix string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.HasPrefix(parsed.Path, prefix)
}

// findSitemapURLs discovers sitemap URLs from robots.txt or falls back to
// /sitemap.xml and /news-sitemap.xml.
func (s *SitemapService) findSitemapURLs(ctx context.Context, base *url.URL) ([]string, error) {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := s.parseSitemapsFromRobots(ctx, robotsURL.String())
	if err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	var found []string
	for _, p := range []string{"/sitemap.xml", "/news-sitemap.xml"} {
		candidate := base.ResolveReference(&url.URL{Path: p}).String()
		exists, err := s.urlExists(ctx, candidate)
		if err != nil {
			// Propagate context errors, treat other errors as "not found"
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		if exists {
			found = append(found, candidate)
		}
	}
	return found, nil
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *SitemapService) parseSitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	const directive = "sitemap:"
	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), directive) {
			if u := strings.TrimSpace(line[len(directive):]); u != "" {
				sitemaps = append(sitemaps, u)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	return sitemaps, nil
}

// processSitemap fetches and parses a sitemap, handling both urlset and
// sitemapindex documents.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]sitemapEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, leximorph.Errorf(leximorph.EINVALID, "parsing sitemap %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, leximorph.Errorf(leximorph.EINVALID, "empty sitemap %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		var all []sitemapEntry
		for _, sm := range root.SelectElements("sitemap") {
			loc := elementText(sm, "loc")
			if loc == "" {
				continue
			}
			entries, err := s.processSitemap(ctx, loc, seen)
			if err != nil {
				return nil, err
			}
			all = append(all, entries...)
		}
		return all, nil
	}

	return parseURLSet(root), nil
}

// parseURLSet extracts entries from a <urlset> element. A news publication
// date takes precedence over <lastmod>.
func parseURLSet(root *etree.Element) []sitemapEntry {
	var entries []sitemapEntry
	for _, el := range root.SelectElements("url") {
		loc := elementText(el, "loc")
		if loc == "" {
			continue
		}
		entry := sitemapEntry{loc: loc}
		if news := el.SelectElement("news"); news != nil {
			entry.date = parseSitemapDate(elementText(news, "publication_date"))
		}
		if entry.date.IsZero() {
			entry.date = parseSitemapDate(elementText(el, "lastmod"))
		}
		entries = append(entries, entry)
	}
	return entries
}

func elementText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

func parseSitemapDate(s string) time.Time {
	for _, layout := range sitemapDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// fetchURL fetches a URL and returns the response body.
func (s *SitemapService) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, leximorph.Errorf(leximorph.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}

// urlExists checks if a URL returns 200 OK.
func (s *SitemapService) urlExists(ctx context.Context, targetURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
