package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/asheesh-yadav/leximorph"
)

var _ leximorph.PlatformDetector = (*Detector)(nil)

// Detector identifies publishing platforms from HTML content.
// It checks the generator meta tag first, then platform-specific classes,
// asset paths and structural markers.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified platform.
// Returns PlatformUnknown if the platform cannot be determined.
func (d *Detector) Detect(html string) leximorph.Platform {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return leximorph.PlatformUnknown
	}

	if platform := d.detectFromMetaGenerator(doc); platform != leximorph.PlatformUnknown {
		return platform
	}

	// Substack serves from substackcdn.com and tags its post previews.
	if d.hasSelector(doc, `link[href*="substackcdn.com"], script[src*="substackcdn.com"]`) ||
		d.hasSelector(doc, ".post-preview-title") {
		return leximorph.PlatformSubstack
	}

	// Ghost themes share the post-card markup from the default Casper theme.
	if d.hasSelector(doc, ".gh-head, .gh-canvas") ||
		d.hasSelector(doc, "article.post-card") {
		return leximorph.PlatformGhost
	}

	if d.hasSelector(doc, `link[href*="/wp-content/"], script[src*="/wp-content/"], script[src*="/wp-includes/"]`) ||
		d.hasSelector(doc, "body.wordpress, body.wp-singular") {
		return leximorph.PlatformWordPress
	}

	if d.hasSelector(doc, ".blog-posts .date-outer, .post-outer .post-title") ||
		d.hasSelector(doc, `link[href*="blogger.com/static"]`) {
		return leximorph.PlatformBlogger
	}

	return leximorph.PlatformUnknown
}

// detectFromMetaGenerator checks the meta generator tag for platform identification.
func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) leximorph.Platform {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})

	switch {
	case generator == "":
		return leximorph.PlatformUnknown
	case strings.Contains(generator, "wordpress"):
		return leximorph.PlatformWordPress
	case strings.Contains(generator, "ghost"):
		return leximorph.PlatformGhost
	case strings.Contains(generator, "substack"):
		return leximorph.PlatformSubstack
	case strings.Contains(generator, "blogger"):
		return leximorph.PlatformBlogger
	}

	return leximorph.PlatformUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
