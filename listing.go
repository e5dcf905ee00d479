package leximorph

// LinkPriority ranks where an article link was found on a listing page
// (higher = more likely a story).
type LinkPriority int

// Link priority levels.
const (
	PriorityIgnore   LinkPriority = 0
	PriorityFallback LinkPriority = 10
	PriorityRelated  LinkPriority = 50
	PriorityTeaser   LinkPriority = 100
	PriorityHeadline LinkPriority = 110
)

// DiscoveredLink is an article link found on a listing page.
type DiscoveredLink struct {
	URL      string
	Priority LinkPriority
	Text     string // anchor text, trimmed
	Source   string // which part of the page, e.g. "headline"
}

// Platform identifies the publishing software behind a site.
type Platform string

// Known publishing platforms.
const (
	PlatformUnknown   Platform = ""
	PlatformWordPress Platform = "wordpress"
	PlatformGhost     Platform = "ghost"
	PlatformSubstack  Platform = "substack"
	PlatformBlogger   Platform = "blogger"
)

// LinkSelector extracts article links from a listing page such as a front
// page, section page or blog index.
type LinkSelector interface {
	// ExtractLinks returns links found in html, resolved against baseURL.
	// Links to other hosts are dropped.
	ExtractLinks(html string, baseURL string) ([]DiscoveredLink, error)

	// Name identifies the selector in logs.
	Name() string
}

// PlatformDetector identifies publishing platforms from HTML.
type PlatformDetector interface {
	// Detect returns PlatformUnknown if the platform cannot be determined.
	Detect(html string) Platform
}

// LinkSelectorRegistry manages platform-specific selectors.
type LinkSelectorRegistry interface {
	// Get returns the selector for a platform, or nil if none is registered.
	Get(platform Platform) LinkSelector

	// GetForHTML detects the platform and returns its selector, falling back
	// to a generic selector.
	GetForHTML(html string) LinkSelector

	// Register adds or replaces the selector for a platform.
	Register(platform Platform, selector LinkSelector)

	// List returns the registered platforms.
	List() []Platform
}
