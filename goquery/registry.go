package goquery

import (
	"slices"

	"github.com/asheesh-yadav/leximorph"
)

var _ leximorph.LinkSelectorRegistry = (*Registry)(nil)

// Registry manages platform-specific link selectors. It uses a
// PlatformDetector to identify the publishing platform and returns the
// matching selector, falling back to a generic selector when the platform
// is unknown or has no selector registered.
type Registry struct {
	detector  leximorph.PlatformDetector
	fallback  leximorph.LinkSelector
	selectors map[leximorph.Platform]leximorph.LinkSelector
}

// NewRegistry creates a new Registry with the given detector and fallback selector.
func NewRegistry(detector leximorph.PlatformDetector, fallback leximorph.LinkSelector) *Registry {
	return &Registry{
		detector:  detector,
		fallback:  fallback,
		selectors: make(map[leximorph.Platform]leximorph.LinkSelector),
	}
}

// NewDefaultRegistry returns a Registry with every built-in platform
// selector registered and GenericSelector as the fallback.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewDetector(), NewGenericSelector())
	r.Register(leximorph.PlatformWordPress, NewWordPressSelector())
	r.Register(leximorph.PlatformGhost, NewGhostSelector())
	r.Register(leximorph.PlatformSubstack, NewSubstackSelector())
	r.Register(leximorph.PlatformBlogger, NewBloggerSelector())
	return r
}

// Get returns the selector for a specific platform.
// Returns nil if no selector is registered for the platform.
func (r *Registry) Get(platform leximorph.Platform) leximorph.LinkSelector {
	return r.selectors[platform]
}

// GetForHTML detects the platform from HTML and returns the appropriate selector.
func (r *Registry) GetForHTML(html string) leximorph.LinkSelector {
	platform := r.detector.Detect(html)
	if selector, ok := r.selectors[platform]; ok {
		return selector
	}
	return r.fallback
}

// Register adds a selector for a platform.
// If a selector is already registered for the platform, it is replaced.
func (r *Registry) Register(platform leximorph.Platform, selector leximorph.LinkSelector) {
	r.selectors[platform] = selector
}

// List returns all registered platforms, sorted.
func (r *Registry) List() []leximorph.Platform {
	platforms := make([]leximorph.Platform, 0, len(r.selectors))
	for p := range r.selectors {
		platforms = append(platforms, p)
	}
	slices.Sort(platforms)
	return platforms
}
