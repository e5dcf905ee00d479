package mock

import (
	"github.com/asheesh-yadav/leximorph"
)

var _ leximorph.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of leximorph.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]leximorph.DiscoveredLink, error)
	NameFn         func() string
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]leximorph.DiscoveredLink, error) {
	return s.ExtractLinksFn(html, baseURL)
}

func (s *LinkSelector) Name() string {
	return s.NameFn()
}

var _ leximorph.PlatformDetector = (*PlatformDetector)(nil)

// PlatformDetector is a mock implementation of leximorph.PlatformDetector.
type PlatformDetector struct {
	DetectFn func(html string) leximorph.Platform
}

func (d *PlatformDetector) Detect(html string) leximorph.Platform {
	return d.DetectFn(html)
}

var _ leximorph.LinkSelectorRegistry = (*LinkSelectorRegistry)(nil)

// LinkSelectorRegistry is a mock implementation of leximorph.LinkSelectorRegistry.
type LinkSelectorRegistry struct {
	GetFn        func(platform leximorph.Platform) leximorph.LinkSelector
	GetForHTMLFn func(html string) leximorph.LinkSelector
	RegisterFn   func(platform leximorph.Platform, selector leximorph.LinkSelector)
	ListFn       func() []leximorph.Platform
}

func (r *LinkSelectorRegistry) Get(platform leximorph.Platform) leximorph.LinkSelector {
	return r.GetFn(platform)
}

func (r *LinkSelectorRegistry) GetForHTML(html string) leximorph.LinkSelector {
	return r.GetForHTMLFn(html)
}

func (r *LinkSelectorRegistry) Register(platform leximorph.Platform, selector leximorph.LinkSelector) {
	r.RegisterFn(platform, selector)
}

func (r *LinkSelectorRegistry) List() []leximorph.Platform {
	return r.ListFn()
}
