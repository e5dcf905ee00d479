package slog

import (
	"log/slog"
	"time"

	"github.com/asheesh-yadav/leximorph"
)

// Ensure LoggingRegistry implements leximorph.LinkSelectorRegistry.
var _ leximorph.LinkSelectorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a LinkSelectorRegistry with debug logging for platform detection.
type LoggingRegistry struct {
	next     leximorph.LinkSelectorRegistry
	detector leximorph.PlatformDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next leximorph.LinkSelectorRegistry, detector leximorph.PlatformDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(platform leximorph.Platform) leximorph.LinkSelector {
	return r.next.Get(platform)
}

// GetForHTML detects the platform, logs it, and returns the appropriate selector.
func (r *LoggingRegistry) GetForHTML(html string) leximorph.LinkSelector {
	begin := time.Now()
	platform := r.detector.Detect(html)
	platformName := string(platform)
	if platform == leximorph.PlatformUnknown {
		platformName = "(unknown)"
	}
	selector := r.next.GetForHTML(html)
	r.logger.Info("platform detection",
		"platform", platformName,
		"selector", selector.Name(),
		"duration", time.Since(begin),
	)
	return selector
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(platform leximorph.Platform, selector leximorph.LinkSelector) {
	r.next.Register(platform, selector)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []leximorph.Platform {
	return r.next.List()
}
