// Package rod fetches JavaScript-rendered pages with a headless Chrome
// browser.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/asheesh-yadav/leximorph"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page render.
const DefaultFetchTimeout = 30 * time.Second

// DefaultSettleTime is how long the DOM must stay unchanged before the page
// counts as rendered.
const DefaultSettleTime = 500 * time.Millisecond

// Ensure Fetcher implements leximorph.Fetcher at compile time.
var _ leximorph.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// It is the fallback for article pages whose content is built by scripts.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	pool      *BrowserPool
	timeout   time.Duration
	settle    time.Duration
	userAgent string
	poolOpts  []PoolOption
	closed    atomic.Bool
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithFetchTimeout bounds each Fetch call. Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithSettleTime sets how long the DOM must be stable before the HTML is
// read. Zero waits for the load event only.
func WithSettleTime(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.settle = d
	}
}

// WithUserAgent overrides the browser's User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithBrowserOptions passes options to the underlying BrowserPool.
func WithBrowserOptions(opts ...PoolOption) FetcherOption {
	return func(f *Fetcher) {
		f.poolOpts = append(f.poolOpts, opts...)
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		settle:  DefaultSettleTime,
	}
	for _, opt := range opts {
		opt(f)
	}

	pool, err := NewBrowserPool(f.poolOpts...)
	if err != nil {
		return nil, leximorph.Errorf(leximorph.EUNAVAILABLE, "browser unavailable: %v", err)
	}
	f.pool = pool
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", leximorph.Errorf(leximorph.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	lease, err := f.pool.Acquire()
	if err != nil {
		return "", err
	}
	defer lease.Release()

	page, err := lease.Browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", err
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", wrapContext(ctx, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", wrapContext(ctx, err)
	}
	if f.settle > 0 {
		if err := page.WaitDOMStable(f.settle, 0); err != nil {
			return "", wrapContext(ctx, err)
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", wrapContext(ctx, err)
	}
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.pool.Close()
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.pool.LauncherPID()
}

// wrapContext prefers the context error so callers can match
// context.Canceled and context.DeadlineExceeded.
func wrapContext(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
