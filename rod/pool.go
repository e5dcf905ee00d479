package rod

import (
	"fmt"
	"sync"

	"github.com/asheesh-yadav/leximorph"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is how many pages one browser serves before it is replaced.
const DefaultMaxPages = 40

// instance is one launched browser.
type instance struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	served   int64
	active   int
	retired  bool

	stop    sync.Once
	stopErr error
}

func (in *instance) shutdown() error {
	in.stop.Do(func() {
		in.stopErr = in.browser.Close()
		in.launcher.Kill()
	})
	return in.stopErr
}

// BrowserPool hands out a headless browser one page at a time and swaps in
// a fresh one after MaxPages pages. A replaced browser stays open until its
// last lease is released, so concurrent renders are never cut off.
//
// BrowserPool is safe for concurrent use.
type BrowserPool struct {
	mu       sync.Mutex
	current  *instance
	maxPages int64
	bin      string
	closed   bool
}

// PoolOption configures a BrowserPool.
type PoolOption func(*BrowserPool)

// WithMaxPages sets how many pages a browser serves before it is replaced.
func WithMaxPages(n int64) PoolOption {
	return func(p *BrowserPool) {
		p.maxPages = n
	}
}

// WithBrowserBin launches the browser binary at path instead of looking one
// up or downloading it.
func WithBrowserBin(path string) PoolOption {
	return func(p *BrowserPool) {
		p.bin = path
	}
}

// NewBrowserPool launches the first browser. Close must be called when the
// pool is no longer needed.
func NewBrowserPool(opts ...PoolOption) (*BrowserPool, error) {
	p := &BrowserPool{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(p)
	}

	in, err := p.launch()
	if err != nil {
		return nil, err
	}
	p.current = in
	return p, nil
}

// Lease is a browser handed out for a single page.
type Lease struct {
	Browser *rod.Browser

	pool *BrowserPool
	in   *instance
	once sync.Once
}

// Release returns the lease. It is safe to call more than once.
func (l *Lease) Release() {
	l.once.Do(func() { l.pool.release(l.in) })
}

// Acquire leases the current browser for one page, replacing the browser
// first when it has served its quota. If the replacement fails to launch,
// the old browser keeps serving.
func (p *BrowserPool) Acquire() (*Lease, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, leximorph.Errorf(leximorph.EINVALID, "browser pool is closed")
	}

	if p.maxPages > 0 && p.current.served >= p.maxPages {
		if fresh, err := p.launch(); err == nil {
			old := p.current
			old.retired = true
			if old.active == 0 {
				_ = old.shutdown()
			}
			p.current = fresh
		}
	}

	in := p.current
	in.served++
	in.active++
	return &Lease{Browser: in.browser, pool: p, in: in}, nil
}

func (p *BrowserPool) release(in *instance) {
	p.mu.Lock()
	in.active--
	done := in.retired && in.active == 0
	p.mu.Unlock()

	if done {
		_ = in.shutdown()
	}
}

// Close shuts the current browser down. Browsers already replaced close when
// their last lease is released. Close is safe to call multiple times.
func (p *BrowserPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.current.retired = true
	return p.current.shutdown()
}

// LauncherPID returns the process ID of the current browser launcher, or 0
// once the pool is closed.
func (p *BrowserPool) LauncherPID() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0
	}
	return p.current.launcher.PID()
}

func (p *BrowserPool) launch() (*instance, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("mute-audio").
		Set("blink-settings", "imagesEnabled=false").
		Leakless(true).
		Headless(true)
	if p.bin != "" {
		l = l.Bin(p.bin)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connect to browser: %w", err)
	}
	return &instance{browser: browser, launcher: l}, nil
}
