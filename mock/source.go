package mock

import (
	"context"

	"github.com/asheesh-yadav/leximorph"
)

var (
	_ leximorph.URLSource     = (*URLSource)(nil)
	_ leximorph.URLSet        = (*URLSet)(nil)
	_ leximorph.DomainLimiter = (*DomainLimiter)(nil)
)

// URLSource is a mock implementation of leximorph.URLSource.
type URLSource struct {
	DiscoverURLsFn func(ctx context.Context, source string, filter *leximorph.URLFilter) ([]string, error)
}

func (s *URLSource) DiscoverURLs(ctx context.Context, source string, filter *leximorph.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, source, filter)
}

// URLSet is a mock implementation of leximorph.URLSet.
type URLSet struct {
	AddFn func(url string) bool
}

func (s *URLSet) Add(url string) bool {
	return s.AddFn(url)
}

// DomainLimiter is a mock implementation of leximorph.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
