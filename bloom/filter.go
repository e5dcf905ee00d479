// Package bloom provides article URL de-duplication using Bloom filters.
package bloom

import (
	"sync"

	"github.com/asheesh-yadav/leximorph"
	"github.com/bits-and-blooms/bloom/v3"
)

// Ensure Filter implements leximorph.URLSet at compile time.
var _ leximorph.URLSet = (*Filter)(nil)

// Filter is a concurrency-safe Bloom filter over normalized URLs.
// A false positive makes Add report an unseen URL as a duplicate; the rate
// is bounded by the fpRate given to NewFilter.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL and returns false if it was probably seen before.
func (f *Filter) Add(url string) bool {
	key := leximorph.NormalizeURL(url)
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.f.TestAndAddString(key)
}

// Test returns true if the URL might have been added.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	key := leximorph.NormalizeURL(url)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestString(key)
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}
