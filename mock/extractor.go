package mock

import "github.com/asheesh-yadav/leximorph"

var _ leximorph.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of leximorph.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*leximorph.Article, error)
}

func (e *Extractor) Extract(html string) (*leximorph.Article, error) {
	return e.ExtractFn(html)
}
