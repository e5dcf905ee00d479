package mock

import "github.com/asheesh-yadav/leximorph"

var _ leximorph.Converter = (*Converter)(nil)

// Converter is a mock implementation of leximorph.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
