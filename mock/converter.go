package mock

import "github.com/fwojciec/webmark"

var _ webmark.Converter = (*Converter)(nil)

// Converter is a mock implementation of webmark.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
