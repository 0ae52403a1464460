package mock

import "github.com/fwojciec/webmark"

var _ webmark.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webmark.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*webmark.Extraction, error)
}

func (e *Extractor) Extract(html string) (*webmark.Extraction, error) {
	return e.ExtractFn(html)
}
