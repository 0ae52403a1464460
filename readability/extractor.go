// Package readability implements webmark.ArticleExtractor on top of
// go-readability, used as the fallback when trafilatura comes up short.
package readability

import (
	"strings"

	"github.com/fwojciec/webmark"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements webmark.ArticleExtractor at compile time.
var _ webmark.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to isolate the main article from a
// page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractArticle processes raw HTML and returns the main article
// content.
func (e *Extractor) ExtractArticle(rawHTML string) (*webmark.Article, error) {
	if rawHTML == "" {
		return nil, webmark.Errorf(webmark.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &webmark.Article{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
