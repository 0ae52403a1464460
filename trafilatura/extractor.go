// Package trafilatura implements webmark.ArticleExtractor on top of
// go-trafilatura's main-content extraction.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/webmark"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements webmark.ArticleExtractor at compile time.
var _ webmark.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to isolate the main article from a
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &webmark.Article{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
