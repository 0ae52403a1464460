package mock

import "github.com/fwojciec/webmark"

var _ webmark.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of webmark.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(html string) (*webmark.Article, error)
}

func (e *ArticleExtractor) ExtractArticle(html string) (*webmark.Article, error) {
	return e.ExtractArticleFn(html)
}
