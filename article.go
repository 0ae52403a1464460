package webmark

// Article is the main content of a page as identified by a readability
// algorithm, before markdown conversion.
type Article struct {
	Title       string
	ContentHTML string
}

// ArticleExtractor identifies the main article content in raw HTML.
// Implementations wrap content-extraction libraries; the analyzer may
// chain a fallback when the primary finds nothing usable.
type ArticleExtractor interface {
	ExtractArticle(html string) (*Article, error)
}
