package webmark

// RankedElement pairs a content-bearing element with its importance score.
// Text is the trimmed visible text of the element, captured at ranking time
// so later stages never need the DOM.
type RankedElement struct {
	Tag   string  `json:"tag"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// Specials holds markdown fragments captured from the page before cleaning.
// They must reflect the original page, not the cleaned one: cleaning may
// delete the very images and links being collected.
type Specials struct {
	Images     []string `json:"images"`
	Links      []string `json:"links"`
	CodeBlocks []string `json:"codeBlocks"`
}

// Extraction is the distilled view of one rendered page: the special
// elements from the raw DOM and the surviving content ranked by
// descending importance (ties keep encounter order).
type Extraction struct {
	Title    string          `json:"title"`
	Content  []RankedElement `json:"content"`
	Specials Specials        `json:"specials"`
}

// Extractor distills raw page HTML into ranked content and specials.
// Implementations must collect specials before any destructive cleaning.
type Extractor interface {
	Extract(html string) (*Extraction, error)
}
