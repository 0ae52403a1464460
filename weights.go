package webmark

// Scoring parameters for the importance ranker. All lookups are against
// immutable package-level tables initialized at process start; no runtime
// mutation, so no synchronization is needed.
const (
	// DefaultTagWeight applies to tags absent from the weight table.
	DefaultTagWeight = 0.5

	// LongTextChars and LongTextBoost: visible text over 100 runes
	// multiplies the base weight by 1.5. MediumTextChars/MediumTextBoost
	// apply when the long threshold misses but text exceeds 50 runes.
	// Only the first matching boost applies.
	LongTextChars   = 100
	LongTextBoost   = 1.5
	MediumTextChars = 50
	MediumTextBoost = 1.2

	// AncestorBoostRatio scales each matching ancestor's container weight
	// before it is added to the score. Additive across the whole ancestor
	// chain, not just the nearest container.
	AncestorBoostRatio = 0.1

	// ShortTextChars and ShortTextPenalty: elements with under 10 runes of
	// visible text have their total multiplied by 0.3.
	ShortTextChars   = 10
	ShortTextPenalty = 0.3

	// MinimumScore excludes elements scoring at or below it from ranking.
	MinimumScore = 0.1
)

// contentTags is the fixed, ordered set of tags eligible for importance
// ranking. The ranker scans the document once per tag in this order, so
// encounter order groups elements by tag before document position.
var contentTags = []string{"h1", "h2", "h3", "h4", "h5", "h6", "p", "li", "blockquote", "table"}

// tagWeights maps tag names to base importance weights.
var tagWeights = map[string]float64{
	"h1": 3.0, "h2": 2.5, "h3": 2.0, "h4": 1.5,
	"p": 1.5, "li": 1.2, "ul": 1.0, "ol": 1.0,
	"table": 2.0, "thead": 0.5, "tbody": 0.5,
	"tr": 0.3, "td": 0.2, "th": 0.3,
	"img": 1.5, "figure": 1.5, "figcaption": 1.2,
	"blockquote": 1.0, "code": 1.0, "pre": 1.0,
	"strong": 0.5, "em": 0.5, "a": 0.0,
	"span": 0.3, "div": 0.5,
}

// containerWeights maps ancestor tag names to container weights used by
// the ancestor boost. Unlisted ancestors contribute nothing.
var containerWeights = map[string]float64{
	"main":    3,
	"article": 2,
	"section": 2,
	"body":    1,
	"div":     0.5,
}

// ContentTags returns the ordered set of content-bearing tags.
func ContentTags() []string {
	return append([]string(nil), contentTags...)
}

// TagWeight returns the base importance weight for a tag name, falling
// back to DefaultTagWeight for unlisted tags.
func TagWeight(tag string) float64 {
	if w, ok := tagWeights[tag]; ok {
		return w
	}
	return DefaultTagWeight
}

// ContainerWeight returns the ancestor container weight for a tag name,
// or 0 when the tag is not a scored container.
func ContainerWeight(tag string) float64 {
	return containerWeights[tag]
}
