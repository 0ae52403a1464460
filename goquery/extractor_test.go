package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	webgoquery "github.com/fwojciec/webmark/goquery"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("analyzes a full page", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Release Notes</title></head>
<body>
<nav><a href="/archive">All previous releases</a></nav>
<main>
<h1>Version 2.0 Released</h1>
<p>This release brings the long awaited streaming interface and a faster planner.</p>
<img src="/img/banner.png" alt="banner">
<pre>client := webmark.New()
client.Analyze(ctx)</pre>
</main>
<footer><p>Copyright notice</p></footer>
</body>
</html>`

		extraction, err := webgoquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Release Notes", extraction.Title)

		require.Len(t, extraction.Content, 2)
		assert.Equal(t, "h1", extraction.Content[0].Tag)
		assert.Equal(t, "Version 2.0 Released", extraction.Content[0].Text)
		assert.Equal(t, "p", extraction.Content[1].Tag)
		assert.Greater(t, extraction.Content[0].Score, extraction.Content[1].Score)

		assert.Equal(t, []string{"![banner](/img/banner.png)"}, extraction.Specials.Images)
		assert.Equal(t, []string{"[All previous releases](/archive)"}, extraction.Specials.Links)
		require.Len(t, extraction.Specials.CodeBlocks, 1)
		assert.Equal(t, "```\nclient := webmark.New()\nclient.Analyze(ctx)\n```", extraction.Specials.CodeBlocks[0])
	})

	t.Run("collects specials before cleaning removes their containers", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<nav><a href="/docs">Documentation index</a></nav>
<aside><img src="/promo.png" alt="promo"></aside>
<main><p>The main body of the page has plenty of text to rank on.</p></main>
</body>
</html>`

		extraction, err := webgoquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"[Documentation index](/docs)"}, extraction.Specials.Links)
		assert.Equal(t, []string{"![promo](/promo.png)"}, extraction.Specials.Images)

		require.Len(t, extraction.Content, 1)
		assert.Equal(t, "The main body of the page has plenty of text to rank on.", extraction.Content[0].Text)
	})

	t.Run("returns an empty title when the page has none", func(t *testing.T) {
		t.Parallel()

		extraction, err := webgoquery.NewExtractor().Extract(`<html><body><p>No title here, just a paragraph of text.</p></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "", extraction.Title)
	})

	t.Run("returns empty results for an empty page", func(t *testing.T) {
		t.Parallel()

		extraction, err := webgoquery.NewExtractor().Extract(`<html><body></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, extraction.Content)
		assert.Empty(t, extraction.Specials.Images)
		assert.Empty(t, extraction.Specials.Links)
		assert.Empty(t, extraction.Specials.CodeBlocks)
	})
}
