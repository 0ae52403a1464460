package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	webgoquery "github.com/fwojciec/webmark/goquery"
)

func TestCleanDocument(t *testing.T) {
	t.Parallel()

	t.Run("removes unwanted tags with their descendants", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<!DOCTYPE html>
<html>
<body>
<nav><a href="/home">Home</a></nav>
<script>console.log("tracking")</script>
<style>body { color: red; }</style>
<form><input type="text"><button>Send</button></form>
<article><p>The paragraph that matters.</p></article>
<footer><p>Copyright notice</p></footer>
</body>
</html>`)

		webgoquery.CleanDocument(doc)

		assert.Equal(t, 0, doc.Find("nav").Length())
		assert.Equal(t, 0, doc.Find("script").Length())
		assert.Equal(t, 0, doc.Find("style").Length())
		assert.Equal(t, 0, doc.Find("form").Length())
		assert.Equal(t, 0, doc.Find("input").Length())
		assert.Equal(t, 0, doc.Find("footer").Length())
		require.Equal(t, 1, doc.Find("p").Length())
		assert.Equal(t, "The paragraph that matters.", doc.Find("article p").Text())
	})

	t.Run("removes comment nodes", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<!DOCTYPE html>
<html>
<body>
<!-- rendered by widget v3 -->
<p>Visible text.</p>
<div><!-- nested marker --></div>
</body>
</html>`)

		webgoquery.CleanDocument(doc)

		rendered, err := doc.Html()
		require.NoError(t, err)
		assert.NotContains(t, rendered, "rendered by widget")
		assert.NotContains(t, rendered, "nested marker")
		assert.Contains(t, rendered, "Visible text.")
	})

	t.Run("removes elements with denylisted class or id substrings", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<!DOCTYPE html>
<html>
<body>
<div class="ads-banner"><p>Buy now</p></div>
<div class="Cookie-Notice"><p>We use cookies</p></div>
<div id="social-share"><p>Share this</p></div>
<div class="sidebar-widget"><p>More stories</p></div>
<div class="content-main"><p>The body text of the article itself.</p></div>
</body>
</html>`)

		webgoquery.CleanDocument(doc)

		require.Equal(t, 1, doc.Find("div").Length())
		assert.Equal(t, "The body text of the article itself.", doc.Find("div.content-main p").Text())
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<!DOCTYPE html>
<html>
<body>
<nav><a href="/home">Home</a></nav>
<!-- comment -->
<div class="popup-overlay">Subscribe now</div>
<main><p>Stable content.</p></main>
</body>
</html>`)

		webgoquery.CleanDocument(doc)
		first, err := doc.Html()
		require.NoError(t, err)

		webgoquery.CleanDocument(doc)
		second, err := doc.Html()
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Contains(t, second, "Stable content.")
	})

	t.Run("keeps clean content untouched", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<!DOCTYPE html>
<html>
<body>
<main>
<h1>Heading stays</h1>
<p>Body text stays.</p>
<table><tr><td>Cell</td></tr></table>
</main>
</body>
</html>`)

		webgoquery.CleanDocument(doc)

		assert.Equal(t, "Heading stays", doc.Find("h1").Text())
		assert.Equal(t, "Body text stays.", doc.Find("p").Text())
		assert.Equal(t, 1, doc.Find("table").Length())
	})
}
