//go:build integration

package rod_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/webmark"
	"github.com/fwojciec/webmark/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements webmark.Fetcher.
var _ webmark.Fetcher = (*rod.Fetcher)(nil)

func TestFetcher_Fetch_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher()
	defer fetcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := fetcher.Fetch(ctx, srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetcher_Fetch_ReturnsRenderedHTML(t *testing.T) {
	t.Parallel()

	// Serve a page that uses JavaScript to add content
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>JS Page</title></head>
<body>
<div id="root"></div>
<script>document.getElementById("root").textContent = "hydrated content";</script>
</body>
</html>`)
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher()
	defer fetcher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	html, err := fetcher.Fetch(ctx, srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, "hydrated content", "expected script output in rendered HTML")
	assert.Contains(t, html, "<title>JS Page</title>")
}

func TestFetcher_Fetch_WaitsForSettle(t *testing.T) {
	t.Parallel()

	// Content added half a second after the load event is only visible
	// because of the settle delay.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<!DOCTYPE html>
<html>
<body>
<div id="root"></div>
<script>setTimeout(function() {
	document.getElementById("root").textContent = "late content";
}, 500);</script>
</body>
</html>`)
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher(rod.WithSettleDelay(1500 * time.Millisecond))
	defer fetcher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	html, err := fetcher.Fetch(ctx, srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, "late content")
}

func TestFetcher_Fetch_FreshBrowserPerCall(t *testing.T) {
	t.Parallel()

	// The server sets a cookie on every response and reports whether the
	// request carried one back.
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		body := "fresh"
		if _, err := r.Cookie("session"); err == nil {
			body = "seen"
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: fmt.Sprintf("v%d", n)})
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body><p id="state">%s</p></body></html>`, body)
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher()
	defer fetcher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	first, err := fetcher.Fetch(ctx, srv.URL)
	require.NoError(t, err)
	assert.Contains(t, first, "fresh")

	second, err := fetcher.Fetch(ctx, srv.URL)
	require.NoError(t, err)
	assert.Contains(t, second, "fresh", "a new browser must not carry cookies from the previous call")
}

func TestFetcher_Fetch_NavigationTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher(rod.WithNavigationTimeout(2 * time.Second))
	defer fetcher.Close()

	start := time.Now()
	_, err := fetcher.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Less(t, time.Since(start), 30*time.Second, "navigation should give up at the configured timeout")
}
