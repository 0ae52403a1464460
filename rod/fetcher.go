// Package rod provides a webmark.Fetcher that renders pages in headless
// Chrome, so script-driven sites deliver the same DOM a desktop browser
// would see.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/webmark"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	// DefaultNavigationTimeout bounds navigating to and loading a single
	// page.
	DefaultNavigationTimeout = 30 * time.Second

	// DefaultSettleDelay is how long to wait after the load event so
	// scripts can finish mutating the DOM.
	DefaultSettleDelay = 2 * time.Second

	// DefaultUserAgent presents the renderer as a desktop browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// DefaultViewportWidth and DefaultViewportHeight size the browser
	// window for layout.
	DefaultViewportWidth  = 1920
	DefaultViewportHeight = 1080
)

// Ensure Fetcher implements webmark.Fetcher at compile time.
var _ webmark.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Every Fetch launches a fresh browser and kills it before
// returning, so no cookies, cache, or renderer state leaks between
// calls. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	navTimeout  time.Duration
	settleDelay time.Duration
	userAgent   string
	width       int
	height      int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithNavigationTimeout sets the timeout for navigating to and loading a
// page. Defaults to DefaultNavigationTimeout.
func WithNavigationTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.navTimeout = d
	}
}

// WithSettleDelay sets the wait after the load event before the DOM is
// read. Defaults to DefaultSettleDelay.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settleDelay = d
	}
}

// WithUserAgent sets the User-Agent the browser reports. Defaults to
// DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithViewport sets the browser window size. Defaults to
// DefaultViewportWidth x DefaultViewportHeight.
func WithViewport(width, height int) Option {
	return func(f *Fetcher) {
		f.width = width
		f.height = height
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		navTimeout:  DefaultNavigationTimeout,
		settleDelay: DefaultSettleDelay,
		userAgent:   DefaultUserAgent,
		width:       DefaultViewportWidth,
		height:      DefaultViewportHeight,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch renders the URL in a dedicated browser and returns the HTML
// after the page has loaded and settled.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Check context before launching a browser
	if err := ctx.Err(); err != nil {
		return "", err
	}

	l := launcher.New().
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("window-size", fmt.Sprintf("%d,%d", f.width, f.height)).
		Set("user-agent", f.userAgent).
		NoSandbox(true).
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return "", fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return "", fmt.Errorf("connecting to browser: %w", err)
	}
	defer func() {
		_ = browser.Close()
		l.Kill()
	}()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// The navigation timeout covers getting to the load event; the
	// settle delay afterwards runs under the caller's context only.
	navCtx, cancel := context.WithTimeout(ctx, f.navTimeout)
	defer cancel()

	nav := page.Context(navCtx)
	if err := nav.Navigate(url); err != nil {
		return "", err
	}
	if err := nav.WaitLoad(); err != nil {
		return "", err
	}

	select {
	case <-time.After(f.settleDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	html, err := page.Context(ctx).HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close releases resources held by the Fetcher. Browsers are per-call,
// so there is nothing to release; Close exists to satisfy
// webmark.Fetcher.
func (f *Fetcher) Close() error {
	return nil
}
