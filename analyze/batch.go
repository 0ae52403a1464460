package analyze

import (
	"context"
	"net/url"
	"sync/atomic"

	"github.com/fwojciec/webmark"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the default number of URLs analyzed at once.
// Each in-flight analysis runs its own browser, so the default stays
// modest.
const DefaultConcurrency = 3

// ProgressEvent reports progress during a batch analysis.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Batch analyzes many URLs concurrently while keeping per-domain
// request rates polite.
type Batch struct {
	Analyzer    *Analyzer
	RateLimiter webmark.DomainLimiter
	Concurrency int
}

// batchResult holds the outcome of processing a single URL.
type batchResult struct {
	position int
	url      string
	report   *webmark.Report
}

// AnalyzeAll analyzes every URL and returns one report per URL in input
// order. Like Analyzer.Analyze it never returns an error: each URL's
// outcome, good or bad, is its report. The progress callback, if
// provided, receives events as analyses complete.
func (b *Batch) AnalyzeAll(ctx context.Context, urls []string, mode string, progress ProgressFunc) []*webmark.Report {
	if len(urls) == 0 {
		return nil
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan batchResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- batchResult{
					position: i,
					url:      u,
					report:   b.analyzeOne(gctx, u, mode),
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in input order
	reports := make([]*webmark.Report, len(urls))
	for result := range resultCh {
		completed.Add(1)
		reports[result.position] = result.report

		if progress == nil {
			continue
		}
		if result.report.Success {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
			})
		} else {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
				Error:     result.report.Error,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return reports
}

// analyzeOne waits out the domain rate limit, then analyzes the URL.
func (b *Batch) analyzeOne(ctx context.Context, rawURL, mode string) *webmark.Report {
	if b.RateLimiter != nil && webmark.ValidURL(rawURL) {
		normalized := webmark.NormalizeURL(rawURL)
		if host := hostOf(normalized); host != "" {
			if err := b.RateLimiter.Wait(ctx, host); err != nil {
				return failure(normalized, err)
			}
		}
	}
	return b.Analyzer.Analyze(ctx, rawURL, mode)
}

func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}
