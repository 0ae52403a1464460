package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/webmark"
)

// Ensure LoggingExtractor implements webmark.Extractor.
var _ webmark.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   webmark.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next webmark.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(rawHTML string) (ex *webmark.Extraction, err error) {
	defer func(begin time.Time) {
		var elements, specials int
		if ex != nil {
			elements = len(ex.Content)
			specials = len(ex.Specials.Images) + len(ex.Specials.Links) + len(ex.Specials.CodeBlocks)
		}
		e.logger.Info("extract",
			"elements", elements,
			"specials", specials,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(rawHTML)
}
