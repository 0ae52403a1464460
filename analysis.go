package webmark

import (
	"context"
	"time"
)

// Analysis modes. Digest is the ranked-element pipeline; article swaps in
// main-content extraction with wholesale markdown conversion.
const (
	ModeDigest  = "digest"
	ModeArticle = "article"
)

// Analysis is the outcome of converting one URL into markdown.
type Analysis struct {
	ID            string    `json:"id,omitempty"`
	URL           string    `json:"url"`
	Title         string    `json:"title,omitempty"`
	Mode          string    `json:"mode"`
	Markdown      string    `json:"markdown"`
	ContentHash   string    `json:"contentHash,omitempty"`
	ContentLength int       `json:"contentLength"`
	AnalyzedAt    time.Time `json:"analyzedAt"`
}

// Validate returns an error if the analysis contains invalid fields.
func (a *Analysis) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "analysis URL required")
	}
	if a.Mode != "" && a.Mode != ModeDigest && a.Mode != ModeArticle {
		return Errorf(EINVALID, "unknown analysis mode %q", a.Mode)
	}
	return nil
}

// Report is the envelope returned for every analysis request. Failures
// are data, not errors: the analyzer converts internal faults into a
// Report with Success false and a null Result, and callers branch on the
// flag instead of catching anything.
type Report struct {
	Success bool      `json:"success"`
	Error   string    `json:"error,omitempty"`
	Result  *Analysis `json:"result"`
}

// SortOrder represents the sort order for analysis queries.
type SortOrder string

// SortOrder constants for AnalysisFilter.
const (
	SortByAnalyzedAt SortOrder = "analyzed_at"
	SortByURL        SortOrder = "url"
)

// AnalysisFilter represents a filter for FindAnalyses.
type AnalysisFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// AnalysisExporter writes analyses to an export target with atomic
// semantics. Save stages one analysis; Commit makes the staged export
// permanent; Abort discards pending changes.
type AnalysisExporter interface {
	Save(ctx context.Context, a *Analysis) error
	Commit() error
	Abort() error
}

// AnalysisService manages the archive of completed analyses. The archive
// is write-behind only: the analysis pipeline itself never reads it, so
// each request stays stateless.
type AnalysisService interface {
	// CreateAnalysis stores a completed analysis, assigning its ID and
	// content hash.
	CreateAnalysis(ctx context.Context, a *Analysis) error

	// FindAnalysisByID retrieves an analysis by ID.
	// Returns ENOTFOUND if the analysis does not exist.
	FindAnalysisByID(ctx context.Context, id string) (*Analysis, error)

	// FindAnalyses retrieves analyses matching the filter.
	FindAnalyses(ctx context.Context, filter AnalysisFilter) ([]*Analysis, error)

	// DeleteAnalysis permanently removes an analysis.
	// Returns ENOTFOUND if the analysis does not exist.
	DeleteAnalysis(ctx context.Context, id string) error
}
