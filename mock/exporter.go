package mock

import (
	"context"

	"github.com/fwojciec/webmark"
)

var _ webmark.AnalysisExporter = (*AnalysisExporter)(nil)

// AnalysisExporter is a mock implementation of webmark.AnalysisExporter.
type AnalysisExporter struct {
	SaveFn   func(ctx context.Context, a *webmark.Analysis) error
	CommitFn func() error
	AbortFn  func() error
}

func (e *AnalysisExporter) Save(ctx context.Context, a *webmark.Analysis) error {
	return e.SaveFn(ctx, a)
}

func (e *AnalysisExporter) Commit() error {
	return e.CommitFn()
}

func (e *AnalysisExporter) Abort() error {
	return e.AbortFn()
}
