package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webmark"
)

// Ensure LoggingAnalysisService implements webmark.AnalysisService.
var _ webmark.AnalysisService = (*LoggingAnalysisService)(nil)

// LoggingAnalysisService wraps an AnalysisService with debug logging.
type LoggingAnalysisService struct {
	next   webmark.AnalysisService
	logger *slog.Logger
}

// NewLoggingAnalysisService creates a new LoggingAnalysisService.
func NewLoggingAnalysisService(next webmark.AnalysisService, logger *slog.Logger) *LoggingAnalysisService {
	return &LoggingAnalysisService{next: next, logger: logger}
}

// CreateAnalysis delegates to the wrapped service and logs the operation.
func (s *LoggingAnalysisService) CreateAnalysis(ctx context.Context, a *webmark.Analysis) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create analysis",
			"url", a.URL,
			"id", a.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateAnalysis(ctx, a)
}

// FindAnalysisByID delegates to the wrapped service and logs the operation.
func (s *LoggingAnalysisService) FindAnalysisByID(ctx context.Context, id string) (a *webmark.Analysis, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find analysis",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindAnalysisByID(ctx, id)
}

// FindAnalyses delegates to the wrapped service and logs the operation.
func (s *LoggingAnalysisService) FindAnalyses(ctx context.Context, filter webmark.AnalysisFilter) (analyses []*webmark.Analysis, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find analyses",
			"count", len(analyses),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindAnalyses(ctx, filter)
}

// DeleteAnalysis delegates to the wrapped service and logs the operation.
func (s *LoggingAnalysisService) DeleteAnalysis(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete analysis",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteAnalysis(ctx, id)
}
