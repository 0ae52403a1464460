package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webmark"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ webmark.AnalysisService = (*AnalysisService)(nil)

// AnalysisService implements webmark.AnalysisService using SQLite.
type AnalysisService struct {
	db *DB
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(db *DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateAnalysis stores a completed analysis, assigning its ID and content
// hash. AnalyzedAt is preserved when the analyzer already stamped it.
func (s *AnalysisService) CreateAnalysis(ctx context.Context, a *webmark.Analysis) error {
	if err := a.Validate(); err != nil {
		return err
	}

	a.ID = uuid.New().String()
	a.ContentHash = hashContent(a.Markdown)
	if a.AnalyzedAt.IsZero() {
		a.AnalyzedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, url, title, mode, markdown, content_hash, content_length, analyzed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.URL, a.Title, a.Mode, a.Markdown, a.ContentHash, a.ContentLength,
		a.AnalyzedAt.Format(time.RFC3339))

	return err
}

// FindAnalysisByID retrieves an analysis by ID.
func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*webmark.Analysis, error) {
	var a webmark.Analysis
	var analyzedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, mode, markdown, content_hash, content_length, analyzed_at
		FROM analyses
		WHERE id = ?
	`, id).Scan(&a.ID, &a.URL, &a.Title, &a.Mode, &a.Markdown,
		&a.ContentHash, &a.ContentLength, &analyzedAt)

	if err == sql.ErrNoRows {
		return nil, webmark.Errorf(webmark.ENOTFOUND, "analysis not found")
	}
	if err != nil {
		return nil, err
	}

	a.AnalyzedAt, err = parseRFC3339(analyzedAt, "analyzed_at")
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// FindAnalyses retrieves analyses matching the filter.
func (s *AnalysisService) FindAnalyses(ctx context.Context, filter webmark.AnalysisFilter) ([]*webmark.Analysis, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, mode, markdown, content_hash, content_length, analyzed_at FROM analyses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	switch filter.SortBy {
	case webmark.SortByURL:
		query.WriteString(" ORDER BY url ASC")
	default:
		query.WriteString(" ORDER BY analyzed_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*webmark.Analysis
	for rows.Next() {
		var a webmark.Analysis
		var analyzedAt string

		if err := rows.Scan(&a.ID, &a.URL, &a.Title, &a.Mode, &a.Markdown,
			&a.ContentHash, &a.ContentLength, &analyzedAt); err != nil {
			return nil, err
		}

		a.AnalyzedAt, err = parseRFC3339(analyzedAt, "analyzed_at")
		if err != nil {
			return nil, err
		}

		analyses = append(analyses, &a)
	}

	return analyses, rows.Err()
}

// DeleteAnalysis permanently removes an analysis.
func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return webmark.Errorf(webmark.ENOTFOUND, "analysis not found")
	}

	return nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// The field name is included in the error message when parsing fails.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
