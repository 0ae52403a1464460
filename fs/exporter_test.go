package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/webmark"
	"github.com/fwojciec/webmark/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Export
// The exporter stages files in a temp directory for atomic updates

func TestExporter_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given an exporter targeting a directory
	base := t.TempDir()
	exp := fs.NewExporter(base, "output")

	// When I save an analysis
	err := exp.Save(context.Background(), &webmark.Analysis{
		URL:      "https://example.com/posts/go-concurrency",
		Title:    "Go Concurrency Patterns",
		Mode:     webmark.ModeDigest,
		Markdown: "# Go Concurrency Patterns\n\nChannels and goroutines.",
	})

	// Then no error occurs
	require.NoError(t, err)

	// And the file exists in the temp directory (not final)
	tempPath := filepath.Join(base, "output.tmp", "posts", "go-concurrency.md")
	_, err = os.Stat(tempPath)
	require.NoError(t, err, "file should exist in temp directory")

	// And final directory does not exist yet
	finalPath := filepath.Join(base, "output", "posts", "go-concurrency.md")
	_, err = os.Stat(finalPath)
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestExporter_CommitMovesFromTempToFinal(t *testing.T) {
	t.Parallel()

	// Given an exporter with saved analyses
	base := t.TempDir()
	exp := fs.NewExporter(base, "output")
	err := exp.Save(context.Background(), &webmark.Analysis{
		URL:      "https://example.com/a",
		Title:    "A",
		Mode:     webmark.ModeDigest,
		Markdown: "# A",
	})
	require.NoError(t, err)

	// When I commit
	err = exp.Commit()

	// Then no error occurs
	require.NoError(t, err)

	// And final directory exists with content
	finalPath := filepath.Join(base, "output", "a.md")
	_, err = os.Stat(finalPath)
	require.NoError(t, err, "file should exist in final directory after commit")

	// And temp directory is gone
	tempDir := filepath.Join(base, "output.tmp")
	_, err = os.Stat(tempDir)
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestExporter_CommitReplacesPreviousExport(t *testing.T) {
	t.Parallel()

	// Given a committed export
	base := t.TempDir()
	first := fs.NewExporter(base, "output")
	err := first.Save(context.Background(), &webmark.Analysis{
		URL:      "https://example.com/old-page",
		Mode:     webmark.ModeDigest,
		Markdown: "# Old",
	})
	require.NoError(t, err)
	require.NoError(t, first.Commit())

	// When a second export commits
	second := fs.NewExporter(base, "output")
	err = second.Save(context.Background(), &webmark.Analysis{
		URL:      "https://example.com/new-page",
		Mode:     webmark.ModeDigest,
		Markdown: "# New",
	})
	require.NoError(t, err)
	require.NoError(t, second.Commit())

	// Then only the new export remains
	_, err = os.Stat(filepath.Join(base, "output", "new-page.md"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "output", "old-page.md"))
	assert.True(t, os.IsNotExist(err), "previous export should be replaced wholesale")
}

func TestExporter_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	// Given an exporter with saved analyses
	base := t.TempDir()
	exp := fs.NewExporter(base, "output")
	err := exp.Save(context.Background(), &webmark.Analysis{
		URL:      "https://example.com/a",
		Title:    "A",
		Mode:     webmark.ModeDigest,
		Markdown: "# A",
	})
	require.NoError(t, err)

	// When I abort
	err = exp.Abort()

	// Then no error occurs
	require.NoError(t, err)

	// And temp directory is cleaned up
	tempDir := filepath.Join(base, "output.tmp")
	_, err = os.Stat(tempDir)
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")

	// And final directory doesn't exist
	finalDir := filepath.Join(base, "output")
	_, err = os.Stat(finalDir)
	assert.True(t, os.IsNotExist(err), "final directory should not exist after abort")
}

func TestExporter_IncludesFrontmatter(t *testing.T) {
	t.Parallel()

	// Given an analysis with metadata
	base := t.TempDir()
	exp := fs.NewExporter(base, "output")
	err := exp.Save(context.Background(), &webmark.Analysis{
		URL:        "https://example.com/intro",
		Title:      "Introduction",
		Mode:       webmark.ModeArticle,
		Markdown:   "# Welcome",
		AnalyzedAt: time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	err = exp.Commit()
	require.NoError(t, err)

	// When I read the file
	content, err := os.ReadFile(filepath.Join(base, "output", "intro.md"))
	require.NoError(t, err)

	// Then it has YAML frontmatter
	assert.Contains(t, string(content), "---")
	assert.Contains(t, string(content), "source: https://example.com/intro")
	assert.Contains(t, string(content), "title: Introduction")
	assert.Contains(t, string(content), "mode: article")
	assert.Contains(t, string(content), "analyzed: 2026-08-20")
	// And content follows the frontmatter
	assert.Contains(t, string(content), "# Welcome")
}

func TestExporter_PreservesURLPathStructure(t *testing.T) {
	t.Parallel()

	// Given analyses with nested paths
	base := t.TempDir()
	exp := fs.NewExporter(base, "output")
	err := exp.Save(context.Background(), &webmark.Analysis{
		URL:      "https://example.com/blog/2026/go-releases",
		Title:    "Go Releases",
		Mode:     webmark.ModeDigest,
		Markdown: "# Go Releases",
	})
	require.NoError(t, err)
	err = exp.Commit()
	require.NoError(t, err)

	// Then nested directories are created
	expectedPath := filepath.Join(base, "output", "blog", "2026", "go-releases.md")
	_, err = os.Stat(expectedPath)
	require.NoError(t, err, "nested path structure should be preserved")
}

func TestExporter_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	// Given an exporter
	base := t.TempDir()
	exp := fs.NewExporter(base, "output")

	// When I try to save an analysis with path traversal in the URL
	err := exp.Save(context.Background(), &webmark.Analysis{
		URL:      "https://example.com/../../../etc/passwd",
		Title:    "Malicious",
		Mode:     webmark.ModeDigest,
		Markdown: "bad content",
	})

	// Then an error is returned
	require.Error(t, err, "path traversal should be rejected")
	assert.Contains(t, err.Error(), "path traversal")
	assert.Equal(t, webmark.EINVALID, webmark.ErrorCode(err))
}

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "simple path",
			url:  "https://example.com/posts/go-concurrency",
			want: "posts/go-concurrency.md",
		},
		{
			name: "trailing slash becomes index",
			url:  "https://example.com/posts/",
			want: "posts/index.md",
		},
		{
			name: "root path becomes index",
			url:  "https://example.com/",
			want: "index.md",
		},
		{
			name: "no trailing slash",
			url:  "https://example.com/posts",
			want: "posts.md",
		},
		{
			name: "ignores query string",
			url:  "https://example.com/posts/page?version=2",
			want: "posts/page.md",
		},
		{
			name: "ignores fragment",
			url:  "https://example.com/posts/page#section",
			want: "posts/page.md",
		},
		{
			name: "root without trailing slash",
			url:  "https://example.com",
			want: "index.md",
		},
		{
			name: "deep nesting",
			url:  "https://example.com/a/b/c/d/e/f",
			want: "a/b/c/d/e/f.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("formats analysis with frontmatter", func(t *testing.T) {
		t.Parallel()

		a := &webmark.Analysis{
			URL:        "https://example.com/posts/field-notes",
			Title:      "Field Notes",
			Mode:       webmark.ModeDigest,
			Markdown:   "# Field Notes\n\nObservations from the trail.",
			AnalyzedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		}

		got := fs.FormatAnalysis(a)

		want := `---
source: https://example.com/posts/field-notes
title: Field Notes
mode: digest
analyzed: 2026-08-20
---

# Field Notes

Observations from the trail.`

		assert.Equal(t, want, got)
	})
}
