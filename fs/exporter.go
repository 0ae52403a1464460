// Package fs exports archived analyses as markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/webmark"
)

// Ensure Exporter implements webmark.AnalysisExporter at compile time.
var _ webmark.AnalysisExporter = (*Exporter)(nil)

// Exporter implements webmark.AnalysisExporter with atomic update
// semantics. Analyses are saved to a temporary directory, then moved
// atomically on Commit.
type Exporter struct {
	baseDir string
	name    string
}

// NewExporter creates a new Exporter.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewExporter(baseDir, name string) *Exporter {
	return &Exporter{
		baseDir: baseDir,
		name:    name,
	}
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Exporter) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

func (e *Exporter) Save(ctx context.Context, a *webmark.Analysis) error {
	relPath, err := URLToPath(a.URL)
	if err != nil {
		return err
	}

	tempDir := e.tempDir()
	fullPath := filepath.Join(tempDir, relPath)

	// filepath.Join cleans the result, so dot segments in the URL path
	// would land the file outside the staging directory.
	if !strings.HasPrefix(fullPath, tempDir+string(filepath.Separator)) {
		return webmark.Errorf(webmark.EINVALID, "path traversal in URL %q", a.URL)
	}

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := FormatAnalysis(a)
	return os.WriteFile(fullPath, []byte(content), 0644)
}

func (e *Exporter) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(e.tempDir(), e.finalDir()); err != nil {
		return err
	}

	return nil
}

func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}

// URLToPath converts an analyzed URL to a relative file path.
// Example: https://example.com/posts/go-concurrency → posts/go-concurrency.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	// Otherwise append .md
	return path + ".md", nil
}

// FormatAnalysis formats an analysis with YAML frontmatter.
func FormatAnalysis(a *webmark.Analysis) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(a.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(a.Title)
	b.WriteString("\nmode: ")
	b.WriteString(a.Mode)
	b.WriteString("\nanalyzed: ")
	b.WriteString(a.AnalyzedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(a.Markdown)
	return b.String()
}
