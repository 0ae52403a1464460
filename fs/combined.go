package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/webmark"
)

// WriteCombined writes all analyses as a single markdown document at path.
// The content is written to a temporary sibling first and renamed into
// place, so readers never observe a partial export.
func WriteCombined(path string, analyses []*webmark.Analysis) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	content := webmark.FormatAnalyses(analyses)
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
