package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fwojciec/webmark"
	"github.com/fwojciec/webmark/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	analyses, err := deps.Analyses.FindAnalyses(deps.Ctx, webmark.AnalysisFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webmark.ErrorMessage(err))
		return err
	}

	analyses = latestPerURL(analyses)
	if len(analyses) == 0 {
		fmt.Fprintln(deps.Stdout, "No analyses to export. Use 'webmark analyze --save' to archive some first.")
		return nil
	}

	if c.Single {
		path := filepath.Join(c.Dir, "combined.md")
		if err := fs.WriteCombined(path, analyses); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webmark.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d analyses to %s\n", len(analyses), path)
		return nil
	}

	for _, a := range analyses {
		if err := deps.Exporter.Save(deps.Ctx, a); err != nil {
			_ = deps.Exporter.Abort()
			fmt.Fprintf(deps.Stderr, "error saving %s: %s\n", a.URL, webmark.ErrorMessage(err))
			return err
		}
	}
	if err := deps.Exporter.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webmark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d analyses to %s\n", len(analyses), c.Dir)
	return nil
}

// latestPerURL keeps only the newest analysis for each URL. The archive
// is append-only, so re-analyzing a page adds a row rather than
// replacing one; exports want a single file per page. Input arrives
// newest first; output is sorted by URL for a stable tree.
func latestPerURL(analyses []*webmark.Analysis) []*webmark.Analysis {
	seen := make(map[string]bool, len(analyses))
	latest := make([]*webmark.Analysis, 0, len(analyses))
	for _, a := range analyses {
		if seen[a.URL] {
			continue
		}
		seen[a.URL] = true
		latest = append(latest, a)
	}
	sort.Slice(latest, func(i, j int) bool { return latest[i].URL < latest[j].URL })
	return latest
}
