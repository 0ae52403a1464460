package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/webmark"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := webmark.AnalysisFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.URL = &c.URL
	}
	if c.Sort == "url" {
		filter.SortBy = webmark.SortByURL
	}

	analyses, err := deps.Analyses.FindAnalyses(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webmark.ErrorMessage(err))
		return err
	}

	if len(analyses) == 0 {
		fmt.Fprintln(deps.Stdout, "No analyses archived. Use 'webmark analyze --save' to create one.")
		return nil
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analyses)
	}

	for _, a := range analyses {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-7s  %s\n", a.ID, a.AnalyzedAt.Format("2006-01-02 15:04"), a.Mode, a.URL)
	}

	return nil
}
