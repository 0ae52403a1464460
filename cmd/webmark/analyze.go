package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/webmark"
	"github.com/fwojciec/webmark/analyze"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	reports := deps.Batch.AnalyzeAll(deps.Ctx, c.URLs, c.Mode, progressFunc(deps.Stderr))

	// Archive before printing so assigned IDs show up in the output.
	if c.Save {
		if err := c.archive(deps, reports); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webmark.ErrorMessage(err))
			return err
		}
	}

	if c.JSON {
		if err := printJSON(deps.Stdout, reports); err != nil {
			return err
		}
	} else {
		printMarkdown(deps, reports)
	}

	failed := 0
	for _, r := range reports {
		if !r.Success {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d analyses failed", failed, len(reports))
	}
	return nil
}

// archive stores successful analyses so later runs can list, show, and
// export them. Failed reports carry no result and are skipped.
func (c *AnalyzeCmd) archive(deps *Dependencies, reports []*webmark.Report) error {
	saved := 0
	for _, r := range reports {
		if !r.Success {
			continue
		}
		if err := deps.Analyses.CreateAnalysis(deps.Ctx, r.Result); err != nil {
			return err
		}
		saved++
	}
	if saved > 0 {
		fmt.Fprintf(deps.Stderr, "Archived %d analyses\n", saved)
	}
	return nil
}

// progressFunc reports batch progress on stderr, keeping stdout clean
// for markdown or JSON. Single-URL runs stay quiet; their outcome is the
// output itself.
func progressFunc(stderr io.Writer) analyze.ProgressFunc {
	return func(event analyze.ProgressEvent) {
		if event.Total < 2 {
			return
		}
		switch event.Type {
		case analyze.ProgressStarted:
			fmt.Fprintf(stderr, "Analyzing %d URLs\n", event.Total)
		case analyze.ProgressCompleted:
			fmt.Fprintf(stderr, "[%d/%d] %s\n", event.Completed, event.Total, event.URL)
		case analyze.ProgressFailed:
			fmt.Fprintf(stderr, "[%d/%d] failed %s: %s\n", event.Completed, event.Total, event.URL, event.Error)
		}
	}
}

func printJSON(stdout io.Writer, reports []*webmark.Report) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if len(reports) == 1 {
		return enc.Encode(reports[0])
	}
	return enc.Encode(reports)
}

func printMarkdown(deps *Dependencies, reports []*webmark.Report) {
	if len(reports) == 1 {
		r := reports[0]
		if !r.Success {
			fmt.Fprintf(deps.Stderr, "error: %s\n", r.Error)
			return
		}
		fmt.Fprintln(deps.Stdout, r.Result.Markdown)
		return
	}

	// Multi-URL failures were already reported by the progress lines.
	var analyses []*webmark.Analysis
	for _, r := range reports {
		if r.Success {
			analyses = append(analyses, r.Result)
		}
	}
	if len(analyses) == 0 {
		return
	}
	fmt.Fprintln(deps.Stdout, webmark.FormatAnalyses(analyses))
}
