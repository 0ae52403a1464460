package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/webmark"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	a, err := deps.Analyses.FindAnalysisByID(deps.Ctx, c.ID)
	if err != nil {
		if webmark.ErrorCode(err) == webmark.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: analysis %q not found. Use 'webmark history' to see archived analyses.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", webmark.ErrorMessage(err))
		return err
	}

	if c.Sections {
		return c.printSections(deps, a)
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	fmt.Fprintln(deps.Stdout, a.Markdown)
	return nil
}

func (c *ShowCmd) printSections(deps *Dependencies, a *webmark.Analysis) error {
	sections := webmark.ExtractSections(a.Markdown)
	if len(sections) == 0 {
		fmt.Fprintln(deps.Stdout, "No headings found.")
		return nil
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sections)
	}

	for _, s := range sections {
		fmt.Fprintf(deps.Stdout, "%s- %s #%s\n", strings.Repeat("  ", s.Level-1), s.Title, s.Anchor)
	}
	return nil
}
