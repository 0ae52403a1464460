package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/webmark"
	"github.com/fwojciec/webmark/analyze"
	"github.com/fwojciec/webmark/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Analyses webmark.AnalysisService
	Batch    *analyze.Batch
	Analyzer *analyze.Analyzer
	Exporter webmark.AnalysisExporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Analyze web pages and print markdown"`
	History HistoryCmd `cmd:"" help:"List archived analyses"`
	Show    ShowCmd    `cmd:"" help:"Show an archived analysis"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an archived analysis"`
	Export  ExportCmd  `cmd:"" help:"Export archived analyses as markdown files"`
	MCP     MCPCmd     `cmd:"" help:"Serve the web_analyzer tool over MCP stdio"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URLs        []string      `arg:"" name:"url" help:"Web page URLs to analyze"`
	Mode        string        `default:"digest" help:"Analysis mode: digest or article"`
	JSON        bool          `help:"Print the full report envelope as JSON"`
	Save        bool          `help:"Archive successful analyses in the local database"`
	Static      bool          `help:"Fetch over plain HTTP instead of a headless browser"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent analysis limit"`
	Rate        float64       `short:"r" default:"1" help:"Requests per second per domain"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Navigation timeout per page"`
	Settle      time.Duration `default:"2s" help:"Extra wait after page load for scripts to finish"`
	Verbose     bool          `short:"v" help:"Log fetch and extraction details to stderr"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL    string `help:"Filter by source URL"`
	Limit  int    `help:"Maximum number of analyses to list"`
	Offset int    `help:"Number of analyses to skip"`
	Sort   string `default:"date" enum:"date,url" help:"Sort order: date (newest first) or url"`
	JSON   bool   `help:"Print analyses as JSON"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID       string `arg:"" name:"id" help:"Analysis ID"`
	Sections bool   `help:"Print the heading outline instead of the markdown"`
	JSON     bool   `help:"Print as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" name:"id" help:"Analysis ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir    string `arg:"" name:"dir" help:"Output directory"`
	Single bool   `help:"Write one combined document instead of a directory tree"`
}

// MCPCmd is the "mcp" subcommand.
type MCPCmd struct{}
