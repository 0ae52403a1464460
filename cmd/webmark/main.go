package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webmark"
	"github.com/fwojciec/webmark/analyze"
	"github.com/fwojciec/webmark/fs"
	"github.com/fwojciec/webmark/goquery"
	"github.com/fwojciec/webmark/htmltomarkdown"
	webhttp "github.com/fwojciec/webmark/http"
	"github.com/fwojciec/webmark/readability"
	"github.com/fwojciec/webmark/rod"
	webslog "github.com/fwojciec/webmark/slog"
	"github.com/fwojciec/webmark/sqlite"
	"github.com/fwojciec/webmark/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// version is reported to MCP clients during the initialize handshake.
const version = "0.1.0"

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// AnalysisService for end-to-end testing.
	AnalysisService webmark.AnalysisService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webmark"),
		kong.Description("Convert web pages into structured markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webmark --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WEBMARK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.AnalysisService = sqlite.NewAnalysisService(m.DB)
	deps.DB = m.DB
	deps.Analyses = m.AnalysisService

	// Wire command-specific dependencies based on command
	if cmd == "analyze" {
		var fetcher webmark.Fetcher
		if cli.Analyze.Static {
			fetcher = webhttp.NewFetcher(webhttp.WithTimeout(cli.Analyze.Timeout))
		} else {
			fetcher = rod.NewFetcher(
				rod.WithNavigationTimeout(cli.Analyze.Timeout),
				rod.WithSettleDelay(cli.Analyze.Settle),
			)
		}
		defer fetcher.Close()

		analyzer := newAnalyzer(fetcher)
		if cli.Analyze.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			analyzer.Fetcher = webslog.NewLoggingFetcher(analyzer.Fetcher, logger)
			analyzer.Extractor = webslog.NewLoggingExtractor(analyzer.Extractor, logger)
			deps.Analyses = webslog.NewLoggingAnalysisService(deps.Analyses, logger)
		}

		deps.Batch = &analyze.Batch{
			Analyzer:    analyzer,
			RateLimiter: analyze.NewDomainLimiter(cli.Analyze.Rate),
			Concurrency: cli.Analyze.Concurrency,
		}
	}

	if cmd == "mcp" {
		fetcher := rod.NewFetcher()
		defer fetcher.Close()
		deps.Analyzer = newAnalyzer(fetcher)
	}

	if cmd == "export" && !cli.Export.Single {
		dir := filepath.Clean(cli.Export.Dir)
		if dir == "." || dir == string(filepath.Separator) {
			fmt.Fprintln(stderr, "Hint: name a directory like 'docs' so the export can be staged and swapped atomically")
			return fmt.Errorf("cannot export into %q", cli.Export.Dir)
		}
		deps.Exporter = fs.NewExporter(filepath.Dir(dir), filepath.Base(dir))
	}

	return kongCtx.Run(deps)
}

// newAnalyzer assembles the extraction stack around a fetcher: ranked
// element digests by default, article isolation with a readability
// fallback and markdown conversion for article mode.
func newAnalyzer(fetcher webmark.Fetcher) *analyze.Analyzer {
	return &analyze.Analyzer{
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
		Articles:  trafilatura.NewExtractor(),
		Fallback:  readability.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
	}
}

func defaultDBPath() string {
	if path := os.Getenv("WEBMARK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "webmark.db"
	}
	dir := filepath.Join(home, ".webmark")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "webmark.db")
}
