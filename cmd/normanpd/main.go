package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/blotter"
	"github.com/fwojciec/blotter/excelize"
	"github.com/fwojciec/blotter/extract"
	"github.com/fwojciec/blotter/fs"
	"github.com/fwojciec/blotter/goquery"
	blotterhttp "github.com/fwojciec/blotter/http"
	"github.com/fwojciec/blotter/ingest"
	"github.com/fwojciec/blotter/pdf"
	blotterslog "github.com/fwojciec/blotter/slog"
	"github.com/fwojciec/blotter/sqlite"
	"github.com/fwojciec/blotter/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	m := NewMain()
	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, FormatError(err))
		os.Exit(ExitCode(err))
	}
}

// previewRows is how many stored rows --verbose reads back and logs.
const previewRows = 5

// Main represents the program.
type Main struct {
	// Decoder overrides the PDF decoder. Nil means pdf.Decoder.
	Decoder blotter.Decoder
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. The nature summary is
// written to stdout; logs go to stderr or the configured log file.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("normanpd"),
		kong.Description("Load the Norman PD daily incident summary into SQLite and summarize incident natures"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return blotter.Errorf(blotter.EINVALID, "no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return blotter.Errorf(blotter.EINVALID, "%v", err)
	}

	if err := cli.validate(); err != nil {
		return err
	}

	cfg, err := yaml.Load(cli.Layout)
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(cli, stderr)
	defer closeLog()

	fetcher := blotterslog.NewLoggingFetcher(blotterhttp.NewFetcher(
		blotterhttp.WithTimeout(cli.Timeout),
		blotterhttp.WithRateLimit(cli.Rate),
	), logger)
	defer fetcher.Close()

	decoder := m.Decoder
	if decoder == nil {
		decoder = pdf.NewDecoder()
	}

	var writers []blotter.IncidentWriter
	if cli.JSON != "" {
		writers = append(writers, blotterslog.NewLoggingIncidentWriter(fs.NewJSONWriter(cli.JSON), logger))
	}
	if cli.XLSX != "" {
		writers = append(writers, blotterslog.NewLoggingIncidentWriter(excelize.NewWriter(cli.XLSX), logger))
	}

	db := sqlite.NewDB(cli.DB)
	runner := &ingest.Runner{
		Store:     db,
		Incidents: blotterslog.NewLoggingIncidentService(sqlite.NewIncidentService(db), logger),
		Fetcher:   fetcher,
		Resolver:  blotterslog.NewLoggingLinkResolver(goquery.NewResolver(), logger),
		Decoder:   blotterslog.NewLoggingDecoder(decoder, logger),
		Parser:    blotterslog.NewLoggingParser(extract.NewParser(cfg.Layout, cfg.Exceptions), logger),
		Writers:   writers,
		Logger:    logger,
	}
	if cli.Verbose {
		runner.Preview = previewRows
	}

	result, err := runner.Run(ctx, cli.Incidents)
	if result != nil {
		fmt.Fprint(stdout, blotter.FormatSummary(result.Summary))
	}
	return err
}
