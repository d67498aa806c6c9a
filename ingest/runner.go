// Package ingest sequences a single run: reset the store, fetch and decode
// the summary, parse it, write artifacts, store the incidents and
// summarize them.
//
// Failures that leave nothing to work with halt the run. Malformed chunks
// are skipped. Artifact and insert failures are deferred: the run completes
// and then reports them.
package ingest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fwojciec/blotter"
)

// Result is the outcome of a run.
type Result struct {
	Incidents []*blotter.Incident
	Skipped   []blotter.SkippedChunk
	Stored    int
	Summary   []blotter.NatureCount
}

// Runner wires the collaborators of a run.
type Runner struct {
	Store     blotter.IncidentStore
	Incidents blotter.IncidentService
	Fetcher   blotter.Fetcher
	Resolver  blotter.LinkResolver // optional; used when the URL serves HTML
	Decoder   blotter.Decoder
	Parser    blotter.Parser
	Writers   []blotter.IncidentWriter
	Logger    *slog.Logger

	// Preview is the number of stored rows read back and logged at debug
	// level after inserting. Zero disables it.
	Preview int
}

// Run processes the document at url. The returned Result is non-nil
// whenever the summary was computed, including when deferred failures
// are reported in the error.
func (r *Runner) Run(ctx context.Context, url string) (_ *Result, err error) {
	logger := r.logger()

	if err := r.Store.Reset(); err != nil {
		return nil, blotter.WrapError(blotter.ERESET, err, "reset store")
	}

	data, err := r.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	pages, err := r.Decoder.Decode(ctx, data)
	if err != nil {
		return nil, blotter.WrapError(blotter.EDECODE, err, "decode document")
	}

	parsed := r.Parser.Parse(pages)
	result := &Result{
		Incidents: parsed.Incidents,
		Skipped:   parsed.Skipped,
	}

	var exportErrs []error
	for _, w := range r.Writers {
		if err := w.WriteIncidents(ctx, result.Incidents); err != nil {
			logger.Warn("artifact write failed", "err", err)
			exportErrs = append(exportErrs, err)
		}
	}

	if err := r.Store.Open(); err != nil {
		return nil, blotter.WrapError(blotter.ESTORE, err, "open store")
	}
	defer func() {
		if e := r.Store.Close(); e != nil && err == nil {
			err = blotter.WrapError(blotter.ESTORE, e, "close store")
		}
	}()

	stored, insertErr := r.Incidents.CreateIncidents(ctx, result.Incidents)
	result.Stored = stored

	r.preview(ctx, logger)

	summary, err := r.Incidents.SummarizeNatures(ctx)
	if err != nil {
		return nil, blotter.WrapError(blotter.ESTORE, err, "summarize natures")
	}
	result.Summary = summary

	logger.Info("run complete",
		"incidents", len(result.Incidents),
		"skipped", len(result.Skipped),
		"stored", result.Stored,
		"natures", len(result.Summary),
	)

	return result, errors.Join(
		blotter.WrapError(blotter.ESTORE, insertErr, "store incidents"),
		blotter.WrapError(blotter.EEXPORT, errors.Join(exportErrs...), "write artifacts"),
	)
}

// fetch downloads url. When it serves an HTML listing instead of the
// document, the linked summary is fetched in its place.
func (r *Runner) fetch(ctx context.Context, url string) ([]byte, error) {
	data, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, blotter.WrapError(blotter.EFETCH, err, "fetch %s", url)
	}

	if r.Resolver == nil || !isHTML(data) {
		return data, nil
	}

	link, err := r.Resolver.Resolve(string(data), url)
	if err != nil {
		return nil, blotter.WrapError(blotter.EFETCH, err, "find summary on %s", url)
	}

	data, err = r.Fetcher.Fetch(ctx, link)
	if err != nil {
		return nil, blotter.WrapError(blotter.EFETCH, err, "fetch %s", link)
	}
	return data, nil
}

func (r *Runner) preview(ctx context.Context, logger *slog.Logger) {
	if r.Preview <= 0 {
		return
	}

	rows, err := r.Incidents.FindIncidents(ctx, blotter.IncidentFilter{Limit: r.Preview})
	if err != nil {
		logger.Debug("preview failed", "err", err)
		return
	}
	for _, inc := range rows {
		logger.Debug("stored incident",
			"time", inc.Time,
			"number", inc.Number,
			"location", inc.Location,
			"nature", inc.Nature,
			"ori", inc.ORI,
		)
	}
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

func isHTML(data []byte) bool {
	return strings.HasPrefix(http.DetectContentType(data), "text/html")
}
