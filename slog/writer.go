package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/blotter"
)

// Ensure LoggingIncidentWriter implements blotter.IncidentWriter.
var _ blotter.IncidentWriter = (*LoggingIncidentWriter)(nil)

// LoggingIncidentWriter wraps an IncidentWriter with logging. Writers that
// report a Path have it included in the record.
type LoggingIncidentWriter struct {
	next   blotter.IncidentWriter
	logger *slog.Logger
}

// NewLoggingIncidentWriter creates a new LoggingIncidentWriter.
func NewLoggingIncidentWriter(next blotter.IncidentWriter, logger *slog.Logger) *LoggingIncidentWriter {
	return &LoggingIncidentWriter{next: next, logger: logger}
}

// WriteIncidents delegates to the wrapped writer and logs the operation.
func (w *LoggingIncidentWriter) WriteIncidents(ctx context.Context, incidents []*blotter.Incident) (err error) {
	defer func(begin time.Time) {
		var path string
		if p, ok := w.next.(interface{ Path() string }); ok {
			path = p.Path()
		}
		w.logger.Info("write incidents",
			"path", path,
			"count", len(incidents),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteIncidents(ctx, incidents)
}
