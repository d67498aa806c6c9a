package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/blotter"
)

// Ensure LoggingIncidentService implements blotter.IncidentService.
var _ blotter.IncidentService = (*LoggingIncidentService)(nil)

// LoggingIncidentService wraps an IncidentService with logging.
type LoggingIncidentService struct {
	next   blotter.IncidentService
	logger *slog.Logger
}

// NewLoggingIncidentService creates a new LoggingIncidentService.
func NewLoggingIncidentService(next blotter.IncidentService, logger *slog.Logger) *LoggingIncidentService {
	return &LoggingIncidentService{next: next, logger: logger}
}

// CreateIncident delegates to the wrapped service. Only failures are logged.
func (s *LoggingIncidentService) CreateIncident(ctx context.Context, inc *blotter.Incident) (err error) {
	defer func() {
		if err != nil {
			s.logger.Warn("create incident", "number", inc.Number, "err", err)
		}
	}()
	return s.next.CreateIncident(ctx, inc)
}

// CreateIncidents delegates to the wrapped service and logs how many rows were stored.
func (s *LoggingIncidentService) CreateIncidents(ctx context.Context, incidents []*blotter.Incident) (stored int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("create incidents",
			"count", len(incidents),
			"stored", stored,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateIncidents(ctx, incidents)
}

// FindIncidents delegates to the wrapped service.
func (s *LoggingIncidentService) FindIncidents(ctx context.Context, filter blotter.IncidentFilter) (incidents []*blotter.Incident, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find incidents",
			"count", len(incidents),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindIncidents(ctx, filter)
}

// SummarizeNatures delegates to the wrapped service.
func (s *LoggingIncidentService) SummarizeNatures(ctx context.Context) (counts []blotter.NatureCount, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarize natures",
			"natures", len(counts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SummarizeNatures(ctx)
}
