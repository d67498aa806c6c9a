package mock

import (
	"context"

	"github.com/fwojciec/blotter"
)

var _ blotter.IncidentWriter = (*IncidentWriter)(nil)

// IncidentWriter is a mock implementation of blotter.IncidentWriter.
type IncidentWriter struct {
	WriteIncidentsFn func(ctx context.Context, incidents []*blotter.Incident) error
}

func (w *IncidentWriter) WriteIncidents(ctx context.Context, incidents []*blotter.Incident) error {
	return w.WriteIncidentsFn(ctx, incidents)
}
