package mock

import (
	"context"

	"github.com/fwojciec/blotter"
)

var _ blotter.IncidentService = (*IncidentService)(nil)

// IncidentService is a mock implementation of blotter.IncidentService.
type IncidentService struct {
	CreateIncidentFn   func(ctx context.Context, inc *blotter.Incident) error
	CreateIncidentsFn  func(ctx context.Context, incidents []*blotter.Incident) (int, error)
	FindIncidentsFn    func(ctx context.Context, filter blotter.IncidentFilter) ([]*blotter.Incident, error)
	SummarizeNaturesFn func(ctx context.Context) ([]blotter.NatureCount, error)
}

func (s *IncidentService) CreateIncident(ctx context.Context, inc *blotter.Incident) error {
	return s.CreateIncidentFn(ctx, inc)
}

func (s *IncidentService) CreateIncidents(ctx context.Context, incidents []*blotter.Incident) (int, error) {
	return s.CreateIncidentsFn(ctx, incidents)
}

func (s *IncidentService) FindIncidents(ctx context.Context, filter blotter.IncidentFilter) ([]*blotter.Incident, error) {
	return s.FindIncidentsFn(ctx, filter)
}

func (s *IncidentService) SummarizeNatures(ctx context.Context) ([]blotter.NatureCount, error) {
	return s.SummarizeNaturesFn(ctx)
}

var _ blotter.IncidentStore = (*IncidentStore)(nil)

// IncidentStore is a mock implementation of blotter.IncidentStore.
type IncidentStore struct {
	ResetFn func() error
	OpenFn  func() error
	CloseFn func() error
}

func (s *IncidentStore) Reset() error {
	return s.ResetFn()
}

func (s *IncidentStore) Open() error {
	return s.OpenFn()
}

func (s *IncidentStore) Close() error {
	return s.CloseFn()
}
