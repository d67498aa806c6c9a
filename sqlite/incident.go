package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/blotter"
)

// Compile-time interface verification.
var _ blotter.IncidentService = (*IncidentService)(nil)

// IncidentService implements blotter.IncidentService using SQLite.
type IncidentService struct {
	db *DB
}

// NewIncidentService creates a new IncidentService.
func NewIncidentService(db *DB) *IncidentService {
	return &IncidentService{db: db}
}

// CreateIncident inserts a single incident. Each statement runs in its own
// implicit transaction, so the row is committed on return.
func (s *IncidentService) CreateIncident(ctx context.Context, inc *blotter.Incident) error {
	if err := inc.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO incidents (incident_time, incident_number, incident_location, incident_nature, incident_ori)
		VALUES (?, ?, ?, ?, ?)
	`, inc.Time, inc.Number, inc.Location, inc.Nature, inc.ORI)
	if err != nil {
		return fmt.Errorf("insert incident %s: %w", inc.Number, err)
	}
	return nil
}

// CreateIncidents inserts incidents one at a time. A failed insert does
// not stop the remaining ones; all failures are returned joined.
func (s *IncidentService) CreateIncidents(ctx context.Context, incidents []*blotter.Incident) (int, error) {
	var stored int
	var errs []error
	for _, inc := range incidents {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := s.CreateIncident(ctx, inc); err != nil {
			errs = append(errs, err)
			continue
		}
		stored++
	}
	return stored, errors.Join(errs...)
}

// FindIncidents retrieves incidents in insertion order.
func (s *IncidentService) FindIncidents(ctx context.Context, filter blotter.IncidentFilter) ([]*blotter.Incident, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT incident_time, incident_number, incident_location, incident_nature, incident_ori FROM incidents WHERE 1=1")

	if filter.Nature != nil {
		query.WriteString(" AND incident_nature = ?")
		args = append(args, *filter.Nature)
	}

	query.WriteString(" ORDER BY rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incidents []*blotter.Incident
	for rows.Next() {
		var inc blotter.Incident
		if err := rows.Scan(&inc.Time, &inc.Number, &inc.Location, &inc.Nature, &inc.ORI); err != nil {
			return nil, err
		}
		incidents = append(incidents, &inc)
	}

	return incidents, rows.Err()
}

// SummarizeNatures counts incidents per nature. Rows are ordered by count
// descending, then nature ascending, with the empty nature always last.
func (s *IncidentService) SummarizeNatures(ctx context.Context) ([]blotter.NatureCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT incident_nature, COUNT(*) AS count
		FROM incidents
		GROUP BY incident_nature
		ORDER BY (incident_nature = '') ASC, count DESC, incident_nature ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []blotter.NatureCount
	for rows.Next() {
		var c blotter.NatureCount
		if err := rows.Scan(&c.Nature, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
