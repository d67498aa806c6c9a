package blotter

import (
	"context"
	"strconv"
	"strings"
)

// NumberLength is the length of a well-formed incident number (YYYY-NNNNNNNN).
const NumberLength = 13

// Incident represents one row of the daily incident summary.
type Incident struct {
	Time     string `json:"incident_time"`
	Number   string `json:"incident_number"`
	Location string `json:"incident_location"`
	Nature   string `json:"incident_nature"`
	ORI      string `json:"incident_ori"`
}

// Validate returns an error if the incident contains invalid fields.
// Location and Nature may legitimately be empty.
func (i *Incident) Validate() error {
	if i.Time == "" {
		return Errorf(EINVALID, "incident time required")
	}
	if i.Number == "" {
		return Errorf(EINVALID, "incident number required")
	}
	if i.ORI == "" {
		return Errorf(EINVALID, "incident ORI required")
	}
	return nil
}

// NatureCount is one row of the nature summary.
type NatureCount struct {
	Nature string `json:"nature"`
	Count  int    `json:"count"`
}

// FormatSummary renders summary rows as "nature|count" lines.
func FormatSummary(counts []NatureCount) string {
	if len(counts) == 0 {
		return ""
	}

	var b strings.Builder
	for _, c := range counts {
		b.WriteString(c.Nature)
		b.WriteByte('|')
		b.WriteString(strconv.Itoa(c.Count))
		b.WriteByte('\n')
	}
	return b.String()
}

// IncidentStore owns the lifecycle of the incident database.
type IncidentStore interface {
	// Reset removes any database left over from a previous run.
	Reset() error

	// Open connects to the database and creates the schema.
	Open() error

	// Close releases the connection.
	Close() error
}

// IncidentService represents a service for persisting and summarizing incidents.
type IncidentService interface {
	// CreateIncident stores a single incident. The write is committed
	// before the call returns.
	CreateIncident(ctx context.Context, incident *Incident) error

	// CreateIncidents stores incidents one at a time. Every incident is
	// attempted; the number stored is returned along with any failures.
	CreateIncidents(ctx context.Context, incidents []*Incident) (int, error)

	// FindIncidents retrieves stored incidents in insertion order.
	FindIncidents(ctx context.Context, filter IncidentFilter) ([]*Incident, error)

	// SummarizeNatures counts incidents per nature, most frequent first,
	// ties broken alphabetically, with the empty nature always last.
	SummarizeNatures(ctx context.Context) ([]NatureCount, error)
}

// IncidentFilter represents a filter for FindIncidents.
type IncidentFilter struct {
	Nature *string `json:"nature"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// IncidentWriter writes extracted incidents to an output artifact.
type IncidentWriter interface {
	WriteIncidents(ctx context.Context, incidents []*Incident) error
}
