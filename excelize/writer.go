// Package excelize writes incidents to an XLSX workbook using
// github.com/xuri/excelize/v2.
package excelize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/blotter"
	"github.com/xuri/excelize/v2"
)

// Sheet is the worksheet incidents are written to.
const Sheet = "Incidents"

// Headers are the column titles of the first row.
var Headers = []string{"Time", "Incident Number", "Location", "Nature", "ORI"}

var columnWidths = map[string]float64{
	"A": 8,  // time
	"B": 16, // number
	"C": 40, // location
	"D": 32, // nature
	"E": 12, // ori
}

// Ensure Writer implements blotter.IncidentWriter at compile time.
var _ blotter.IncidentWriter = (*Writer)(nil)

// Writer saves incidents as a workbook with one row per incident.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the workbook path.
func (w *Writer) Path() string {
	return w.path
}

// WriteIncidents replaces the workbook at the configured path.
func (w *Writer) WriteIncidents(ctx context.Context, incidents []*blotter.Incident) error {
	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet so the workbook has exactly one.
	if err := f.SetSheetName(f.GetSheetName(0), Sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(Sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, inc := range incidents {
		if err := ctx.Err(); err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{inc.Time, inc.Number, inc.Location, inc.Nature, inc.ORI}
		if err := f.SetSheetRow(Sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(Sheet, col, col, width); err != nil {
			return fmt.Errorf("set width of column %s: %w", col, err)
		}
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
