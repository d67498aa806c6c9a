package goquery_test

import (
	"testing"

	"github.com/fwojciec/blotter"
	"github.com/fwojciec/blotter/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingURL = "https://www.normanok.gov/public-safety/police-department/crime-prevention-data/department-activity-reports"

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("returns first summary link resolved against the page", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/sites/default/files/documents/2024-01/2024-01-21_daily_arrest_summary.pdf">Arrests</a>
			<a href="/sites/default/files/documents/2024-01/2024-01-21_daily_incident_summary.pdf">Incidents 1/21</a>
			<a href="/sites/default/files/documents/2024-01/2024-01-20_daily_incident_summary.pdf">Incidents 1/20</a>
		</body></html>`

		got, err := goquery.NewResolver().Resolve(html, listingURL)

		require.NoError(t, err)
		assert.Equal(t, "https://www.normanok.gov/sites/default/files/documents/2024-01/2024-01-21_daily_incident_summary.pdf", got)
	})

	t.Run("matches file names case-insensitively", func(t *testing.T) {
		t.Parallel()

		html := `<a href="files/2024-01-21_Daily_Incident_Summary.PDF">Incidents</a>`

		got, err := goquery.NewResolver().Resolve(html, "https://example.com/reports/")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/reports/files/2024-01-21_Daily_Incident_Summary.PDF", got)
	})

	t.Run("ignores query strings when checking the extension", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://cdn.example.com/2024-01-21_daily_incident_summary.pdf?v=2">Incidents</a>`

		got, err := goquery.NewResolver().Resolve(html, listingURL)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/2024-01-21_daily_incident_summary.pdf?v=2", got)
	})

	t.Run("returns not found when no summary is linked", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/incident_summary.html">Not a PDF</a><a href="/case_log.pdf">Case log</a>`

		_, err := goquery.NewResolver().Resolve(html, listingURL)

		require.Error(t, err)
		assert.Equal(t, blotter.ENOTFOUND, blotter.ErrorCode(err))
	})

	t.Run("returns invalid for a bad base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewResolver().Resolve("<html></html>", "://bad")

		require.Error(t, err)
		assert.Equal(t, blotter.EINVALID, blotter.ErrorCode(err))
	})
}
