package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/fwojciec/blotter"
	"github.com/fwojciec/blotter/fs"
	"github.com/fwojciec/blotter/mock"
	blotterslog "github.com/fwojciec/blotter/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingIncidentWriter_WriteIncidents(t *testing.T) {
	t.Parallel()

	t.Run("logs path when the writer has one", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		path := filepath.Join(t.TempDir(), "incidents.json")

		w := blotterslog.NewLoggingIncidentWriter(fs.NewJSONWriter(path), logger)
		err := w.WriteIncidents(context.Background(), []*blotter.Incident{{Time: "1:00", Number: "2024-00000001", ORI: "14005"}})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "path="+path)
		assert.Contains(t, output, "count=1")
	})

	t.Run("logs without path otherwise", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.IncidentWriter{
			WriteIncidentsFn: func(ctx context.Context, incidents []*blotter.Incident) error { return nil },
		}

		err := blotterslog.NewLoggingIncidentWriter(inner, logger).WriteIncidents(context.Background(), nil)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "path=\"\" count=0")
	})
}
