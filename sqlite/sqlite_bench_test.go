package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/blotter"
	"github.com/fwojciec/blotter/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkCreateIncidents compares one-row-per-commit inserts between the
// rollback journal and WAL.
func BenchmarkCreateIncidents(b *testing.B) {
	b.Run("rollback_journal", func(b *testing.B) {
		benchmarkIncidentInserts(b, false)
	})

	b.Run("wal_mode", func(b *testing.B) {
		benchmarkIncidentInserts(b, true)
	})
}

func benchmarkIncidentInserts(b *testing.B, useWAL bool) {
	b.Helper()

	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	ctx := context.Background()
	if !useWAL {
		_, err := db.ExecContext(ctx, "PRAGMA journal_mode = DELETE")
		require.NoError(b, err)
	}

	// A busy day's summary is a few hundred rows.
	incidents := make([]*blotter.Incident, 300)
	for i := range incidents {
		incidents[i] = &blotter.Incident{
			Time:     "0:08",
			Number:   fmt.Sprintf("2024-%08d", i),
			Location: "608 S FLOOD AVE",
			Nature:   "Check Area",
			ORI:      "OK0140200",
		}
	}

	svc := sqlite.NewIncidentService(db)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := svc.CreateIncidents(ctx, incidents)
		require.NoError(b, err)
	}
}
